package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	uuid "github.com/satori/go.uuid"
)

// Commission audit actions
const (
	AuditActionDecision = "decision"
	AuditActionView     = "view"
	AuditActionAttach   = "attach"
)

// Provisioning audit actions
const (
	ProvisionActionCreate     = "create"
	ProvisionActionExtend     = "extend"
	ProvisionActionUpdate     = "update"
	ProvisionActionDeactivate = "deactivate"
)

// EventMeta carries additional audit context, stored as a jsonb column
type EventMeta map[string]string

// Value implements driver.Valuer for jsonb storage
func (m EventMeta) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb storage
func (m *EventMeta) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return apierrors.ErrUnableToParseJSON
}

// CommissionEvent is one audited commission action against an application
type CommissionEvent struct {
	ID            string    `db:"id"             json:"id"`
	ApplicationID string    `db:"application_id" json:"application_id"`
	ActorID       string    `db:"actor_id"       json:"actor_id"`
	ActorEmail    string    `db:"actor_email"    json:"actor_email,omitempty"`
	Action        string    `db:"action"         json:"action"`
	OldStatus     string    `db:"old_status"     json:"old_status,omitempty"`
	NewStatus     string    `db:"new_status"     json:"new_status,omitempty"`
	Comment       string    `db:"comment"        json:"comment,omitempty"`
	IP            string    `db:"ip"             json:"ip,omitempty"`
	UserAgent     string    `db:"user_agent"     json:"user_agent,omitempty"`
	Meta          EventMeta `db:"meta"           json:"meta,omitempty"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}

// NewCommissionEvent builds an audit event with a fresh id and timestamp
func NewCommissionEvent(applicationID, actorID, action string) *CommissionEvent {
	return &CommissionEvent{
		ID:            uuid.NewV4().String(),
		ApplicationID: applicationID,
		ActorID:       actorID,
		Action:        action,
		CreatedAt:     time.Now().UTC(),
	}
}

// CommissionEventsFilter narrows an audit listing or export
type CommissionEventsFilter struct {
	Query     string
	Action    string
	NewStatus string
	ActorID   string
	From      *time.Time
	To        *time.Time
}

// CSVHeader is the column order used by the audit CSV export
func (CommissionEvent) CSVHeader() []string {
	return []string{"created_at", "application_id", "actor_email", "action", "old_status", "new_status", "comment", "ip", "user_agent"}
}

// CSVRow renders the event in CSVHeader order
func (e *CommissionEvent) CSVRow() []string {
	return []string{
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.ApplicationID,
		e.ActorEmail,
		e.Action,
		e.OldStatus,
		e.NewStatus,
		e.Comment,
		e.IP,
		e.UserAgent,
	}
}

// ProvisioningEvent is one audited provisioner action against a staff account
type ProvisioningEvent struct {
	ID        string    `db:"id"         json:"id"`
	ActorID   string    `db:"actor_id"   json:"actor_id"`
	TargetID  string    `db:"target_id"  json:"target_id"`
	Action    string    `db:"action"     json:"action"`
	Meta      EventMeta `db:"meta"       json:"meta,omitempty"`
	IP        string    `db:"ip"         json:"ip,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewProvisioningEvent builds a provisioning audit event
func NewProvisioningEvent(actorID, targetID, action string) *ProvisioningEvent {
	return &ProvisioningEvent{
		ID:        uuid.NewV4().String(),
		ActorID:   actorID,
		TargetID:  targetID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
}

// MaskEmail hides the local part of an email address except its first
// character, for audit metadata
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return email
	}
	local := email[:at]
	return local[:1] + "***" + email[at:]
}

// MaskPhone hides all but the last two digits of a phone number
func MaskPhone(phone string) string {
	digitsSeen := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digitsSeen++
		}
	}
	if digitsSeen <= 2 {
		return phone
	}

	toMask := digitsSeen - 2
	masked := make([]rune, 0, len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) && toMask > 0 {
			masked = append(masked, '*')
			toMask--
			continue
		}
		masked = append(masked, r)
	}
	return string(masked)
}

// MaskMeta applies PII masking to well-known metadata keys before the
// event is persisted
func MaskMeta(meta EventMeta) EventMeta {
	if meta == nil {
		return nil
	}
	masked := make(EventMeta, len(meta))
	for k, v := range meta {
		switch k {
		case "email", "target_email":
			masked[k] = MaskEmail(v)
		case "phone", "target_phone":
			masked[k] = MaskPhone(v)
		default:
			masked[k] = v
		}
	}
	return masked
}

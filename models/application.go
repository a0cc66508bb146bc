package models

import (
	"database/sql/driver"
	"encoding/json"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	uuid "github.com/satori/go.uuid"
)

// A list of reusable decision states across the application
const (
	StatusPending  = ""
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Bounds on the submitted form, matching what the portal form can produce
const (
	maxFormFields     = 50
	maxFormValueBytes = 4000
)

var assessmentLinkRE = regexp.MustCompile(`^https?://`)

// FormData holds the labelled answers of a submitted application form.
// It is stored as a jsonb column.
type FormData map[string]string

// Value implements driver.Valuer for jsonb storage
func (f FormData) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for jsonb storage
func (f *FormData) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	}
	return apierrors.ErrUnableToParseJSON
}

// Application represents a user's submitted form together with its review status
type Application struct {
	ID             string     `db:"id"              json:"id"`
	PublicNo       int64      `db:"public_no"       json:"public_no"`
	UserID         string     `db:"user_id"         json:"user_id"`
	FormData       FormData   `db:"form_data"       json:"form_data"`
	Status         string     `db:"status"          json:"status"`
	StatusComment  string     `db:"status_comment"  json:"status_comment,omitempty"`
	DecidedBy      string     `db:"decided_by"      json:"decided_by,omitempty"`
	DecidedAt      *time.Time `db:"decided_at"      json:"decided_at,omitempty"`
	AssessmentLink string     `db:"assessment_link" json:"assessment_link,omitempty"`
	CreatedAt      time.Time  `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"      json:"updated_at"`

	// Applicant is populated on commission listings, never stored
	Applicant *Identity `db:"-" json:"applicant,omitempty"`
}

// IsApproved reports whether the application holds a canonical approval.
// Callers must not re-introduce prefix matching on legacy labels here; the
// normaliser is the only place that understands them.
func (a *Application) IsApproved() bool {
	return a.Status == StatusApproved
}

// IsDecided reports whether the commission has decided the application
func (a *Application) IsDecided() bool {
	return a.Status == StatusApproved || a.Status == StatusRejected
}

// NormaliseStatus canonicalises a commission decision label. The legacy
// portal stored free-text labels, including Russian ones, so anything that
// reads or writes a status goes through this mapping. Unrecognised values
// collapse to pending.
func NormaliseStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch {
	case s == StatusApproved || s == StatusRejected:
		return s
	case strings.HasPrefix(s, "одобр"), strings.HasPrefix(s, "принят"),
		strings.HasPrefix(s, "approve"), strings.HasPrefix(s, "accept"):
		return StatusApproved
	case strings.HasPrefix(s, "отклон"), strings.HasPrefix(s, "reject"),
		strings.HasPrefix(s, "declin"), strings.HasPrefix(s, "отказ"):
		return StatusRejected
	default:
		return StatusPending
	}
}

// CreateApplication manages the creation of an application from a reader
func CreateApplication(reader io.Reader) (*Application, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var application Application
	if err := json.Unmarshal(b, &application); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	application.ID = uuid.NewV4().String()
	application.Status = StatusPending
	application.StatusComment = ""
	application.DecidedBy = ""
	application.DecidedAt = nil
	return &application, nil
}

// NewApplication builds an application for the given user from decoded form data
func NewApplication(userID string, form FormData) *Application {
	return &Application{
		ID:       uuid.NewV4().String(),
		UserID:   userID,
		FormData: form,
		Status:   StatusPending,
	}
}

// ValidateFormData checks the submitted form for emptiness and size bounds
func ValidateFormData(form FormData) error {
	if len(form) == 0 || len(form) > maxFormFields {
		return apierrors.ErrInvalidFormData
	}
	for _, v := range form {
		if len(v) > maxFormValueBytes {
			return apierrors.ErrInvalidFormData
		}
	}
	return nil
}

// AssessmentLinkUpdate is the payload for an applicant attaching a link
type AssessmentLinkUpdate struct {
	AssessmentLink string `json:"assessment_link"`
}

// CreateAssessmentLinkUpdate manages the creation of an assessment link update from a reader
func CreateAssessmentLinkUpdate(reader io.Reader) (*AssessmentLinkUpdate, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var update AssessmentLinkUpdate
	if err := json.Unmarshal(b, &update); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	update.AssessmentLink = strings.TrimSpace(update.AssessmentLink)
	return &update, nil
}

// Validate checks the attached link scheme
func (u *AssessmentLinkUpdate) Validate() error {
	if !assessmentLinkRE.MatchString(u.AssessmentLink) {
		return apierrors.ErrInvalidAssessmentLink
	}
	return nil
}

// Decision is the payload for a commission member deciding an application
type Decision struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// CreateDecision manages the creation of a decision from a reader. The
// status is canonicalised on the way in, so legacy labels are accepted.
func CreateDecision(reader io.Reader) (*Decision, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, apierrors.ErrUnableToReadMessage
	}

	var decision Decision
	if err := json.Unmarshal(b, &decision); err != nil {
		return nil, apierrors.ErrUnableToParseJSON
	}

	decision.Status = NormaliseStatus(decision.Status)
	decision.Comment = strings.TrimSpace(decision.Comment)
	return &decision, nil
}

// Validate checks that the decision is one the commission can make.
// Rejections must carry a reason.
func (d *Decision) Validate() error {
	if d.Status != StatusApproved && d.Status != StatusRejected {
		return apierrors.ErrInvalidDecision
	}
	if d.Status == StatusRejected && d.Comment == "" {
		return apierrors.ErrRejectionReasonRequired
	}
	return nil
}

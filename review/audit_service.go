package review

import (
	"context"
	"fmt"

	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/store"
)

// AuditService defines the interface for recording the commission and
// provisioning audit trails
//
//go:generate moq -out mock/audit_service.go -pkg mock . AuditService
type AuditService interface {
	RecordDecisionEvent(ctx context.Context, actor *models.Identity, application *models.Application, oldStatus string, decision *models.Decision, meta *RequestMeta) error
	RecordViewEvent(ctx context.Context, actor *models.Identity, applicationID string, meta *RequestMeta) error
	RecordAttachEvent(ctx context.Context, actor *models.Identity, applicationID, attachment string, meta *RequestMeta) error
	RecordProvisioningEvent(ctx context.Context, actorID, targetID, action string, meta models.EventMeta, ip string) error
}

// auditService provides methods for recording audit events
type auditService struct {
	DataStore store.DataStore
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(dataStore store.DataStore) AuditService {
	return &auditService{
		DataStore: dataStore,
	}
}

// recordCommissionEvent masks event metadata and persists the event
func (a *auditService) recordCommissionEvent(ctx context.Context, event *models.CommissionEvent) error {
	event.Meta = models.MaskMeta(event.Meta)

	if err := a.DataStore.Backend.CreateCommissionEvent(ctx, event); err != nil {
		return fmt.Errorf("recordCommissionEvent: failed to create audit event in store: %w", err)
	}

	return nil
}

// RecordDecisionEvent records the commission deciding an application
func (a *auditService) RecordDecisionEvent(ctx context.Context, actor *models.Identity, application *models.Application, oldStatus string, decision *models.Decision, meta *RequestMeta) error {
	event := models.NewCommissionEvent(application.ID, actor.ID, models.AuditActionDecision)
	event.OldStatus = oldStatus
	event.NewStatus = decision.Status
	event.Comment = decision.Comment
	applyRequestMeta(event, meta)

	return a.recordCommissionEvent(ctx, event)
}

// RecordViewEvent records a commission member viewing an application
func (a *auditService) RecordViewEvent(ctx context.Context, actor *models.Identity, applicationID string, meta *RequestMeta) error {
	event := models.NewCommissionEvent(applicationID, actor.ID, models.AuditActionView)
	applyRequestMeta(event, meta)

	return a.recordCommissionEvent(ctx, event)
}

// RecordAttachEvent records an applicant attaching a link to their application
func (a *auditService) RecordAttachEvent(ctx context.Context, actor *models.Identity, applicationID, attachment string, meta *RequestMeta) error {
	event := models.NewCommissionEvent(applicationID, actor.ID, models.AuditActionAttach)
	event.Meta = models.EventMeta{"attachment": attachment}
	applyRequestMeta(event, meta)

	return a.recordCommissionEvent(ctx, event)
}

// RecordProvisioningEvent records a provisioner action against a staff account
func (a *auditService) RecordProvisioningEvent(ctx context.Context, actorID, targetID, action string, meta models.EventMeta, ip string) error {
	event := models.NewProvisioningEvent(actorID, targetID, action)
	event.Meta = models.MaskMeta(meta)
	event.IP = ip

	if err := a.DataStore.Backend.CreateProvisioningEvent(ctx, event); err != nil {
		return fmt.Errorf("recordProvisioningEvent: failed to create audit event in store: %w", err)
	}

	return nil
}

func applyRequestMeta(event *models.CommissionEvent, meta *RequestMeta) {
	if meta == nil {
		return
	}
	event.IP = meta.IP
	event.UserAgent = meta.UserAgent
	if meta.SessionID != "" {
		if event.Meta == nil {
			event.Meta = models.EventMeta{}
		}
		event.Meta["session_id"] = meta.SessionID
	}
}

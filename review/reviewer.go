package review

import (
	"context"
	"time"

	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/store"
	"github.com/ONSdigital/dp-applications-api/url"
	"github.com/ONSdigital/log.go/v2/log"
)

//go:generate moq -out mock/reviewer_deps.go -pkg mock . MailSender LifecycleEvents

// MailSender sends one notification to an applicant
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LifecycleEvents queues application lifecycle messages
type LifecycleEvents interface {
	ApplicationDecided(ctx context.Context, application *models.Application) error
}

// RequestMeta carries the request details the audit trail records
type RequestMeta struct {
	IP        string
	UserAgent string
	SessionID string
}

// Reviewer orchestrates commission decisions over applications
type Reviewer struct {
	DataStore    store.DataStore
	StateMachine *StateMachine
	Audit        AuditService
	Mail         MailSender
	Events       LifecycleEvents
	URLBuilder   *url.Builder
}

// NewReviewer creates a reviewer around the given collaborators
func NewReviewer(dataStore store.DataStore, stateMachine *StateMachine, audit AuditService, mailSender MailSender, events LifecycleEvents, urlBuilder *url.Builder) *Reviewer {
	return &Reviewer{
		DataStore:    dataStore,
		StateMachine: stateMachine,
		Audit:        audit,
		Mail:         mailSender,
		Events:       events,
		URLBuilder:   urlBuilder,
	}
}

// Decide applies a commission decision to an application and returns the
// updated application
func (r *Reviewer) Decide(ctx context.Context, applicationID string, decision *models.Decision, actor *models.Identity, meta *RequestMeta) (*models.Application, error) {
	if err := decision.Validate(); err != nil {
		return nil, err
	}

	application, err := r.DataStore.Backend.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err := r.StateMachine.Transition(ctx, r, application, decision, actor, meta); err != nil {
		return nil, err
	}

	return application, nil
}

// ApproveApplication is the enter action for the approved state
func ApproveApplication(r *Reviewer, ctx context.Context, application *models.Application, decision *models.Decision, actor *models.Identity, meta *RequestMeta) error {
	return r.applyDecision(ctx, application, decision, actor, meta)
}

// RejectApplication is the enter action for the rejected state
func RejectApplication(r *Reviewer, ctx context.Context, application *models.Application, decision *models.Decision, actor *models.Identity, meta *RequestMeta) error {
	return r.applyDecision(ctx, application, decision, actor, meta)
}

// applyDecision persists the decision, records the audit event, then
// notifies the applicant and queues the lifecycle event. A failed audit
// write fails the request; notification failures are logged and the
// decision stands.
func (r *Reviewer) applyDecision(ctx context.Context, application *models.Application, decision *models.Decision, actor *models.Identity, meta *RequestMeta) error {
	logData := log.Data{"application_id": application.ID, "status": decision.Status}

	oldStatus := application.Status
	if err := r.DataStore.Backend.UpdateApplicationDecision(ctx, application.ID, decision, actor.ID); err != nil {
		return err
	}

	now := time.Now().UTC()
	application.Status = decision.Status
	application.StatusComment = decision.Comment
	application.DecidedBy = actor.ID
	application.DecidedAt = &now

	if err := r.Audit.RecordDecisionEvent(ctx, actor, application, oldStatus, decision, meta); err != nil {
		return err
	}

	r.notifyApplicant(ctx, application, logData)

	if err := r.Events.ApplicationDecided(ctx, application); err != nil {
		log.Error(ctx, "failed to queue application decided event", err, logData)
	}

	return nil
}

// RecordView notes a commission member viewing an application. A failed
// audit write is logged rather than failing the read.
func (r *Reviewer) RecordView(ctx context.Context, actor *models.Identity, applicationID string, meta *RequestMeta) {
	if err := r.Audit.RecordViewEvent(ctx, actor, applicationID, meta); err != nil {
		log.Error(ctx, "failed to record application view", err, log.Data{"application_id": applicationID})
	}
}

// RecordAttach notes an applicant attaching supporting work to their
// application
func (r *Reviewer) RecordAttach(ctx context.Context, actor *models.Identity, applicationID, attachment string, meta *RequestMeta) {
	if err := r.Audit.RecordAttachEvent(ctx, actor, applicationID, attachment, meta); err != nil {
		log.Error(ctx, "failed to record attachment access", err, log.Data{"application_id": applicationID})
	}
}

// PublishAssessment moves an assessment from created to published, making
// it visible to approved applicants
func (r *Reviewer) PublishAssessment(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	assessment, err := r.DataStore.Backend.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	if err := AssessmentTransition(assessment.State, models.PublishedState); err != nil {
		return nil, err
	}

	assessment.State = models.PublishedState
	if err := r.DataStore.Backend.UpdateAssessment(ctx, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

// notifyApplicant emails the applicant about the decision. Approval mail
// carries the qualifying test link.
func (r *Reviewer) notifyApplicant(ctx context.Context, application *models.Application, logData log.Data) {
	user, err := r.DataStore.Backend.GetUser(ctx, application.UserID)
	if err != nil {
		log.Error(ctx, "failed to load applicant for decision notification", err, logData)
		return
	}

	var subject, body string
	switch application.Status {
	case models.StatusApproved:
		subject, body = mail.ApprovedMessage(user.FullName, r.assessmentURL(ctx, application))
	case models.StatusRejected:
		subject, body = mail.RejectedMessage(user.FullName, application.StatusComment, r.URLBuilder.BuildApplicationURL(application.ID))
	default:
		return
	}

	if err := r.Mail.Send(ctx, user.Email, subject, body); err != nil {
		log.Error(ctx, "failed to send decision notification", err, logData)
	}
}

// assessmentURL prefers a link attached to the application, then the
// latest published assessment, then the portal itself
func (r *Reviewer) assessmentURL(ctx context.Context, application *models.Application) string {
	if application.AssessmentLink != "" {
		return application.AssessmentLink
	}

	assessment, err := r.DataStore.Backend.GetLatestPublishedAssessment(ctx)
	if err != nil {
		log.Warn(ctx, "no published assessment for approval notification", log.Data{"application_id": application.ID})
		return r.URLBuilder.GetWebsiteURL().String()
	}

	return r.URLBuilder.BuildAssessmentURL(assessment.ID)
}

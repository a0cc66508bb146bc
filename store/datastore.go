package store

import (
	"context"
	"time"

	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

// DataStore provides a datastore.Storer interface used to store, retrieve,
// remove or update portal resources
type DataStore struct {
	Backend Storer
}

//go:generate moq -out datastoretest/datastore.go -pkg storetest . Storer
//go:generate moq -out datastoretest/postgres.go -pkg storetest . PostgresDB

// Storer represents basic data access for the applications portal
type Storer interface {
	// users and staff accounts
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, ID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID string) error
	HasAdminUser(ctx context.Context) (bool, error)
	GetStaffUsers(ctx context.Context) ([]models.User, error)
	UpdateStaffUser(ctx context.Context, userID string, update *models.StaffUpdate, passwordHash string) error
	ExtendStaffAccess(ctx context.Context, userID string, until time.Time) error
	DeactivateStaffUser(ctx context.Context, userID string) error
	UpsertProvisioner(ctx context.Context, user *models.User) error

	// applications
	CreateApplication(ctx context.Context, application *models.Application) error
	GetApplication(ctx context.Context, ID string) (*models.Application, error)
	GetApplicationByUser(ctx context.Context, userID string) (*models.Application, error)
	GetApplications(ctx context.Context, offset, limit int) ([]models.Application, int, error)
	UpdateApplicationDecision(ctx context.Context, applicationID string, decision *models.Decision, decidedBy string) error
	UpdateAssessmentLink(ctx context.Context, applicationID, link string) error

	// assessments
	CreateAssessment(ctx context.Context, assessment *models.Assessment) error
	GetAssessment(ctx context.Context, ID string) (*models.Assessment, error)
	GetAssessments(ctx context.Context, includeUnpublished bool, offset, limit int) ([]models.Assessment, int, error)
	GetLatestPublishedAssessment(ctx context.Context) (*models.Assessment, error)
	UpdateAssessment(ctx context.Context, assessment *models.Assessment) error
	DeleteAssessment(ctx context.Context, ID string) error

	// attempts
	CreateAttempt(ctx context.Context, attempt *models.AssessmentAttempt) error
	GetAttempt(ctx context.Context, ID string) (*models.AssessmentAttempt, error)
	GetUserAttempt(ctx context.Context, assessmentID, userID string) (*models.AssessmentAttempt, error)
	GetAttempts(ctx context.Context, assessmentID string, offset, limit int) ([]models.AssessmentAttempt, int, error)
	GetLatestUserAttempt(ctx context.Context, userID string) (*models.AssessmentAttempt, error)
	CompleteAttempt(ctx context.Context, attemptID string, answers models.AnswerSet, score, total int, finishedAt time.Time) error

	// sessions
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	TouchSession(ctx context.Context, ID string) error
	DeleteSession(ctx context.Context, ID string) error
	DeleteUserSessions(ctx context.Context, userID, exceptID string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// password resets
	CreatePasswordReset(ctx context.Context, reset *models.PasswordReset) error
	GetPasswordResetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordReset, error)
	MarkPasswordResetUsed(ctx context.Context, ID string) error
	DeleteExpiredPasswordResets(ctx context.Context) (int64, error)

	// audit
	CreateCommissionEvent(ctx context.Context, event *models.CommissionEvent) error
	GetCommissionEvents(ctx context.Context, filter models.CommissionEventsFilter, offset, limit int) ([]models.CommissionEvent, int, error)
	CountCommissionEventsByAction(ctx context.Context, filter models.CommissionEventsFilter) (map[string]int, error)
	StreamCommissionEvents(ctx context.Context, filter models.CommissionEventsFilter, fn func(*models.CommissionEvent) error) error
	CreateProvisioningEvent(ctx context.Context, event *models.ProvisioningEvent) error
	GetProvisioningEvents(ctx context.Context, limit int) ([]models.ProvisioningEvent, error)
}

// PostgresDB represents all the required methods from postgres
type PostgresDB interface {
	Storer
	Close(ctx context.Context) error
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

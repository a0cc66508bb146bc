package steps

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/mail/mailtest"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/service"
	serviceMock "github.com/ONSdigital/dp-applications-api/service/mock"
	"github.com/ONSdigital/dp-applications-api/store"
	storeMock "github.com/ONSdigital/dp-applications-api/store/datastoretest"
	componenttest "github.com/ONSdigital/dp-component-test"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/ONSdigital/dp-kafka/v4/kafkatest"
)

// ApplicationComponent runs the whole service against an in-memory datastore,
// a mocked kafka producer and a mocked mail sender, so scenarios exercise the
// real router, middleware and handlers end to end.
type ApplicationComponent struct {
	ErrorFeature   componenttest.ErrorFeature
	svc            *service.Service
	errorChan      chan error
	Config         *config.Configuration
	HTTPServer     *http.Server
	ServiceRunning bool

	Mailer         *mailtest.SenderMock
	producedEvents chan kafka.BytesMessage

	mu                   sync.Mutex
	users                map[string]*models.User
	userIDsByEmail       map[string]string
	sessions             map[string]*models.Session
	applications         map[string]*models.Application
	applicationIDsByUser map[string]string
	commissionEvents     []*models.CommissionEvent
	nextPublicNo         int64
}

func NewApplicationComponent() (*ApplicationComponent, error) {
	f := &ApplicationComponent{
		HTTPServer:     &http.Server{},
		errorChan:      make(chan error),
		producedEvents: make(chan kafka.BytesMessage, 10),
		ServiceRunning: false,
	}

	var err error

	f.Config, err = config.Get()
	if err != nil {
		return nil, err
	}

	f.resetBackend()

	initMock := &serviceMock.InitialiserMock{
		DoGetHTTPServerFunc:    f.DoGetHTTPServer,
		DoGetHealthCheckFunc:   f.DoGetHealthcheckOk,
		DoGetKafkaProducerFunc: f.DoGetKafkaProducerOk,
		DoGetPostgresDBFunc:    f.DoGetPostgresDB,
		DoGetMailerFunc:        f.DoGetMailer,
	}

	f.svc = service.New(f.Config, service.NewServiceList(initMock))

	return f, nil
}

func (f *ApplicationComponent) Reset() *ApplicationComponent {
	f.resetBackend()
	for len(f.producedEvents) > 0 {
		<-f.producedEvents
	}
	return f
}

func (f *ApplicationComponent) resetBackend() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users = make(map[string]*models.User)
	f.userIDsByEmail = make(map[string]string)
	f.sessions = make(map[string]*models.Session)
	f.applications = make(map[string]*models.Application)
	f.applicationIDsByUser = make(map[string]string)
	f.commissionEvents = nil
	f.nextPublicNo = 1

	f.Mailer = &mailtest.SenderMock{
		SendFunc: func(ctx context.Context, to, subject, body string) error {
			return nil
		},
		CheckerFunc: func(ctx context.Context, state *healthcheck.CheckState) error {
			return nil
		},
	}
}

func (f *ApplicationComponent) Close() error {
	if f.svc != nil && f.ServiceRunning {
		if err := f.svc.Close(context.Background()); err != nil {
			return err
		}
		f.ServiceRunning = false
	}
	return nil
}

func (f *ApplicationComponent) InitialiseService() (http.Handler, error) {
	if !f.ServiceRunning {
		if err := f.svc.Run(context.Background(), "1", "", "", f.errorChan); err != nil {
			return nil, err
		}
		f.ServiceRunning = true
	}
	return f.HTTPServer.Handler, nil
}

func funcClose(ctx context.Context) error {
	return nil
}

func (f *ApplicationComponent) DoGetHealthcheckOk(cfg *config.Configuration, buildTime, gitCommit, version string) (service.HealthChecker, error) {
	return &serviceMock.HealthCheckerMock{
		AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
		StartFunc:    func(ctx context.Context) {},
		StopFunc:     func() {},
		HandlerFunc: func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}, nil
}

func (f *ApplicationComponent) DoGetHTTPServer(bindAddr string, router http.Handler) service.HTTPServer {
	f.HTTPServer.Addr = bindAddr
	f.HTTPServer.Handler = router
	return f.HTTPServer
}

func (f *ApplicationComponent) DoGetKafkaProducerOk(ctx context.Context, cfg *config.Configuration, topic string) (kafka.IProducer, error) {
	return &kafkatest.IProducerMock{
		ChannelsFunc: func() *kafka.ProducerChannels {
			return &kafka.ProducerChannels{Output: f.producedEvents}
		},
		LogErrorsFunc: func(ctx context.Context) {},
		CloseFunc:     funcClose,
	}, nil
}

func (f *ApplicationComponent) DoGetMailer(cfg config.MailConfig) mail.Sender {
	return f.Mailer
}

// DoGetPostgresDB returns a datastore backed by the component's in-memory
// state, covering the subset of the store the scenarios reach.
func (f *ApplicationComponent) DoGetPostgresDB(ctx context.Context, cfg *config.Configuration) (store.PostgresDB, error) {
	return &storeMock.PostgresDBMock{
		CloseFunc: funcClose,
		CheckerFunc: func(ctx context.Context, state *healthcheck.CheckState) error {
			return nil
		},

		CreateUserFunc:      f.createUser,
		GetUserFunc:         f.getUser,
		GetUserByEmailFunc:  f.getUserByEmail,
		HasAdminUserFunc:    f.hasAdminUser,
		UpdateLastLoginFunc: f.updateLastLogin,

		CreateSessionFunc:         f.createSession,
		GetSessionByTokenHashFunc: f.getSessionByTokenHash,
		TouchSessionFunc:          f.touchSession,
		DeleteSessionFunc:         f.deleteSession,

		CreateApplicationFunc:         f.createApplication,
		GetApplicationFunc:            f.getApplication,
		GetApplicationByUserFunc:      f.getApplicationByUser,
		GetApplicationsFunc:           f.getApplications,
		UpdateApplicationDecisionFunc: f.updateApplicationDecision,

		CreateCommissionEventFunc: f.createCommissionEvent,
		GetLatestPublishedAssessmentFunc: func(ctx context.Context) (*models.Assessment, error) {
			return nil, apierrors.ErrAssessmentNotFound
		},
	}, nil
}

func (f *ApplicationComponent) createUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	email := models.NormaliseEmail(user.Email)
	if _, ok := f.userIDsByEmail[email]; ok {
		return apierrors.ErrEmailAlreadyRegistered
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	stored := *user
	f.users[user.ID] = &stored
	f.userIDsByEmail[email] = user.ID
	return nil
}

func (f *ApplicationComponent) getUser(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, apierrors.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (f *ApplicationComponent) getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	id, ok := f.userIDsByEmail[models.NormaliseEmail(email)]
	f.mu.Unlock()
	if !ok {
		return nil, apierrors.ErrUserNotFound
	}
	return f.getUser(ctx, id)
}

func (f *ApplicationComponent) hasAdminUser(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Role == models.RoleAdmin && user.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *ApplicationComponent) updateLastLogin(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return apierrors.ErrUserNotFound
	}
	now := time.Now().UTC()
	user.LastLoginAt = &now
	return nil
}

func (f *ApplicationComponent) createSession(ctx context.Context, session *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *session
	f.sessions[session.TokenHash] = &stored
	return nil
}

func (f *ApplicationComponent) getSessionByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[tokenHash]
	if !ok {
		return nil, apierrors.ErrSessionNotFound
	}
	found := *session
	return &found, nil
}

func (f *ApplicationComponent) touchSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, session := range f.sessions {
		if session.ID == sessionID {
			session.LastSeenAt = time.Now().UTC()
			return nil
		}
	}
	return apierrors.ErrSessionNotFound
}

func (f *ApplicationComponent) deleteSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for tokenHash, session := range f.sessions {
		if session.ID == sessionID {
			delete(f.sessions, tokenHash)
			return nil
		}
	}
	return apierrors.ErrSessionNotFound
}

func (f *ApplicationComponent) createApplication(ctx context.Context, application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.applicationIDsByUser[application.UserID]; ok {
		return apierrors.ErrApplicationAlreadyExists
	}

	// mirror the columns the insert backfills
	application.PublicNo = f.nextPublicNo
	f.nextPublicNo++
	now := time.Now().UTC()
	application.CreatedAt = now
	application.UpdatedAt = now

	stored := *application
	f.applications[application.ID] = &stored
	f.applicationIDsByUser[application.UserID] = application.ID
	return nil
}

func (f *ApplicationComponent) getApplication(ctx context.Context, id string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	application, ok := f.applications[id]
	if !ok {
		return nil, apierrors.ErrApplicationNotFound
	}
	found := *application
	return &found, nil
}

func (f *ApplicationComponent) getApplicationByUser(ctx context.Context, userID string) (*models.Application, error) {
	f.mu.Lock()
	id, ok := f.applicationIDsByUser[userID]
	f.mu.Unlock()
	if !ok {
		return nil, apierrors.ErrApplicationNotFound
	}
	return f.getApplication(ctx, id)
}

func (f *ApplicationComponent) getApplications(ctx context.Context, offset, limit int) ([]models.Application, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]models.Application, 0, len(f.applications))
	for _, application := range f.applications {
		items = append(items, *application)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PublicNo < items[j].PublicNo })

	totalCount := len(items)
	if offset > totalCount {
		offset = totalCount
	}
	end := offset + limit
	if end > totalCount {
		end = totalCount
	}
	return items[offset:end], totalCount, nil
}

func (f *ApplicationComponent) updateApplicationDecision(ctx context.Context, applicationID string, decision *models.Decision, decidedBy string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	application, ok := f.applications[applicationID]
	if !ok {
		return apierrors.ErrApplicationNotFound
	}
	now := time.Now().UTC()
	application.Status = decision.Status
	application.StatusComment = decision.Comment
	application.DecidedBy = decidedBy
	application.DecidedAt = &now
	application.UpdatedAt = now
	return nil
}

func (f *ApplicationComponent) createCommissionEvent(ctx context.Context, event *models.CommissionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *event
	f.commissionEvents = append(f.commissionEvents, &stored)
	return nil
}

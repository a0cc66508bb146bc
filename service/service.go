package service

import (
	"context"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/ONSdigital/dp-applications-api/api"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-applications-api/events"
	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/review"
	"github.com/ONSdigital/dp-applications-api/schema"
	"github.com/ONSdigital/dp-applications-api/store"
	"github.com/ONSdigital/dp-applications-api/url"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Service contains all the configs, server and clients to run the applications API
type Service struct {
	config         *config.Configuration
	serviceList    *ExternalServiceList
	postgresDB     store.PostgresDB
	eventsProducer kafka.IProducer
	mailer         mail.Sender
	server         HTTPServer
	healthCheck    HealthChecker
	api            *api.ApplicationsAPI
	reaperCancel   context.CancelFunc
}

// New creates a new service
func New(cfg *config.Configuration, serviceList *ExternalServiceList) *Service {
	svc := &Service{
		config:      cfg,
		serviceList: serviceList,
	}
	return svc
}

// SetServer sets the http server for a service
func (svc *Service) SetServer(server HTTPServer) {
	svc.server = server
}

// SetHealthCheck sets the healthchecker for a service
func (svc *Service) SetHealthCheck(healthCheck HealthChecker) {
	svc.healthCheck = healthCheck
}

// SetEventsProducer sets the application events kafka producer for a service
func (svc *Service) SetEventsProducer(producer kafka.IProducer) {
	svc.eventsProducer = producer
}

// SetMailer sets the mail sender for a service
func (svc *Service) SetMailer(mailer mail.Sender) {
	svc.mailer = mailer
}

// SetPostgresDB sets the postgres datastore for a service
func (svc *Service) SetPostgresDB(postgresDB store.PostgresDB) {
	svc.postgresDB = postgresDB
}

// Run the service
func (svc *Service) Run(ctx context.Context, buildTime, gitCommit, version string, svcErrors chan error) (err error) {
	// Get postgres connection with a bootstrapped schema
	svc.postgresDB, err = svc.serviceList.GetPostgresDB(ctx, svc.config)
	if err != nil {
		log.Error(ctx, "could not obtain postgres connection", err)
		return err
	}
	dataStore := store.DataStore{Backend: svc.postgresDB}

	// Get the application events kafka producer
	svc.eventsProducer, err = svc.serviceList.GetKafkaProducer(ctx, svc.config)
	if err != nil {
		log.Fatal(ctx, "could not obtain application events producer", err)
		return err
	}
	svc.eventsProducer.LogErrors(ctx)

	lifecycleEvents := &events.LifecycleEvents{
		Producer:   events.NewProducerAdapter(svc.eventsProducer),
		Marshaller: schema.ApplicationLifecycleEvent,
	}

	// Get the mail sender for applicant notifications
	svc.mailer = svc.serviceList.GetMailer(svc.config.MailConfig)

	// Get HealthCheck
	svc.healthCheck, err = svc.serviceList.GetHealthCheck(svc.config, buildTime, gitCommit, version)
	if err != nil {
		log.Fatal(ctx, "could not instantiate healthcheck", err)
		return err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return errors.Wrap(err, "unable to register checkers")
	}

	// Get HTTP router and server with middleware
	r := mux.NewRouter()
	if svc.config.OtelEnabled {
		r.Use(otelmux.Middleware(svc.config.OTServiceName))
	}
	authenticator := auth.New(svc.postgresDB, svc.config.SessionCookieName)
	m := svc.createMiddleware(authenticator)
	if svc.config.OtelEnabled {
		svc.server = svc.serviceList.GetHTTPServer(svc.config.BindAddr, otelhttp.NewHandler(m.Then(r), "/"))
	} else {
		svc.server = svc.serviceList.GetHTTPServer(svc.config.BindAddr, m.Then(r))
	}

	// Create the applications API
	urlBuilder := url.NewBuilder(svc.config.WebsiteURL)
	auditService := review.NewAuditService(dataStore)
	reviewer := review.NewReviewer(dataStore, review.NewDecisionStateMachine(), auditService, svc.mailer, lifecycleEvents, urlBuilder)
	svc.api = api.Setup(ctx, svc.config, r, dataStore, urlBuilder, reviewer, auditService, svc.mailer, lifecycleEvents)

	svc.healthCheck.Start(ctx)

	// Reap expired sessions and reset tokens in the background
	if svc.config.ReaperInterval > 0 {
		var reaperCtx context.Context
		reaperCtx, svc.reaperCancel = context.WithCancel(ctx)
		go svc.reapExpired(reaperCtx)
	}

	// Run the http server in a new go-routine
	go func() {
		if err := svc.server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return nil
}

// createMiddleware creates an Alice middleware chain of handlers in front of
// the router, resolving session credentials into a caller identity
func (svc *Service) createMiddleware(authenticator *auth.Authenticator) alice.Chain {
	// healthcheck
	healthcheckHandler := newMiddleware(svc.healthCheck.Handler, "/health")
	middleware := alice.New(healthcheckHandler)

	// identity on requests carrying a bearer token or session cookie
	middleware = middleware.Append(authenticator.Identity())

	return middleware
}

// newMiddleware creates a new http.Handler to intercept /health requests.
func newMiddleware(healthcheckHandler func(http.ResponseWriter, *http.Request), path string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == "GET" && req.URL.Path == path {
				healthcheckHandler(w, req)
				return
			}

			h.ServeHTTP(w, req)
		})
	}
}

// reapExpired periodically removes expired sessions and password reset tokens
// so abandoned credentials do not accumulate in the datastore
func (svc *Service) reapExpired(ctx context.Context) {
	ticker := time.NewTicker(svc.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions, err := svc.postgresDB.DeleteExpiredSessions(ctx)
			if err != nil {
				log.Error(ctx, "failed to delete expired sessions", err)
			}
			resets, err := svc.postgresDB.DeleteExpiredPasswordResets(ctx)
			if err != nil {
				log.Error(ctx, "failed to delete expired password resets", err)
			}
			if sessions > 0 || resets > 0 {
				log.Info(ctx, "reaped expired credentials", log.Data{"sessions": sessions, "password_resets": resets})
			}
		}
	}
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	shutdownContext, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	// Gracefully shutdown the application closing any open resources.
	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.serviceList.HealthCheck {
			svc.healthCheck.Stop()
		}

		// stop reaping expired credentials
		if svc.reaperCancel != nil {
			svc.reaperCancel()
		}

		// stop any incoming requests
		if err := svc.server.Shutdown(shutdownContext); err != nil {
			log.Error(shutdownContext, "failed to shutdown http server", err)
			hasShutdownError = true
		}

		// Close postgres (if it exists)
		if svc.serviceList.PostgresDB {
			if err := svc.postgresDB.Close(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to close postgres connection", err)
				hasShutdownError = true
			}
		}

		// Close the application events kafka producer (if it exists)
		if svc.serviceList.ApplicationEventsProducer {
			if err := svc.eventsProducer.Close(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to close application events producer", err)
				hasShutdownError = true
			}
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-shutdownContext.Done()

	// timeout expired
	if shutdownContext.Err() == context.DeadlineExceeded {
		log.Error(shutdownContext, "shutdown timed out", shutdownContext.Err())
		return shutdownContext.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(shutdownContext, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(shutdownContext, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the provided clients to the health check object
func (svc *Service) registerCheckers(ctx context.Context) (err error) {
	hasErrors := false

	if err = svc.healthCheck.AddCheck("Kafka Application Events Producer", svc.eventsProducer.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for kafka application events producer", err)
	}

	if err = svc.healthCheck.AddCheck("Postgres DB", svc.postgresDB.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for postgres db", err)
	}

	if err = svc.healthCheck.AddCheck("Mail Sender", svc.mailer.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for mail sender", err)
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}

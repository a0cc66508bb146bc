package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/postgres"
	"github.com/ONSdigital/dp-applications-api/store"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
)

// ExternalServiceList holds the initialiser and initialisation state of external services.
type ExternalServiceList struct {
	ApplicationEventsProducer bool
	HealthCheck               bool
	Mailer                    bool
	PostgresDB                bool
	Init                      Initialiser
}

// NewServiceList creates a new service list with the provided initialiser
func NewServiceList(initialiser Initialiser) *ExternalServiceList {
	return &ExternalServiceList{
		Init: initialiser,
	}
}

// Init implements the Initialiser interface to initialise dependencies
type Init struct{}

// GetHTTPServer creates an http server
func (e *ExternalServiceList) GetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	s := e.Init.DoGetHTTPServer(bindAddr, router)
	return s
}

// GetHealthCheck creates a healthcheck with versionInfo and sets the HealthCheck flag to true
func (e *ExternalServiceList) GetHealthCheck(cfg *config.Configuration, buildTime, gitCommit, version string) (HealthChecker, error) {
	hc, err := e.Init.DoGetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	e.HealthCheck = true
	return hc, nil
}

// GetKafkaProducer returns a kafka producer for the application events topic
func (e *ExternalServiceList) GetKafkaProducer(ctx context.Context, cfg *config.Configuration) (kafka.IProducer, error) {
	producer, err := e.Init.DoGetKafkaProducer(ctx, cfg, cfg.ApplicationEventsTopic)
	if err != nil {
		return nil, err
	}
	e.ApplicationEventsProducer = true
	return producer, nil
}

// GetPostgresDB returns a postgres connection with its schema bootstrapped
func (e *ExternalServiceList) GetPostgresDB(ctx context.Context, cfg *config.Configuration) (store.PostgresDB, error) {
	postgresDB, err := e.Init.DoGetPostgresDB(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to initialise postgres", err)
		return nil, err
	}
	e.PostgresDB = true
	return postgresDB, nil
}

// GetMailer returns the configured mail sender and sets the Mailer flag to true
func (e *ExternalServiceList) GetMailer(cfg config.MailConfig) mail.Sender {
	sender := e.Init.DoGetMailer(cfg)
	e.Mailer = true
	return sender
}

// DoGetHTTPServer creates an HTTP Server with the provided bind address and router
func (e *Init) DoGetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// DoGetHealthCheck creates a healthcheck with versionInfo
func (e *Init) DoGetHealthCheck(cfg *config.Configuration, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

// DoGetKafkaProducer creates a new kafka producer on the given topic
func (e *Init) DoGetKafkaProducer(ctx context.Context, cfg *config.Configuration, topic string) (kafka.IProducer, error) {
	pConfig := &kafka.ProducerConfig{
		BrokerAddrs:       cfg.KafkaAddr,
		Topic:             topic,
		MinBrokersHealthy: &cfg.KafkaProducerMinBrokersHealthy,
		KafkaVersion:      &cfg.KafkaVersion,
	}
	if cfg.KafkaSecProtocol == config.KafkaTLSProtocol {
		pConfig.SecurityConfig = kafka.GetSecurityConfig(
			cfg.KafkaSecCACerts,
			cfg.KafkaSecClientCert,
			cfg.KafkaSecClientKey,
			cfg.KafkaSecSkipVerify,
		)
	}
	return kafka.NewProducer(ctx, pConfig)
}

// DoGetPostgresDB connects to postgres and brings the schema up to date
func (e *Init) DoGetPostgresDB(ctx context.Context, cfg *config.Configuration) (store.PostgresDB, error) {
	postgresDB := &postgres.Postgres{PostgresConfig: cfg.PostgresConfig}
	if err := postgresDB.Init(ctx); err != nil {
		return nil, err
	}
	if err := postgresDB.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return postgresDB, nil
}

// DoGetMailer returns an SMTP sender, or a no-op sender when mail is not configured
func (e *Init) DoGetMailer(cfg config.MailConfig) mail.Sender {
	return mail.New(cfg)
}

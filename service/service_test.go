package service_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/mail/mailtest"
	"github.com/ONSdigital/dp-applications-api/service"
	serviceMock "github.com/ONSdigital/dp-applications-api/service/mock"
	"github.com/ONSdigital/dp-applications-api/store"
	storeMock "github.com/ONSdigital/dp-applications-api/store/datastoretest"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/ONSdigital/dp-kafka/v4/kafkatest"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	ctx           = context.Background()
	testBuildTime = "BuildTime"
	testGitCommit = "GitCommit"
	testVersion   = "Version"
)

var (
	errPostgres    = errors.New("postgres error")
	errKafka       = errors.New("kafka producer error")
	errServer      = errors.New("HTTP Server error")
	errHealthcheck = errors.New("healthCheck error")
)

var funcDoGetHealthcheckErr = func(*config.Configuration, string, string, string) (service.HealthChecker, error) {
	return nil, errHealthcheck
}

var funcDoGetPostgresDBErr = func(context.Context, *config.Configuration) (store.PostgresDB, error) {
	return nil, errPostgres
}

var funcDoGetKafkaProducerErr = func(context.Context, *config.Configuration, string) (kafka.IProducer, error) {
	return nil, errKafka
}

var funcDoGetMailer = func(config.MailConfig) mail.Sender {
	return &mailtest.SenderMock{
		SendFunc: func(context.Context, string, string, string) error { return nil },
		CheckerFunc: func(_ context.Context, state *healthcheck.CheckState) error {
			return state.Update(healthcheck.StatusOK, "mail is ok", 0)
		},
	}
}

func TestRun(t *testing.T) {
	Convey("Having a set of mocked dependencies", t, func() {
		cfg, err := config.Get()
		So(err, ShouldBeNil)

		hcMock := &serviceMock.HealthCheckerMock{
			AddCheckFunc: func(string, healthcheck.Checker) error { return nil },
			StartFunc:    func(context.Context) {},
		}

		serverWg := &sync.WaitGroup{}
		serverMock := &serviceMock.HTTPServerMock{
			ListenAndServeFunc: func() error {
				serverWg.Done()
				return nil
			},
		}

		failingServerMock := &serviceMock.HTTPServerMock{
			ListenAndServeFunc: func() error {
				serverWg.Done()
				return errServer
			},
		}

		funcDoGetHealthcheckOk := func(*config.Configuration, string, string, string) (service.HealthChecker, error) {
			return hcMock, nil
		}

		funcDoGetHTTPServer := func(string, http.Handler) service.HTTPServer {
			return serverMock
		}

		funcDoGetFailingHTTPServer := func(string, http.Handler) service.HTTPServer {
			return failingServerMock
		}

		funcDoGetPostgresDBOk := func(context.Context, *config.Configuration) (store.PostgresDB, error) {
			return &storeMock.PostgresDBMock{}, nil
		}

		funcDoGetKafkaProducerOk := func(context.Context, *config.Configuration, string) (kafka.IProducer, error) {
			return &kafkatest.IProducerMock{
				ChannelsFunc: func() *kafka.ProducerChannels {
					return &kafka.ProducerChannels{}
				},
				LogErrorsFunc: func(context.Context) {
					// Do nothing
				},
			}, nil
		}

		Convey("Given that initialising postgres returns an error", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetPostgresDBFunc: funcDoGetPostgresDBErr,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			svc := service.New(cfg, svcList)
			err := svc.Run(ctx, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails with the same error and the flag is not set. No further initialisations are attempted", func() {
				So(err, ShouldResemble, errPostgres)
				So(svcList.PostgresDB, ShouldBeFalse)
				So(svcList.ApplicationEventsProducer, ShouldBeFalse)
				So(svcList.Mailer, ShouldBeFalse)
				So(svcList.HealthCheck, ShouldBeFalse)
			})
		})

		Convey("Given that initialising the kafka producer returns an error", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetPostgresDBFunc:    funcDoGetPostgresDBOk,
				DoGetKafkaProducerFunc: funcDoGetKafkaProducerErr,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			svc := service.New(cfg, svcList)
			err := svc.Run(ctx, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails with the same error and the flag is not set. No further initialisations are attempted", func() {
				So(err, ShouldResemble, errKafka)
				So(svcList.PostgresDB, ShouldBeTrue)
				So(svcList.ApplicationEventsProducer, ShouldBeFalse)
				So(svcList.Mailer, ShouldBeFalse)
				So(svcList.HealthCheck, ShouldBeFalse)
			})
		})

		Convey("Given that initialising healthcheck returns an error", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetPostgresDBFunc:    funcDoGetPostgresDBOk,
				DoGetKafkaProducerFunc: funcDoGetKafkaProducerOk,
				DoGetMailerFunc:        funcDoGetMailer,
				DoGetHealthCheckFunc:   funcDoGetHealthcheckErr,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			svc := service.New(cfg, svcList)
			err := svc.Run(ctx, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails with the same error and the flag is not set", func() {
				So(err, ShouldResemble, errHealthcheck)
				So(svcList.PostgresDB, ShouldBeTrue)
				So(svcList.ApplicationEventsProducer, ShouldBeTrue)
				So(svcList.Mailer, ShouldBeTrue)
				So(svcList.HealthCheck, ShouldBeFalse)
			})
		})

		Convey("Given that Checkers cannot be registered", func() {
			errAddCheckFail := errors.New("Error(s) registering checkers for healthcheck")
			hcMockAddFail := &serviceMock.HealthCheckerMock{
				AddCheckFunc: func(string, healthcheck.Checker) error { return errAddCheckFail },
				StartFunc:    func(context.Context) {},
			}

			initMock := &serviceMock.InitialiserMock{
				DoGetPostgresDBFunc:    funcDoGetPostgresDBOk,
				DoGetKafkaProducerFunc: funcDoGetKafkaProducerOk,
				DoGetMailerFunc:        funcDoGetMailer,
				DoGetHealthCheckFunc: func(*config.Configuration, string, string, string) (service.HealthChecker, error) {
					return hcMockAddFail, nil
				},
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			svc := service.New(cfg, svcList)
			err := svc.Run(ctx, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run fails, but all checks try to register", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldResemble, fmt.Sprintf("unable to register checkers: %s", errAddCheckFail.Error()))
				So(svcList.PostgresDB, ShouldBeTrue)
				So(svcList.ApplicationEventsProducer, ShouldBeTrue)
				So(svcList.Mailer, ShouldBeTrue)
				So(svcList.HealthCheck, ShouldBeTrue)
				So(len(hcMockAddFail.AddCheckCalls()), ShouldEqual, 3)
				So(hcMockAddFail.AddCheckCalls()[0].Name, ShouldResemble, "Kafka Application Events Producer")
				So(hcMockAddFail.AddCheckCalls()[1].Name, ShouldResemble, "Postgres DB")
				So(hcMockAddFail.AddCheckCalls()[2].Name, ShouldResemble, "Mail Sender")
			})
		})

		Convey("Given that all dependencies are successfully initialised", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetPostgresDBFunc:    funcDoGetPostgresDBOk,
				DoGetKafkaProducerFunc: funcDoGetKafkaProducerOk,
				DoGetMailerFunc:        funcDoGetMailer,
				DoGetHealthCheckFunc:   funcDoGetHealthcheckOk,
				DoGetHTTPServerFunc:    funcDoGetHTTPServer,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			svc := service.New(cfg, svcList)
			serverWg.Add(1)
			err := svc.Run(ctx, testBuildTime, testGitCommit, testVersion, svcErrors)

			Convey("Then service Run succeeds and all the flags are set", func() {
				So(err, ShouldBeNil)
				So(svcList.PostgresDB, ShouldBeTrue)
				So(svcList.ApplicationEventsProducer, ShouldBeTrue)
				So(svcList.Mailer, ShouldBeTrue)
				So(svcList.HealthCheck, ShouldBeTrue)
			})

			Convey("The checkers are registered and the healthcheck and http server started", func() {
				So(len(hcMock.AddCheckCalls()), ShouldEqual, 3)
				So(hcMock.AddCheckCalls()[0].Name, ShouldResemble, "Kafka Application Events Producer")
				So(hcMock.AddCheckCalls()[1].Name, ShouldResemble, "Postgres DB")
				So(hcMock.AddCheckCalls()[2].Name, ShouldResemble, "Mail Sender")
				So(len(initMock.DoGetHTTPServerCalls()), ShouldEqual, 1)
				So(initMock.DoGetHTTPServerCalls()[0].BindAddr, ShouldEqual, ":25700")
				So(len(initMock.DoGetKafkaProducerCalls()), ShouldEqual, 1)
				So(initMock.DoGetKafkaProducerCalls()[0].Topic, ShouldEqual, "application-events")
				So(len(hcMock.StartCalls()), ShouldEqual, 1)
				serverWg.Wait() // Wait for HTTP server go-routine to finish
				So(len(serverMock.ListenAndServeCalls()), ShouldEqual, 1)
			})
		})

		Convey("Given that all dependencies are successfully initialised but the http server fails", func() {
			initMock := &serviceMock.InitialiserMock{
				DoGetPostgresDBFunc:    funcDoGetPostgresDBOk,
				DoGetKafkaProducerFunc: funcDoGetKafkaProducerOk,
				DoGetMailerFunc:        funcDoGetMailer,
				DoGetHealthCheckFunc:   funcDoGetHealthcheckOk,
				DoGetHTTPServerFunc:    funcDoGetFailingHTTPServer,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			svc := service.New(cfg, svcList)
			serverWg.Add(1)
			err := svc.Run(ctx, testBuildTime, testGitCommit, testVersion, svcErrors)
			So(err, ShouldBeNil)

			Convey("Then the error is returned in the error channel", func() {
				sErr := <-svcErrors
				So(sErr.Error(), ShouldResemble, fmt.Sprintf("failure in http listen and serve: %s", errServer.Error()))
				So(len(failingServerMock.ListenAndServeCalls()), ShouldEqual, 1)
			})
		})

		Convey("Given a service with a short reaper interval", func() {
			originalInterval := cfg.ReaperInterval
			cfg.ReaperInterval = 20 * time.Millisecond
			defer func() { cfg.ReaperInterval = originalInterval }()

			postgresMock := &storeMock.PostgresDBMock{
				DeleteExpiredSessionsFunc: func(context.Context) (int64, error) {
					return 2, nil
				},
				DeleteExpiredPasswordResetsFunc: func(context.Context) (int64, error) {
					return 1, nil
				},
			}

			initMock := &serviceMock.InitialiserMock{
				DoGetPostgresDBFunc: func(context.Context, *config.Configuration) (store.PostgresDB, error) {
					return postgresMock, nil
				},
				DoGetKafkaProducerFunc: funcDoGetKafkaProducerOk,
				DoGetMailerFunc:        funcDoGetMailer,
				DoGetHealthCheckFunc:   funcDoGetHealthcheckOk,
				DoGetHTTPServerFunc:    funcDoGetHTTPServer,
			}
			svcErrors := make(chan error, 1)
			svcList := service.NewServiceList(initMock)
			svc := service.New(cfg, svcList)
			serverWg.Add(1)
			err := svc.Run(ctx, testBuildTime, testGitCommit, testVersion, svcErrors)
			So(err, ShouldBeNil)

			Convey("Then expired sessions and reset tokens are periodically deleted", func() {
				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					if len(postgresMock.DeleteExpiredSessionsCalls()) > 0 && len(postgresMock.DeleteExpiredPasswordResetsCalls()) > 0 {
						break
					}
					time.Sleep(5 * time.Millisecond)
				}
				So(len(postgresMock.DeleteExpiredSessionsCalls()), ShouldBeGreaterThan, 0)
				So(len(postgresMock.DeleteExpiredPasswordResetsCalls()), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestClose(t *testing.T) {
	Convey("Having a correctly initialised service", t, func() {
		cfg, err := config.Get()
		So(err, ShouldBeNil)

		hcStopped := false
		serverStopped := false

		// healthcheck Stop does not depend on any other service being closed/stopped
		hcMock := &serviceMock.HealthCheckerMock{
			AddCheckFunc: func(string, healthcheck.Checker) error { return nil },
			StartFunc:    func(context.Context) {},
			StopFunc:     func() { hcStopped = true },
		}

		// server Shutdown will fail if healthcheck is not stopped
		serverMock := &serviceMock.HTTPServerMock{
			ListenAndServeFunc: func() error { return nil },
			ShutdownFunc: func(context.Context) error {
				if !hcStopped {
					return errors.New("Server was stopped before healthcheck")
				}
				serverStopped = true
				return nil
			},
		}

		funcClose := func(context.Context) error {
			if !hcStopped {
				return errors.New("Dependency was closed before healthcheck")
			}
			if !serverStopped {
				return errors.New("Dependency was closed before http server")
			}
			return nil
		}

		// postgres will fail if healthcheck or http server are not stopped
		postgresMock := &storeMock.PostgresDBMock{
			CloseFunc: funcClose,
		}

		// Kafka producer will fail if healthcheck or http server are not stopped
		kafkaProducerMock := &kafkatest.IProducerMock{
			ChannelsFunc: func() *kafka.ProducerChannels {
				return &kafka.ProducerChannels{}
			},
			CloseFunc: funcClose,
			LogErrorsFunc: func(context.Context) {
				// Do nothing
			},
		}

		Convey("Closing a service does not close uninitialised dependencies", func() {
			svcList := service.NewServiceList(nil)
			svcList.HealthCheck = true
			svc := service.New(cfg, svcList)
			svc.SetServer(serverMock)
			svc.SetHealthCheck(hcMock)
			err = svc.Close(context.Background())
			So(err, ShouldBeNil)
			So(len(hcMock.StopCalls()), ShouldEqual, 1)
			So(len(serverMock.ShutdownCalls()), ShouldEqual, 1)
		})

		fullSvcList := &service.ExternalServiceList{
			ApplicationEventsProducer: true,
			HealthCheck:               true,
			Mailer:                    true,
			PostgresDB:                true,
			Init:                      nil,
		}

		Convey("Closing the service results in all the initialised dependencies being closed in the expected order", func() {
			svc := service.New(cfg, fullSvcList)
			svc.SetServer(serverMock)
			svc.SetHealthCheck(hcMock)
			svc.SetEventsProducer(kafkaProducerMock)
			svc.SetPostgresDB(postgresMock)
			err = svc.Close(context.Background())
			So(err, ShouldBeNil)
			So(len(hcMock.StopCalls()), ShouldEqual, 1)
			So(len(serverMock.ShutdownCalls()), ShouldEqual, 1)
			So(len(postgresMock.CloseCalls()), ShouldEqual, 1)
			So(len(kafkaProducerMock.CloseCalls()), ShouldEqual, 1)
		})

		Convey("If services fail to stop, the Close operation tries to close all dependencies and returns an error", func() {
			failingServerMock := &serviceMock.HTTPServerMock{
				ListenAndServeFunc: func() error { return nil },
				ShutdownFunc: func(context.Context) error {
					return errors.New("Failed to stop http server")
				},
			}

			svc := service.New(cfg, fullSvcList)
			svc.SetServer(failingServerMock)
			svc.SetHealthCheck(hcMock)
			svc.SetEventsProducer(kafkaProducerMock)
			svc.SetPostgresDB(postgresMock)
			err = svc.Close(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldResemble, "failed to shutdown gracefully")
			So(len(hcMock.StopCalls()), ShouldEqual, 1)
			So(len(failingServerMock.ShutdownCalls()), ShouldEqual, 1)
			So(len(postgresMock.CloseCalls()), ShouldEqual, 1)
			So(len(kafkaProducerMock.CloseCalls()), ShouldEqual, 1)
		})
	})
}

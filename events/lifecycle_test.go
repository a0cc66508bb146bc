package events

import (
	"context"
	"testing"
	"time"

	"github.com/ONSdigital/dp-applications-api/mocks"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/schema"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

var testContext = context.Background()

var submittedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testApplication() *models.Application {
	return &models.Application{
		ID:        "app-1",
		PublicNo:  41,
		UserID:    "user-1",
		CreatedAt: submittedAt,
	}
}

func TestLifecycleEventsValidationErrors(t *testing.T) {
	producerMock := &mocks.KafkaProducerMock{
		OutputFunc: func() chan kafka.BytesMessage {
			return nil
		},
	}

	marshallerMock := &mocks.MarshallerMock{
		MarshalFunc: func(s interface{}) ([]byte, error) {
			return nil, nil
		},
	}

	lifecycle := LifecycleEvents{
		Producer:   producerMock,
		Marshaller: marshallerMock,
	}

	Convey("Given a nil application", t, func() {
		Convey("When a submitted event is queued", func() {
			err := lifecycle.ApplicationSubmitted(testContext, nil, "applicant@example.com")

			Convey("Then the expected error is returned", func() {
				So(err, ShouldResemble, applicationEmptyErr)
			})

			Convey("And marshaller is never called", func() {
				So(len(marshallerMock.MarshalCalls()), ShouldEqual, 0)
			})

			Convey("And producer is never called", func() {
				So(len(producerMock.OutputCalls()), ShouldEqual, 0)
			})
		})
	})

	Convey("Given an application without an ID", t, func() {
		Convey("When a decided event is queued", func() {
			err := lifecycle.ApplicationDecided(testContext, &models.Application{})

			Convey("Then the expected error is returned", func() {
				So(err, ShouldResemble, applicationEmptyErr)
			})
		})
	})

	Convey("Given an application the commission has not decided", t, func() {
		Convey("When a decided event is queued", func() {
			err := lifecycle.ApplicationDecided(testContext, testApplication())

			Convey("Then the expected error is returned", func() {
				So(err, ShouldResemble, decisionEmptyErr)
			})

			Convey("And marshaller is never called", func() {
				So(len(marshallerMock.MarshalCalls()), ShouldEqual, 0)
			})
		})
	})
}

func TestLifecycleEventsMarshalError(t *testing.T) {
	Convey("When marshal returns an error", t, func() {
		mockErr := errors.New("no bytes for you")

		producerMock := &mocks.KafkaProducerMock{
			OutputFunc: func() chan kafka.BytesMessage {
				return nil
			},
		}

		marshallerMock := &mocks.MarshallerMock{
			MarshalFunc: func(s interface{}) ([]byte, error) {
				return nil, mockErr
			},
		}

		lifecycle := LifecycleEvents{
			Producer:   producerMock,
			Marshaller: marshallerMock,
		}

		err := lifecycle.ApplicationSubmitted(testContext, testApplication(), "applicant@example.com")

		Convey("Then the expected error is returned", func() {
			So(err, ShouldResemble, newEventError(mockErr, avroMarshalErr))
		})

		Convey("And marshal is called one time", func() {
			So(len(marshallerMock.MarshalCalls()), ShouldEqual, 1)
		})

		Convey("And kafka producer is never called", func() {
			So(len(producerMock.OutputCalls()), ShouldEqual, 0)
		})
	})
}

func TestLifecycleEventsApplicationSubmitted(t *testing.T) {
	Convey("Given a newly submitted application", t, func() {
		output := make(chan kafka.BytesMessage, 1)
		avroBytes := []byte("hello world")

		producerMock := &mocks.KafkaProducerMock{
			OutputFunc: func() chan kafka.BytesMessage {
				return output
			},
		}

		marshallerMock := &mocks.MarshallerMock{
			MarshalFunc: func(s interface{}) ([]byte, error) {
				return avroBytes, nil
			},
		}

		lifecycle := LifecycleEvents{
			Producer:   producerMock,
			Marshaller: marshallerMock,
		}

		Convey("When the submitted event is queued no error is returned", func() {
			err := lifecycle.ApplicationSubmitted(testContext, testApplication(), "applicant@example.com")
			So(err, ShouldBeNil)

			Convey("Then marshal is called with the expected event", func() {
				So(len(marshallerMock.MarshalCalls()), ShouldEqual, 1)
				So(marshallerMock.MarshalCalls()[0].S, ShouldResemble, LifecycleEvent{
					EventType:     TypeApplicationSubmitted,
					ApplicationID: "app-1",
					PublicNo:      41,
					UserID:        "user-1",
					Email:         "applicant@example.com",
					OccurredAt:    "2024-05-01T12:00:00Z",
				})
			})

			Convey("And producer output is called one time with the expected message", func() {
				So(len(producerMock.OutputCalls()), ShouldEqual, 1)

				producerOut := <-output
				So(producerOut.Value, ShouldResemble, avroBytes)
				So(producerOut.Context, ShouldEqual, testContext)
			})
		})
	})
}

func TestLifecycleEventsApplicationDecided(t *testing.T) {
	Convey("Given a decided application", t, func() {
		output := make(chan kafka.BytesMessage, 1)
		avroBytes := []byte("hello world")

		producerMock := &mocks.KafkaProducerMock{
			OutputFunc: func() chan kafka.BytesMessage {
				return output
			},
		}

		marshallerMock := &mocks.MarshallerMock{
			MarshalFunc: func(s interface{}) ([]byte, error) {
				return avroBytes, nil
			},
		}

		lifecycle := LifecycleEvents{
			Producer:   producerMock,
			Marshaller: marshallerMock,
		}

		decidedAt := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
		application := testApplication()
		application.Status = models.StatusApproved
		application.DecidedBy = "admin-1"
		application.DecidedAt = &decidedAt

		Convey("When the decided event is queued no error is returned", func() {
			err := lifecycle.ApplicationDecided(testContext, application)
			So(err, ShouldBeNil)

			Convey("Then marshal is called with the expected event", func() {
				So(len(marshallerMock.MarshalCalls()), ShouldEqual, 1)
				So(marshallerMock.MarshalCalls()[0].S, ShouldResemble, LifecycleEvent{
					EventType:     TypeApplicationDecided,
					ApplicationID: "app-1",
					PublicNo:      41,
					UserID:        "user-1",
					Status:        models.StatusApproved,
					DecidedBy:     "admin-1",
					OccurredAt:    "2024-05-02T09:30:00Z",
				})
			})

			Convey("And producer output is called one time", func() {
				So(len(producerMock.OutputCalls()), ShouldEqual, 1)
				producerOut := <-output
				So(producerOut.Value, ShouldResemble, avroBytes)
			})
		})
	})
}

func TestLifecycleEventMatchesAvroSchema(t *testing.T) {
	Convey("Given the real avro marshaller", t, func() {
		event := LifecycleEvent{
			EventType:     TypeApplicationDecided,
			ApplicationID: "app-1",
			PublicNo:      41,
			UserID:        "user-1",
			Email:         "applicant@example.com",
			Status:        models.StatusRejected,
			DecidedBy:     "admin-1",
			OccurredAt:    "2024-05-02T09:30:00Z",
		}

		Convey("Then the event round trips through the schema", func() {
			avroBytes, err := schema.ApplicationLifecycleEvent.Marshal(event)
			So(err, ShouldBeNil)

			var got LifecycleEvent
			err = schema.ApplicationLifecycleEvent.Unmarshal(avroBytes, &got)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, event)
		})
	})
}

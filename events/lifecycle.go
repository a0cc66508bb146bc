package events

import (
	"context"
	"time"

	"github.com/ONSdigital/dp-applications-api/models"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/ONSdigital/log.go/v2/log"
)

// The event types carried on the application lifecycle topic
const (
	TypeApplicationSubmitted = "application-submitted"
	TypeApplicationDecided   = "application-decided"
)

// LifecycleEvent is the avro encoded message announcing a change to an application
type LifecycleEvent struct {
	EventType     string `avro:"event_type"`
	ApplicationID string `avro:"application_id"`
	PublicNo      int64  `avro:"public_no"`
	UserID        string `avro:"user_id"`
	Email         string `avro:"email"`
	Status        string `avro:"status"`
	DecidedBy     string `avro:"decided_by"`
	OccurredAt    string `avro:"occurred_at"`
}

// LifecycleEvents queues application lifecycle messages onto the events topic
type LifecycleEvents struct {
	Producer   KafkaProducer
	Marshaller Marshaller
}

// ApplicationSubmitted queues an event announcing a newly submitted application
func (le *LifecycleEvents) ApplicationSubmitted(ctx context.Context, application *models.Application, email string) error {
	if application == nil || application.ID == "" {
		return applicationEmptyErr
	}

	event := LifecycleEvent{
		EventType:     TypeApplicationSubmitted,
		ApplicationID: application.ID,
		PublicNo:      application.PublicNo,
		UserID:        application.UserID,
		Email:         email,
		OccurredAt:    application.CreatedAt.UTC().Format(time.RFC3339),
	}

	log.Info(ctx, "queueing application submitted event", log.Data{
		"application_id": application.ID,
		"public_no":      application.PublicNo,
	})

	return le.send(ctx, event)
}

// ApplicationDecided queues an event announcing a commission decision
func (le *LifecycleEvents) ApplicationDecided(ctx context.Context, application *models.Application) error {
	if application == nil || application.ID == "" {
		return applicationEmptyErr
	}
	if !application.IsDecided() {
		return decisionEmptyErr
	}

	event := LifecycleEvent{
		EventType:     TypeApplicationDecided,
		ApplicationID: application.ID,
		PublicNo:      application.PublicNo,
		UserID:        application.UserID,
		Status:        application.Status,
		DecidedBy:     application.DecidedBy,
	}
	if application.DecidedAt != nil {
		event.OccurredAt = application.DecidedAt.UTC().Format(time.RFC3339)
	}

	log.Info(ctx, "queueing application decided event", log.Data{
		"application_id": application.ID,
		"status":         application.Status,
	})

	return le.send(ctx, event)
}

func (le *LifecycleEvents) send(ctx context.Context, event LifecycleEvent) error {
	avroBytes, err := le.Marshaller.Marshal(event)
	if err != nil {
		return newEventError(err, avroMarshalErr)
	}

	le.Producer.Output() <- kafka.BytesMessage{Value: avroBytes, Context: ctx}

	return nil
}

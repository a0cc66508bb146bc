package events

import (
	kafka "github.com/ONSdigital/dp-kafka/v4"
)

//go:generate moq -out ../mocks/lifecycle_events_mocks.go -pkg mocks . KafkaProducer Marshaller

// KafkaProducer sends an outbound kafka message
type KafkaProducer interface {
	Output() chan kafka.BytesMessage
}

// Marshaller marshals the event into avro format
type Marshaller interface {
	Marshal(s interface{}) ([]byte, error)
}

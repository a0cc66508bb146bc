package mocks

import (
	"context"
	"sync"

	"github.com/ONSdigital/dp-applications-api/models"
)

// SubmittedCall records one queued application submitted event
type SubmittedCall struct {
	Application *models.Application
	Email       string
}

// LifecycleEventsMock captures queued lifecycle events for assertions
type LifecycleEventsMock struct {
	SubmitErr error

	mu        sync.Mutex
	submitted []SubmittedCall
}

func (m *LifecycleEventsMock) ApplicationSubmitted(ctx context.Context, application *models.Application, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted = append(m.submitted, SubmittedCall{Application: application, Email: email})
	return m.SubmitErr
}

// SubmittedCalls returns the events queued so far
func (m *LifecycleEventsMock) SubmittedCalls() []SubmittedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitted
}

package models

// A list of reusable states across the application
const (
	CreatedState   = "created"
	PublishedState = "published"
	StartedState   = "started"
	CompletedState = "completed"
)

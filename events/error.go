package events

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	avroMarshalErr = "error while attempting to marshal application lifecycle event to avro bytes"

	applicationEmptyErr = newEventError(nil, "failed to queue lifecycle event as application was empty")
	decisionEmptyErr    = newEventError(nil, "failed to queue decision event as no decision was recorded")
)

// EventError is a wrapper for errors returned from LifecycleEvents
type EventError struct {
	originalErr error
	message     string
	args        []interface{}
}

func newEventError(err error, message string, args ...interface{}) EventError {
	return EventError{
		originalErr: err,
		message:     message,
		args:        args,
	}
}

// Error return details about the error
func (evErr EventError) Error() string {
	if evErr.originalErr == nil {
		return errors.Errorf(evErr.message, evErr.args...).Error()
	}
	return errors.Wrap(evErr.originalErr, fmt.Sprintf(evErr.message, evErr.args...)).Error()
}

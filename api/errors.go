package api

import (
	"context"
	"fmt"
	"net/http"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/log.go/v2/log"
	validation "github.com/go-ozzo/ozzo-validation/v3"
	"github.com/pkg/errors"
)

var (
	// errors that map to a HTTP 404 response
	notFound = map[error]bool{
		errs.ErrUserNotFound:           true,
		errs.ErrApplicationNotFound:    true,
		errs.ErrAssessmentNotFound:     true,
		errs.ErrAssessmentNotPublished: true,
		errs.ErrAttemptNotFound:        true,
		errs.ErrSessionNotFound:        true,
	}

	// errors that map to a HTTP 400 response
	badRequest = map[error]bool{
		errs.ErrUnableToReadMessage:     true,
		errs.ErrUnableToParseJSON:       true,
		errs.ErrInvalidFormData:         true,
		errs.ErrInvalidAssessmentLink:   true,
		errs.ErrInvalidDecision:         true,
		errs.ErrRejectionReasonRequired: true,
		errs.ErrInvalidAssessment:       true,
		errs.ErrInvalidQuestions:        true,
		errs.ErrIncompleteAnswers:       true,
		errs.ErrNothingToUpdate:         true,
		errs.ErrInvalidQueryParameter:   true,
		errs.ErrPasswordTooShort:        true,
		errs.ErrPasswordIncorrect:       true,
		errs.ErrAssessmentStateInvalid:  true,
	}

	// errors that map to a HTTP 401 response
	unauthorised = map[error]bool{
		errs.ErrUnauthorised:         true,
		errs.ErrNoAuthHeader:         true,
		errs.ErrInvalidCredentials:   true,
		errs.ErrAccountDeactivated:   true,
		errs.ErrAccountAccessExpired: true,
	}

	// errors that map to a HTTP 403 response
	forbidden = map[error]bool{
		errs.ErrForbidden:              true,
		errs.ErrInvalidInviteCode:      true,
		errs.ErrApplicationNotApproved: true,
		errs.ErrPasswordChangeRequired: true,
	}

	// errors that map to a HTTP 409 response
	conflict = map[error]bool{
		errs.ErrEmailAlreadyRegistered:     true,
		errs.ErrApplicationAlreadyExists:   true,
		errs.ErrAttemptAlreadyExists:       true,
		errs.ErrAttemptAlreadyCompleted:    true,
		errs.ErrAttemptDeadlinePassed:      true,
		errs.ErrAssessmentAlreadyPublished: true,
	}

	// errors that map to a HTTP 410 response
	gone = map[error]bool{
		errs.ErrResetTokenInvalid: true,
	}
)

// handleAPIErr maps an error to its HTTP response and logs it
func handleAPIErr(ctx context.Context, err error, w http.ResponseWriter, data log.Data) {
	if data == nil {
		data = log.Data{}
	}

	status := apiErrStatusCode(err)
	if status == http.StatusInternalServerError && !errors.Is(err, errs.ErrInternalServer) {
		err = fmt.Errorf("%s: %w", errs.ErrInternalServer.Error(), err)
	}

	log.Error(ctx, "request unsuccessful", err, data)
	http.Error(w, err.Error(), status)
}

func apiErrStatusCode(err error) int {
	var validationErrs validation.Errors

	var status int
	switch {
	case notFound[err]:
		status = http.StatusNotFound
	case badRequest[err]:
		status = http.StatusBadRequest
	case unauthorised[err]:
		status = http.StatusUnauthorized
	case forbidden[err]:
		status = http.StatusForbidden
	case conflict[err]:
		status = http.StatusConflict
	case gone[err]:
		status = http.StatusGone
	case errors.As(err, &validationErrs):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	return status
}

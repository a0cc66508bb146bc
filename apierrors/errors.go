package apierrors

import "errors"

// Error messages for the Applications API
var (
	ErrUserNotFound               = errors.New("user not found")
	ErrEmailAlreadyRegistered     = errors.New("email address already registered")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrAccountDeactivated         = errors.New("account has been deactivated")
	ErrAccountAccessExpired       = errors.New("account access has expired")
	ErrPasswordTooShort           = errors.New("password does not meet the minimum length")
	ErrPasswordIncorrect          = errors.New("current password is incorrect")
	ErrPasswordChangeRequired     = errors.New("password must be changed before continuing")
	ErrInvalidInviteCode          = errors.New("invalid invite code")
	ErrResetTokenInvalid          = errors.New("password reset token is invalid or has expired")
	ErrApplicationNotFound        = errors.New("application not found")
	ErrApplicationAlreadyExists   = errors.New("an application has already been submitted for this user")
	ErrInvalidFormData            = errors.New("form data is empty or exceeds the permitted size")
	ErrInvalidAssessmentLink      = errors.New("assessment link must start with http:// or https://")
	ErrInvalidDecision            = errors.New("decision must be approved or rejected")
	ErrRejectionReasonRequired    = errors.New("a reason is required when rejecting an application")
	ErrDecisionNotAllowed         = errors.New("decision is not allowed from the application's current status")
	ErrAssessmentNotFound         = errors.New("assessment not found")
	ErrAssessmentNotPublished     = errors.New("assessment is not published")
	ErrAssessmentAlreadyPublished = errors.New("assessment has already been published")
	ErrAssessmentStateInvalid     = errors.New("assessment state does not allow this change")
	ErrInvalidAssessment          = errors.New("assessment requires a title and a non-negative duration")
	ErrInvalidQuestions           = errors.New("assessment must contain at least one valid question")
	ErrApplicationNotApproved     = errors.New("application has not been approved")
	ErrAttemptNotFound            = errors.New("attempt not found")
	ErrAttemptAlreadyExists       = errors.New("an attempt has already been made for this assessment")
	ErrAttemptAlreadyCompleted    = errors.New("attempt has already been completed")
	ErrAttemptDeadlinePassed      = errors.New("attempt deadline has passed")
	ErrIncompleteAnswers          = errors.New("answers must be provided for every question")
	ErrNothingToUpdate            = errors.New("update contains no changes")
	ErrSessionNotFound            = errors.New("session not found")
	ErrUnauthorised               = errors.New("unauthorised access to API")
	ErrForbidden                  = errors.New("forbidden")
	ErrNoAuthHeader               = errors.New("no authentication credentials provided")
	ErrInvalidQueryParameter      = errors.New("invalid query parameter")
	ErrUnableToReadMessage        = errors.New("failed to read message body")
	ErrUnableToParseJSON          = errors.New("failed to parse json body")
	ErrInternalServer             = errors.New("internal error")
)

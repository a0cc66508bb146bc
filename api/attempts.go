package api

import (
	"net/http"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/models"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// attemptStartResponse carries the started attempt together with the
// questions to answer
type attemptStartResponse struct {
	*models.AssessmentAttempt
	Questions []models.QuestionView `json:"questions"`
}

// startAttempt opens the caller's single attempt at a published assessment.
// The deadline is fixed here from the assessment's duration.
func (api *ApplicationsAPI) startAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	assessmentID := vars["assessment_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"assessment_id": assessmentID, "user_id": caller.ID}

	if err := api.requireApprovedApplicant(ctx, caller.ID); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	assessment, err := api.dataStore.Backend.GetAssessment(ctx, assessmentID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	if !assessment.IsPublished() {
		handleAPIErr(ctx, errs.ErrAssessmentNotPublished, w, logData)
		return
	}

	attempt := models.NewAttempt(assessment, caller.ID, time.Now().UTC())
	if err := api.dataStore.Backend.CreateAttempt(ctx, attempt); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	log.Info(ctx, "attempt started", log.Data{"attempt_id": attempt.ID, "deadline_at": attempt.DeadlineAt})
	writeJSON(ctx, w, http.StatusCreated, attemptStartResponse{
		AssessmentAttempt: attempt,
		Questions:         assessment.QuestionViews(),
	}, logData)
}

// completeAttempt scores the submitted answers and closes the attempt. An
// attempt can be completed once, before its deadline.
func (api *ApplicationsAPI) completeAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	assessmentID := vars["assessment_id"]
	attemptID := vars["attempt_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"assessment_id": assessmentID, "attempt_id": attemptID, "user_id": caller.ID}
	defer dphttp.DrainBody(r)

	submission, err := models.CreateAttemptSubmission(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	attempt, err := api.dataStore.Backend.GetAttempt(ctx, attemptID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	if attempt.UserID != caller.ID || attempt.AssessmentID != assessmentID {
		handleAPIErr(ctx, errs.ErrAttemptNotFound, w, logData)
		return
	}
	if attempt.IsCompleted() {
		handleAPIErr(ctx, errs.ErrAttemptAlreadyCompleted, w, logData)
		return
	}

	now := time.Now().UTC()
	if attempt.DeadlinePassed(now) {
		handleAPIErr(ctx, errs.ErrAttemptDeadlinePassed, w, logData)
		return
	}

	assessment, err := api.dataStore.Backend.GetAssessment(ctx, attempt.AssessmentID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := submission.Validate(assessment.Questions); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	score := submission.Score(assessment.Questions)
	total := len(assessment.Questions)
	if err := api.dataStore.Backend.CompleteAttempt(ctx, attempt.ID, submission.Answers, score, total, now); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	attempt.State = models.CompletedState
	attempt.Answers = submission.Answers
	attempt.Score = score
	attempt.Total = total
	attempt.FinishedAt = &now

	result := attempt.Result(api.passThresholdPercent)
	result.AssessmentTitle = assessment.Title

	log.Info(ctx, "attempt completed", log.Data{"attempt_id": attempt.ID, "score": score, "total": attempt.Total})
	writeJSON(ctx, w, http.StatusOK, result, logData)
}

// getAttempts lists attempts at an assessment. The commission sees every
// attempt; an applicant sees their own.
func (api *ApplicationsAPI) getAttempts(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	vars := mux.Vars(r)
	assessmentID := vars["assessment_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"assessment_id": assessmentID, "user_id": caller.ID}

	if caller.Role == models.RoleApplicant {
		attempt, err := api.dataStore.Backend.GetUserAttempt(ctx, assessmentID, caller.ID)
		if err != nil {
			if errors.Is(err, errs.ErrAttemptNotFound) {
				return []models.AssessmentAttempt{}, 0, nil
			}
			handleAPIErr(ctx, err, w, logData)
			return nil, 0, err
		}
		return []models.AssessmentAttempt{*attempt}, 1, nil
	}

	attempts, totalCount, err := api.dataStore.Backend.GetAttempts(ctx, assessmentID, offset, limit)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	return attempts, totalCount, nil
}

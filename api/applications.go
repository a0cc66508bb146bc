package api

import (
	"context"
	"net/http"
	"strings"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/models"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// applicationView is the commission's read of an application, carrying the
// applicant's latest scored attempt alongside the form
type applicationView struct {
	*models.Application
	LatestAttempt *models.AttemptResult `json:"latest_attempt,omitempty"`
}

// decisionResponse flags a repeated same-status decision as unchanged
type decisionResponse struct {
	*models.Application
	Unchanged bool `json:"unchanged,omitempty"`
}

// decisionForm mirrors the legacy portal decision form
type decisionForm struct {
	Status string `schema:"status"`
	Reason string `schema:"reason"`
}

// postApplication stores the caller's application form. Each account holds
// at most one application, so a second submission conflicts.
func (api *ApplicationsAPI) postApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)
	logData := log.Data{"user_id": caller.ID}
	defer dphttp.DrainBody(r)

	application, err := api.parseApplication(r, caller.ID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := models.ValidateFormData(application.FormData); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if _, err := api.dataStore.Backend.GetApplicationByUser(ctx, caller.ID); err == nil {
		handleAPIErr(ctx, errs.ErrApplicationAlreadyExists, w, logData)
		return
	} else if !errors.Is(err, errs.ErrApplicationNotFound) {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.CreateApplication(ctx, application); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	logData["application_id"] = application.ID

	if err := api.lifecycleEvents.ApplicationSubmitted(ctx, application, caller.Email); err != nil {
		log.Error(ctx, "failed to queue application submitted event", err, logData)
	}

	log.Info(ctx, "application submitted", logData)
	writeJSON(ctx, w, http.StatusCreated, application, logData)
}

// parseApplication accepts either a JSON document or the portal's urlencoded
// form, whose fields become the stored form data as-is
func (api *ApplicationsAPI) parseApplication(r *http.Request, userID string) (*models.Application, error) {
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			return nil, errs.ErrInvalidFormData
		}
		form := models.FormData{}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}
		return models.NewApplication(userID, form), nil
	}

	application, err := models.CreateApplication(r.Body)
	if err != nil {
		return nil, err
	}
	application.UserID = userID
	return application, nil
}

func (api *ApplicationsAPI) getApplications(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)
	logData := log.Data{"user_id": caller.ID}

	if caller.Role == models.RoleApplicant {
		application, err := api.dataStore.Backend.GetApplicationByUser(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, errs.ErrApplicationNotFound) {
				return []models.Application{}, 0, nil
			}
			handleAPIErr(ctx, err, w, logData)
			return nil, 0, err
		}
		return []models.Application{*application}, 1, nil
	}

	applications, totalCount, err := api.dataStore.Backend.GetApplications(ctx, offset, limit)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	return applications, totalCount, nil
}

// getApplication returns one application. Applicants only see their own;
// the commission additionally gets the latest attempt summary and the view
// lands in the audit trail.
func (api *ApplicationsAPI) getApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"application_id": applicationID}

	application, err := api.dataStore.Backend.GetApplication(ctx, applicationID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if caller.Role == models.RoleApplicant {
		if application.UserID != caller.ID {
			handleAPIErr(ctx, errs.ErrApplicationNotFound, w, logData)
			return
		}
		writeJSON(ctx, w, http.StatusOK, application, logData)
		return
	}

	view := applicationView{Application: application}
	if caller.Role == models.RoleAdmin {
		api.reviewer.RecordView(ctx, caller.Identity, application.ID, requestMeta(r))
		view.LatestAttempt = api.latestAttemptResult(ctx, application.UserID, logData)
	}

	writeJSON(ctx, w, http.StatusOK, view, logData)
}

// latestAttemptResult summarises the applicant's most recent attempt, or nil
// when they have not taken a test
func (api *ApplicationsAPI) latestAttemptResult(ctx context.Context, userID string, logData log.Data) *models.AttemptResult {
	attempt, err := api.dataStore.Backend.GetLatestUserAttempt(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrAttemptNotFound) {
			log.Error(ctx, "failed to load latest attempt for application view", err, logData)
		}
		return nil
	}
	return attempt.Result(api.passThresholdPercent)
}

// putAssessmentLink lets an applicant attach a link to supporting work.
// The change is recorded in the audit trail.
func (api *ApplicationsAPI) putAssessmentLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"application_id": applicationID, "user_id": caller.ID}
	defer dphttp.DrainBody(r)

	update, err := models.CreateAssessmentLinkUpdate(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	if err := update.Validate(); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	application, err := api.dataStore.Backend.GetApplication(ctx, applicationID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	if application.UserID != caller.ID {
		handleAPIErr(ctx, errs.ErrApplicationNotFound, w, logData)
		return
	}

	if err := api.dataStore.Backend.UpdateAssessmentLink(ctx, application.ID, update.AssessmentLink); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	application.AssessmentLink = update.AssessmentLink
	api.reviewer.RecordAttach(ctx, caller.Identity, application.ID, update.AssessmentLink, requestMeta(r))

	writeJSON(ctx, w, http.StatusOK, application, logData)
}

// putDecision applies a commission decision. It accepts JSON or the legacy
// decision form, and answers a repeated same-status decision with the
// current application flagged unchanged.
func (api *ApplicationsAPI) putDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"application_id": applicationID, "actor_id": caller.ID}
	defer dphttp.DrainBody(r)

	decision, err := api.parseDecision(r)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	logData["status"] = decision.Status

	application, err := api.reviewer.Decide(ctx, applicationID, decision, caller.Identity, requestMeta(r))
	if err != nil {
		if errors.Is(err, errs.ErrDecisionNotAllowed) {
			api.respondUnchanged(ctx, w, applicationID, logData)
			return
		}
		handleAPIErr(ctx, err, w, logData)
		return
	}

	log.Info(ctx, "application decided", logData)
	writeJSON(ctx, w, http.StatusOK, decisionResponse{Application: application}, logData)
}

func (api *ApplicationsAPI) parseDecision(r *http.Request) (*models.Decision, error) {
	if !isForm(r) {
		return models.CreateDecision(r.Body)
	}

	if err := r.ParseForm(); err != nil {
		return nil, errs.ErrInvalidFormData
	}
	var form decisionForm
	if err := api.formDecoder.Decode(&form, r.PostForm); err != nil {
		return nil, errs.ErrInvalidFormData
	}

	return &models.Decision{
		Status:  models.NormaliseStatus(form.Status),
		Comment: strings.TrimSpace(form.Reason),
	}, nil
}

// respondUnchanged answers a decision that matched the current status
func (api *ApplicationsAPI) respondUnchanged(ctx context.Context, w http.ResponseWriter, applicationID string, logData log.Data) {
	application, err := api.dataStore.Backend.GetApplication(ctx, applicationID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	log.Info(ctx, "decision matches current status, nothing to do", logData)
	writeJSON(ctx, w, http.StatusOK, decisionResponse{Application: application, Unchanged: true}, logData)
}

package api

import (
	"context"
	"net/http"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/models"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// assessmentView is the applicant's read of an assessment, with the correct
// answers withheld
type assessmentView struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	DurationMinutes int                   `json:"duration_minutes"`
	State           string                `json:"state"`
	Questions       []models.QuestionView `json:"questions"`
	CreatedAt       time.Time             `json:"created_at"`
}

func newAssessmentView(assessment *models.Assessment) assessmentView {
	return assessmentView{
		ID:              assessment.ID,
		Title:           assessment.Title,
		Description:     assessment.Description,
		DurationMinutes: assessment.DurationMinutes,
		State:           assessment.State,
		Questions:       assessment.QuestionViews(),
		CreatedAt:       assessment.CreatedAt,
	}
}

func (api *ApplicationsAPI) addAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)
	logData := log.Data{"created_by": caller.ID}
	defer dphttp.DrainBody(r)

	req, err := models.CreateAssessmentRequest(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	assessment, err := req.NewAssessment(caller.ID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.CreateAssessment(ctx, assessment); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	log.Info(ctx, "assessment created", log.Data{"assessment_id": assessment.ID})
	writeJSON(ctx, w, http.StatusCreated, assessment, logData)
}

// getAssessments lists assessments. The commission sees every state with the
// full question set; an approved applicant sees published assessments only,
// without the questions.
func (api *ApplicationsAPI) getAssessments(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)
	logData := log.Data{"user_id": caller.ID}

	includeUnpublished := caller.Role != models.RoleApplicant
	if caller.Role == models.RoleApplicant {
		if err := api.requireApprovedApplicant(ctx, caller.ID); err != nil {
			handleAPIErr(ctx, err, w, logData)
			return nil, 0, err
		}
	}

	assessments, totalCount, err := api.dataStore.Backend.GetAssessments(ctx, includeUnpublished, offset, limit)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return nil, 0, err
	}

	if caller.Role == models.RoleApplicant {
		for i := range assessments {
			assessments[i].Questions = nil
			assessments[i].CreatedBy = ""
		}
	}

	return assessments, totalCount, nil
}

func (api *ApplicationsAPI) getAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	assessmentID := vars["assessment_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"assessment_id": assessmentID}

	assessment, err := api.dataStore.Backend.GetAssessment(ctx, assessmentID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if caller.Role != models.RoleApplicant {
		writeJSON(ctx, w, http.StatusOK, assessment, logData)
		return
	}

	if err := api.requireApprovedApplicant(ctx, caller.ID); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	if !assessment.IsPublished() {
		handleAPIErr(ctx, errs.ErrAssessmentNotPublished, w, logData)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newAssessmentView(assessment), logData)
}

// putAssessment updates an assessment's content, then applies a requested
// state change. The only state change an assessment can make is created to
// published.
func (api *ApplicationsAPI) putAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	assessmentID := vars["assessment_id"]
	logData := log.Data{"assessment_id": assessmentID}
	defer dphttp.DrainBody(r)

	req, err := models.CreateAssessmentRequest(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	current, err := api.dataStore.Backend.GetAssessment(ctx, assessmentID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	assessment := &models.Assessment{}
	if err := copier.Copy(assessment, current); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := applyAssessmentUpdate(assessment, req); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.UpdateAssessment(ctx, assessment); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if req.State != "" && req.State != assessment.State {
		if req.State != models.PublishedState {
			handleAPIErr(ctx, errs.ErrAssessmentStateInvalid, w, logData)
			return
		}
		assessment, err = api.reviewer.PublishAssessment(ctx, assessmentID)
		if err != nil {
			handleAPIErr(ctx, err, w, logData)
			return
		}
		log.Info(ctx, "assessment published", logData)
	}

	writeJSON(ctx, w, http.StatusOK, assessment, logData)
}

// applyAssessmentUpdate overlays the provided fields onto the assessment
func applyAssessmentUpdate(assessment *models.Assessment, req *models.AssessmentRequest) error {
	if req.Title != "" {
		assessment.Title = req.Title
	}
	if req.Description != "" {
		assessment.Description = req.Description
	}
	if req.DurationMinutes < 0 {
		return errs.ErrInvalidAssessment
	}
	if req.DurationMinutes > 0 {
		assessment.DurationMinutes = req.DurationMinutes
	}
	if len(req.Questions) > 0 {
		questions, err := models.NormaliseQuestions(req.Questions)
		if err != nil {
			return err
		}
		assessment.Questions = questions
	}
	return nil
}

func (api *ApplicationsAPI) deleteAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	assessmentID := vars["assessment_id"]
	logData := log.Data{"assessment_id": assessmentID}

	if err := api.dataStore.Backend.DeleteAssessment(ctx, assessmentID); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	log.Info(ctx, "assessment deleted", logData)
	w.WriteHeader(http.StatusNoContent)
}

// requireApprovedApplicant gates assessment access on an approved application
func (api *ApplicationsAPI) requireApprovedApplicant(ctx context.Context, userID string) error {
	application, err := api.dataStore.Backend.GetApplicationByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrApplicationNotFound) {
			return errs.ErrApplicationNotApproved
		}
		return err
	}
	if !application.IsApproved() {
		return errs.ErrApplicationNotApproved
	}
	return nil
}

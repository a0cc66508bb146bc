package api

import (
	"net/http"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/models"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

// recentProvisioningEvents caps the event log returned with the staff listing
const recentProvisioningEvents = 100

// staffResponse pairs the staff accounts with the recent provisioning log,
// which the provisioning console shows side by side
type staffResponse struct {
	Staff        []models.User              `json:"staff"`
	RecentEvents []models.ProvisioningEvent `json:"recent_events"`
}

func (api *ApplicationsAPI) getStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logData := log.Data{}

	staff, err := api.dataStore.Backend.GetStaffUsers(ctx)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	events, err := api.dataStore.Backend.GetProvisioningEvents(ctx, recentProvisioningEvents)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	writeJSON(ctx, w, http.StatusOK, staffResponse{Staff: staff, RecentEvents: events}, logData)
}

// addStaff provisions a commission account. The account starts with a forced
// password change and an access expiry at the end of its final day.
func (api *ApplicationsAPI) addStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)
	logData := log.Data{"actor_id": caller.ID}
	defer dphttp.DrainBody(r)

	req, err := models.CreateStaffRequest(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	logData["email"] = models.MaskEmail(req.Email)

	if err := req.Validate(api.minStaffPasswordLength); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	user, err := req.NewStaffUser()
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	user.PasswordHash = hash

	if err := api.dataStore.Backend.CreateUser(ctx, user); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	logData["user_id"] = user.ID

	meta := models.EventMeta{"target_email": user.Email, "access_until": req.AccessUntil}
	if err := api.audit.RecordProvisioningEvent(ctx, caller.ID, user.ID, models.ProvisionActionCreate, meta, requestIP(r)); err != nil {
		log.Error(ctx, "failed to record staff creation", err, logData)
	}

	log.Info(ctx, "staff account provisioned", logData)
	writeJSON(ctx, w, http.StatusCreated, user, logData)
}

// putStaff applies a partial update to a commission account. An update that
// only moves the access expiry is recorded as an extension; a password
// rotation forces the account back into a password change.
func (api *ApplicationsAPI) putStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	userID := vars["user_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"user_id": userID, "actor_id": caller.ID}
	defer dphttp.DrainBody(r)

	update, err := models.CreateStaffUpdate(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	if update.IsEmpty() {
		handleAPIErr(ctx, errs.ErrNothingToUpdate, w, logData)
		return
	}
	if err := update.Validate(api.minStaffPasswordLength); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	action := models.ProvisionActionUpdate
	contentOnly := *update
	contentOnly.AccessUntil = ""
	if update.AccessUntil != "" && contentOnly.IsEmpty() {
		action = models.ProvisionActionExtend
	}

	if action == models.ProvisionActionExtend {
		expiry, err := update.AccessExpiry()
		if err != nil {
			handleAPIErr(ctx, err, w, logData)
			return
		}
		if err := api.dataStore.Backend.ExtendStaffAccess(ctx, userID, *expiry); err != nil {
			handleAPIErr(ctx, err, w, logData)
			return
		}
	} else {
		passwordHash := ""
		if update.Password != "" {
			if passwordHash, err = auth.HashPassword(update.Password); err != nil {
				handleAPIErr(ctx, err, w, logData)
				return
			}
		}
		if err := api.dataStore.Backend.UpdateStaffUser(ctx, userID, update, passwordHash); err != nil {
			handleAPIErr(ctx, err, w, logData)
			return
		}
	}

	meta := models.EventMeta{}
	if update.AccessUntil != "" {
		meta["access_until"] = update.AccessUntil
	}
	if update.Password != "" {
		meta["password_rotated"] = "true"
	}
	if err := api.audit.RecordProvisioningEvent(ctx, caller.ID, userID, action, meta, requestIP(r)); err != nil {
		log.Error(ctx, "failed to record staff update", err, logData)
	}

	user, err := api.dataStore.Backend.GetUser(ctx, userID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	log.Info(ctx, "staff account updated", log.Data{"user_id": userID, "action": action})
	writeJSON(ctx, w, http.StatusOK, user, logData)
}

// deactivateStaff soft deletes a commission account and ends its sessions
func (api *ApplicationsAPI) deactivateStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	userID := vars["user_id"]
	caller := auth.GetCaller(ctx)
	logData := log.Data{"user_id": userID, "actor_id": caller.ID}

	if err := api.dataStore.Backend.DeactivateStaffUser(ctx, userID); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.DeleteUserSessions(ctx, userID, ""); err != nil {
		log.Error(ctx, "failed to end sessions for deactivated account", err, logData)
	}

	if err := api.audit.RecordProvisioningEvent(ctx, caller.ID, userID, models.ProvisionActionDeactivate, nil, requestIP(r)); err != nil {
		log.Error(ctx, "failed to record staff deactivation", err, logData)
	}

	log.Info(ctx, "staff account deactivated", logData)
	w.WriteHeader(http.StatusNoContent)
}

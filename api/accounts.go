package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/models"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// LoginResponse is the payload returned on a successful login
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type passwordResetRedemption struct {
	Password string `json:"password"`
}

const resetAcceptedMessage = "if the address is registered, a reset link has been sent"

func (api *ApplicationsAPI) registerApplicant(w http.ResponseWriter, r *http.Request) {
	api.register(w, r, models.RoleApplicant)
}

// registerStaff signs up a commission account. Once any admin exists the
// payload must carry the configured invite code; the first admin bootstraps
// without one.
func (api *ApplicationsAPI) registerStaff(w http.ResponseWriter, r *http.Request) {
	api.register(w, r, models.RoleAdmin)
}

func (api *ApplicationsAPI) register(w http.ResponseWriter, r *http.Request, role string) {
	ctx := r.Context()
	logData := log.Data{"role": role}
	defer dphttp.DrainBody(r)

	req, err := models.CreateRegistrationRequest(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	logData["email"] = models.MaskEmail(req.Email)

	minLength := api.minPasswordLength
	if role == models.RoleAdmin {
		minLength = api.minStaffPasswordLength
	}
	if err := req.Validate(minLength); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if role == models.RoleAdmin {
		hasAdmin, err := api.dataStore.Backend.HasAdminUser(ctx)
		if err != nil {
			handleAPIErr(ctx, err, w, logData)
			return
		}
		if hasAdmin && (api.adminInviteCode == "" || req.InviteCode != api.adminInviteCode) {
			handleAPIErr(ctx, errs.ErrInvalidInviteCode, w, logData)
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	user := req.NewUser(role)
	user.PasswordHash = hash
	if err := api.dataStore.Backend.CreateUser(ctx, user); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	log.Info(ctx, "registered new account", log.Data{"user_id": user.ID, "role": role})
	writeJSON(ctx, w, http.StatusCreated, user, logData)
}

func (api *ApplicationsAPI) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logData := log.Data{}
	defer dphttp.DrainBody(r)

	req, err := models.CreateLoginRequest(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	logData["email"] = models.MaskEmail(req.Email)

	user, err := api.dataStore.Backend.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			err = errs.ErrInvalidCredentials
		}
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		handleAPIErr(ctx, errs.ErrInvalidCredentials, w, logData)
		return
	}
	if !user.IsActive {
		handleAPIErr(ctx, errs.ErrAccountDeactivated, w, logData)
		return
	}

	now := time.Now().UTC()
	if user.HasExpiredAccess(now) {
		handleAPIErr(ctx, errs.ErrAccountAccessExpired, w, logData)
		return
	}

	token, err := auth.GenerateToken()
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	session := models.NewSession(user.ID, auth.HashToken(token), now, api.sessionTTL)
	if err := api.dataStore.Backend.CreateSession(ctx, session); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Warn(ctx, "failed to record last login", log.Data{"user_id": user.ID})
	}

	api.setSessionCookie(w, token, session.ExpiresAt)
	log.Info(ctx, "session created", log.Data{"user_id": user.ID})
	writeJSON(ctx, w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: session.ExpiresAt, User: user}, logData)
}

func (api *ApplicationsAPI) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)

	if err := api.dataStore.Backend.DeleteSession(ctx, caller.SessionID); err != nil && !errors.Is(err, errs.ErrSessionNotFound) {
		handleAPIErr(ctx, err, w, log.Data{"session_id": caller.SessionID})
		return
	}

	api.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// changePassword verifies the caller's current password, applies the policy
// for their role and drops their other sessions
func (api *ApplicationsAPI) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)
	logData := log.Data{"user_id": caller.ID}
	defer dphttp.DrainBody(r)

	req, err := models.CreatePasswordChangeRequest(r.Body)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	user, err := api.dataStore.Backend.GetUser(ctx, caller.ID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.CurrentPassword) {
		handleAPIErr(ctx, errs.ErrPasswordIncorrect, w, logData)
		return
	}

	minLength := api.minPasswordLength
	if user.IsStaff() {
		minLength = api.minStaffPasswordLength
	}
	if err := auth.ValidatePassword(req.NewPassword, minLength); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.DeleteUserSessions(ctx, user.ID, caller.SessionID); err != nil {
		log.Error(ctx, "failed to drop other sessions after password change", err, logData)
	}

	log.Info(ctx, "password changed", logData)
	w.WriteHeader(http.StatusNoContent)
}

func (api *ApplicationsAPI) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.GetCaller(ctx)
	logData := log.Data{"user_id": caller.ID}

	user, err := api.dataStore.Backend.GetUser(ctx, caller.ID)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	writeJSON(ctx, w, http.StatusOK, user, logData)
}

// createPasswordReset always answers 202 with a neutral message so the
// endpoint cannot be used to probe which addresses hold accounts
func (api *ApplicationsAPI) createPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logData := log.Data{}
	defer dphttp.DrainBody(r)

	var req passwordResetRequest
	if err := unmarshalBody(r.Body, &req); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	email := models.NormaliseEmail(req.Email)
	logData["email"] = models.MaskEmail(email)

	user, err := api.dataStore.Backend.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			handleAPIErr(ctx, err, w, logData)
			return
		}
		log.Info(ctx, "password reset requested for unknown address", logData)
		writeJSON(ctx, w, http.StatusAccepted, map[string]string{"message": resetAcceptedMessage}, logData)
		return
	}

	token, err := auth.GenerateToken()
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	reset := models.NewPasswordReset(user.ID, auth.HashToken(token), time.Now().UTC(), api.resetTokenTTL)
	if err := api.dataStore.Backend.CreatePasswordReset(ctx, reset); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	subject, body := mail.PasswordResetMessage(user.FullName, api.urlBuilder.BuildPasswordResetURL(token), api.resetTokenTTL)
	if err := api.mailer.Send(ctx, user.Email, subject, body); err != nil {
		log.Error(ctx, "failed to send password reset mail", err, logData)
	}

	log.Info(ctx, "password reset token issued", log.Data{"user_id": user.ID})
	writeJSON(ctx, w, http.StatusAccepted, map[string]string{"message": resetAcceptedMessage}, logData)
}

// redeemPasswordReset applies a new password for a valid unexpired token,
// marks the token used and clears every session the account holds
func (api *ApplicationsAPI) redeemPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	logData := log.Data{}
	defer dphttp.DrainBody(r)

	var req passwordResetRedemption
	if err := unmarshalBody(r.Body, &req); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	reset, err := api.dataStore.Backend.GetPasswordResetByTokenHash(ctx, auth.HashToken(vars["token"]))
	if err != nil {
		handleAPIErr(ctx, errs.ErrResetTokenInvalid, w, logData)
		return
	}

	now := time.Now().UTC()
	if !reset.IsUsable(now) {
		handleAPIErr(ctx, errs.ErrResetTokenInvalid, w, logData)
		return
	}

	user, err := api.dataStore.Backend.GetUser(ctx, reset.UserID)
	if err != nil {
		handleAPIErr(ctx, errs.ErrResetTokenInvalid, w, logData)
		return
	}
	logData["user_id"] = user.ID

	if err := auth.ValidatePassword(req.Password, api.minPasswordLength); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}

	if err := api.dataStore.Backend.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		handleAPIErr(ctx, err, w, logData)
		return
	}
	if err := api.dataStore.Backend.MarkPasswordResetUsed(ctx, reset.ID); err != nil {
		log.Error(ctx, "failed to mark reset token used", err, logData)
	}
	if err := api.dataStore.Backend.DeleteUserSessions(ctx, user.ID, ""); err != nil {
		log.Error(ctx, "failed to drop sessions after password reset", err, logData)
	}

	log.Info(ctx, "password reset redeemed", logData)
	w.WriteHeader(http.StatusNoContent)
}

func (api *ApplicationsAPI) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     api.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (api *ApplicationsAPI) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     api.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// unmarshalBody decodes a small JSON request body
func unmarshalBody(reader io.Reader, v interface{}) error {
	b, err := io.ReadAll(reader)
	if err != nil {
		return errs.ErrUnableToReadMessage
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errs.ErrUnableToParseJSON
	}
	return nil
}

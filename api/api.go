package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/pagination"
	"github.com/ONSdigital/dp-applications-api/review"
	"github.com/ONSdigital/dp-applications-api/store"
	"github.com/ONSdigital/dp-applications-api/url"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

// LifecycleEvents queues application lifecycle messages for downstream consumers
type LifecycleEvents interface {
	ApplicationSubmitted(ctx context.Context, application *models.Application, email string) error
}

// ApplicationsAPI routes and handles the competition portal endpoints
type ApplicationsAPI struct {
	Router          *mux.Router
	dataStore       store.DataStore
	urlBuilder      *url.Builder
	reviewer        *review.Reviewer
	audit           review.AuditService
	mailer          mail.Sender
	lifecycleEvents LifecycleEvents
	formDecoder     *schema.Decoder

	cookieName             string
	sessionTTL             time.Duration
	resetTokenTTL          time.Duration
	minPasswordLength      int
	minStaffPasswordLength int
	adminInviteCode        string
	passThresholdPercent   int
	defaultLimit           int
	defaultOffset          int
	maxLimit               int
}

// Setup creates a new Applications API instance and registers the routes
func Setup(ctx context.Context, cfg *config.Configuration, router *mux.Router, dataStore store.DataStore, urlBuilder *url.Builder, reviewer *review.Reviewer, audit review.AuditService, mailer mail.Sender, lifecycleEvents LifecycleEvents) *ApplicationsAPI {
	formDecoder := schema.NewDecoder()
	formDecoder.IgnoreUnknownKeys(true)

	api := &ApplicationsAPI{
		Router:          router,
		dataStore:       dataStore,
		urlBuilder:      urlBuilder,
		reviewer:        reviewer,
		audit:           audit,
		mailer:          mailer,
		lifecycleEvents: lifecycleEvents,
		formDecoder:     formDecoder,

		cookieName:             cfg.SessionCookieName,
		sessionTTL:             cfg.SessionTTL,
		resetTokenTTL:          cfg.ResetTokenTTL,
		minPasswordLength:      cfg.MinPasswordLength,
		minStaffPasswordLength: cfg.MinStaffPasswordLength,
		adminInviteCode:        cfg.AdminInviteCode,
		passThresholdPercent:   cfg.PassThresholdPercent,
		defaultLimit:           cfg.DefaultLimit,
		defaultOffset:          cfg.DefaultOffset,
		maxLimit:               cfg.DefaultMaxLimit,
	}

	paginator := pagination.NewPaginator(cfg.DefaultLimit, cfg.DefaultOffset, cfg.DefaultMaxLimit)

	log.Info(ctx, "enabling applications api endpoints")
	api.enablePublicEndpoints()
	api.enableAccountEndpoints()
	api.enableApplicationEndpoints(paginator)
	api.enableAssessmentEndpoints(paginator)
	api.enableProvisioningEndpoints(paginator)

	return api
}

// enablePublicEndpoints registers the endpoints reachable without a session
func (api *ApplicationsAPI) enablePublicEndpoints() {
	api.post("/register", api.registerApplicant)
	api.post("/staff/register", api.registerStaff)
	api.post("/login", api.login)
	api.post("/password-resets", api.createPasswordReset)
	api.put("/password-resets/{token}", api.redeemPasswordReset)
}

// enableAccountEndpoints registers the session-holder endpoints. Logout and
// password change stay reachable while a forced password change is pending.
func (api *ApplicationsAPI) enableAccountEndpoints() {
	api.post("/logout", auth.RequirePendingPassword("", api.logout))
	api.put("/password", auth.RequirePendingPassword("", api.changePassword))
	api.get("/profile", auth.Require("", api.getProfile))
}

func (api *ApplicationsAPI) enableApplicationEndpoints(paginator *pagination.Paginator) {
	api.post("/applications", auth.Require(models.RoleApplicant, api.postApplication))
	api.get("/applications", auth.Require("", paginator.Paginate(api.getApplications)))
	api.get("/applications/{application_id}", auth.Require("", api.getApplication))
	api.put("/applications/{application_id}/assessment-link", auth.Require(models.RoleApplicant, api.putAssessmentLink))
	api.put("/applications/{application_id}/decision", auth.Require(models.RoleAdmin, api.putDecision))
}

func (api *ApplicationsAPI) enableAssessmentEndpoints(paginator *pagination.Paginator) {
	api.post("/assessments", auth.Require(models.RoleAdmin, api.addAssessment))
	api.get("/assessments", auth.Require("", paginator.Paginate(api.getAssessments)))
	api.get("/assessments/{assessment_id}", auth.Require("", api.getAssessment))
	api.put("/assessments/{assessment_id}", auth.Require(models.RoleAdmin, api.putAssessment))
	api.delete("/assessments/{assessment_id}", auth.Require(models.RoleAdmin, api.deleteAssessment))

	api.post("/assessments/{assessment_id}/attempts", auth.Require(models.RoleApplicant, api.startAttempt))
	api.put("/assessments/{assessment_id}/attempts/{attempt_id}", auth.Require(models.RoleApplicant, api.completeAttempt))
	api.get("/assessments/{assessment_id}/attempts", auth.Require("", paginator.Paginate(api.getAttempts)))
}

func (api *ApplicationsAPI) enableProvisioningEndpoints(paginator *pagination.Paginator) {
	api.get("/staff", auth.Require(models.RoleProvisioner, api.getStaff))
	api.post("/staff", auth.Require(models.RoleProvisioner, api.addStaff))
	api.put("/staff/{user_id}", auth.Require(models.RoleProvisioner, api.putStaff))
	api.delete("/staff/{user_id}", auth.Require(models.RoleProvisioner, api.deactivateStaff))

	api.get("/commission-events", auth.Require(models.RoleProvisioner, paginator.Paginate(api.getCommissionEvents)))
	api.get("/commission-events/counts", auth.Require(models.RoleProvisioner, api.getCommissionEventCounts))
	api.get("/commission-events/export", auth.Require(models.RoleProvisioner, api.exportCommissionEvents))
}

// get registers a GET http.HandlerFunc.
func (api *ApplicationsAPI) get(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodGet)
}

// put registers a PUT http.HandlerFunc.
func (api *ApplicationsAPI) put(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPut)
}

// post registers a POST http.HandlerFunc.
func (api *ApplicationsAPI) post(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPost)
}

// delete registers a DELETE http.HandlerFunc.
func (api *ApplicationsAPI) delete(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodDelete)
}

// requestMeta collects the request details the audit trail records
func requestMeta(r *http.Request) *review.RequestMeta {
	meta := &review.RequestMeta{
		IP:        requestIP(r),
		UserAgent: r.UserAgent(),
	}
	if caller := auth.GetCaller(r.Context()); caller != nil {
		meta.SessionID = caller.SessionID
	}
	return meta
}

// requestIP prefers the first forwarded address so audit rows survive a
// reverse proxy in front of the service
func requestIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// isForm reports whether the request carries an urlencoded form body
func isForm(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "application/x-www-form-urlencoded")
}

func setJSONContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}

// writeJSON marshals v and writes it with the given status code
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}, data log.Data) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error(ctx, "failed to marshal response", err, data)
		http.Error(w, errs.ErrInternalServer.Error(), http.StatusInternalServerError)
		return
	}

	setJSONContentType(w)
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		log.Error(ctx, "failed to write response", err, data)
	}
}

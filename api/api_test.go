package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"testing"

	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-applications-api/mail"
	"github.com/ONSdigital/dp-applications-api/mail/mailtest"
	"github.com/ONSdigital/dp-applications-api/mocks"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/review"
	"github.com/ONSdigital/dp-applications-api/store"
	storetest "github.com/ONSdigital/dp-applications-api/store/datastoretest"
	"github.com/ONSdigital/dp-applications-api/url"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	host           = "http://localhost:25700"
	testInviteCode = "commission-2024"
)

var testContext = context.Background()

// noopDecidedEvents satisfies the reviewer's event queue in handler tests;
// the decided event path is covered by the review package tests
type noopDecidedEvents struct{}

func (noopDecidedEvents) ApplicationDecided(_ context.Context, _ *models.Application) error {
	return nil
}

func applicantCaller() *auth.Caller {
	return &auth.Caller{
		Identity:  &models.Identity{ID: "user-1", Email: "ann@example.com", FullName: "Ann Petrova", Role: models.RoleApplicant},
		SessionID: "session-1",
	}
}

func adminCaller() *auth.Caller {
	return &auth.Caller{
		Identity:  &models.Identity{ID: "commission-1", Email: "chair@example.com", FullName: "Commission Chair", Role: models.RoleAdmin},
		SessionID: "session-2",
	}
}

func provisionerCaller() *auth.Caller {
	return &auth.Caller{
		Identity:  &models.Identity{ID: "provisioner-1", Email: "ops@example.com", FullName: "Portal Ops", Role: models.RoleProvisioner},
		SessionID: "session-3",
	}
}

func workingSender() *mailtest.SenderMock {
	return &mailtest.SenderMock{
		SendFunc: func(ctx context.Context, to, subject, body string) error {
			return nil
		},
	}
}

// GetAPIWithMocks also used in other test files
func GetAPIWithMocks(mockedDataStore store.Storer, sender mail.Sender, lifecycleEvents LifecycleEvents) *ApplicationsAPI {
	cfg, err := config.Get()
	So(err, ShouldBeNil)
	cfg.AdminInviteCode = testInviteCode

	websiteURL, err := neturl.Parse(cfg.WebsiteURL)
	So(err, ShouldBeNil)

	dataStore := store.DataStore{Backend: mockedDataStore}
	builder := url.NewBuilder(websiteURL)
	auditService := review.NewAuditService(dataStore)
	reviewer := review.NewReviewer(dataStore, review.NewDecisionStateMachine(), auditService, sender, noopDecidedEvents{}, builder)

	return Setup(testContext, cfg, mux.NewRouter(), dataStore, builder, reviewer, auditService, sender, lifecycleEvents)
}

func createRequestWithCaller(method, target string, body io.Reader, caller *auth.Caller) *http.Request {
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(auth.WithCaller(r.Context(), caller))
}

func hasRoute(r *mux.Router, path, method string) bool {
	req := httptest.NewRequest(method, host+path, nil)
	match := &mux.RouteMatch{}
	return r.Match(req, match)
}

func TestSetup(t *testing.T) {
	t.Parallel()
	Convey("Given an API instance", t, func() {
		api := GetAPIWithMocks(&storetest.StorerMock{}, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("All the expected public routes are registered", func() {
			So(hasRoute(api.Router, "/register", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/staff/register", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/login", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/password-resets", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/password-resets/123", http.MethodPut), ShouldBeTrue)
		})

		Convey("All the expected account routes are registered", func() {
			So(hasRoute(api.Router, "/logout", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/password", http.MethodPut), ShouldBeTrue)
			So(hasRoute(api.Router, "/profile", http.MethodGet), ShouldBeTrue)
		})

		Convey("All the expected application routes are registered", func() {
			So(hasRoute(api.Router, "/applications", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications", http.MethodGet), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/123", http.MethodGet), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/123/assessment-link", http.MethodPut), ShouldBeTrue)
			So(hasRoute(api.Router, "/applications/123/decision", http.MethodPut), ShouldBeTrue)
		})

		Convey("All the expected assessment and attempt routes are registered", func() {
			So(hasRoute(api.Router, "/assessments", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/assessments", http.MethodGet), ShouldBeTrue)
			So(hasRoute(api.Router, "/assessments/123", http.MethodGet), ShouldBeTrue)
			So(hasRoute(api.Router, "/assessments/123", http.MethodPut), ShouldBeTrue)
			So(hasRoute(api.Router, "/assessments/123", http.MethodDelete), ShouldBeTrue)
			So(hasRoute(api.Router, "/assessments/123/attempts", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/assessments/123/attempts/456", http.MethodPut), ShouldBeTrue)
			So(hasRoute(api.Router, "/assessments/123/attempts", http.MethodGet), ShouldBeTrue)
		})

		Convey("All the expected provisioning routes are registered", func() {
			So(hasRoute(api.Router, "/staff", http.MethodGet), ShouldBeTrue)
			So(hasRoute(api.Router, "/staff", http.MethodPost), ShouldBeTrue)
			So(hasRoute(api.Router, "/staff/123", http.MethodPut), ShouldBeTrue)
			So(hasRoute(api.Router, "/staff/123", http.MethodDelete), ShouldBeTrue)
			So(hasRoute(api.Router, "/commission-events", http.MethodGet), ShouldBeTrue)
			So(hasRoute(api.Router, "/commission-events/counts", http.MethodGet), ShouldBeTrue)
			So(hasRoute(api.Router, "/commission-events/export", http.MethodGet), ShouldBeTrue)
		})
	})
}

func TestRoleGating(t *testing.T) {
	t.Parallel()
	Convey("Given an API instance", t, func() {
		api := GetAPIWithMocks(&storetest.StorerMock{}, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("An anonymous request to an authenticated route is refused", func() {
			r := httptest.NewRequest(http.MethodGet, host+"/profile", nil)
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("An applicant cannot reach a commission route", func() {
			r := createRequestWithCaller(http.MethodPut, host+"/applications/123/decision", nil, applicantCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusForbidden)
		})

		Convey("A commission member cannot reach a provisioning route", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/staff", nil, adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusForbidden)
		})

		Convey("A caller with a pending password change is refused outside the password routes", func() {
			caller := applicantCaller()
			caller.MustChangePassword = true
			r := createRequestWithCaller(http.MethodGet, host+"/profile", nil, caller)
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusForbidden)
		})
	})
}

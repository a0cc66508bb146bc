package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/mocks"
	"github.com/ONSdigital/dp-applications-api/models"
	storetest "github.com/ONSdigital/dp-applications-api/store/datastoretest"
	. "github.com/smartystreets/goconvey/convey"
)

func staffUser() *models.User {
	expiry := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	return &models.User{
		ID:              "staff-1",
		FullName:        "Commission Member",
		Email:           "member@example.com",
		Role:            models.RoleAdmin,
		IsActive:        true,
		AccessExpiresAt: &expiry,
		CreatedAt:       time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestGetStaff(t *testing.T) {
	t.Parallel()
	Convey("Given staff accounts and a provisioning log", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetStaffUsersFunc: func(ctx context.Context) ([]models.User, error) {
				return []models.User{*staffUser()}, nil
			},
			GetProvisioningEventsFunc: func(ctx context.Context, limit int) ([]models.ProvisioningEvent, error) {
				return []models.ProvisioningEvent{
					{ID: "event-1", ActorID: "provisioner-1", TargetID: "staff-1", Action: models.ProvisionActionCreate},
				}, nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The provisioner gets both side by side", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/staff", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"staff"`)
			So(w.Body.String(), ShouldContainSubstring, `"recent_events"`)
			So(w.Body.String(), ShouldContainSubstring, "staff-1")
			So(mockedDataStore.GetProvisioningEventsCalls()[0].Limit, ShouldEqual, 100)
		})
	})
}

func TestAddStaff(t *testing.T) {
	t.Parallel()
	Convey("Given a working datastore", t, func() {
		mockedDataStore := &storetest.StorerMock{
			CreateUserFunc: func(ctx context.Context, user *models.User) error {
				return nil
			},
			CreateProvisioningEventFunc: func(ctx context.Context, event *models.ProvisioningEvent) error {
				return nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("Provisioning an account sets the forced change and the expiry", func() {
			payload := `{"full_name":"Commission Member","email":"Member@Example.com","password":"` + testStaffPassword + `","access_until":"2026-12-31"}`
			r := createRequestWithCaller(http.MethodPost, host+"/staff", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusCreated)
			So(len(mockedDataStore.CreateUserCalls()), ShouldEqual, 1)

			created := mockedDataStore.CreateUserCalls()[0].User
			So(created.Email, ShouldEqual, "member@example.com")
			So(created.Role, ShouldEqual, models.RoleAdmin)
			So(created.MustChangePassword, ShouldBeTrue)
			So(created.AccessExpiresAt, ShouldNotBeNil)
			So(created.AccessExpiresAt.Format(time.RFC3339), ShouldEqual, "2026-12-31T23:59:59Z")
			So(auth.VerifyPassword(created.PasswordHash, testStaffPassword), ShouldBeTrue)

			So(len(mockedDataStore.CreateProvisioningEventCalls()), ShouldEqual, 1)
			event := mockedDataStore.CreateProvisioningEventCalls()[0].Event
			So(event.Action, ShouldEqual, models.ProvisionActionCreate)
			So(event.ActorID, ShouldEqual, "provisioner-1")
			So(event.TargetID, ShouldEqual, created.ID)
			So(event.Meta["target_email"], ShouldEqual, "m***@example.com")
			So(event.Meta["access_until"], ShouldEqual, "2026-12-31")
			So(event.IP, ShouldEqual, "192.0.2.1")
		})

		Convey("An account without an access expiry is refused", func() {
			payload := `{"full_name":"Commission Member","email":"member@example.com","password":"` + testStaffPassword + `"}`
			r := createRequestWithCaller(http.MethodPost, host+"/staff", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(len(mockedDataStore.CreateUserCalls()), ShouldEqual, 0)
		})

		Convey("A password below the staff minimum is refused", func() {
			payload := `{"full_name":"Commission Member","email":"member@example.com","password":"short","access_until":"2026-12-31"}`
			r := createRequestWithCaller(http.MethodPost, host+"/staff", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, errs.ErrPasswordTooShort.Error())
		})

		Convey("A failing audit write does not undo the provisioned account", func() {
			mockedDataStore.CreateProvisioningEventFunc = func(ctx context.Context, event *models.ProvisioningEvent) error {
				return errors.New("audit table unavailable")
			}
			payload := `{"full_name":"Commission Member","email":"member@example.com","password":"` + testStaffPassword + `","access_until":"2026-12-31"}`
			r := createRequestWithCaller(http.MethodPost, host+"/staff", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusCreated)
			So(len(mockedDataStore.CreateUserCalls()), ShouldEqual, 1)
		})
	})

	Convey("Given the email address is already registered", t, func() {
		mockedDataStore := &storetest.StorerMock{
			CreateUserFunc: func(ctx context.Context, user *models.User) error {
				return errs.ErrEmailAlreadyRegistered
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("Provisioning conflicts", func() {
			payload := `{"full_name":"Commission Member","email":"member@example.com","password":"` + testStaffPassword + `","access_until":"2026-12-31"}`
			r := createRequestWithCaller(http.MethodPost, host+"/staff", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusConflict)
		})
	})
}

func TestPutStaff(t *testing.T) {
	t.Parallel()
	Convey("Given an active commission account", t, func() {
		mockedDataStore := &storetest.StorerMock{
			ExtendStaffAccessFunc: func(ctx context.Context, userID string, until time.Time) error {
				return nil
			},
			UpdateStaffUserFunc: func(ctx context.Context, userID string, update *models.StaffUpdate, passwordHash string) error {
				return nil
			},
			CreateProvisioningEventFunc: func(ctx context.Context, event *models.ProvisioningEvent) error {
				return nil
			},
			GetUserFunc: func(ctx context.Context, ID string) (*models.User, error) {
				return staffUser(), nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("An update that only moves the expiry is recorded as an extension", func() {
			payload := `{"access_until":"2027-06-30"}`
			r := createRequestWithCaller(http.MethodPut, host+"/staff/staff-1", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(len(mockedDataStore.ExtendStaffAccessCalls()), ShouldEqual, 1)
			So(len(mockedDataStore.UpdateStaffUserCalls()), ShouldEqual, 0)

			extended := mockedDataStore.ExtendStaffAccessCalls()[0]
			So(extended.UserID, ShouldEqual, "staff-1")
			So(extended.Until.Format(time.RFC3339), ShouldEqual, "2027-06-30T23:59:59Z")

			event := mockedDataStore.CreateProvisioningEventCalls()[0].Event
			So(event.Action, ShouldEqual, models.ProvisionActionExtend)
			So(event.Meta["access_until"], ShouldEqual, "2027-06-30")
		})

		Convey("An update touching content fields goes through the partial update", func() {
			payload := `{"full_name":"Commission Member Renamed","access_until":"2027-06-30"}`
			r := createRequestWithCaller(http.MethodPut, host+"/staff/staff-1", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(len(mockedDataStore.ExtendStaffAccessCalls()), ShouldEqual, 0)
			So(len(mockedDataStore.UpdateStaffUserCalls()), ShouldEqual, 1)

			updated := mockedDataStore.UpdateStaffUserCalls()[0]
			So(updated.Update.FullName, ShouldEqual, "Commission Member Renamed")
			So(updated.PasswordHash, ShouldBeEmpty)

			event := mockedDataStore.CreateProvisioningEventCalls()[0].Event
			So(event.Action, ShouldEqual, models.ProvisionActionUpdate)
		})

		Convey("A password rotation lands in the audit trail without the password", func() {
			payload := `{"password":"rotated-pass"}`
			r := createRequestWithCaller(http.MethodPut, host+"/staff/staff-1", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)

			updated := mockedDataStore.UpdateStaffUserCalls()[0]
			So(auth.VerifyPassword(updated.PasswordHash, "rotated-pass"), ShouldBeTrue)

			event := mockedDataStore.CreateProvisioningEventCalls()[0].Event
			So(event.Meta["password_rotated"], ShouldEqual, "true")
			So(event.Meta, ShouldNotContainKey, "password")
		})

		Convey("An empty update is refused", func() {
			r := createRequestWithCaller(http.MethodPut, host+"/staff/staff-1", bytes.NewBufferString(`{}`), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, errs.ErrNothingToUpdate.Error())
		})

		Convey("A malformed expiry date is refused", func() {
			payload := `{"access_until":"31-12-2026"}`
			r := createRequestWithCaller(http.MethodPut, host+"/staff/staff-1", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(len(mockedDataStore.ExtendStaffAccessCalls()), ShouldEqual, 0)
		})
	})

	Convey("Given the account does not exist", t, func() {
		mockedDataStore := &storetest.StorerMock{
			UpdateStaffUserFunc: func(ctx context.Context, userID string, update *models.StaffUpdate, passwordHash string) error {
				return errs.ErrUserNotFound
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The update returns 404", func() {
			payload := `{"full_name":"Commission Member Renamed"}`
			r := createRequestWithCaller(http.MethodPut, host+"/staff/missing", bytes.NewBufferString(payload), provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestDeactivateStaff(t *testing.T) {
	t.Parallel()
	Convey("Given an active commission account", t, func() {
		mockedDataStore := &storetest.StorerMock{
			DeactivateStaffUserFunc: func(ctx context.Context, userID string) error {
				return nil
			},
			DeleteUserSessionsFunc: func(ctx context.Context, userID, exceptID string) error {
				return nil
			},
			CreateProvisioningEventFunc: func(ctx context.Context, event *models.ProvisioningEvent) error {
				return nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("Deactivating ends the account and every session", func() {
			r := createRequestWithCaller(http.MethodDelete, host+"/staff/staff-1", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusNoContent)
			So(mockedDataStore.DeactivateStaffUserCalls()[0].UserID, ShouldEqual, "staff-1")

			So(len(mockedDataStore.DeleteUserSessionsCalls()), ShouldEqual, 1)
			So(mockedDataStore.DeleteUserSessionsCalls()[0].UserID, ShouldEqual, "staff-1")
			So(mockedDataStore.DeleteUserSessionsCalls()[0].ExceptID, ShouldBeEmpty)

			event := mockedDataStore.CreateProvisioningEventCalls()[0].Event
			So(event.Action, ShouldEqual, models.ProvisionActionDeactivate)
			So(event.TargetID, ShouldEqual, "staff-1")
		})
	})

	Convey("Given the account does not exist", t, func() {
		mockedDataStore := &storetest.StorerMock{
			DeactivateStaffUserFunc: func(ctx context.Context, userID string) error {
				return errs.ErrUserNotFound
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The deactivation returns 404", func() {
			r := createRequestWithCaller(http.MethodDelete, host+"/staff/missing", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

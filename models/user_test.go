package models

import (
	"strings"
	"testing"
	"time"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistrationRequest(t *testing.T) {
	t.Parallel()
	Convey("Given a valid registration body", t, func() {
		body := `{"full_name":"  Jane Doe ","email":" Jane@Example.COM ","password":"correct horse battery"}`
		req, err := CreateRegistrationRequest(strings.NewReader(body))
		So(err, ShouldBeNil)

		Convey("Then the email and name are normalised", func() {
			So(req.Email, ShouldEqual, "jane@example.com")
			So(req.FullName, ShouldEqual, "Jane Doe")
		})

		Convey("Then it validates against the applicant policy", func() {
			So(req.Validate(12), ShouldBeNil)
		})

		Convey("And the built user is an active applicant", func() {
			user := req.NewUser(RoleApplicant)
			So(user.ID, ShouldNotBeEmpty)
			So(user.Role, ShouldEqual, RoleApplicant)
			So(user.IsActive, ShouldBeTrue)
			So(user.MustChangePassword, ShouldBeFalse)
		})
	})

	Convey("A password below the minimum is rejected", t, func() {
		req := &RegistrationRequest{FullName: "Jane", Email: "jane@example.com", Password: "short"}
		So(req.Validate(12), ShouldEqual, apierrors.ErrPasswordTooShort)

		Convey("but the staff minimum can be lower", func() {
			req.Password = "12345678"
			So(req.Validate(8), ShouldBeNil)
		})
	})

	Convey("A malformed email is rejected", t, func() {
		req := &RegistrationRequest{FullName: "Jane", Email: "not-an-email", Password: "correct horse battery"}
		So(req.Validate(12), ShouldNotBeNil)
	})

	Convey("A missing full name is rejected", t, func() {
		req := &RegistrationRequest{Email: "jane@example.com", Password: "correct horse battery"}
		So(req.Validate(12), ShouldNotBeNil)
	})
}

func TestStaffRequest(t *testing.T) {
	t.Parallel()
	Convey("Given a valid staff creation body", t, func() {
		body := `{"full_name":"Rev Iewer","email":"rev@example.com","password":"longenough","access_until":"2026-12-31","position":"reviewer","priority":2}`
		req, err := CreateStaffRequest(strings.NewReader(body))
		So(err, ShouldBeNil)
		So(req.Validate(8), ShouldBeNil)

		Convey("Then the built account is a commission member with forced password change", func() {
			user, err := req.NewStaffUser()
			So(err, ShouldBeNil)
			So(user.Role, ShouldEqual, RoleAdmin)
			So(user.MustChangePassword, ShouldBeTrue)
			So(user.IsActive, ShouldBeTrue)
			So(user.Position, ShouldEqual, "reviewer")
			So(user.Priority, ShouldEqual, 2)

			Convey("and access expires at the end of the final day", func() {
				So(user.AccessExpiresAt, ShouldNotBeNil)
				So(user.AccessExpiresAt.Format(time.RFC3339), ShouldEqual, "2026-12-31T23:59:59Z")
			})
		})
	})

	Convey("access_until is required", t, func() {
		req := &StaffRequest{FullName: "Rev", Email: "rev@example.com", Password: "longenough"}
		So(req.Validate(8), ShouldNotBeNil)
	})

	Convey("a malformed access_until is rejected", t, func() {
		req := &StaffRequest{FullName: "Rev", Email: "rev@example.com", Password: "longenough", AccessUntil: "31/12/2026"}
		So(req.Validate(8), ShouldNotBeNil)
	})
}

func TestStaffUpdate(t *testing.T) {
	t.Parallel()
	Convey("An update with no fields is empty", t, func() {
		update := &StaffUpdate{}
		So(update.IsEmpty(), ShouldBeTrue)
		So(update.Validate(8), ShouldBeNil)
	})

	Convey("A priority-only update is not empty", t, func() {
		p := 0
		update := &StaffUpdate{Priority: &p}
		So(update.IsEmpty(), ShouldBeFalse)
	})

	Convey("A short replacement password is rejected", t, func() {
		update := &StaffUpdate{Password: "short"}
		So(update.Validate(8), ShouldEqual, apierrors.ErrPasswordTooShort)
	})

	Convey("An expiry update lands at the end of the day", t, func() {
		update := &StaffUpdate{AccessUntil: "2027-01-15"}
		So(update.Validate(8), ShouldBeNil)
		expiry, err := update.AccessExpiry()
		So(err, ShouldBeNil)
		So(expiry.Format(time.RFC3339), ShouldEqual, "2027-01-15T23:59:59Z")
	})

	Convey("No expiry update returns nil", t, func() {
		update := &StaffUpdate{FullName: "New Name"}
		expiry, err := update.AccessExpiry()
		So(err, ShouldBeNil)
		So(expiry, ShouldBeNil)
	})
}

func TestUserAccessExpiry(t *testing.T) {
	t.Parallel()
	Convey("Access expiry is only enforced when set", t, func() {
		now := time.Now().UTC()
		user := &User{Role: RoleAdmin}
		So(user.HasExpiredAccess(now), ShouldBeFalse)

		past := now.Add(-time.Hour)
		user.AccessExpiresAt = &past
		So(user.HasExpiredAccess(now), ShouldBeTrue)

		future := now.Add(time.Hour)
		user.AccessExpiresAt = &future
		So(user.HasExpiredAccess(now), ShouldBeFalse)
	})
}

package mail

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApprovedMessage(t *testing.T) {
	Convey("Given an approved application", t, func() {
		subject, body := ApprovedMessage("Anna Petrova", "http://localhost:20000/assessments/a-1")

		Convey("Then the message points the applicant at the qualifying test", func() {
			So(subject, ShouldEqual, "Your application has been approved")
			So(body, ShouldContainSubstring, "Dear Anna Petrova,")
			So(body, ShouldContainSubstring, "http://localhost:20000/assessments/a-1")
		})
	})
}

func TestRejectedMessage(t *testing.T) {
	Convey("Given a rejection with a commission comment", t, func() {
		subject, body := RejectedMessage("Anna Petrova", "incomplete form", "http://localhost:20000/applications/app-1")

		Convey("Then the message carries the reason and the application link", func() {
			So(subject, ShouldEqual, "Your application decision")
			So(body, ShouldContainSubstring, "unable to accept")
			So(body, ShouldContainSubstring, "incomplete form")
			So(body, ShouldContainSubstring, "http://localhost:20000/applications/app-1")
		})
	})

	Convey("Given a rejection without a comment", t, func() {
		_, body := RejectedMessage("", "", "http://localhost:20000/applications/app-1")

		Convey("Then no reason section is included", func() {
			So(body, ShouldContainSubstring, "Hello,")
			So(body, ShouldNotContainSubstring, "following reason")
		})
	})
}

func TestPasswordResetMessage(t *testing.T) {
	Convey("Given a password reset request", t, func() {
		subject, body := PasswordResetMessage("Anna", "http://localhost:20000/password-resets/tok-1", 2*time.Hour)

		Convey("Then the message carries the link and its lifetime", func() {
			So(subject, ShouldEqual, "Password reset requested")
			So(body, ShouldContainSubstring, "http://localhost:20000/password-resets/tok-1")
			So(body, ShouldContainSubstring, "expires in 2 hours")
		})
	})
}

func TestFormatTTL(t *testing.T) {
	Convey("Durations render as plain english", t, func() {
		So(formatTTL(time.Hour), ShouldEqual, "1 hour")
		So(formatTTL(48*time.Hour), ShouldEqual, "48 hours")
		So(formatTTL(30*time.Minute), ShouldEqual, "30 minutes")
		So(formatTTL(45*time.Second), ShouldEqual, "1 minute")
	})
}

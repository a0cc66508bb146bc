package mail

import (
	"fmt"
	"time"
)

// ApprovedMessage builds the notification sent when the commission approves
// an application. The body points the applicant at the qualifying test.
func ApprovedMessage(name, assessmentURL string) (subject, body string) {
	subject = "Your application has been approved"
	body = fmt.Sprintf(`%s,

The commission has reviewed your application and approved it.

The next step is the qualifying test, which you can take here:

%s

You will be told your result as soon as you finish.
`, greeting(name), assessmentURL)
	return subject, body
}

// RejectedMessage builds the notification sent when the commission rejects
// an application, including the commission's comment when one was given.
func RejectedMessage(name, comment, applicationURL string) (subject, body string) {
	subject = "Your application decision"
	reason := ""
	if comment != "" {
		reason = fmt.Sprintf(`
The commission gave the following reason:

%s
`, comment)
	}
	body = fmt.Sprintf(`%s,

The commission has reviewed your application and is unable to accept it.
%s
Your application and its status remain available here:

%s

If you believe this decision was made in error, please contact the
commission directly.
`, greeting(name), reason, applicationURL)
	return subject, body
}

// PasswordResetMessage builds the self-service password reset notification
func PasswordResetMessage(name, resetURL string, ttl time.Duration) (subject, body string) {
	subject = "Password reset requested"
	body = fmt.Sprintf(`%s,

A password reset was requested for your account. Follow this link to choose
a new password:

%s

The link expires in %s. If you did not request a reset you can ignore this
message and your password will stay unchanged.
`, greeting(name), resetURL, formatTTL(ttl))
	return subject, body
}

func greeting(name string) string {
	if name == "" {
		return "Hello"
	}
	return "Dear " + name
}

func formatTTL(ttl time.Duration) string {
	if h := int(ttl.Hours()); h >= 1 {
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	m := int(ttl.Minutes())
	if m <= 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}

package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ONSdigital/dp-applications-api/auth"
	"github.com/ONSdigital/dp-applications-api/events"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/schema"
	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	assistdog "github.com/ONSdigital/dp-assistdog"
)

// seedUser carries a plaintext password alongside the stored user fields so
// scenarios can seed credentials the login endpoint will accept.
type seedUser struct {
	models.User
	Password string `json:"password"`
}

func (c *ApplicationComponent) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have these users:$`, c.iHaveTheseUsers)
	ctx.Step(`^I have these applications:$`, c.iHaveTheseApplications)
	ctx.Step(`^the user "([^"]*)" has an active session with token "([^"]*)"$`, c.theUserHasAnActiveSessionWithToken)
	ctx.Step(`^the user "([^"]*)" has an expired session with token "([^"]*)"$`, c.theUserHasAnExpiredSessionWithToken)
	ctx.Step(`^the user "([^"]*)" should exist with role "([^"]*)"$`, c.theUserShouldExistWithRole)
	ctx.Step(`^a session should exist for user "([^"]*)"$`, c.aSessionShouldExistForUser)
	ctx.Step(`^the application for user "([^"]*)" should have status "([^"]*)"$`, c.theApplicationForUserShouldHaveStatus)
	ctx.Step(`^the application "([^"]*)" should record the decision:$`, c.theApplicationShouldRecordTheDecision)
	ctx.Step(`^a commission decision event should be recorded for application "([^"]*)" with new status "([^"]*)"$`, c.aCommissionDecisionEventShouldBeRecorded)
	ctx.Step(`^an email should be sent to "([^"]*)"$`, c.anEmailShouldBeSentTo)
	ctx.Step(`^no email should be sent$`, c.noEmailShouldBeSent)
	ctx.Step(`^these application lifecycle events are produced:$`, c.theseApplicationLifecycleEventsAreProduced)
	ctx.Step(`^no application lifecycle events are produced$`, c.noApplicationLifecycleEventsAreProduced)
}

func (c *ApplicationComponent) iHaveTheseUsers(usersJson *godog.DocString) error {
	var seeds []seedUser

	if err := json.Unmarshal([]byte(usersJson.Content), &seeds); err != nil {
		return err
	}

	for i := range seeds {
		user := seeds[i].User

		hash, err := auth.HashPassword(seeds[i].Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		user.Email = models.NormaliseEmail(user.Email)

		if err := c.createUser(context.Background(), &user); err != nil {
			return err
		}
	}

	return nil
}

func (c *ApplicationComponent) iHaveTheseApplications(applicationsJson *godog.DocString) error {
	applications := []models.Application{}

	if err := json.Unmarshal([]byte(applicationsJson.Content), &applications); err != nil {
		return err
	}

	for i := range applications {
		if err := c.createApplication(context.Background(), &applications[i]); err != nil {
			return err
		}
	}

	return nil
}

func (c *ApplicationComponent) theUserHasAnActiveSessionWithToken(email, token string) error {
	return c.seedSession(email, token, time.Hour)
}

func (c *ApplicationComponent) theUserHasAnExpiredSessionWithToken(email, token string) error {
	return c.seedSession(email, token, -time.Hour)
}

func (c *ApplicationComponent) seedSession(email, token string, ttl time.Duration) error {
	user, err := c.getUserByEmail(context.Background(), email)
	if err != nil {
		return fmt.Errorf("cannot seed session for %q: %w", email, err)
	}

	session := models.NewSession(user.ID, auth.HashToken(token), time.Now().UTC(), ttl)
	return c.createSession(context.Background(), session)
}

func (c *ApplicationComponent) theUserShouldExistWithRole(email, role string) error {
	user, err := c.getUserByEmail(context.Background(), email)
	if err != nil {
		return fmt.Errorf("expected user %q to exist: %w", email, err)
	}

	assert.Equal(&c.ErrorFeature, role, user.Role)
	assert.True(&c.ErrorFeature, user.IsActive)

	return c.ErrorFeature.StepError()
}

func (c *ApplicationComponent) aSessionShouldExistForUser(email string) error {
	user, err := c.getUserByEmail(context.Background(), email)
	if err != nil {
		return fmt.Errorf("expected user %q to exist: %w", email, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, session := range c.sessions {
		if session.UserID == user.ID {
			return nil
		}
	}
	return fmt.Errorf("no session found for user %q", email)
}

func (c *ApplicationComponent) theApplicationForUserShouldHaveStatus(email, status string) error {
	user, err := c.getUserByEmail(context.Background(), email)
	if err != nil {
		return fmt.Errorf("expected user %q to exist: %w", email, err)
	}

	application, err := c.getApplicationByUser(context.Background(), user.ID)
	if err != nil {
		return fmt.Errorf("expected an application for user %q: %w", email, err)
	}

	assert.Equal(&c.ErrorFeature, status, application.Status)

	return c.ErrorFeature.StepError()
}

func (c *ApplicationComponent) theApplicationShouldRecordTheDecision(applicationID string, decisionJson *godog.DocString) error {
	var expected models.Application

	if err := json.Unmarshal([]byte(decisionJson.Content), &expected); err != nil {
		return err
	}

	application, err := c.getApplication(context.Background(), applicationID)
	if err != nil {
		return err
	}

	assert.Equal(&c.ErrorFeature, expected.Status, application.Status)
	assert.Equal(&c.ErrorFeature, expected.StatusComment, application.StatusComment)
	assert.Equal(&c.ErrorFeature, expected.DecidedBy, application.DecidedBy)
	assert.NotNil(&c.ErrorFeature, application.DecidedAt)

	return c.ErrorFeature.StepError()
}

func (c *ApplicationComponent) aCommissionDecisionEventShouldBeRecorded(applicationID, newStatus string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, event := range c.commissionEvents {
		if event.ApplicationID == applicationID && event.Action == models.AuditActionDecision && event.NewStatus == newStatus {
			return nil
		}
	}
	return fmt.Errorf("no decision event recorded for application %q with new status %q", applicationID, newStatus)
}

func (c *ApplicationComponent) anEmailShouldBeSentTo(address string) error {
	calls := c.Mailer.SendCalls()
	if len(calls) == 0 {
		return errors.New("expected an email to be sent, none were")
	}

	assert.Equal(&c.ErrorFeature, address, calls[len(calls)-1].To)

	return c.ErrorFeature.StepError()
}

func (c *ApplicationComponent) noEmailShouldBeSent() error {
	assert.Empty(&c.ErrorFeature, c.Mailer.SendCalls())

	return c.ErrorFeature.StepError()
}

// theseApplicationLifecycleEventsAreProduced consumes the messages queued on
// the events topic and validates them against the expected values. Generated
// fields vary per run and are left out of the comparison.
func (c *ApplicationComponent) theseApplicationLifecycleEventsAreProduced(eventsTable *godog.Table) error {
	rawExpected, err := assistdog.NewDefault().CreateSlice(new(events.LifecycleEvent), eventsTable)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	expected, ok := rawExpected.([]*events.LifecycleEvent)
	if !ok {
		return errors.New("wrong type from godog table")
	}

	var got []*events.LifecycleEvent
	timeout := time.After(time.Second * 5)

	for len(got) < len(expected) {
		select {
		case <-timeout:
			return fmt.Errorf("timed out after receiving %d of %d lifecycle events", len(got), len(expected))
		case msg := <-c.producedEvents:
			var e events.LifecycleEvent
			if err := schema.ApplicationLifecycleEvent.Unmarshal(msg.Value, &e); err != nil {
				return fmt.Errorf("error unmarshalling message: %w", err)
			}
			got = append(got, &e)
		}
	}

	select {
	case <-c.producedEvents:
		return errors.New("more lifecycle events were produced than expected")
	default:
	}

	ignoreGenerated := cmpopts.IgnoreFields(events.LifecycleEvent{}, "ApplicationID", "PublicNo", "OccurredAt")
	if diff := cmp.Diff(got, expected, ignoreGenerated); diff != "" {
		return fmt.Errorf("-got +expected)\n%s\n", diff)
	}

	return nil
}

func (c *ApplicationComponent) noApplicationLifecycleEventsAreProduced() error {
	select {
	case msg := <-c.producedEvents:
		var e events.LifecycleEvent
		if err := schema.ApplicationLifecycleEvent.Unmarshal(msg.Value, &e); err != nil {
			return fmt.Errorf("error unmarshalling message: %w", err)
		}
		return fmt.Errorf("unexpected %q lifecycle event was produced", e.EventType)
	default:
	}
	return nil
}

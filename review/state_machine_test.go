package review

import (
	"context"
	"testing"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/smartystreets/goconvey/convey"
)

func TestCastStateToState(t *testing.T) {
	t.Parallel()
	convey.Convey("When a status string is converted to a state", t, func() {
		pendingState, pendingOk := castStateToState(models.StatusPending)
		convey.So(pendingState.Name, convey.ShouldEqual, Pending.Name)
		convey.So(pendingOk, convey.ShouldBeTrue)

		approvedState, approvedOk := castStateToState("approved")
		convey.So(approvedState.Name, convey.ShouldEqual, Approved.Name)
		convey.So(approvedOk, convey.ShouldBeTrue)

		rejectedState, rejectedOk := castStateToState("rejected")
		convey.So(rejectedState.Name, convey.ShouldEqual, Rejected.Name)
		convey.So(rejectedOk, convey.ShouldBeTrue)

		nilState, ok := castStateToState("escalated")
		convey.So(nilState, convey.ShouldBeNil)
		convey.So(ok, convey.ShouldBeFalse)
	})
}

func TestTransition(t *testing.T) {
	convey.Convey("Given a reviewer with the decision state machine", t, func() {
		mockedDataStore := decisionStoreMocks()
		reviewer := getTestReviewer(mockedDataStore, workingSender(), make(chan kafka.BytesMessage, 1))

		convey.Convey("The transition from pending to approved is successful", func() {
			err := reviewer.StateMachine.Transition(testContext, reviewer, testPendingApplication(), &models.Decision{Status: models.StatusApproved}, commissionActor, testRequestMeta)

			convey.So(err, convey.ShouldBeNil)
			convey.So(len(mockedDataStore.UpdateApplicationDecisionCalls()), convey.ShouldEqual, 1)
		})

		convey.Convey("The transition from approved to rejected is successful", func() {
			decision := &models.Decision{Status: models.StatusRejected, Comment: "revised"}
			err := reviewer.StateMachine.Transition(testContext, reviewer, testApprovedApplication(), decision, commissionActor, testRequestMeta)

			convey.So(err, convey.ShouldBeNil)
			convey.So(len(mockedDataStore.UpdateApplicationDecisionCalls()), convey.ShouldEqual, 1)
		})

		convey.Convey("The transition from approved to approved is not allowed", func() {
			err := reviewer.StateMachine.Transition(testContext, reviewer, testApprovedApplication(), &models.Decision{Status: models.StatusApproved}, commissionActor, testRequestMeta)

			convey.So(err, convey.ShouldEqual, errs.ErrDecisionNotAllowed)
			convey.So(len(mockedDataStore.UpdateApplicationDecisionCalls()), convey.ShouldEqual, 0)
		})

		convey.Convey("The transition to an unknown state is invalid", func() {
			err := reviewer.StateMachine.Transition(testContext, reviewer, testPendingApplication(), &models.Decision{Status: "escalated"}, commissionActor, testRequestMeta)

			convey.So(err, convey.ShouldEqual, errs.ErrInvalidDecision)
		})

		convey.Convey("The transition back to pending is invalid", func() {
			err := reviewer.StateMachine.Transition(testContext, reviewer, testApprovedApplication(), &models.Decision{Status: models.StatusPending}, commissionActor, testRequestMeta)

			convey.So(err, convey.ShouldEqual, errs.ErrInvalidDecision)
		})
	})
}

func TestTransitionEnterFuncErrorPropagates(t *testing.T) {
	convey.Convey("Given the decision update fails inside the enter action", t, func() {
		mockedDataStore := decisionStoreMocks()
		mockedDataStore.UpdateApplicationDecisionFunc = func(ctx context.Context, applicationID string, decision *models.Decision, decidedBy string) error {
			return errs.ErrInternalServer
		}
		reviewer := getTestReviewer(mockedDataStore, workingSender(), make(chan kafka.BytesMessage, 1))

		convey.Convey("The transition returns the enter action's error", func() {
			err := reviewer.StateMachine.Transition(testContext, reviewer, testPendingApplication(), &models.Decision{Status: models.StatusApproved}, commissionActor, testRequestMeta)

			convey.So(err, convey.ShouldEqual, errs.ErrInternalServer)
		})
	})
}

func TestAssessmentTransition(t *testing.T) {
	t.Parallel()
	convey.Convey("When an assessment moves between states", t, func() {
		convey.So(AssessmentTransition(models.CreatedState, models.PublishedState), convey.ShouldBeNil)
		convey.So(AssessmentTransition(models.PublishedState, models.PublishedState), convey.ShouldEqual, errs.ErrAssessmentAlreadyPublished)
		convey.So(AssessmentTransition(models.PublishedState, models.CreatedState), convey.ShouldEqual, errs.ErrAssessmentStateInvalid)
		convey.So(AssessmentTransition(models.CreatedState, models.CreatedState), convey.ShouldEqual, errs.ErrAssessmentStateInvalid)
	})
}

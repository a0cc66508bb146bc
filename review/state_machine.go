package review

import (
	"context"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
)

// State is one decision state an application can hold, with the action
// taken on entering it
type State struct {
	Name      string
	EnterFunc func(r *Reviewer, ctx context.Context,
		application *models.Application,
		decision *models.Decision,
		actor *models.Identity,
		meta *RequestMeta) error
}

func (s State) String() string {
	return s.Name
}

// StateMachine guards which decision states an application may move between
type StateMachine struct {
	states      map[string]State
	transitions map[string][]string
}

// Transition names a target state and the states it may be reached from
type Transition struct {
	Label               string
	TargetState         State
	AllowedSourceStates []string
}

func castStateToState(state string) (*State, bool) {
	switch state {
	case models.StatusPending:
		return &Pending, true
	case models.StatusApproved:
		return &Approved, true
	case models.StatusRejected:
		return &Rejected, true
	default:
		return nil, false
	}
}

// NewStateMachine builds a state machine from the allowed transitions
func NewStateMachine(states []State, transitions []Transition) *StateMachine {
	statesMap := make(map[string]State)
	for _, state := range states {
		statesMap[state.String()] = state
	}

	transitionsMap := make(map[string][]string)
	for _, transition := range transitions {
		transitionsMap[transition.TargetState.String()] = transition.AllowedSourceStates
	}

	return &StateMachine{
		states:      statesMap,
		transitions: transitionsMap,
	}
}

// NewDecisionStateMachine wires the moves the commission may make: a
// pending application can be approved or rejected, and a standing decision
// can later be revised the other way. Every change lands in the audit
// trail, so revisions stay accountable.
func NewDecisionStateMachine() *StateMachine {
	states := []State{Pending, Approved, Rejected}
	transitions := []Transition{
		{
			Label:               "approve",
			TargetState:         Approved,
			AllowedSourceStates: []string{models.StatusPending, models.StatusRejected},
		},
		{
			Label:               "reject",
			TargetState:         Rejected,
			AllowedSourceStates: []string{models.StatusPending, models.StatusApproved},
		},
	}
	return NewStateMachine(states, transitions)
}

// Transition moves the application into the decision's target state,
// invoking the state's enter action when the move is allowed
func (sm *StateMachine) Transition(ctx context.Context, r *Reviewer,
	application *models.Application,
	decision *models.Decision,
	actor *models.Identity,
	meta *RequestMeta) error {

	target, ok := castStateToState(decision.Status)
	if !ok || target.EnterFunc == nil {
		return errs.ErrInvalidDecision
	}

	match := false
	for _, source := range sm.transitions[target.Name] {
		if application.Status == source {
			match = true
			break
		}
	}
	if !match {
		return errs.ErrDecisionNotAllowed
	}

	return target.EnterFunc(r, ctx, application, decision, actor, meta)
}

// AssessmentTransition guards the one way move an assessment makes from
// created to published
func AssessmentTransition(current, target string) error {
	if current == models.CreatedState && target == models.PublishedState {
		return nil
	}
	if current == models.PublishedState && target == models.PublishedState {
		return errs.ErrAssessmentAlreadyPublished
	}
	return errs.ErrAssessmentStateInvalid
}

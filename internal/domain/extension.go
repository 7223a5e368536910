package domain

import (
	"fmt"
	"time"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// ExtensionStep represents the current step of the extension workflow.
type ExtensionStep string

const (
	StepForm        ExtensionStep = "form"
	StepChecking    ExtensionStep = "checking"
	StepAvailable   ExtensionStep = "available"
	StepUnavailable ExtensionStep = "unavailable"
	StepPayment     ExtensionStep = "payment"
	StepSuccess     ExtensionStep = "success"
)

// validStepTransitions defines the extension workflow state machine.
// A failed availability request re-enters form; a failed confirmation stays
// in payment.
var validStepTransitions = map[ExtensionStep][]ExtensionStep{
	StepForm:        {StepChecking},
	StepChecking:    {StepAvailable, StepUnavailable, StepForm},
	StepUnavailable: {StepForm},
	StepAvailable:   {StepPayment},
	StepPayment:     {StepAvailable, StepSuccess},
	StepSuccess:     {},
}

// IsValid returns true if the step is a recognized workflow step.
func (s ExtensionStep) IsValid() bool {
	_, exists := validStepTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this step to the target
// is allowed.
func (s ExtensionStep) CanTransitionTo(target ExtensionStep) bool {
	allowed, exists := validStepTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible.
func (s ExtensionStep) IsTerminal() bool {
	allowed, exists := validStepTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// ExtensionSession is the ephemeral state of one extension attempt for a
// booking. It exists so the two-call flow (availability check, then confirm)
// can be validated as a single workflow: a confirmation is only accepted for
// a session whose check was observed as available, for the same proposed end.
type ExtensionSession struct {
	ID         string
	BookingID  int64
	CustomerID int64
	Step       ExtensionStep

	NewEndDate types.DateString
	NewEndTime types.TimeString

	// Pricing returned by the rental platform's availability check.
	AdditionalDays int
	TotalAmount    float64

	AgencyPaymentAvailable bool

	PaymentMethod *PaymentMethod

	// Result of a confirmed extension.
	ExtensionNumber *int
	PaymentStatus   *string

	LastError *string

	// Submitting guards against duplicate concurrent confirm requests for
	// the same session.
	Submitting bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Advance moves the session to the target step. Transitions not in the
// workflow are rejected so a session can never reach, say, success without
// passing through payment.
func (s *ExtensionSession) Advance(target ExtensionStep) error {
	if !s.Step.CanTransitionTo(target) {
		return fmt.Errorf("extension session %s: step %s cannot transition to %s", s.ID, s.Step, target)
	}
	s.Step = target
	return nil
}

// MatchesProposal returns true if the session was checked for exactly the
// given proposed end.
func (s *ExtensionSession) MatchesProposal(endDate types.DateString, endTime types.TimeString) bool {
	return s.NewEndDate == endDate && s.NewEndTime == endTime
}

// CanConfirm returns true if the session is in a step from which a
// confirmation may be issued.
func (s *ExtensionSession) CanConfirm() bool {
	return s.Step == StepAvailable || s.Step == StepPayment
}

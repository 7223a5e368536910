package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

func TestExtensionStep_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   ExtensionStep
		to     ExtensionStep
		wantOK bool
	}{
		{"form to checking", StepForm, StepChecking, true},
		{"checking to available", StepChecking, StepAvailable, true},
		{"checking to unavailable", StepChecking, StepUnavailable, true},
		{"failed check re-enters form", StepChecking, StepForm, true},
		{"unavailable back to form", StepUnavailable, StepForm, true},
		{"available to payment", StepAvailable, StepPayment, true},
		{"payment to success", StepPayment, StepSuccess, true},
		{"payment back to available", StepPayment, StepAvailable, true},

		// Шаги нельзя перепрыгивать
		{"form straight to payment", StepForm, StepPayment, false},
		{"unavailable to payment", StepUnavailable, StepPayment, false},
		{"checking to success", StepChecking, StepSuccess, false},
		{"success is terminal", StepSuccess, StepForm, false},
		{"unknown step", ExtensionStep("done"), StepForm, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestExtensionStep_IsValid(t *testing.T) {
	for _, step := range []ExtensionStep{StepForm, StepChecking, StepAvailable, StepUnavailable, StepPayment, StepSuccess} {
		assert.True(t, step.IsValid(), string(step))
	}
	assert.False(t, ExtensionStep("done").IsValid())
}

func TestExtensionStep_IsTerminal(t *testing.T) {
	assert.True(t, StepSuccess.IsTerminal())
	assert.False(t, StepPayment.IsTerminal())
	assert.False(t, StepForm.IsTerminal())
}

func TestExtensionSession_MatchesProposal(t *testing.T) {
	session := &ExtensionSession{
		NewEndDate: types.DateString("2026-03-14"),
		NewEndTime: types.TimeString("10:00"),
	}

	assert.True(t, session.MatchesProposal(types.DateString("2026-03-14"), types.TimeString("10:00")))
	assert.False(t, session.MatchesProposal(types.DateString("2026-03-15"), types.TimeString("10:00")))
	assert.False(t, session.MatchesProposal(types.DateString("2026-03-14"), types.TimeString("11:00")))
}

func TestExtensionSession_CanConfirm(t *testing.T) {
	assert.True(t, (&ExtensionSession{Step: StepAvailable}).CanConfirm())
	assert.True(t, (&ExtensionSession{Step: StepPayment}).CanConfirm())
	assert.False(t, (&ExtensionSession{Step: StepForm}).CanConfirm())
	assert.False(t, (&ExtensionSession{Step: StepChecking}).CanConfirm())
	assert.False(t, (&ExtensionSession{Step: StepUnavailable}).CanConfirm())
	assert.False(t, (&ExtensionSession{Step: StepSuccess}).CanConfirm())
}

func TestExtensionSession_Advance(t *testing.T) {
	session := &ExtensionSession{ID: "s-1", Step: StepForm}

	require.NoError(t, session.Advance(StepChecking))
	require.NoError(t, session.Advance(StepAvailable))
	require.NoError(t, session.Advance(StepPayment))

	// Платеж нельзя перескочить
	err := (&ExtensionSession{Step: StepAvailable}).Advance(StepSuccess)
	assert.Error(t, err)

	require.NoError(t, session.Advance(StepSuccess))
	assert.Error(t, session.Advance(StepPayment))
	assert.Equal(t, StepSuccess, session.Step)
}

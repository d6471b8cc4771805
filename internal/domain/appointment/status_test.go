package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "in_progress", "completed", "cancelled", "no_show", "rescheduled"} {
		got, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	_, err := ParseStatus("archived")
	assert.Error(t, err)
}

func TestTerminalStatesHaveNoTargets(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusRescheduled} {
		assert.True(t, IsTerminal(s))
		assert.Empty(t, AllowedTargets(s), "no direct target from %s", s)
	}
}

func TestDirectTransitionsExcludeSelfAndDedicatedFlows(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusNoShow} {
		assert.False(t, CanTransition(from, from), "self transition from %s", from)
		assert.False(t, CanTransition(from, StatusCancelled), "direct cancel from %s", from)
		assert.False(t, CanTransition(from, StatusRescheduled), "direct reschedule from %s", from)
	}
}

func TestNoShowOnlyFromConfirmed(t *testing.T) {
	assert.True(t, CanTransition(StatusConfirmed, StatusNoShow))

	for _, from := range []Status{StatusPending, StatusInProgress, StatusNoShow} {
		assert.False(t, CanTransition(from, StatusNoShow), "no_show from %s", from)
	}
}

func TestAllowedTargetsConfirmed(t *testing.T) {
	targets := AllowedTargets(StatusConfirmed)
	assert.ElementsMatch(t,
		[]Status{StatusPending, StatusInProgress, StatusCompleted, StatusNoShow},
		targets,
	)
}

func TestDedicatedFlowGuards(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusNoShow))
	assert.Error(t, CanCancel(StatusCancelled))
	assert.Error(t, CanCancel(StatusCompleted))

	assert.NoError(t, CanReschedule(StatusConfirmed))
	assert.Error(t, CanReschedule(StatusRescheduled))

	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCompleted))
}

func TestReasonVocabularies(t *testing.T) {
	for _, r := range []string{"client_request", "salon_unavailable", "weather", "emergency", "other"} {
		assert.True(t, IsCancelReason(r), r)
	}
	assert.False(t, IsCancelReason("conflict"))
	assert.False(t, IsCancelReason(""))

	for _, r := range []string{"client_request", "salon_unavailable", "conflict", "preference", "other"} {
		assert.True(t, IsRescheduleReason(r), r)
	}
	assert.False(t, IsRescheduleReason("weather"))
	assert.False(t, IsRescheduleReason(""))
}

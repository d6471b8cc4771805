package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

func confirmedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:        12,
		SalonID:   1,
		Date:      "2025-06-10",
		StartTime: "09:00",
		EndTime:   "09:45",
		Status:    string(StatusConfirmed),
	}
}

func TestCancelSetsReasonAndTimestamp(t *testing.T) {
	ap := confirmedAppointment()
	now := time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC)

	err := Cancel(ap, "client_request", "", now)
	require.NoError(t, err)

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, "client_request", ap.CancellationReason)
	assert.Empty(t, ap.CancellationNotes)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCancelRejectsUnknownReason(t *testing.T) {
	ap := confirmedAppointment()

	err := Cancel(ap, "felt_like_it", "", time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_cancel_reason"))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestCancelRejectsTerminalState(t *testing.T) {
	ap := confirmedAppointment()
	ap.Status = string(StatusCompleted)

	err := Cancel(ap, "client_request", "", time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestReschedulePreservesOriginalWindow(t *testing.T) {
	ap := confirmedAppointment()

	err := Reschedule(ap, "2025-06-15", "14:30", "conflict", "", DefaultSlots())
	require.NoError(t, err)

	assert.Equal(t, string(StatusRescheduled), ap.Status)
	assert.Equal(t, "2025-06-10", ap.OriginalDate)
	assert.Equal(t, "09:00", ap.OriginalStartTime)
	assert.Equal(t, "2025-06-15", ap.Date)
	assert.Equal(t, "14:30", ap.StartTime)
	assert.Equal(t, "15:15", ap.EndTime, "45 minute service keeps its duration")
	assert.Equal(t, "conflict", ap.RescheduleReason)
}

func TestRescheduleRejectsOffGridTime(t *testing.T) {
	ap := confirmedAppointment()

	err := Reschedule(ap, "2025-06-15", "13:00", "conflict", "", DefaultSlots())
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"), "lunch gap slot")

	err = Reschedule(ap, "2025-06-15", "14:10", "conflict", "", DefaultSlots())
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"), "off the half-hour")

	assert.Equal(t, "2025-06-10", ap.Date, "failed reschedule leaves the window alone")
	assert.Empty(t, ap.OriginalDate)
}

func TestRescheduleRejectsBadReasonAndDate(t *testing.T) {
	ap := confirmedAppointment()

	err := Reschedule(ap, "2025-06-15", "14:30", "weather", "", DefaultSlots())
	assert.True(t, httperr.IsBusiness(err, "invalid_reschedule_reason"))

	err = Reschedule(ap, "15/06/2025", "14:30", "conflict", "", DefaultSlots())
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestRescheduleRejectsTerminalState(t *testing.T) {
	ap := confirmedAppointment()
	ap.Status = string(StatusRescheduled)

	err := Reschedule(ap, "2025-06-20", "10:00", "preference", "", DefaultSlots())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmOnlyFromPending(t *testing.T) {
	ap := confirmedAppointment()
	ap.Status = string(StatusPending)

	require.NoError(t, Confirm(ap))
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	err := Confirm(ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestChangeStatusCompletedStampsTime(t *testing.T) {
	ap := confirmedAppointment()
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, ChangeStatus(ap, StatusCompleted, now))
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestChangeStatusRejectsIllegalTarget(t *testing.T) {
	ap := confirmedAppointment()
	ap.Status = string(StatusPending)

	err := ChangeStatus(ap, StatusNoShow, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	err = ChangeStatus(ap, StatusCancelled, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

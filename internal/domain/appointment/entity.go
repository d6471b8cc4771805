package appointment

import (
	"time"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Each action validates against the status table, then mutates the loaded row.
// Callers persist only on success, so a failed persistence call leaves the
// stored appointment untouched.

func Cancel(ap *models.Appointment, reason, notes string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	if !IsCancelReason(reason) {
		return httperr.ErrBusiness("invalid_cancel_reason")
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancellationNotes = notes
	ap.CancelledAt = &now
	return nil
}

func Reschedule(ap *models.Appointment, newDate, newTime, reason, notes string, grid SlotGrid) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}
	if !IsRescheduleReason(reason) {
		return httperr.ErrBusiness("invalid_reschedule_reason")
	}
	if _, err := time.Parse(DateLayout, newDate); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if !grid.Contains(newTime) {
		return httperr.ErrBusiness("invalid_time_slot")
	}

	// Keep the service duration when shifting the window.
	durationMin := 0
	if s, err1 := time.Parse(TimeLayout, ap.StartTime); err1 == nil {
		if e, err2 := time.Parse(TimeLayout, ap.EndTime); err2 == nil {
			durationMin = int(e.Sub(s).Minutes())
		}
	}

	ap.OriginalDate = ap.Date
	ap.OriginalStartTime = ap.StartTime
	ap.Date = newDate
	ap.StartTime = newTime
	if durationMin > 0 {
		ap.EndTime = EndTime(newTime, durationMin)
	}
	ap.RescheduleReason = reason
	ap.RescheduleNotes = notes
	ap.Status = string(StatusRescheduled)
	return nil
}

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func ChangeStatus(ap *models.Appointment, to Status, now time.Time) error {
	if !CanTransition(Status(ap.Status), to) {
		return httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(to)
	if to == StatusCompleted {
		ap.CompletedAt = &now
	}
	return nil
}

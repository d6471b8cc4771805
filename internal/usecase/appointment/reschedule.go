package appointment

import (
	"context"

	"github.com/glamsuite/salon-scheduler/internal/audit"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/metrics"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleInput struct {
	SalonID       uint
	UserID        uint
	AppointmentID uint

	NewDate string
	NewTime string
	Reason  string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.SalonID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	grid := domain.SalonSlots(salon)
	if err := domain.Reschedule(ap, in.NewDate, in.NewTime, in.Reason, in.Notes, grid); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.IncTransition(string(domain.StatusRescheduled))

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"reason":   in.Reason,
			"new_date": in.NewDate,
			"new_time": in.NewTime,
		},
	})

	return ap, nil
}

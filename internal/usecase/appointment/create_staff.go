package appointment

import (
	"context"
	"time"

	"github.com/glamsuite/salon-scheduler/internal/audit"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateStaffAppointmentInput struct {
	SalonID uint
	UserID  uint

	ClientID   uint
	EmployeeID uint
	ServiceID  uint

	Date   string
	Time   string
	Notes  string
	Source string
}

// ======================================================
// USE CASE
// ======================================================

// CreateStaffAppointment books from the dashboard for an existing client,
// recording the walk_in/phone/whatsapp channel.
type CreateStaffAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateStaffAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CreateStaffAppointment {
	return &CreateStaffAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CreateStaffAppointment) Execute(
	ctx context.Context,
	in CreateStaffAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	switch in.Source {
	case models.SourceWhatsapp, models.SourcePhone, models.SourceWalkIn:
	default:
		return nil, httperr.ErrBusiness("invalid_source")
	}

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	grid := domain.SalonSlots(salon)
	if !grid.Contains(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	employee, err := uc.repo.GetEmployee(ctx, in.SalonID, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}
	if employee.Role != models.RoleCoiffeur {
		return nil, httperr.ErrBusiness("employee_not_bookable")
	}

	end := domain.EndTime(in.Time, service.DurationMin)

	ap := &models.Appointment{
		SalonID:    in.SalonID,
		ClientID:   in.ClientID,
		EmployeeID: in.EmployeeID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		StartTime:  in.Time,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
		Source:     in.Source,
	}

	// Conflict check and insert run inside one locking transaction.
	if err := uc.repo.CreateAppointmentLocked(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"source": in.Source},
	})

	return ap, nil
}

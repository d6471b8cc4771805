package appointment

import (
	"context"

	"github.com/glamsuite/salon-scheduler/internal/audit"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/metrics"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/timezone"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	appointmentID uint,
	target string,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	to, err := domain.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.ChangeStatus(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if to == domain.StatusCompleted {
		if err := uc.repo.TouchClientVisit(ctx, ap.ClientID, now); err != nil {
			return nil, err
		}
	}

	metrics.IncTransition(string(to))

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"to": string(to)},
	})

	return ap, nil
}

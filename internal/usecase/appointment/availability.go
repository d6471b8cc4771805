package appointment

import (
	"context"
	"time"

	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	SalonID    uint
	ServiceID  uint
	EmployeeID uint
	Date       string
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the slot starts still open for an employee on a date:
// the salon grid minus starts whose service window would overlap a held
// appointment.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	taken, err := uc.repo.ListAppointmentsForEmployeeDay(ctx, in.EmployeeID, in.Date)
	if err != nil {
		return nil, err
	}

	grid := domain.SalonSlots(salon)
	open := []string{}

	for _, start := range grid {
		end := domain.EndTime(start, service.DurationMin)

		conflict := false
		for _, ap := range taken {
			if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}
		if !conflict {
			open = append(open, start)
		}
	}

	return open, nil
}

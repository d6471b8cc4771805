package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/infra/repository"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

func seededRepo() *repository.MemoryRepository {
	repo := repository.NewMemoryRepository()
	repo.Salons[1] = &models.Salon{
		ID: 1, Name: "Belle Époque", Slug: "belle-epoque",
		Timezone: "Africa/Kinshasa", Currency: "CDF", IsActive: true,
		OpeningTime: "09:00", ClosingTime: "19:00",
		LunchStart: "12:30", LunchEnd: "14:00",
	}
	repo.Services[3] = &models.Service{
		ID: 3, SalonID: 1, Name: "Tresses", DurationMin: 60,
		Price: 45000, IsActive: true,
	}
	repo.Employees[7] = &models.Employee{
		ID: 7, SalonID: 1, FirstName: "Grace", LastName: "Mbuyi",
		Role: models.RoleCoiffeur, IsAvailable: true,
	}
	repo.Clients[5] = &models.Client{
		ID: 5, SalonID: 1, FirstName: "Awa", LastName: "Diallo",
		Email: "awa@test.com",
	}
	repo.Appointments[12] = &models.Appointment{
		ID: 12, SalonID: 1, ClientID: 5, EmployeeID: 7, ServiceID: 3,
		Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
		Status: string(domain.StatusConfirmed), Source: models.SourceWebsite,
	}
	return repo
}

func TestCancelWithReasonOnly(t *testing.T) {
	repo := seededRepo()
	uc := NewCancelAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 12, "client_request", "")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", ap.Status)
	assert.Equal(t, "client_request", ap.CancellationReason)
	assert.Empty(t, ap.CancellationNotes)
	assert.NotNil(t, ap.CancelledAt)

	stored := repo.Appointments[12]
	assert.Equal(t, "cancelled", stored.Status)
}

func TestCancelRequiresKnownReason(t *testing.T) {
	repo := seededRepo()
	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 2, 12, "", "notes")
	assert.True(t, httperr.IsBusiness(err, "invalid_cancel_reason"))
	assert.Equal(t, "confirmed", repo.Appointments[12].Status)
}

func TestCancelFailedSaveLeavesStatus(t *testing.T) {
	repo := seededRepo()
	repo.FailUpdateAppointment = errors.New("network down")
	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 2, 12, "weather", "")
	require.Error(t, err)
	assert.Equal(t, "confirmed", repo.Appointments[12].Status)
}

func TestRescheduleScenario(t *testing.T) {
	repo := seededRepo()
	uc := NewRescheduleAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), RescheduleInput{
		SalonID: 1, UserID: 2, AppointmentID: 12,
		NewDate: "2025-06-15", NewTime: "14:30", Reason: "conflict",
	})
	require.NoError(t, err)

	assert.Equal(t, "rescheduled", ap.Status)
	assert.Equal(t, "2025-06-10", ap.OriginalDate)
	assert.Equal(t, "09:00", ap.OriginalStartTime)
	assert.Equal(t, "2025-06-15", ap.Date)
	assert.Equal(t, "14:30", ap.StartTime)
	assert.Equal(t, "15:30", ap.EndTime)
}

func TestRescheduleRejectsLunchSlot(t *testing.T) {
	repo := seededRepo()
	uc := NewRescheduleAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), RescheduleInput{
		SalonID: 1, UserID: 2, AppointmentID: 12,
		NewDate: "2025-06-15", NewTime: "13:30", Reason: "conflict",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"))
}

func TestConfirmOnlyFromPending(t *testing.T) {
	repo := seededRepo()
	repo.Appointments[12].Status = string(domain.StatusPending)
	uc := NewConfirmAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 12)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	_, err = uc.Execute(context.Background(), 1, 2, 12)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestChangeStatusCompletedTouchesClientVisit(t *testing.T) {
	repo := seededRepo()
	uc := NewChangeStatus(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 12, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	assert.NotNil(t, ap.CompletedAt)

	client := repo.Clients[5]
	require.NotNil(t, client.LastVisit)
}

func TestChangeStatusRejectsDedicatedFlowTargets(t *testing.T) {
	repo := seededRepo()
	uc := NewChangeStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 2, 12, "cancelled")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	_, err = uc.Execute(context.Background(), 1, 2, 12, "rescheduled")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	_, err = uc.Execute(context.Background(), 1, 2, 12, "archived")
	assert.True(t, httperr.IsBusiness(err, "unknown_status"))
}

func TestChangeStatusNoShowOnlyFromConfirmed(t *testing.T) {
	repo := seededRepo()
	uc := NewChangeStatus(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, 2, 12, "no_show")
	require.NoError(t, err)
	assert.Equal(t, "no_show", ap.Status)

	repo.Appointments[12].Status = string(domain.StatusPending)
	_, err = uc.Execute(context.Background(), 1, 2, 12, "no_show")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestAvailabilityExcludesHeldWindow(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailability(repo)

	open, err := uc.Execute(context.Background(), AvailabilityInput{
		SalonID: 1, ServiceID: 3, EmployeeID: 7, Date: "2025-06-10",
	})
	require.NoError(t, err)

	// 09:00-10:00 is held, so 09:00 and 09:30 are gone; 10:00 is open.
	assert.NotContains(t, open, "09:00")
	assert.NotContains(t, open, "09:30")
	assert.Contains(t, open, "10:00")
	assert.NotContains(t, open, "13:00")
}

func TestAvailabilityRejectsMalformedDate(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailability(repo)

	for _, date := range []string{"10/06/2025", "2025-6-1", "soon", ""} {
		_, err := uc.Execute(context.Background(), AvailabilityInput{
			SalonID: 1, ServiceID: 3, EmployeeID: 7, Date: date,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date"), date)
	}
}

func TestCreateStaffAppointment(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateStaffAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), CreateStaffAppointmentInput{
		SalonID: 1, UserID: 2, ClientID: 5, EmployeeID: 7, ServiceID: 3,
		Date: "2025-06-11", Time: "10:00", Source: "walk_in",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "walk_in", ap.Source)
	assert.Equal(t, "11:00", ap.EndTime)
}

func TestCreateStaffAppointmentRejectsConflictAndBadSource(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateStaffAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateStaffAppointmentInput{
		SalonID: 1, UserID: 2, ClientID: 5, EmployeeID: 7, ServiceID: 3,
		Date: "2025-06-10", Time: "09:30", Source: "phone",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	_, err = uc.Execute(context.Background(), CreateStaffAppointmentInput{
		SalonID: 1, UserID: 2, ClientID: 5, EmployeeID: 7, ServiceID: 3,
		Date: "2025-06-11", Time: "10:00", Source: "website",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_source"))
}

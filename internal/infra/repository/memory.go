package repository

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

// MemoryRepository is an in-memory Repository used by tests and local tooling.
type MemoryRepository struct {
	mu sync.Mutex

	Salons       map[uint]*models.Salon
	Services     map[uint]*models.Service
	Employees    map[uint]*models.Employee
	Clients      map[uint]*models.Client
	Appointments map[uint]*models.Appointment
	Payments     map[uint]*models.Payment
	Attempts     map[string]*models.BookingAttempt

	nextClientID      uint
	nextAppointmentID uint
	nextPaymentID     uint

	// Error injection for failure-path tests.
	FailCreateAppointment error
	FailCreatePayment     error
	FailUpdateAppointment error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		Salons:            map[uint]*models.Salon{},
		Services:          map[uint]*models.Service{},
		Employees:         map[uint]*models.Employee{},
		Clients:           map[uint]*models.Client{},
		Appointments:      map[uint]*models.Appointment{},
		Payments:          map[uint]*models.Payment{},
		Attempts:          map[string]*models.BookingAttempt{},
		nextClientID:      1,
		nextAppointmentID: 1,
		nextPaymentID:     1,
	}
}

func (r *MemoryRepository) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.Salons[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.Salons {
		if s.Slug == slug && s.IsActive {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.Services[serviceID]; ok && s.SalonID == salonID {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) GetEmployee(_ context.Context, salonID, employeeID uint) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.Employees[employeeID]; ok && e.SalonID == salonID {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) FindClientByEmail(_ context.Context, salonID uint, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.Clients {
		if c.SalonID == salonID && c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) CreateClient(_ context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.Clients {
		if c.SalonID == client.SalonID && c.Email == client.Email {
			*client = *c
			return nil
		}
	}

	client.ID = r.nextClientID
	r.nextClientID++
	client.CreatedAt = time.Now()
	cp := *client
	r.Clients[client.ID] = &cp
	return nil
}

func (r *MemoryRepository) TouchClientVisit(_ context.Context, clientID uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.Clients[clientID]; ok {
		c.LastVisit = &at
	}
	return nil
}

func (r *MemoryRepository) CreateAppointmentLocked(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.Appointments {
		if other.EmployeeID != ap.EmployeeID || other.Date != ap.Date {
			continue
		}
		switch other.Status {
		case "cancelled", "rescheduled", "no_show":
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	if r.FailCreateAppointment != nil {
		return r.FailCreateAppointment
	}

	ap.ID = r.nextAppointmentID
	r.nextAppointmentID++
	ap.CreatedAt = time.Now()
	cp := *ap
	r.Appointments[ap.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap, ok := r.Appointments[appointmentID]; ok && ap.SalonID == salonID {
		cp := *ap
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailUpdateAppointment != nil {
		return r.FailUpdateAppointment
	}

	cp := *ap
	r.Appointments[ap.ID] = &cp
	return nil
}

func (r *MemoryRepository) ListAppointmentsForEmployeeDay(_ context.Context, employeeID uint, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.Appointments {
		if ap.EmployeeID != employeeID || ap.Date != date {
			continue
		}
		switch ap.Status {
		case "cancelled", "rescheduled", "no_show":
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *MemoryRepository) CreatePayment(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreatePayment != nil {
		return r.FailCreatePayment
	}

	p.ID = r.nextPaymentID
	r.nextPaymentID++
	p.CreatedAt = time.Now()
	cp := *p
	r.Payments[p.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetPayment(_ context.Context, salonID, paymentID uint) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.Payments[paymentID]; ok && p.SalonID == salonID {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) CreateAttempt(_ context.Context, at *models.BookingAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at.CreatedAt = time.Now()
	cp := *at
	r.Attempts[at.ID] = &cp
	return nil
}

func (r *MemoryRepository) UpdateAttempt(_ context.Context, at *models.BookingAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *at
	r.Attempts[at.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetAttemptByWizard(_ context.Context, wizardID string) (*models.BookingAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, at := range r.Attempts {
		if at.WizardID == wizardID {
			cp := *at
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

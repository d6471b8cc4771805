package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = true", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	salonID uint,
	employeeID uint,
) (*models.Employee, error) {

	var employee models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", employeeID, salonID).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) FindClientByEmail(
	ctx context.Context,
	salonID uint,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND email = ?", salonID, email).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		// Concurrent booking with the same email: the unique index on
		// (salon_id, email) fired, so reuse the existing record.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := r.FindClientByEmail(ctx, client.SalonID, client.Email)
			if ferr != nil {
				return err
			}
			*client = *existing
			return nil
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) TouchClientVisit(
	ctx context.Context,
	clientID uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Update("last_visit", at).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// Statuses that release an employee's slot.
var releasedStatuses = []string{
	string(domain.StatusCancelled),
	string(domain.StatusRescheduled),
	string(domain.StatusNoShow),
}

func (r *AppointmentGormRepository) CreateAppointmentLocked(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "start_time", "end_time").
			Where(
				"employee_id = ? AND date = ? AND status NOT IN ?",
				ap.EmployeeID, ap.Date, releasedStatuses,
			).
			Find(&taken).Error; err != nil {
			return err
		}

		for _, other := range taken {
			if domain.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
				return httperr.ErrBusiness("time_conflict")
			}
		}

		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service").
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForEmployeeDay(
	ctx context.Context,
	employeeID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"employee_id = ? AND date = ? AND status NOT IN ?",
			employeeID, date, releasedStatuses,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AppointmentGormRepository) GetPayment(
	ctx context.Context,
	salonID uint,
	paymentID uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", paymentID, salonID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Booking attempt
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAttempt(
	ctx context.Context,
	at *models.BookingAttempt,
) error {
	return r.db.WithContext(ctx).Create(at).Error
}

func (r *AppointmentGormRepository) UpdateAttempt(
	ctx context.Context,
	at *models.BookingAttempt,
) error {
	return r.db.WithContext(ctx).Save(at).Error
}

func (r *AppointmentGormRepository) GetAttemptByWizard(
	ctx context.Context,
	wizardID string,
) (*models.BookingAttempt, error) {

	var at models.BookingAttempt
	if err := r.db.WithContext(ctx).
		Where("wizard_id = ?", wizardID).
		First(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

package appointment

import (
	"context"
	"time"

	"github.com/glamsuite/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	GetEmployee(
		ctx context.Context,
		salonID uint,
		employeeID uint,
	) (*models.Employee, error)

	// -------- Client --------
	FindClientByEmail(
		ctx context.Context,
		salonID uint,
		email string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	TouchClientVisit(
		ctx context.Context,
		clientID uint,
		at time.Time,
	) error

	// -------- Appointment --------

	// CreateAppointmentLocked inserts the appointment only if the employee's
	// slots for that day are free, holding the day's rows locked for the
	// duration of the check. Overlap returns the time_conflict business error.
	CreateAppointmentLocked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForEmployeeDay(
		ctx context.Context,
		employeeID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPayment(
		ctx context.Context,
		salonID uint,
		paymentID uint,
	) (*models.Payment, error)

	// -------- Booking attempt --------
	CreateAttempt(
		ctx context.Context,
		at *models.BookingAttempt,
	) error

	UpdateAttempt(
		ctx context.Context,
		at *models.BookingAttempt,
	) error

	GetAttemptByWizard(
		ctx context.Context,
		wizardID string,
	) (*models.BookingAttempt, error)
}

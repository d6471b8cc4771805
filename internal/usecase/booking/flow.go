package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/audit"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/domain/booking"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/infra/wizardstore"
	"github.com/glamsuite/salon-scheduler/internal/metrics"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/payments"
)

const lockTTL = 30 * time.Second

// Flow drives the public booking wizard: guarded step advances, then the
// client -> appointment -> payment sequence with a recorded BookingAttempt.
type Flow struct {
	repo    domain.Repository
	store   *wizardstore.Store
	gateway payments.Gateway
	audit   *audit.Dispatcher
	log     zerolog.Logger
}

func NewFlow(
	repo domain.Repository,
	store *wizardstore.Store,
	gateway payments.Gateway,
	auditDispatcher *audit.Dispatcher,
	log zerolog.Logger,
) *Flow {
	return &Flow{
		repo:    repo,
		store:   store,
		gateway: gateway,
		audit:   auditDispatcher,
		log:     log,
	}
}

// ======================================================
// Session handling
// ======================================================

func (f *Flow) Start(ctx context.Context, slug string) (*booking.Wizard, error) {
	salon, err := f.repo.GetSalonBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	w := booking.New(salon.ID)
	if err := f.store.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (f *Flow) Get(ctx context.Context, wizardID string) (*booking.Wizard, error) {
	w, err := f.store.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, httperr.ErrBusiness("wizard_not_found")
	}
	return w, nil
}

// ======================================================
// Steps 1 and 2
// ======================================================

func (f *Flow) SubmitContact(ctx context.Context, wizardID string, c booking.Contact) (*booking.Wizard, error) {
	w, err := f.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if err := w.SubmitContact(c); err != nil {
		return nil, err
	}
	if err := f.store.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (f *Flow) SelectService(ctx context.Context, wizardID string, serviceID, employeeID uint) (*booking.Wizard, error) {
	w, err := f.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	service, err := f.repo.GetService(ctx, w.SalonID, serviceID)
	if err != nil || !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	employee, err := f.repo.GetEmployee(ctx, w.SalonID, employeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}
	if employee.Role != models.RoleCoiffeur || !employee.IsAvailable {
		return nil, httperr.ErrBusiness("employee_not_bookable")
	}

	if err := w.SubmitSelection(serviceID, employeeID); err != nil {
		return nil, err
	}
	if err := f.store.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (f *Flow) Back(ctx context.Context, wizardID string) (*booking.Wizard, error) {
	w, err := f.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if err := w.Back(); err != nil {
		return nil, err
	}
	if err := f.store.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// ======================================================
// Step 3 -> 4: the booking submission
// ======================================================

func (f *Flow) Schedule(ctx context.Context, wizardID, date, hm, notes string) (*booking.Wizard, error) {
	w, err := f.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	// Single flight per wizard: a rapid double click gets a clean rejection
	// instead of a second appointment.
	ok, err := f.store.TryLock(ctx, wizardID, lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("operation_in_progress")
	}
	defer func() {
		if uerr := f.store.Unlock(ctx, wizardID); uerr != nil {
			f.log.Warn().Err(uerr).Str("wizard", wizardID).Msg("unlock failed")
		}
	}()

	salon, err := f.repo.GetSalonByID(ctx, w.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	grid := domain.SalonSlots(salon)
	if err := w.SetSchedule(date, hm, notes, grid); err != nil {
		return nil, err
	}

	service, err := f.repo.GetService(ctx, w.SalonID, w.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := domain.EndTime(hm, service.DurationMin)

	// The attempt goes first: a retry after a failure that happened past
	// appointment creation must find its own appointment instead of
	// colliding with it.
	attempt, err := f.loadOrCreateAttempt(ctx, w)
	if err != nil {
		return nil, err
	}

	if attempt.AppointmentID == nil {
		client, err := f.resolveClient(ctx, w, attempt)
		if err != nil {
			return nil, f.failAttempt(ctx, attempt, err)
		}

		ap := &models.Appointment{
			SalonID:    w.SalonID,
			ClientID:   client.ID,
			EmployeeID: w.EmployeeID,
			ServiceID:  w.ServiceID,
			Date:       date,
			StartTime:  hm,
			EndTime:    end,
			Status:     string(domain.InitialStatus()),
			Notes:      notes,
			Source:     models.SourceWebsite,
		}
		if err := f.repo.CreateAppointmentLocked(ctx, ap); err != nil {
			return nil, f.failAttempt(ctx, attempt, err)
		}

		attempt.AppointmentID = &ap.ID
		attempt.State = models.AttemptAppointmentCreated
		attempt.LastError = ""
		if err := f.repo.UpdateAttempt(ctx, attempt); err != nil {
			return nil, err
		}

		f.audit.Dispatch(audit.Event{
			SalonID:  w.SalonID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"source": models.SourceWebsite},
		})
	}

	w.MarkScheduled(*attempt.AppointmentID)
	if err := f.store.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// resolveClient returns the salon's client with the wizard's email, creating
// one from the contact fields when absent. An existing record is returned
// unchanged even when the form fields differ.
func (f *Flow) resolveClient(ctx context.Context, w *booking.Wizard, attempt *models.BookingAttempt) (*models.Client, error) {
	existing, err := f.repo.FindClientByEmail(ctx, w.SalonID, w.Contact.Email)
	if err == nil {
		f.markClientResolved(ctx, attempt, existing.ID)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client := &models.Client{
		SalonID:   w.SalonID,
		FirstName: w.Contact.FirstName,
		LastName:  w.Contact.LastName,
		Email:     w.Contact.Email,
		Phone:     w.Contact.Phone,
	}
	if err := f.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	f.markClientResolved(ctx, attempt, client.ID)
	return client, nil
}

func (f *Flow) markClientResolved(ctx context.Context, attempt *models.BookingAttempt, clientID uint) {
	attempt.ClientID = &clientID
	if attempt.State == models.AttemptStarted || attempt.State == models.AttemptFailed {
		attempt.State = models.AttemptClientResolved
	}
	if err := f.repo.UpdateAttempt(ctx, attempt); err != nil {
		f.log.Warn().Err(err).Str("attempt", attempt.ID).Msg("attempt update failed")
	}
}

func (f *Flow) loadOrCreateAttempt(ctx context.Context, w *booking.Wizard) (*models.BookingAttempt, error) {
	if existing, err := f.repo.GetAttemptByWizard(ctx, w.ID); err == nil {
		w.AttemptID = existing.ID
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attempt := &models.BookingAttempt{
		ID:       uuid.NewString(),
		SalonID:  w.SalonID,
		WizardID: w.ID,
		State:    models.AttemptStarted,
	}
	if err := f.repo.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	w.AttemptID = attempt.ID
	return attempt, nil
}

func (f *Flow) failAttempt(ctx context.Context, attempt *models.BookingAttempt, cause error) error {
	attempt.State = models.AttemptFailed
	attempt.LastError = cause.Error()
	if err := f.repo.UpdateAttempt(ctx, attempt); err != nil {
		f.log.Warn().Err(err).Str("attempt", attempt.ID).Msg("attempt update failed")
	}
	return cause
}

// ======================================================
// Step 4 -> 5: payment
// ======================================================

func (f *Flow) Pay(ctx context.Context, wizardID, method, airtelPhone string) (*booking.Wizard, error) {
	w, err := f.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}

	if err := w.SetPayment(method, airtelPhone); err != nil {
		return nil, err
	}

	ok, err := f.store.TryLock(ctx, wizardID, lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("operation_in_progress")
	}
	defer func() {
		if uerr := f.store.Unlock(ctx, wizardID); uerr != nil {
			f.log.Warn().Err(uerr).Str("wizard", wizardID).Msg("unlock failed")
		}
	}()

	salon, err := f.repo.GetSalonByID(ctx, w.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	service, err := f.repo.GetService(ctx, w.SalonID, w.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	attempt, err := f.repo.GetAttemptByWizard(ctx, w.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("attempt_not_found")
	}
	if attempt.AppointmentID == nil || attempt.ClientID == nil {
		return nil, httperr.ErrBusiness("invalid_step")
	}

	result, err := f.gateway.Charge(ctx, payments.ChargeRequest{
		Method:   method,
		Phone:    w.AirtelPhone,
		Amount:   service.Price,
		Currency: salon.Currency,
	})
	if err != nil {
		metrics.IncPayment(method, "failed")
		// The appointment stays pending; the wizard stays on step 4 so the
		// visitor can retry the payment alone.
		return nil, f.failAttempt(ctx, attempt, err)
	}

	payment := &models.Payment{
		SalonID:       w.SalonID,
		AppointmentID: *attempt.AppointmentID,
		ClientID:      *attempt.ClientID,
		Amount:        service.Price,
		Method:        method,
		Status:        result.Status,
		Reference:     result.Reference,
	}
	if err := f.repo.CreatePayment(ctx, payment); err != nil {
		metrics.IncPayment(method, "failed")
		return nil, f.failAttempt(ctx, attempt, err)
	}

	attempt.PaymentID = &payment.ID
	attempt.State = models.AttemptPaid
	attempt.LastError = ""
	if err := f.repo.UpdateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	w.MarkPaid(payment.ID)
	if err := f.store.Save(ctx, w); err != nil {
		return nil, err
	}

	metrics.IncPayment(method, result.Status)
	metrics.IncBookingCompleted()

	f.audit.Dispatch(audit.Event{
		SalonID:  w.SalonID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &payment.ID,
		Metadata: map[string]any{"method": method},
	})

	return w, nil
}

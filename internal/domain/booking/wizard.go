package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/validators"
)

// ===============================
// Wizard Steps
// ===============================

type Step int

const (
	StepContact   Step = 1
	StepSelection Step = 2
	StepSchedule  Step = 3
	StepPayment   Step = 4
	StepDone      Step = 5
)

type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Wizard is one public booking session. It lives in the session store between
// requests; every mutation below is a guarded forward or backward edge, and
// backward edges never clear accumulated fields.
type Wizard struct {
	ID      string `json:"id"`
	SalonID uint   `json:"salon_id"`
	Step    Step   `json:"step"`

	Contact Contact `json:"contact"`

	ServiceID  uint `json:"service_id"`
	EmployeeID uint `json:"employee_id"`

	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`

	PaymentMethod string `json:"payment_method"`
	AirtelPhone   string `json:"airtel_phone"`

	AppointmentID uint   `json:"appointment_id"`
	PaymentID     uint   `json:"payment_id"`
	AttemptID     string `json:"attempt_id"`

	CreatedAt time.Time `json:"created_at"`
}

func New(salonID uint) *Wizard {
	return &Wizard{
		ID:        uuid.NewString(),
		SalonID:   salonID,
		Step:      StepContact,
		CreatedAt: time.Now().UTC(),
	}
}

// ===============================
// Forward edges
// ===============================

func (w *Wizard) SubmitContact(c Contact) error {
	if w.Step != StepContact {
		return httperr.ErrBusiness("invalid_step")
	}

	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)

	if c.FirstName == "" || c.LastName == "" || c.Email == "" || c.Phone == "" {
		return httperr.ErrBusiness("missing_contact_fields")
	}
	if !validators.IsEmailValid(c.Email) {
		return httperr.ErrBusiness("invalid_email")
	}

	w.Contact = c
	w.Step = StepSelection
	return nil
}

func (w *Wizard) SubmitSelection(serviceID, employeeID uint) error {
	if w.Step != StepSelection {
		return httperr.ErrBusiness("invalid_step")
	}
	if serviceID == 0 || employeeID == 0 {
		return httperr.ErrBusiness("missing_selection")
	}

	w.ServiceID = serviceID
	w.EmployeeID = employeeID
	w.Step = StepSchedule
	return nil
}

// SetSchedule records the slot choice without advancing: the 3->4 edge is the
// booking submission, so only MarkScheduled moves the step once the
// appointment exists.
func (w *Wizard) SetSchedule(date, hm, notes string, grid appointment.SlotGrid) error {
	if w.Step != StepSchedule {
		return httperr.ErrBusiness("invalid_step")
	}
	if date == "" || hm == "" {
		return httperr.ErrBusiness("missing_schedule")
	}
	if _, err := time.Parse(appointment.DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if !grid.Contains(hm) {
		return httperr.ErrBusiness("invalid_time_slot")
	}

	w.Date = date
	w.Time = hm
	w.Notes = notes
	return nil
}

func (w *Wizard) MarkScheduled(appointmentID uint) {
	w.AppointmentID = appointmentID
	w.Step = StepPayment
}

func (w *Wizard) SetPayment(method, airtelPhone string) error {
	if w.Step != StepPayment {
		return httperr.ErrBusiness("invalid_step")
	}

	switch method {
	case models.PaymentMethodAirtelMoney:
		if strings.TrimSpace(airtelPhone) == "" {
			return httperr.ErrBusiness("missing_airtel_phone")
		}
	case models.PaymentMethodCashOnArrival:
		// No extra detail required.
	case "":
		return httperr.ErrBusiness("missing_payment_method")
	default:
		return httperr.ErrBusiness("invalid_payment_method")
	}

	w.PaymentMethod = method
	w.AirtelPhone = strings.TrimSpace(airtelPhone)
	return nil
}

func (w *Wizard) MarkPaid(paymentID uint) {
	w.PaymentID = paymentID
	w.Step = StepDone
}

// ===============================
// Backward edge
// ===============================

func (w *Wizard) Back() error {
	if w.Step <= StepContact || w.Step >= StepDone {
		return httperr.ErrBusiness("invalid_step")
	}
	if w.Step == StepPayment && w.AppointmentID != 0 {
		// The appointment already exists; going back would detach it.
		return httperr.ErrBusiness("invalid_step")
	}

	w.Step--
	return nil
}

func (w *Wizard) Done() bool {
	return w.Step == StepDone
}

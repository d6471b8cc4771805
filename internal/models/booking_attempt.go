package models

import "time"

const (
	AttemptStarted            = "started"
	AttemptClientResolved     = "client_resolved"
	AttemptAppointmentCreated = "appointment_created"
	AttemptPaid               = "paid"
	AttemptFailed             = "failed"
)

// BookingAttempt records how far a wizard submission got through the
// client -> appointment -> payment sequence, so a payment failure is
// retryable instead of leaving an orphaned pending appointment with no trace.
type BookingAttempt struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	SalonID  uint   `json:"salon_id"`
	WizardID string `gorm:"size:36;index" json:"wizard_id"`

	ClientID      *uint `json:"client_id"`
	AppointmentID *uint `json:"appointment_id"`
	PaymentID     *uint `json:"payment_id"`

	State     string `gorm:"size:30;default:'started'" json:"state"`
	LastError string `gorm:"size:255" json:"last_error"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

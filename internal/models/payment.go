package models

import "time"

const (
	PaymentMethodAirtelMoney   = "airtel_money"
	PaymentMethodCashOnArrival = "cash_on_arrival"

	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusFailed    = "failed"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID       uint `json:"salon_id"`
	AppointmentID uint `gorm:"uniqueIndex" json:"appointment_id"`
	ClientID      uint `json:"client_id"`

	Amount float64 `json:"amount"`
	Method string  `gorm:"size:20;not null" json:"method"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	// Provider confirmation reference for airtel_money, internal otherwise.
	Reference string `gorm:"size:64" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
}

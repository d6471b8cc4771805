package models

import "time"

// Stored only; delivery (email/SMS) is handled outside this service.
type ContactMessage struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Subject string `gorm:"size:100" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}

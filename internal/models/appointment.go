package models

import "time"

const (
	SourceWhatsapp = "whatsapp"
	SourceWebsite  = "website"
	SourcePhone    = "phone"
	SourceWalkIn   = "walk_in"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	EmployeeID uint     `json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Wire formats: Date yyyy-MM-dd, times HH:mm.
	Date      string `gorm:"size:10;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`
	Source string `gorm:"size:20;default:'website'" json:"source"`

	CancellationReason string `gorm:"size:30" json:"cancellation_reason,omitempty"`
	CancellationNotes  string `gorm:"size:255" json:"cancellation_notes,omitempty"`

	RescheduleReason  string `gorm:"size:30" json:"reschedule_reason,omitempty"`
	RescheduleNotes   string `gorm:"size:255" json:"reschedule_notes,omitempty"`
	OriginalDate      string `gorm:"size:10" json:"original_date,omitempty"`
	OriginalStartTime string `gorm:"size:5" json:"original_start_time,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

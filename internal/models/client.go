package models

import "time"

// One client record per email per salon; the booking flow relies on this for
// lookup-or-create.
type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_clients_salon_email,unique" json:"salon_id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100;not null;index:idx_clients_salon_email,unique" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`

	Preferences string `gorm:"size:255" json:"preferences"`
	Notes       string `gorm:"size:255" json:"notes"`

	LastVisit *time.Time `json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

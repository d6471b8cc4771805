package models

import "time"

const (
	RoleAdmin          = "admin"
	RoleCoiffeur       = "coiffeur"
	RoleReceptionniste = "receptionniste"
)

type Employee struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`

	Role  string `gorm:"size:20;default:'coiffeur'" json:"role"`
	Photo string `gorm:"size:255" json:"photo"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

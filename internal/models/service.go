package models

import "time"

type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	Category string `gorm:"size:50" json:"category"`
	Target   string `gorm:"size:50" json:"target"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	// URLs only; binary storage lives outside this service.
	Image  string `gorm:"size:255" json:"image"`
	Images string `gorm:"type:text" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

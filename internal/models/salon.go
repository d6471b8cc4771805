package models

import "time"

type Salon struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Currency     string `gorm:"size:10;default:'CDF'" json:"currency"`
	Timezone     string `gorm:"size:50;default:'Africa/Kinshasa'" json:"timezone"`
	PrimaryColor string `gorm:"size:20" json:"primary_color"`

	// Daily schedule feeding the half-hour booking grid.
	OpeningTime string `gorm:"size:5;default:'09:00'" json:"opening_time"`
	ClosingTime string `gorm:"size:5;default:'19:00'" json:"closing_time"`
	LunchStart  string `gorm:"size:5;default:'12:30'" json:"lunch_start"`
	LunchEnd    string `gorm:"size:5;default:'14:00'" json:"lunch_end"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

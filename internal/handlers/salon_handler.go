package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/httpresp"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

func (h *SalonHandler) Get(c *gin.Context) {
	var salon models.Salon
	if err := h.db.First(&salon, currentSalonID(c)).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon introuvable.")
		return
	}

	httpresp.OK(c, salon)
}

type SalonUpdateRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Currency     string `json:"currency"`
	Timezone     string `json:"timezone"`
	PrimaryColor string `json:"primary_color"`
	OpeningTime  string `json:"opening_time"`
	ClosingTime  string `json:"closing_time"`
	LunchStart   string `json:"lunch_start"`
	LunchEnd     string `json:"lunch_end"`
}

func validClock(hm string) bool {
	_, err := time.Parse(domain.TimeLayout, hm)
	return err == nil
}

// Update patches salon settings. Schedule changes reshape the public
// booking grid on the next request.
func (h *SalonHandler) Update(c *gin.Context) {
	var salon models.Salon
	if err := h.db.First(&salon, currentSalonID(c)).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon introuvable.")
		return
	}

	var req SalonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Fuseau horaire invalide.")
		return
	}
	for _, hm := range []string{req.OpeningTime, req.ClosingTime, req.LunchStart, req.LunchEnd} {
		if hm != "" && !validClock(hm) {
			httperr.BadRequest(c, "invalid_time_slot", "Horaire attendu au format HH:mm.")
			return
		}
	}

	if v := strings.TrimSpace(req.Name); v != "" {
		salon.Name = v
	}
	if req.Email != "" {
		salon.Email = req.Email
	}
	if req.Phone != "" {
		salon.Phone = req.Phone
	}
	if req.Address != "" {
		salon.Address = req.Address
	}
	if req.Currency != "" {
		salon.Currency = req.Currency
	}
	if req.Timezone != "" {
		salon.Timezone = req.Timezone
	}
	if req.PrimaryColor != "" {
		salon.PrimaryColor = req.PrimaryColor
	}
	if req.OpeningTime != "" {
		salon.OpeningTime = req.OpeningTime
	}
	if req.ClosingTime != "" {
		salon.ClosingTime = req.ClosingTime
	}
	if req.LunchStart != "" {
		salon.LunchStart = req.LunchStart
	}
	if req.LunchEnd != "" {
		salon.LunchEnd = req.LunchEnd
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Erreur lors de la mise à jour du salon.")
		return
	}

	httpresp.OK(c, salon)
}

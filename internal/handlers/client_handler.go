package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/httpresp"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Preferences string `json:"preferences"`
	Notes       string `json:"notes"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Adresse email invalide.")
		return
	}

	client := models.Client{
		SalonID:     currentSalonID(c),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		Preferences: req.Preferences,
		Notes:       req.Notes,
	}
	if err := h.db.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "client_already_exists", "Un client existe déjà avec cet email.")
			return
		}
		httperr.Internal(c, "failed_to_create_client", "Erreur lors de la création du client.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client introuvable.")
		return
	}

	httpresp.OK(c, client)
}

// List supports a free-text query over name, email and phone.
func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.Where("salon_id = ?", currentSalonID(c))

	if query := strings.TrimSpace(strings.ToLower(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("last_name ASC, first_name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erreur lors du chargement des clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client introuvable.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Adresse email invalide.")
		return
	}

	client.FirstName = strings.TrimSpace(req.FirstName)
	client.LastName = strings.TrimSpace(req.LastName)
	client.Email = email
	client.Phone = strings.TrimSpace(req.Phone)
	client.Preferences = req.Preferences
	client.Notes = req.Notes

	if err := h.db.Save(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "client_already_exists", "Un client existe déjà avec cet email.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "Erreur lors de la mise à jour du client.")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client introuvable.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Service").Preload("Employee").
		Where("salon_id = ? AND client_id = ?", currentSalonID(c), id).
		Order("date DESC, start_time DESC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erreur lors du chargement de l'historique.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result := h.db.Where("salon_id = ?", currentSalonID(c)).Delete(&models.Client{}, id)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erreur lors de la suppression du client.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Client introuvable.")
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/cache"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/httpresp"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
}

func NewServiceHandler(db *gorm.DB, catalog *cache.Catalog) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	Target      string  `json:"target"`
	Image       string  `json:"image"`
	Images      string  `json:"images"`
	IsActive    *bool   `json:"is_active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}
	if req.DurationMin <= 0 || req.Price < 0 {
		httperr.BadRequest(c, "invalid_service", "Durée et prix invalides.")
		return
	}

	service := models.Service{
		SalonID:     currentSalonID(c),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    req.Category,
		Target:      req.Target,
		Image:       req.Image,
		Images:      req.Images,
		IsActive:    true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erreur lors de la création du service.")
		return
	}

	h.catalog.InvalidateServices(c.Request.Context(), service.SalonID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service introuvable.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Where("salon_id = ?", currentSalonID(c))

	if category := strings.TrimSpace(strings.ToLower(c.Query("category"))); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erreur lors du chargement des services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service introuvable.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}
	if req.DurationMin <= 0 || req.Price < 0 {
		httperr.BadRequest(c, "invalid_service", "Durée et prix invalides.")
		return
	}

	service.Name = strings.TrimSpace(req.Name)
	service.Description = req.Description
	service.DurationMin = req.DurationMin
	service.Price = req.Price
	service.Category = req.Category
	service.Target = req.Target
	service.Image = req.Image
	service.Images = req.Images
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erreur lors de la mise à jour du service.")
		return
	}

	h.catalog.InvalidateServices(c.Request.Context(), service.SalonID)
	httpresp.OK(c, service)
}

// Delete deactivates instead of removing so past appointments keep their
// service reference.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result := h.db.Model(&models.Service{}).
		Where("salon_id = ? AND id = ?", currentSalonID(c), id).
		Update("is_active", false)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erreur lors de la suppression du service.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service introuvable.")
		return
	}

	h.catalog.InvalidateServices(c.Request.Context(), currentSalonID(c))
	c.Status(http.StatusNoContent)
}

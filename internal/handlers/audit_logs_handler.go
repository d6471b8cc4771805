package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/httpresp"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the most recent entries first, capped at 200 per page.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Where("salon_id = ?", currentSalonID(c))

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}

	var logs []models.AuditLog
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erreur lors du chargement du journal.")
		return
	}

	httpresp.List(c, logs)
}

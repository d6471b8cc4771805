package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/httpresp"
	"github.com/glamsuite/salon-scheduler/internal/metrics"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&payment, id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Paiement introuvable.")
		return
	}

	httpresp.OK(c, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.db.Where("salon_id = ?", currentSalonID(c))

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if method := c.Query("method"); method != "" {
		q = q.Where("method = ?", method)
	}

	var payments []models.Payment
	if err := q.Order("created_at DESC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Erreur lors du chargement des paiements.")
		return
	}

	httpresp.List(c, payments)
}

// Confirm settles a cash_on_arrival payment when the client shows up.
// Airtel payments are confirmed by the provider flow, never here.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&payment, id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Paiement introuvable.")
		return
	}

	if payment.Method != models.PaymentMethodCashOnArrival {
		httperr.Conflict(c, "invalid_payment_method", "Seuls les paiements sur place se confirment ici.")
		return
	}
	if payment.Status != models.PaymentStatusPending {
		httperr.Conflict(c, "invalid_state", "Ce paiement n'est plus en attente.")
		return
	}

	payment.Status = models.PaymentStatusConfirmed
	if err := h.db.Save(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "Erreur lors de la confirmation du paiement.")
		return
	}

	metrics.IncPayment(payment.Method, payment.Status)
	httpresp.OK(c, payment)
}

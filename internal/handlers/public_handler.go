package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/cache"
	"github.com/glamsuite/salon-scheduler/internal/domain/booking"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
	apptUC "github.com/glamsuite/salon-scheduler/internal/usecase/appointment"
	bookingUC "github.com/glamsuite/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	catalog      *cache.Catalog
	flow         *bookingUC.Flow
	availability *apptUC.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	catalog *cache.Catalog,
	flow *bookingUC.Flow,
	availability *apptUC.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		catalog:      catalog,
		flow:         flow,
		availability: availability,
	}
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ? AND is_active = true", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon introuvable.")
		return nil, false
	}
	return &salon, true
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, salon)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	// The cache holds the unfiltered list; filtered reads go to the DB.
	if category == "" && query == "" {
		if services, hit := h.catalog.GetServices(c.Request.Context(), salon.ID); hit {
			c.JSON(http.StatusOK, gin.H{"salon": salon, "services": services})
			return
		}
	}

	q := h.db.Where("salon_id = ? AND is_active = true", salon.ID)
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erreur lors du chargement des services.")
		return
	}

	if category == "" && query == "" {
		h.catalog.SetServices(c.Request.Context(), salon.ID, services)
	}

	c.JSON(http.StatusOK, gin.H{"salon": salon, "services": services})
}

func (h *PublicHandler) ListStylists(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var stylists []models.Employee
	if err := h.db.
		Where("salon_id = ? AND role = ? AND is_available = true", salon.ID, models.RoleCoiffeur).
		Order("first_name ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Erreur lors du chargement des coiffeurs.")
		return
	}

	c.JSON(http.StatusOK, stylists)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	date := c.Query("date")
	serviceIDStr := c.Query("service_id")
	employeeIDStr := c.Query("employee_id")
	if date == "" || serviceIDStr == "" || employeeIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date, service et coiffeur obligatoires.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service invalide.")
		return
	}
	employeeID, err := strconv.ParseUint(employeeIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "Coiffeur invalide.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), apptUC.AvailabilityInput{
		SalonID:    salon.ID,
		ServiceID:  uint(serviceID),
		EmployeeID: uint(employeeID),
		Date:       date,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

////////////////////////////////////////////////////////
// CONTACT
////////////////////////////////////////////////////////

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

func (h *PublicHandler) CreateContactMessage(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	msg := models.ContactMessage{
		SalonID: salon.ID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_message", "Erreur lors de l'envoi du message.")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

////////////////////////////////////////////////////////
// BOOKING WIZARD
////////////////////////////////////////////////////////

func (h *PublicHandler) StartWizard(c *gin.Context) {
	w, err := h.flow.Start(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *PublicHandler) GetWizard(c *gin.Context) {
	w, err := h.flow.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req booking.Contact
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	w, err := h.flow.SubmitContact(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type SelectionRequest struct {
	ServiceID  uint `json:"service_id"`
	EmployeeID uint `json:"employee_id"`
}

func (h *PublicHandler) SelectService(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	w, err := h.flow.SelectService(c.Request.Context(), c.Param("id"), req.ServiceID, req.EmployeeID)
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type ScheduleRequest struct {
	Date  string `json:"date"`  // yyyy-MM-dd
	Time  string `json:"time"`  // HH:mm
	Notes string `json:"notes"`
}

func (h *PublicHandler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	w, err := h.flow.Schedule(c.Request.Context(), c.Param("id"), req.Date, req.Time, req.Notes)
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

type WizardPaymentRequest struct {
	Method      string `json:"method"`
	AirtelPhone string `json:"airtel_phone"`
}

func (h *PublicHandler) Pay(c *gin.Context) {
	var req WizardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	w, err := h.flow.Pay(c.Request.Context(), c.Param("id"), req.Method, req.AirtelPhone)
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *PublicHandler) Back(c *gin.Context) {
	w, err := h.flow.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *PublicHandler) Receipt(c *gin.Context) {
	receipt, err := h.flow.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

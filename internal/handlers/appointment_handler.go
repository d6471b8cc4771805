package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/httpresp"
	"github.com/glamsuite/salon-scheduler/internal/models"
	apptUC "github.com/glamsuite/salon-scheduler/internal/usecase/appointment"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type AppointmentHandler struct {
	db           *gorm.DB
	create       *apptUC.CreateStaffAppointment
	changeStatus *apptUC.ChangeStatus
	cancel       *apptUC.CancelAppointment
	reschedule   *apptUC.RescheduleAppointment
	confirm      *apptUC.ConfirmAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *apptUC.CreateStaffAppointment,
	changeStatus *apptUC.ChangeStatus,
	cancel *apptUC.CancelAppointment,
	reschedule *apptUC.RescheduleAppointment,
	confirm *apptUC.ConfirmAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		create:       create,
		changeStatus: changeStatus,
		cancel:       cancel,
		reschedule:   reschedule,
		confirm:      confirm,
	}
}

////////////////////////////////////////////////////////
// CREATE / READ
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ClientID   uint   `json:"client_id" binding:"required"`
	EmployeeID uint   `json:"employee_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
	Source     string `json:"source" binding:"required"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), apptUC.CreateStaffAppointmentInput{
		SalonID:    currentSalonID(c),
		UserID:     currentUserID(c),
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
		Source:     req.Source,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Client").Preload("Employee").Preload("Service").
		Where("salon_id = ?", currentSalonID(c)).
		First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Rendez-vous introuvable.")
		return
	}

	httpresp.OK(c, ap)
}

// List returns the day view. Optional filters: employee_id, status.
func (h *AppointmentHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	q := h.db.
		Preload("Client").Preload("Employee").Preload("Service").
		Where("salon_id = ? AND date = ?", currentSalonID(c), date)

	if employeeID := c.Query("employee_id"); employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := q.Order("start_time ASC").Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erreur lors du chargement des rendez-vous.")
		return
	}

	httpresp.List(c, appointments)
}

// ListByMonth feeds the calendar: one row per day with the booking count.
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	month := c.Query("month")
	if !monthPattern.MatchString(month) {
		httperr.BadRequest(c, "invalid_month", "Mois attendu au format yyyy-MM.")
		return
	}

	type dayCount struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	}

	var days []dayCount
	if err := h.db.Model(&models.Appointment{}).
		Select("date, COUNT(*) AS count").
		Where("salon_id = ? AND date LIKE ?", currentSalonID(c), month+"%").
		Where("status NOT IN ?", []string{"cancelled", "rescheduled"}).
		Group("date").
		Order("date ASC").
		Scan(&days).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erreur lors du chargement du calendrier.")
		return
	}

	httpresp.List(c, days)
}

////////////////////////////////////////////////////////
// STATUS TRANSITIONS
////////////////////////////////////////////////////////

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), currentSalonID(c), currentUserID(c), id, req.Status)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), currentSalonID(c), currentUserID(c), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
	Notes  string `json:"notes"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Motif d'annulation obligatoire.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), currentSalonID(c), currentUserID(c), id, req.Reason, req.Notes)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

type RescheduleRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason" binding:"required"`
	Notes  string `json:"notes"`
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), apptUC.RescheduleInput{
		SalonID:       currentSalonID(c),
		UserID:        currentUserID(c),
		AppointmentID: id,
		NewDate:       req.Date,
		NewTime:       req.Time,
		Reason:        req.Reason,
		Notes:         req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

////////////////////////////////////////////////////////
// ADMIN
////////////////////////////////////////////////////////

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result := h.db.
		Where("salon_id = ?", currentSalonID(c)).
		Delete(&models.Appointment{}, id)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erreur lors de la suppression.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "appointment_not_found", "Rendez-vous introuvable.")
		return
	}

	c.Status(http.StatusNoContent)
}

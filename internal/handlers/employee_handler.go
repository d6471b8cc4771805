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

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleCoiffeur, models.RoleReceptionniste:
		return true
	}
	return false
}

type EmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Role        string `json:"role" binding:"required"`
	Photo       string `json:"photo"`
	IsAvailable *bool  `json:"is_available"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}
	if !validRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Rôle invalide.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Adresse email invalide.")
		return
	}

	employee := models.Employee{
		SalonID:     currentSalonID(c),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		Role:        req.Role,
		Photo:       req.Photo,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		employee.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "employee_already_exists", "Un employé existe déjà avec cet email.")
			return
		}
		httperr.Internal(c, "failed_to_create_employee", "Erreur lors de la création de l'employé.")
		return
	}

	httpresp.Created(c, employee)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&employee, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Employé introuvable.")
		return
	}

	httpresp.OK(c, employee)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	q := h.db.Where("salon_id = ?", currentSalonID(c))

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var employees []models.Employee
	if err := q.Order("first_name ASC").Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Erreur lors du chargement des employés.")
		return
	}

	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := h.db.Where("salon_id = ?", currentSalonID(c)).First(&employee, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Employé introuvable.")
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}
	if !validRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Rôle invalide.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Adresse email invalide.")
		return
	}

	employee.FirstName = strings.TrimSpace(req.FirstName)
	employee.LastName = strings.TrimSpace(req.LastName)
	employee.Email = email
	employee.Phone = strings.TrimSpace(req.Phone)
	employee.Role = req.Role
	employee.Photo = req.Photo
	if req.IsAvailable != nil {
		employee.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "employee_already_exists", "Un employé existe déjà avec cet email.")
			return
		}
		httperr.Internal(c, "failed_to_update_employee", "Erreur lors de la mise à jour de l'employé.")
		return
	}

	httpresp.OK(c, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result := h.db.Where("salon_id = ?", currentSalonID(c)).Delete(&models.Employee{}, id)
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_employee", "Erreur lors de la suppression de l'employé.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "Employé introuvable.")
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
)

// Business codes grouped by the HTTP status they translate to.
var businessStatus = map[string]int{
	"salon_not_found":       http.StatusNotFound,
	"wizard_not_found":      http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"employee_not_found":    http.StatusNotFound,
	"attempt_not_found":     http.StatusNotFound,

	"time_conflict":         http.StatusConflict,
	"operation_in_progress": http.StatusConflict,
	"invalid_transition":    http.StatusConflict,
	"invalid_state":         http.StatusConflict,

	"invalid_step":          http.StatusUnprocessableEntity,
	"booking_not_completed": http.StatusUnprocessableEntity,
}

var businessMessage = map[string]string{
	"salon_not_found":           "Salon introuvable.",
	"wizard_not_found":          "Réservation introuvable ou expirée.",
	"appointment_not_found":     "Rendez-vous introuvable.",
	"service_not_found":         "Service introuvable.",
	"employee_not_found":        "Coiffeur introuvable.",
	"attempt_not_found":         "Tentative de réservation introuvable.",
	"employee_not_bookable":     "Ce coiffeur n'est pas disponible à la réservation.",
	"time_conflict":             "Ce créneau vient d'être réservé.",
	"operation_in_progress":     "Une opération est déjà en cours pour cette réservation.",
	"invalid_transition":        "Changement de statut non autorisé.",
	"invalid_state":             "Opération impossible dans l'état actuel.",
	"invalid_step":              "Étape invalide pour cette opération.",
	"booking_not_completed":     "La réservation n'est pas terminée.",
	"invalid_email":             "Adresse email invalide.",
	"missing_contact_fields":    "Nom, email et téléphone obligatoires.",
	"missing_selection":         "Service et coiffeur obligatoires.",
	"missing_schedule":          "Date et heure obligatoires.",
	"invalid_date":              "Date invalide.",
	"invalid_time_slot":         "Créneau horaire invalide.",
	"missing_payment_method":    "Mode de paiement obligatoire.",
	"invalid_payment_method":    "Mode de paiement invalide.",
	"missing_airtel_phone":      "Numéro Airtel Money obligatoire.",
	"invalid_amount":            "Montant invalide.",
	"invalid_cancel_reason":     "Motif d'annulation invalide.",
	"invalid_reschedule_reason": "Motif de report invalide.",
	"invalid_source":            "Source de rendez-vous invalide.",
	"unknown_status":            "Statut inconnu.",
}

// mapBookingError translates business errors into HTTP responses.
// Unknown codes default to 400, non-business errors to 500.
func mapBookingError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Une erreur interne est survenue.")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusBadRequest
	}
	message, ok := businessMessage[code]
	if !ok {
		message = "Requête invalide."
	}
	httperr.Write(c, status, code, message)
}

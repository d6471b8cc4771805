package appointment

import "github.com/glamsuite/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled:
		return Status(s), nil
	default:
		return "", httperr.ErrBusiness("unknown_status")
	}
}

// IsTerminal reports whether no further scheduling action is offered.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRescheduled
}

// Direct status changes. Cancelled and rescheduled are reachable only through
// the dedicated flows carrying a reason, so they never appear as targets here.
// no_show is only a target from confirmed.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
	},
	StatusConfirmed: {
		StatusPending:    true,
		StatusInProgress: true,
		StatusCompleted:  true,
		StatusNoShow:     true,
	},
	StatusInProgress: {
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: true,
	},
	StatusNoShow: {
		StatusPending:    true,
		StatusConfirmed:  true,
		StatusInProgress: true,
		StatusCompleted:  true,
	},
	StatusCompleted:   {},
	StatusCancelled:   {},
	StatusRescheduled: {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// AllowedTargets returns the legal direct targets for a state, in a stable
// order, so handlers can expose the menu without re-encoding the rules.
func AllowedTargets(from Status) []Status {
	order := []Status{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusNoShow,
	}

	var targets []Status
	for _, to := range order {
		if CanTransition(from, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// CanCancel and CanReschedule gate the dedicated flows: any non-terminal state.
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReschedule(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanConfirm gates the quick-confirm shortcut: pending only.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Reason vocabularies
// ===============================

var cancelReasons = map[string]bool{
	"client_request":    true,
	"salon_unavailable": true,
	"weather":           true,
	"emergency":         true,
	"other":             true,
}

var rescheduleReasons = map[string]bool{
	"client_request":    true,
	"salon_unavailable": true,
	"conflict":          true,
	"preference":        true,
	"other":             true,
}

func IsCancelReason(r string) bool {
	return cancelReasons[r]
}

func IsRescheduleReason(r string) bool {
	return rescheduleReasons[r]
}

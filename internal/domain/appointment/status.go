package appointment

import "github.com/BruksfildServices01/marqueai/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// open reports whether the appointment still sits on the agenda.
func (s Status) open() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.open() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.open() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if !current.open() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// ActionTo returns the action whose transition ends in target. Scheduled has
// none: an appointment never goes back on the agenda.
func ActionTo(target Status) (Action, bool) {
	switch target {
	case StatusConfirmed:
		return ActionConfirm, true
	case StatusCompleted:
		return ActionComplete, true
	case StatusCancelled:
		return ActionCancel, true
	case StatusNoShow:
		return ActionNoShow, true
	}
	return "", false
}

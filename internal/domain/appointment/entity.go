package appointment

import (
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionNoShow   Action = "no-show"
)

// Apply moves ap to the status the action leads to, or fails with
// invalid_state when the current status does not allow it.
func Apply(ap *models.Appointment, action Action) error {
	current := Status(ap.Status)

	var (
		check func(Status) error
		next  Status
	)

	switch action {
	case ActionConfirm:
		check, next = CanConfirm, StatusConfirmed
	case ActionComplete:
		check, next = CanComplete, StatusCompleted
	case ActionCancel:
		check, next = CanCancel, StatusCancelled
	case ActionNoShow:
		check, next = CanMarkNoShow, StatusNoShow
	default:
		return httperr.ErrBusiness("invalid_action")
	}

	if err := check(current); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

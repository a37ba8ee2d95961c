package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/notify"
)

var auditActions = map[domain.Action]string{
	domain.ActionConfirm:  "appointment_confirmed",
	domain.ActionComplete: "appointment_completed",
	domain.ActionCancel:   "appointment_cancelled",
	domain.ActionNoShow:   "appointment_no_show",
}

// TransitionAppointment confirms, completes, cancels or marks a no-show.
type TransitionAppointment struct {
	repo   domain.Repository
	audit  audit.Recorder
	notify notify.Publisher
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	notify notify.Publisher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:   repo,
		audit:  audit,
		notify: notify,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	profileID uuid.UUID,
	appointmentID uuid.UUID,
	action domain.Action,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, profileID, appointmentID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "appointment_not_found")
	}

	from := ap.Status
	if err := domain.Apply(ap, action); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    auditActions[action],
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]string{"from": from, "to": ap.Status},
	})

	if action == domain.ActionCancel {
		uc.notify.Publish(notify.Event{
			Kind:       notify.KindAppointmentCancelled,
			ProfileID:  profileID,
			ClientName: ap.ClientName,
			Date:       ap.AppointmentDate.String(),
			Time:       ap.AppointmentTime,
		})
	}

	return ap, nil
}

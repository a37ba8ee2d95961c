package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/notify"
	"github.com/BruksfildServices01/marqueai/internal/validators"
)

// UpdateAppointmentInput carries only the fields the owner changed.
type UpdateAppointmentInput struct {
	ServiceID      *uuid.UUID
	ProfessionalID *uuid.UUID

	ClientName  *string
	ClientEmail *string
	ClientPhone *string

	Date   *string
	Time   *string
	Status *string
	Notes  *string
}

// UpdateAppointment edits an appointment in place. A status change follows
// the same transitions as the dedicated status actions.
type UpdateAppointment struct {
	repo   domain.Repository
	audit  audit.Recorder
	notify notify.Publisher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	notify notify.Publisher,
) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, audit: audit, notify: notify}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	profileID uuid.UUID,
	appointmentID uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, profileID, appointmentID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "appointment_not_found")
	}

	if in.ServiceID != nil {
		svc, err := uc.repo.GetService(ctx, profileID, *in.ServiceID)
		if err != nil {
			return nil, httperr.NotFoundAs(err, "service_not_found")
		}
		ap.ServiceID, ap.Service = &svc.ID, svc
	}
	if in.ProfessionalID != nil {
		pro, err := uc.repo.GetProfessional(ctx, profileID, *in.ProfessionalID)
		if err != nil {
			return nil, httperr.NotFoundAs(err, "professional_not_found")
		}
		ap.ProfessionalID, ap.Professional = &pro.ID, pro
	}

	if in.ClientName != nil {
		if strings.TrimSpace(*in.ClientName) == "" {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		ap.ClientName = strings.TrimSpace(*in.ClientName)
	}
	if in.ClientEmail != nil {
		ap.ClientEmail = strings.ToLower(strings.TrimSpace(*in.ClientEmail))
	}
	if in.ClientPhone != nil {
		if strings.TrimSpace(*in.ClientPhone) == "" {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		ap.ClientPhone = strings.TrimSpace(*in.ClientPhone)
	}

	if in.Date != nil {
		date, err := models.ParseDate(*in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.AppointmentDate = date
	}
	if in.Time != nil {
		if !validators.IsClock(*in.Time) {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		ap.AppointmentTime = *in.Time
	}

	from := ap.Status
	var action domain.Action
	if in.Status != nil {
		target := domain.Status(*in.Status)
		if !target.Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		if target != domain.Status(from) {
			next, ok := domain.ActionTo(target)
			if !ok {
				return nil, httperr.ErrBusiness("invalid_state")
			}
			if err := domain.Apply(ap, next); err != nil {
				return nil, err
			}
			action = next
		}
	}
	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "appointment_updated",
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

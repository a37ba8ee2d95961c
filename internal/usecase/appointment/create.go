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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProfileID uuid.UUID

	ServiceID      uuid.UUID
	ProfessionalID uuid.UUID

	ClientName  string
	ClientEmail string
	ClientPhone string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment books from the owner dashboard. Every field except
// notes is mandatory there.
type CreateAppointment struct {
	repo   domain.Repository
	audit  audit.Recorder
	notify notify.Publisher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Recorder,
	notify notify.Publisher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		notify: notify,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ServiceID == uuid.Nil ||
		in.ProfessionalID == uuid.Nil ||
		strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.ClientEmail) == "" ||
		strings.TrimSpace(in.ClientPhone) == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	ap, err := newAppointment(in)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetService(ctx, in.ProfileID, in.ServiceID); err != nil {
		return nil, httperr.NotFoundAs(err, "service_not_found")
	}
	if _, err := uc.repo.GetProfessional(ctx, in.ProfileID, in.ProfessionalID); err != nil {
		return nil, httperr.NotFoundAs(err, "professional_not_found")
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsForeignKeyViolation(err) {
			// service or professional deleted in between
			return nil, httperr.ErrBusiness("reference_not_found")
		}
		return nil, err
	}

	announce(uc.audit, uc.notify, ap, "owner")
	return ap, nil
}

// newAppointment validates date and time and builds the row in its initial status.
func newAppointment(in CreateAppointmentInput) (*models.Appointment, error) {
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !validators.IsClock(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	serviceID, professionalID := in.ServiceID, in.ProfessionalID

	return &models.Appointment{
		ProfileID:       in.ProfileID,
		ServiceID:       &serviceID,
		ProfessionalID:  &professionalID,
		ClientName:      strings.TrimSpace(in.ClientName),
		ClientEmail:     strings.ToLower(strings.TrimSpace(in.ClientEmail)),
		ClientPhone:     strings.TrimSpace(in.ClientPhone),
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           strings.TrimSpace(in.Notes),
	}, nil
}

func announce(rec audit.Recorder, pub notify.Publisher, ap *models.Appointment, source string) {
	rec.Dispatch(audit.Event{
		ProfileID: ap.ProfileID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]string{"source": source},
	})

	pub.Publish(notify.Event{
		Kind:       notify.KindNewAppointment,
		ProfileID:  ap.ProfileID,
		ClientName: ap.ClientName,
		Date:       ap.AppointmentDate.String(),
		Time:       ap.AppointmentTime,
	})
}

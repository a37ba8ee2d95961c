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
)

// ProfileFinder resolves the tenant behind a public slug.
type ProfileFinder interface {
	GetProfileBySlug(ctx context.Context, slug string) (*models.Profile, error)
}

type CreatePublicAppointmentInput struct {
	Slug string

	ServiceID      uuid.UUID
	ProfessionalID uuid.UUID

	ClientName  string
	ClientEmail string
	ClientPhone string

	Date  string
	Time  string
	Notes string
}

// CreatePublicAppointment books from the anonymous page. Name and phone are
// mandatory, e-mail is not.
type CreatePublicAppointment struct {
	profiles ProfileFinder
	repo     domain.Repository
	audit    audit.Recorder
	notify   notify.Publisher
}

func NewCreatePublicAppointment(
	profiles ProfileFinder,
	repo domain.Repository,
	audit audit.Recorder,
	notify notify.Publisher,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		profiles: profiles,
		repo:     repo,
		audit:    audit,
		notify:   notify,
	}
}

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Presence checks, before touching storage
	// --------------------------------------------------
	if strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.ClientPhone) == "" ||
		in.ServiceID == uuid.Nil ||
		in.ProfessionalID == uuid.Nil {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	// --------------------------------------------------
	// 2. Tenant
	// --------------------------------------------------
	profile, err := uc.profiles.GetProfileBySlug(ctx, in.Slug)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "barbershop_not_found")
	}

	ap, err := newAppointment(CreateAppointmentInput{
		ProfileID:      profile.ID,
		ServiceID:      in.ServiceID,
		ProfessionalID: in.ProfessionalID,
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		ClientPhone:    in.ClientPhone,
		Date:           in.Date,
		Time:           in.Time,
		Notes:          in.Notes,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Service and professional of this tenant, active only
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, profile.ID, in.ServiceID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "service_not_found")
	}
	if !service.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	professional, err := uc.repo.GetProfessional(ctx, profile.ID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "professional_not_found")
	}
	if !professional.IsActive {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	// --------------------------------------------------
	// 4. Persist
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsForeignKeyViolation(err) {
			// service or professional deleted in between
			return nil, httperr.ErrBusiness("reference_not_found")
		}
		return nil, err
	}

	announce(uc.audit, uc.notify, ap, "public")
	return ap, nil
}

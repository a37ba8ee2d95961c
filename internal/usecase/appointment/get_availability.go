package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
)

type GetAvailability struct {
	profiles ProfileFinder
	repo     domain.Repository
}

func NewGetAvailability(profiles ProfileFinder, repo domain.Repository) *GetAvailability {
	return &GetAvailability{profiles: profiles, repo: repo}
}

// Execute returns the fixed public grid for the day with already booked
// starts flagged. Opening hours are not consulted.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	profile, err := uc.profiles.GetProfileBySlug(ctx, in.Slug)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "barbershop_not_found")
	}

	professional, err := uc.repo.GetProfessional(ctx, profile.ID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "professional_not_found")
	}
	if !professional.IsActive {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	booked, err := uc.repo.ListBookedTimes(ctx, profile.ID, professional.ID, in.Date)
	if err != nil {
		return nil, err
	}

	return domain.MarkBooked(domain.DefaultSlots(), booked), nil
}

package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/cache"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/catalog"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ServiceInput struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	IsActive        *bool
}

// ======================================================
// USE CASE
// ======================================================

type Services struct {
	repo  domain.ServiceRepository
	cache cache.Store
	audit audit.Recorder
}

func NewServices(repo domain.ServiceRepository, store cache.Store, audit audit.Recorder) *Services {
	return &Services{repo: repo, cache: store, audit: audit}
}

func (uc *Services) List(ctx context.Context, profileID uuid.UUID, filter domain.ListFilter) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, profileID, filter)
}

func (uc *Services) Get(ctx context.Context, profileID, id uuid.UUID) (*models.Service, error) {
	s, err := uc.repo.GetService(ctx, profileID, id)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "service_not_found")
	}
	return s, nil
}

func (uc *Services) Create(ctx context.Context, profileID uuid.UUID, in ServiceInput) (*models.Service, error) {
	if in.Name == nil || in.Price == nil || in.DurationMinutes == nil {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	s := &models.Service{
		ProfileID: profileID,
		IsActive:  true,
	}
	if err := applyService(s, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.written(ctx, profileID, "service_created", s.ID)
	return s, nil
}

func (uc *Services) Update(ctx context.Context, profileID, id uuid.UUID, in ServiceInput) (*models.Service, error) {
	s, err := uc.Get(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	if err := applyService(s, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.written(ctx, profileID, "service_updated", s.ID)
	return s, nil
}

func (uc *Services) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	if err := uc.repo.DeleteService(ctx, profileID, id); err != nil {
		return httperr.NotFoundAs(err, "service_not_found")
	}

	uc.written(ctx, profileID, "service_deleted", id)
	return nil
}

func (uc *Services) written(ctx context.Context, profileID uuid.UUID, action string, id uuid.UUID) {
	cache.InvalidateBookingPage(ctx, uc.cache, profileID)
	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    action,
		Entity:    "service",
		EntityID:  &id,
	})
}

func applyService(s *models.Service, in ServiceInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return httperr.ErrBusiness("invalid_name")
		}
		s.Name = name
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return httperr.ErrBusiness("invalid_price")
		}
		s.Price = *in.Price
	}
	if in.DurationMinutes != nil {
		if *in.DurationMinutes < 1 {
			return httperr.ErrBusiness("invalid_duration")
		}
		s.DurationMinutes = *in.DurationMinutes
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	return nil
}

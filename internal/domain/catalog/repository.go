package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

type ListFilter struct {
	Active *bool
	Query  string
}

type ServiceRepository interface {
	ListServices(ctx context.Context, profileID uuid.UUID, filter ListFilter) ([]models.Service, error)
	GetService(ctx context.Context, profileID, id uuid.UUID) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, profileID, id uuid.UUID) error
}

type ProfessionalRepository interface {
	ListProfessionals(ctx context.Context, profileID uuid.UUID, filter ListFilter) ([]models.Professional, error)
	GetProfessional(ctx context.Context, profileID, id uuid.UUID) (*models.Professional, error)
	CreateProfessional(ctx context.Context, p *models.Professional) error
	UpdateProfessional(ctx context.Context, p *models.Professional) error
	DeleteProfessional(ctx context.Context, profileID, id uuid.UUID) error
}

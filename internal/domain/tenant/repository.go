package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

// Branding is the part of the profile edited from the settings form.
type Branding struct {
	PrimaryColor   *string
	SecondaryColor *string
	LogoURL        *string
}

type Repository interface {
	// -------- Profile --------
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetProfileBySlug(ctx context.Context, slug string) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdateProfile(ctx context.Context, p *models.Profile) error

	// CreateProfile inserts the profile and its settings row atomically.
	CreateProfile(ctx context.Context, p *models.Profile, s *models.BarbershopSettings) error

	// -------- Settings --------
	GetSettings(ctx context.Context, profileID uuid.UUID) (*models.BarbershopSettings, error)

	// SaveSettings writes settings and profile branding in one transaction.
	SaveSettings(ctx context.Context, s *models.BarbershopSettings, branding Branding) error

	// -------- Subscription --------
	ExpireTrials(ctx context.Context, now time.Time) (int64, error)
	SetSubscription(ctx context.Context, id uuid.UUID, plan, status string) error
}

package tenant

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

type fakeTenantRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.Profile
	settings map[uuid.UUID]*models.BarbershopSettings

	saveErr error
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		profiles: map[uuid.UUID]*models.Profile{},
		settings: map[uuid.UUID]*models.BarbershopSettings{},
	}
}

func (f *fakeTenantRepo) GetProfile(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) GetProfileBySlug(_ context.Context, slug string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.profiles {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTenantRepo) UpdateProfile(_ context.Context, p *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeTenantRepo) CreateProfile(_ context.Context, p *models.Profile, s *models.BarbershopSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.ProfileID = p.ID

	cp, cs := *p, *s
	f.profiles[p.ID] = &cp
	f.settings[p.ID] = &cs
	return nil
}

func (f *fakeTenantRepo) GetSettings(_ context.Context, profileID uuid.UUID) (*models.BarbershopSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.settings[profileID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) SaveSettings(_ context.Context, s *models.BarbershopSettings, b domain.Branding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}

	p, ok := f.profiles[s.ProfileID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if b.PrimaryColor != nil {
		p.PrimaryColor = *b.PrimaryColor
	}
	if b.SecondaryColor != nil {
		p.SecondaryColor = *b.SecondaryColor
	}
	if b.LogoURL != nil {
		p.LogoURL = *b.LogoURL
	}

	cp := *s
	f.settings[s.ProfileID] = &cp
	return nil
}

func (f *fakeTenantRepo) ExpireTrials(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeTenantRepo) SetSubscription(_ context.Context, id uuid.UUID, plan, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.SubscriptionPlan, p.SubscriptionStatus = plan, status
	return nil
}

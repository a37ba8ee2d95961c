package tenant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/cache"
	"github.com/BruksfildServices01/marqueai/internal/domain/catalog"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

// BookingPage is everything the public page needs in one payload.
type BookingPage struct {
	Barbershop         PublicBarbershop     `json:"barbershop"`
	Services           []PublicService      `json:"services"`
	Professionals      []PublicProfessional `json:"professionals"`
	OpeningHours       models.OpeningHours  `json:"opening_hours"`
	CancellationPolicy string               `json:"cancellation_policy"`
}

type PublicBarbershop struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	LogoURL        string    `json:"logo_url"`
	Whatsapp       string    `json:"whatsapp"`
}

type PublicService struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
}

type PublicProfessional struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Specialties []string  `json:"specialties"`
	PhotoURL    string    `json:"photo_url"`
}

type GetBookingPage struct {
	tenants       domain.Repository
	services      catalog.ServiceRepository
	professionals catalog.ProfessionalRepository
	cache         cache.Store
	ttl           time.Duration
}

func NewGetBookingPage(
	tenants domain.Repository,
	services catalog.ServiceRepository,
	professionals catalog.ProfessionalRepository,
	store cache.Store,
	ttl time.Duration,
) *GetBookingPage {
	return &GetBookingPage{
		tenants:       tenants,
		services:      services,
		professionals: professionals,
		cache:         store,
		ttl:           ttl,
	}
}

func (uc *GetBookingPage) Execute(ctx context.Context, slug string) (*BookingPage, error) {
	profile, err := uc.tenants.GetProfileBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "barbershop_not_found")
	}

	key := cache.BookingPageKey(profile.ID)

	var page BookingPage
	hit, err := uc.cache.Get(ctx, key, &page)
	if err != nil {
		zap.L().Warn("booking page cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return &page, nil
	}

	built, err := uc.build(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, built, uc.ttl); err != nil {
		zap.L().Warn("booking page cache write failed", zap.String("key", key), zap.Error(err))
	}
	return built, nil
}

func (uc *GetBookingPage) build(ctx context.Context, profile *models.Profile) (*BookingPage, error) {
	active := true
	filter := catalog.ListFilter{Active: &active}

	services, err := uc.services.ListServices(ctx, profile.ID, filter)
	if err != nil {
		return nil, err
	}
	professionals, err := uc.professionals.ListProfessionals(ctx, profile.ID, filter)
	if err != nil {
		return nil, err
	}

	page := &BookingPage{
		Barbershop: PublicBarbershop{
			ID:             profile.ID,
			Name:           profile.BarbershopName,
			Slug:           profile.Slug,
			Phone:          profile.Phone,
			Address:        profile.Address,
			PrimaryColor:   profile.PrimaryColor,
			SecondaryColor: profile.SecondaryColor,
			LogoURL:        profile.LogoURL,
		},
		Services:           make([]PublicService, 0, len(services)),
		Professionals:      make([]PublicProfessional, 0, len(professionals)),
		OpeningHours:       models.DefaultOpeningHours(),
		CancellationPolicy: models.DefaultCancellationPolicy,
	}

	settings, err := uc.tenants.GetSettings(ctx, profile.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		page.OpeningHours = settings.OpeningHours.Data()
		page.CancellationPolicy = settings.CancellationPolicy
		page.Barbershop.Whatsapp = settings.WhatsappNumber
	}

	for _, s := range services {
		page.Services = append(page.Services, PublicService{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	for _, p := range professionals {
		page.Professionals = append(page.Professionals, PublicProfessional{
			ID:          p.ID,
			Name:        p.Name,
			Specialties: p.Specialties,
			PhotoURL:    p.PhotoURL,
		})
	}

	return page, nil
}

package tenant

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/cache"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/validators"
)

type SettingsInput struct {
	OpeningHours          models.OpeningHours
	WhatsappNumber        string
	WhatsappNotifications bool
	EmailNotifications    bool
	CancellationPolicy    string

	PrimaryColor   *string
	SecondaryColor *string
	LogoURL        *string
}

type Settings struct {
	repo  domain.Repository
	cache cache.Store
	audit audit.Recorder
}

func NewSettings(repo domain.Repository, store cache.Store, audit audit.Recorder) *Settings {
	return &Settings{repo: repo, cache: store, audit: audit}
}

func (uc *Settings) Get(ctx context.Context, profileID uuid.UUID) (*models.BarbershopSettings, error) {
	s, err := uc.repo.GetSettings(ctx, profileID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "settings_not_found")
	}
	return s, nil
}

// Save writes the settings form. Branding fields land on the profile in the
// same transaction, so either both change or neither does.
func (uc *Settings) Save(ctx context.Context, profileID uuid.UUID, in SettingsInput) (*models.BarbershopSettings, error) {
	if err := validateWeek(in.OpeningHours); err != nil {
		return nil, err
	}
	for _, c := range []*string{in.PrimaryColor, in.SecondaryColor} {
		if c != nil && !hexColor.MatchString(*c) {
			return nil, httperr.ErrBusiness("invalid_color")
		}
	}

	s, err := uc.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	s.OpeningHours = datatypes.NewJSONType(in.OpeningHours)
	s.WhatsappNumber = strings.TrimSpace(in.WhatsappNumber)
	s.WhatsappNotifications = in.WhatsappNotifications
	s.EmailNotifications = in.EmailNotifications
	s.CancellationPolicy = strings.TrimSpace(in.CancellationPolicy)
	if s.CancellationPolicy == "" {
		s.CancellationPolicy = models.DefaultCancellationPolicy
	}

	branding := domain.Branding{
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		LogoURL:        in.LogoURL,
	}

	if err := uc.repo.SaveSettings(ctx, s, branding); err != nil {
		return nil, err
	}

	cache.InvalidateBookingPage(ctx, uc.cache, profileID)
	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "settings_updated",
		Entity:    "settings",
		EntityID:  &s.ID,
	})

	return s, nil
}

func validateWeek(week models.OpeningHours) error {
	for _, day := range []models.DaySchedule{
		week.Monday, week.Tuesday, week.Wednesday, week.Thursday,
		week.Friday, week.Saturday, week.Sunday,
	} {
		if day.Closed {
			continue
		}
		if !validators.IsClock(day.Open) || !validators.IsClock(day.Close) || day.Open >= day.Close {
			return httperr.ErrBusiness("invalid_opening_hours")
		}
	}
	return nil
}

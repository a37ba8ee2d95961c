package tenant

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/cache"
	"github.com/BruksfildServices01/marqueai/internal/domain/subscription"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/imaging"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/storage"
	"github.com/BruksfildServices01/marqueai/internal/timezone"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Me struct {
	Profile      *models.Profile      `json:"profile"`
	Subscription subscription.Summary `json:"subscription"`
}

type ProfileInput struct {
	BarbershopName *string
	OwnerName      *string
	Phone          *string
	Address        *string
	PrimaryColor   *string
	SecondaryColor *string
	LogoURL        *string
	Timezone       *string
}

// Profiles serves the owner's own profile.
type Profiles struct {
	repo          domain.Repository
	cache         cache.Store
	uploader      storage.Uploader
	audit         audit.Recorder
	publicBaseURL string
}

func NewProfiles(
	repo domain.Repository,
	store cache.Store,
	uploader storage.Uploader,
	audit audit.Recorder,
	publicBaseURL string,
) *Profiles {
	return &Profiles{
		repo:          repo,
		cache:         store,
		uploader:      uploader,
		audit:         audit,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (uc *Profiles) Get(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	p, err := uc.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "profile_not_found")
	}
	return p, nil
}

func (uc *Profiles) Me(ctx context.Context, profileID uuid.UUID) (*Me, error) {
	p, err := uc.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return &Me{Profile: p, Subscription: subscription.Summarize(p, time.Now())}, nil
}

func (uc *Profiles) Update(ctx context.Context, profileID uuid.UUID, in ProfileInput) (*models.Profile, error) {
	p, err := uc.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if err := applyProfile(p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	uc.written(ctx, p, "profile_updated")
	return p, nil
}

// UploadLogo re-encodes the logo as webp and stores it as the profile logo.
func (uc *Profiles) UploadLogo(ctx context.Context, profileID uuid.UUID, file io.Reader) (*models.Profile, error) {
	p, err := uc.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	img, err := imaging.ToWebP(file, imaging.DefaultMaxSide)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	url, err := uc.uploader.Upload(ctx, fmt.Sprintf("logos/%s.webp", p.ID), img, imaging.ContentTypeWebP)
	if err != nil {
		return nil, err
	}

	p.LogoURL = url
	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	uc.written(ctx, p, "profile_logo_uploaded")
	return p, nil
}

// PublicLink is the address clients use to book.
func (uc *Profiles) PublicLink(ctx context.Context, profileID uuid.UUID) (string, error) {
	p, err := uc.Get(ctx, profileID)
	if err != nil {
		return "", err
	}
	return uc.publicBaseURL + "/agendar/" + p.Slug, nil
}

func (uc *Profiles) written(ctx context.Context, p *models.Profile, action string) {
	cache.InvalidateBookingPage(ctx, uc.cache, p.ID)
	uc.audit.Dispatch(audit.Event{
		ProfileID: p.ID,
		Action:    action,
		Entity:    "profile",
		EntityID:  &p.ID,
	})
}

func applyProfile(p *models.Profile, in ProfileInput) error {
	if in.BarbershopName != nil {
		v := strings.TrimSpace(*in.BarbershopName)
		if v == "" {
			return httperr.ErrBusiness("invalid_barbershop_name")
		}
		p.BarbershopName = v
	}
	if in.OwnerName != nil {
		v := strings.TrimSpace(*in.OwnerName)
		if v == "" {
			return httperr.ErrBusiness("invalid_owner_name")
		}
		p.OwnerName = v
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.PrimaryColor != nil {
		if !hexColor.MatchString(*in.PrimaryColor) {
			return httperr.ErrBusiness("invalid_color")
		}
		p.PrimaryColor = *in.PrimaryColor
	}
	if in.SecondaryColor != nil {
		if !hexColor.MatchString(*in.SecondaryColor) {
			return httperr.ErrBusiness("invalid_color")
		}
		p.SecondaryColor = *in.SecondaryColor
	}
	if in.LogoURL != nil {
		p.LogoURL = strings.TrimSpace(*in.LogoURL)
	}
	if in.Timezone != nil {
		if !timezone.IsValid(*in.Timezone) {
			return httperr.ErrBusiness("invalid_timezone")
		}
		p.Timezone = *in.Timezone
	}
	return nil
}

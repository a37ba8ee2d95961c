package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/cache"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/catalog"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/imaging"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/storage"
)

type ProfessionalInput struct {
	Name           *string
	Specialties    []string
	PhotoURL       *string
	IsActive       *bool
	AvailableHours json.RawMessage
}

type Professionals struct {
	repo     domain.ProfessionalRepository
	cache    cache.Store
	uploader storage.Uploader
	audit    audit.Recorder
}

func NewProfessionals(
	repo domain.ProfessionalRepository,
	store cache.Store,
	uploader storage.Uploader,
	audit audit.Recorder,
) *Professionals {
	return &Professionals{
		repo:     repo,
		cache:    store,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *Professionals) List(ctx context.Context, profileID uuid.UUID, filter domain.ListFilter) ([]models.Professional, error) {
	return uc.repo.ListProfessionals(ctx, profileID, filter)
}

func (uc *Professionals) Get(ctx context.Context, profileID, id uuid.UUID) (*models.Professional, error) {
	p, err := uc.repo.GetProfessional(ctx, profileID, id)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "professional_not_found")
	}
	return p, nil
}

func (uc *Professionals) Create(ctx context.Context, profileID uuid.UUID, in ProfessionalInput) (*models.Professional, error) {
	if in.Name == nil {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	p := &models.Professional{
		ProfileID:   profileID,
		IsActive:    true,
		Specialties: datatypes.JSONSlice[string]{},
	}
	if err := applyProfessional(p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateProfessional(ctx, p); err != nil {
		return nil, err
	}

	uc.written(ctx, profileID, "professional_created", p.ID)
	return p, nil
}

func (uc *Professionals) Update(ctx context.Context, profileID, id uuid.UUID, in ProfessionalInput) (*models.Professional, error) {
	p, err := uc.Get(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	if err := applyProfessional(p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateProfessional(ctx, p); err != nil {
		return nil, err
	}

	uc.written(ctx, profileID, "professional_updated", p.ID)
	return p, nil
}

func (uc *Professionals) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	if err := uc.repo.DeleteProfessional(ctx, profileID, id); err != nil {
		return httperr.NotFoundAs(err, "professional_not_found")
	}

	uc.written(ctx, profileID, "professional_deleted", id)
	return nil
}

// UploadPhoto re-encodes the picture as webp, stores it and points the
// professional at the new URL.
func (uc *Professionals) UploadPhoto(ctx context.Context, profileID, id uuid.UUID, file io.Reader) (*models.Professional, error) {
	p, err := uc.Get(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	img, err := imaging.ToWebP(file, imaging.DefaultMaxSide)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	key := fmt.Sprintf("professionals/%s/%s.webp", profileID, p.ID)
	url, err := uc.uploader.Upload(ctx, key, img, imaging.ContentTypeWebP)
	if err != nil {
		return nil, err
	}

	p.PhotoURL = url
	if err := uc.repo.UpdateProfessional(ctx, p); err != nil {
		return nil, err
	}

	uc.written(ctx, profileID, "professional_photo_uploaded", p.ID)
	return p, nil
}

func (uc *Professionals) written(ctx context.Context, profileID uuid.UUID, action string, id uuid.UUID) {
	cache.InvalidateBookingPage(ctx, uc.cache, profileID)
	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    action,
		Entity:    "professional",
		EntityID:  &id,
	})
}

func applyProfessional(p *models.Professional, in ProfessionalInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return httperr.ErrBusiness("invalid_name")
		}
		p.Name = name
	}
	if in.Specialties != nil {
		p.Specialties = domain.NormalizeSpecialties(in.Specialties)
	}
	if in.PhotoURL != nil {
		p.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if len(in.AvailableHours) > 0 {
		raw := bytes.TrimSpace(in.AvailableHours)
		if !json.Valid(raw) {
			return httperr.ErrBusiness("invalid_available_hours")
		}
		p.AvailableHours = datatypes.JSON(raw)
	}
	return nil
}

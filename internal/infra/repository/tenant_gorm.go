package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

type TenantGormRepository struct {
	db *gorm.DB
}

func NewTenantGormRepository(db *gorm.DB) *TenantGormRepository {
	return &TenantGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *TenantGormRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TenantGormRepository) GetProfileBySlug(ctx context.Context, slug string) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.WithContext(ctx).
		Where("slug = ?", strings.ToLower(slug)).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TenantGormRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TenantGormRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// profileReadOnlyColumns are never written by UpdateProfile. The
// subscription columns belong to SetSubscription and ExpireTrials, which may
// run between the read and the write of a profile edit.
var profileReadOnlyColumns = []string{
	"created_at",
	"password_hash",
	"subscription_plan",
	"subscription_status",
	"trial_ends_at",
}

func (r *TenantGormRepository) UpdateProfile(ctx context.Context, p *models.Profile) error {
	return updateProfile(r.db.WithContext(ctx), p).Error
}

func updateProfile(db *gorm.DB, p *models.Profile) *gorm.DB {
	return db.
		Model(p).
		Select("*").
		Omit(profileReadOnlyColumns...).
		Updates(p)
}

func (r *TenantGormRepository) CreateProfile(
	ctx context.Context,
	p *models.Profile,
	s *models.BarbershopSettings,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		s.ProfileID = p.ID
		return tx.Omit(clause.Associations).Create(s).Error
	})
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *TenantGormRepository) GetSettings(ctx context.Context, profileID uuid.UUID) (*models.BarbershopSettings, error) {
	var s models.BarbershopSettings
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TenantGormRepository) SaveSettings(
	ctx context.Context,
	s *models.BarbershopSettings,
	branding tenant.Branding,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateScoped(tx, s, s.ProfileID); err != nil {
			return err
		}

		changes := map[string]any{}
		if branding.PrimaryColor != nil {
			changes["primary_color"] = *branding.PrimaryColor
		}
		if branding.SecondaryColor != nil {
			changes["secondary_color"] = *branding.SecondaryColor
		}
		if branding.LogoURL != nil {
			changes["logo_url"] = *branding.LogoURL
		}
		if len(changes) == 0 {
			return nil
		}

		return tx.Model(&models.Profile{}).
			Where("id = ?", s.ProfileID).
			Updates(changes).Error
	})
}

// --------------------------------------------------
// Subscription
// --------------------------------------------------

func (r *TenantGormRepository) ExpireTrials(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("subscription_status = ? AND trial_ends_at < ?", models.SubscriptionTrial, now).
		Update("subscription_status", models.SubscriptionExpired)

	return res.RowsAffected, res.Error
}

func (r *TenantGormRepository) SetSubscription(ctx context.Context, id uuid.UUID, plan, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"subscription_plan":   plan,
			"subscription_status": status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var _ tenant.Repository = (*TenantGormRepository)(nil)

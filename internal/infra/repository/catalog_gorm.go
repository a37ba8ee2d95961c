package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/marqueai/internal/domain/catalog"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func applyCatalogFilter(q *gorm.DB, filter catalog.ListFilter) *gorm.DB {
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Query != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Query+"%")
	}
	return q
}

// updateScoped writes every column of a tenant row, never touching rows of
// another profile.
func updateScoped(db *gorm.DB, model any, profileID uuid.UUID) error {
	return db.Model(model).
		Where("profile_id = ?", profileID).
		Select("*").
		Omit(clause.Associations, "created_at").
		Updates(model).Error
}

// deleteScoped removes one tenant row and reports ErrRecordNotFound when
// nothing matched.
func deleteScoped(db *gorm.DB, model any, profileID, id uuid.UUID) error {
	res := db.Where("id = ? AND profile_id = ?", id, profileID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	profileID uuid.UUID,
	filter catalog.ListFilter,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Where("profile_id = ?", profileID)
	q = applyCatalogFilter(q, filter)

	var out []models.Service
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	profileID, id uuid.UUID,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *CatalogGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	return updateScoped(r.db.WithContext(ctx), s, s.ProfileID)
}

func (r *CatalogGormRepository) DeleteService(ctx context.Context, profileID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.Service{}, profileID, id)
}

// --------------------------------------------------
// Professionals
// --------------------------------------------------

func (r *CatalogGormRepository) ListProfessionals(
	ctx context.Context,
	profileID uuid.UUID,
	filter catalog.ListFilter,
) ([]models.Professional, error) {

	q := r.db.WithContext(ctx).Where("profile_id = ?", profileID)
	q = applyCatalogFilter(q, filter)

	var out []models.Professional
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogGormRepository) GetProfessional(
	ctx context.Context,
	profileID, id uuid.UUID,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogGormRepository) CreateProfessional(ctx context.Context, p *models.Professional) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *CatalogGormRepository) UpdateProfessional(ctx context.Context, p *models.Professional) error {
	return updateScoped(r.db.WithContext(ctx), p, p.ProfileID)
}

func (r *CatalogGormRepository) DeleteProfessional(ctx context.Context, profileID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.Professional{}, profileID, id)
}

var (
	_ catalog.ServiceRepository      = (*CatalogGormRepository)(nil)
	_ catalog.ProfessionalRepository = (*CatalogGormRepository)(nil)
)

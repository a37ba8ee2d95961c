package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

const dateLayout = "2006-01-02"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	profileID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", serviceID, profileID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	profileID uuid.UUID,
	professionalID uuid.UUID,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", professionalID, profileID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	profileID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("id = ? AND profile_id = ?", appointmentID, profileID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return updateScoped(r.db.WithContext(ctx), ap, ap.ProfileID)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	profileID uuid.UUID,
	appointmentID uuid.UUID,
) error {

	return deleteScoped(r.db.WithContext(ctx), &models.Appointment{}, profileID, appointmentID)
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	profileID uuid.UUID,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("profile_id = ?", profileID)

	if filter.Date != nil {
		q = q.Where("appointment_date = ?", filter.Date.Format(dateLayout))
	}
	if filter.From != nil {
		q = q.Where("appointment_date >= ?", filter.From.Format(dateLayout))
	}
	if filter.To != nil {
		q = q.Where("appointment_date <= ?", filter.To.Format(dateLayout))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ProfessionalID != nil {
		q = q.Where("professional_id = ?", *filter.ProfessionalID)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date ASC").
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	profileID uuid.UUID,
	professionalID uuid.UUID,
	date time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"profile_id = ? AND professional_id = ? AND appointment_date = ? AND status <> ?",
			profileID,
			professionalID,
			date.Format(dateLayout),
			string(domain.StatusCancelled),
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

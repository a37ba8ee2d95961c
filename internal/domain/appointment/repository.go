package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

type ListFilter struct {
	Date           *time.Time
	From           *time.Time
	To             *time.Time
	Status         string
	ProfessionalID *uuid.UUID
}

type Repository interface {
	// -------- Catalog lookups --------
	GetService(
		ctx context.Context,
		profileID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	GetProfessional(
		ctx context.Context,
		profileID uuid.UUID,
		professionalID uuid.UUID,
	) (*models.Professional, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		profileID uuid.UUID,
		appointmentID uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		profileID uuid.UUID,
		appointmentID uuid.UUID,
	) error

	ListAppointments(
		ctx context.Context,
		profileID uuid.UUID,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		profileID uuid.UUID,
		professionalID uuid.UUID,
		date time.Time,
	) ([]string, error)
}

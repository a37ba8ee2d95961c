package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

type AppointmentListDTO struct {
	ID              uuid.UUID `json:"id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	ServiceID    *uuid.UUID `json:"service_id"`
	ServiceName  string     `json:"service_name"`
	ServicePrice float64    `json:"service_price"`

	ProfessionalID   *uuid.UUID `json:"professional_id"`
	ProfessionalName string     `json:"professional_name"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate.String(),
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		Notes:           ap.Notes,
		ClientName:      ap.ClientName,
		ClientEmail:     ap.ClientEmail,
		ClientPhone:     ap.ClientPhone,
		ServiceID:       ap.ServiceID,
		ProfessionalID:  ap.ProfessionalID,
	}

	if ap.Service != nil {
		out.ServiceName = ap.Service.Name
		out.ServicePrice = ap.Service.Price
	}
	if ap.Professional != nil {
		out.ProfessionalName = ap.Professional.Name
	}

	return out
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/httpresp"
	"github.com/BruksfildServices01/marqueai/internal/middleware"
	"github.com/BruksfildServices01/marqueai/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/marqueai/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	list       *ucAppointment.ListAppointments
	update     *ucAppointment.UpdateAppointment
	transition *ucAppointment.TransitionAppointment
	remove     *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListAppointments,
	update *ucAppointment.UpdateAppointment,
	transition *ucAppointment.TransitionAppointment,
	remove *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		list:       list,
		update:     update,
		transition: transition,
		remove:     remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	ProfessionalID  uuid.UUID `json:"professional_id" binding:"required"`
	ClientName      string    `json:"client_name" binding:"required"`
	ClientEmail     string    `json:"client_email" binding:"required,email"`
	ClientPhone     string    `json:"client_phone" binding:"required"`
	AppointmentDate string    `json:"appointment_date" binding:"required,isodate"`
	AppointmentTime string    `json:"appointment_time" binding:"required,hhmm"`
	Notes           string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ServiceID       *uuid.UUID `json:"service_id"`
	ProfessionalID  *uuid.UUID `json:"professional_id"`
	ClientName      *string    `json:"client_name"`
	ClientEmail     *string    `json:"client_email"`
	ClientPhone     *string    `json:"client_phone"`
	AppointmentDate *string    `json:"appointment_date"`
	AppointmentTime *string    `json:"appointment_time"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ProfileID:      middleware.ProfileID(c),
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		Date:           req.AppointmentDate,
		Time:           req.AppointmentTime,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	for key, dst := range map[string]**time.Time{
		"date": &filter.Date,
		"from": &filter.From,
		"to":   &filter.To,
	} {
		v := c.Query(key)
		if v == "" {
			continue
		}
		d, err := timezone.ParseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", messageFor("invalid_date"))
			return
		}
		*dst = &d
	}
	if v := c.Query("professional_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
			return
		}
		filter.ProfessionalID = &id
	}
	filter.Status = c.Query("status")

	out, err := h.list.Execute(c.Request.Context(), middleware.ProfileID(c), filter)
	if err != nil {
		respondError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.ProfileID(c), id, ucAppointment.UpdateAppointmentInput{
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		Date:           req.AppointmentDate,
		Time:           req.AppointmentTime,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS ACTIONS
// ======================================================

// Transition returns a handler for one status action (confirm, complete, ...).
func (h *AppointmentHandler) Transition(action domain.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}

		ap, err := h.transition.Execute(c.Request.Context(), middleware.ProfileID(c), id, action)
		if err != nil {
			respondError(c, err, "failed_to_update_appointment")
			return
		}

		httpresp.OK(c, ap)
	}
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ProfileID(c), id); err != nil {
		respondError(c, err, "failed_to_delete_appointment")
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/httpresp"
	"github.com/BruksfildServices01/marqueai/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/marqueai/internal/usecase/appointment"
	ucTenant "github.com/BruksfildServices01/marqueai/internal/usecase/tenant"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	page         *ucTenant.GetBookingPage
	availability *ucAppointment.GetAvailability
	book         *ucAppointment.CreatePublicAppointment
}

func NewPublicHandler(
	page *ucTenant.GetBookingPage,
	availability *ucAppointment.GetAvailability,
	book *ucAppointment.CreatePublicAppointment,
) *PublicHandler {
	return &PublicHandler{
		page:         page,
		availability: availability,
		book:         book,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	ProfessionalID  uuid.UUID `json:"professional_id" binding:"required"`
	AppointmentDate string    `json:"appointment_date" binding:"required,isodate"` // YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time" binding:"required,hhmm"`    // HH:mm
	ClientName      string    `json:"client_name" binding:"required"`
	ClientPhone     string    `json:"client_phone" binding:"required"`
	ClientEmail     string    `json:"client_email" binding:"omitempty,email"`
	Notes           string    `json:"notes"`
}

////////////////////////////////////////////////////////
// BOOKING PAGE
////////////////////////////////////////////////////////

func (h *PublicHandler) BookingPage(c *gin.Context) {
	page, err := h.page.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "failed_to_load_booking_page")
		return
	}
	httpresp.OK(c, page)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date, err := timezone.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", messageFor("invalid_date"))
		return
	}

	professionalID, err := uuid.Parse(c.Query("professional_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_professional", "Profissional obrigatório.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Slug:           c.Param("slug"),
		ProfessionalID: professionalID,
		Date:           date,
	})
	if err != nil {
		respondError(c, err, "failed_to_load_availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            date.Format("2006-01-02"),
		"professional_id": professionalID,
		"slots":           slots,
	})
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.CreatePublicAppointmentInput{
		Slug:           c.Param("slug"),
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

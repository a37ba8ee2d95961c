package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/marqueai/internal/domain/catalog"
	"github.com/BruksfildServices01/marqueai/internal/httpresp"
	"github.com/BruksfildServices01/marqueai/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/marqueai/internal/usecase/catalog"
)

type CatalogHandler struct {
	services      *ucCatalog.Services
	professionals *ucCatalog.Professionals
}

func NewCatalogHandler(services *ucCatalog.Services, professionals *ucCatalog.Professionals) *CatalogHandler {
	return &CatalogHandler{services: services, professionals: professionals}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	IsActive        *bool    `json:"is_active"`
}

type ProfessionalRequest struct {
	Name           *string         `json:"name"`
	Specialties    []string        `json:"specialties"`
	PhotoURL       *string         `json:"photo_url"`
	IsActive       *bool           `json:"is_active"`
	AvailableHours json.RawMessage `json:"available_hours"`
}

func (r ServiceRequest) input() ucCatalog.ServiceInput {
	return ucCatalog.ServiceInput{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		IsActive:        r.IsActive,
	}
}

func (r ProfessionalRequest) input() ucCatalog.ProfessionalInput {
	return ucCatalog.ProfessionalInput{
		Name:           r.Name,
		Specialties:    r.Specialties,
		PhotoURL:       r.PhotoURL,
		IsActive:       r.IsActive,
		AvailableHours: r.AvailableHours,
	}
}

func listFilter(c *gin.Context) catalog.ListFilter {
	var f catalog.ListFilter
	if v, err := strconv.ParseBool(c.Query("active")); err == nil {
		f.Active = &v
	}
	f.Query = strings.TrimSpace(c.Query("query"))
	return f
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	out, err := h.services.List(c.Request.Context(), middleware.ProfileID(c), listFilter(c))
	if err != nil {
		respondError(c, err, "failed_to_list_services")
		return
	}
	httpresp.List(c, out)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	s, err := h.services.Get(c.Request.Context(), middleware.ProfileID(c), id)
	if err != nil {
		respondError(c, err, "failed_to_load_service")
		return
	}
	httpresp.OK(c, s)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.services.Create(c.Request.Context(), middleware.ProfileID(c), req.input())
	if err != nil {
		respondError(c, err, "failed_to_create_service")
		return
	}
	httpresp.Created(c, s)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.services.Update(c.Request.Context(), middleware.ProfileID(c), id, req.input())
	if err != nil {
		respondError(c, err, "failed_to_update_service")
		return
	}
	httpresp.OK(c, s)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), middleware.ProfileID(c), id); err != nil {
		respondError(c, err, "failed_to_delete_service")
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// PROFESSIONALS
// ======================================================

func (h *CatalogHandler) ListProfessionals(c *gin.Context) {
	out, err := h.professionals.List(c.Request.Context(), middleware.ProfileID(c), listFilter(c))
	if err != nil {
		respondError(c, err, "failed_to_list_professionals")
		return
	}
	httpresp.List(c, out)
}

func (h *CatalogHandler) GetProfessional(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	p, err := h.professionals.Get(c.Request.Context(), middleware.ProfileID(c), id)
	if err != nil {
		respondError(c, err, "failed_to_load_professional")
		return
	}
	httpresp.OK(c, p)
}

func (h *CatalogHandler) CreateProfessional(c *gin.Context) {
	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, err := h.professionals.Create(c.Request.Context(), middleware.ProfileID(c), req.input())
	if err != nil {
		respondError(c, err, "failed_to_create_professional")
		return
	}
	httpresp.Created(c, p)
}

func (h *CatalogHandler) UpdateProfessional(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, err := h.professionals.Update(c.Request.Context(), middleware.ProfileID(c), id, req.input())
	if err != nil {
		respondError(c, err, "failed_to_update_professional")
		return
	}
	httpresp.OK(c, p)
}

func (h *CatalogHandler) DeleteProfessional(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.professionals.Delete(c.Request.Context(), middleware.ProfileID(c), id); err != nil {
		respondError(c, err, "failed_to_delete_professional")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) UploadProfessionalPhoto(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	file, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	p, err := h.professionals.UploadPhoto(c.Request.Context(), middleware.ProfileID(c), id, file)
	if err != nil {
		respondError(c, err, "failed_to_upload_photo")
		return
	}
	httpresp.OK(c, p)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/marqueai/internal/middleware"
	"github.com/BruksfildServices01/marqueai/internal/models"
	ucTenant "github.com/BruksfildServices01/marqueai/internal/usecase/tenant"
)

const maxUploadBytes = 5 << 20

type MeHandler struct {
	profiles *ucTenant.Profiles
	settings *ucTenant.Settings
}

func NewMeHandler(profiles *ucTenant.Profiles, settings *ucTenant.Settings) *MeHandler {
	return &MeHandler{profiles: profiles, settings: settings}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateProfileRequest struct {
	BarbershopName *string `json:"barbershop_name"`
	OwnerName      *string `json:"owner_name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	LogoURL        *string `json:"logo_url"`
	Timezone       *string `json:"timezone"`
}

type SaveSettingsRequest struct {
	OpeningHours          *models.OpeningHours `json:"opening_hours" binding:"required"`
	WhatsappNumber        string               `json:"whatsapp_number"`
	WhatsappNotifications *bool                `json:"whatsapp_notifications" binding:"required"`
	EmailNotifications    *bool                `json:"email_notifications" binding:"required"`
	CancellationPolicy    string               `json:"cancellation_policy"`

	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	LogoURL        *string `json:"logo_url"`
}

// ======================================================
// PROFILE
// ======================================================

func (h *MeHandler) GetMe(c *gin.Context) {
	me, err := h.profiles.Me(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		respondError(c, err, "failed_to_load_profile")
		return
	}
	c.JSON(http.StatusOK, me)
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, err := h.profiles.Update(c.Request.Context(), middleware.ProfileID(c), ucTenant.ProfileInput{
		BarbershopName: req.BarbershopName,
		OwnerName:      req.OwnerName,
		Phone:          req.Phone,
		Address:        req.Address,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		LogoURL:        req.LogoURL,
		Timezone:       req.Timezone,
	})
	if err != nil {
		respondError(c, err, "failed_to_update_profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *MeHandler) UploadLogo(c *gin.Context) {
	file, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	p, err := h.profiles.UploadLogo(c.Request.Context(), middleware.ProfileID(c), file)
	if err != nil {
		respondError(c, err, "failed_to_upload_logo")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *MeHandler) PublicLink(c *gin.Context) {
	url, err := h.profiles.PublicLink(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		respondError(c, err, "failed_to_build_link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ======================================================
// SETTINGS
// ======================================================

func (h *MeHandler) GetSettings(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		respondError(c, err, "failed_to_load_settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *MeHandler) SaveSettings(c *gin.Context) {
	var req SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.settings.Save(c.Request.Context(), middleware.ProfileID(c), ucTenant.SettingsInput{
		OpeningHours:          *req.OpeningHours,
		WhatsappNumber:        req.WhatsappNumber,
		WhatsappNotifications: *req.WhatsappNotifications,
		EmailNotifications:    *req.EmailNotifications,
		CancellationPolicy:    req.CancellationPolicy,
		PrimaryColor:          req.PrimaryColor,
		SecondaryColor:        req.SecondaryColor,
		LogoURL:               req.LogoURL,
	})
	if err != nil {
		respondError(c, err, "failed_to_save_settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/marqueai/internal/httpresp"
	ucTenant "github.com/BruksfildServices01/marqueai/internal/usecase/tenant"
)

type AuthHandler struct {
	register *ucTenant.Register
	login    *ucTenant.Login
}

func NewAuthHandler(register *ucTenant.Register, login *ucTenant.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	BarbershopName  string `json:"barbershop_name" binding:"required"`
	OwnerName       string `json:"owner_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Phone           string `json:"phone"`
	Whatsapp        string `json:"whatsapp"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucTenant.RegisterInput{
		BarbershopName:  req.BarbershopName,
		OwnerName:       req.OwnerName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
		Whatsapp:        req.Whatsapp,
	})
	if err != nil {
		respondError(c, err, "failed_to_register")
		return
	}

	httpresp.Created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "failed_to_login")
		return
	}

	httpresp.OK(c, res)
}

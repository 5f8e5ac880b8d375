package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/middleware"
	ucUser "github.com/alanfo18/stcd/internal/usecase/user"
)

type AuthHandler struct {
	auth *ucUser.Auth
}

func NewAuthHandler(auth *ucUser.Auth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.auth.Register(c.Request.Context(), ucUser.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_register")
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.auth.Login(c.Request.Context(), ucUser.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_login")
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		httperr.Unauthorized(c, "invalid_token", "Sessão inválida.")
		return
	}

	if err := h.auth.Logout(c.Request.Context(), claims); err != nil {
		httperr.FromError(c, err, "failed_to_logout")
		return
	}
	c.Status(http.StatusNoContent)
}

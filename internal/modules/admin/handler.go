package admin

import (
	"errors"
	"net/http"

	"antalyahotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/admin/login", h.Login)
	public.GET("/admin/session", h.Session)

	protected.POST("/admin/logout", h.Logout)
	protected.GET("/admin/stats", h.Stats)
	protected.POST("/admin/reset", h.Reset)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log out")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (h *Handler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"authenticated": h.service.SessionActive(c.Request.Context()),
	})
}

func (h *Handler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"stats": h.service.Stats(c.Request.Context())})
}

func (h *Handler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Reset(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrNotConfirmed) {
			response.Error(c, http.StatusBadRequest, "NOT_CONFIRMED", "Reset requires confirm=true")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reset data")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reset": true})
}

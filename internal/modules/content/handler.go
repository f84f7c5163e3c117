package content

import (
	"net/http"

	"antalyahotel/internal/domain"
	"antalyahotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	hotel domain.HotelInfo
}

func NewHandler(hotel domain.HotelInfo) *Handler {
	return &Handler{hotel: hotel}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/content/hotel", h.Hotel)
	public.GET("/content/translations", h.Translations)
}

func (h *Handler) Hotel(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"hotel": h.hotel})
}

func (h *Handler) Translations(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"translations": Translations()})
}

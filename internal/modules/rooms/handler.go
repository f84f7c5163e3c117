package rooms

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

// RegisterRoutes mounts the catalog endpoints. Reads are public;
// mutations go on the admin-protected group.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/rooms", h.ListRooms)

	protected.POST("/rooms", h.CreateRoom)
	protected.PUT("/rooms/:id", h.UpdateRoom)
	protected.DELETE("/rooms/:id", h.DeleteRoom)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms := h.service.ListRooms(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room type")
		case errors.Is(err, ErrDuplicateID):
			response.Error(c, http.StatusConflict, "ROOM_EXISTS", "A room with this id already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room type")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.service.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

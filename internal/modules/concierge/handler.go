package concierge

import (
	"log"
	"net/http"
	"time"

	"antalyahotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// browser clients connect straight from the public site
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/concierge", h.Ask)
	public.GET("/concierge/ws", h.Chat)
}

func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp := h.service.Ask(c.Request.Context(), req)
	response.Success(c, http.StatusOK, resp)
}

// Chat upgrades to a websocket and answers each incoming question in
// turn. One connection per guest; there is no cross-connection state.
func (h *Handler) Chat(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("concierge: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req AskRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("concierge: websocket read failed: %v", err)
			}
			return
		}
		if req.Message == "" {
			continue
		}

		resp := h.service.Ask(c.Request.Context(), req)

		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("concierge: websocket write failed: %v", err)
			return
		}
	}
}

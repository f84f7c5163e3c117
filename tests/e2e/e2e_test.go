package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"antalyahotel/internal/database"
	"antalyahotel/internal/domain"
	"antalyahotel/internal/middleware"
	"antalyahotel/internal/modules/admin"
	"antalyahotel/internal/modules/booking"
	"antalyahotel/internal/modules/concierge"
	"antalyahotel/internal/modules/content"
	"antalyahotel/internal/modules/rooms"
	jwtsvc "antalyahotel/internal/pkg/jwt"
	"antalyahotel/internal/repository"
	"antalyahotel/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type E2ETestSuite struct {
	router    *gin.Engine
	snapshots *repository.SnapshotRepository
	store     *store.Store
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// echoGenerator stands in for the Gemini client.
type echoGenerator struct{}

func (echoGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	return "echo: " + prompt[:20], nil
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	snapshots := repository.NewSnapshotRepository(db)
	require.NoError(t, snapshots.Migrate())

	st, err := store.New(context.Background(), snapshots)
	require.NoError(t, err)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	adminService, err := admin.NewService(st, jwtService, "admin", "admin123")
	require.NoError(t, err)

	hotel := domain.DefaultHotelInfo()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	v1 := r.Group("/api/v1")

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(jwtService))
	protected.Use(middleware.RequireRole("admin"))

	rooms.NewHandler(rooms.NewService(st)).RegisterRoutes(v1, protected)
	booking.NewHandler(booking.NewService(st)).RegisterRoutes(v1, protected)
	admin.NewHandler(adminService).RegisterRoutes(v1, protected)
	concierge.NewHandler(concierge.NewService(st, echoGenerator{}, hotel)).RegisterRoutes(v1)
	content.NewHandler(hotel).RegisterRoutes(v1)

	return &E2ETestSuite{router: r, snapshots: snapshots, store: st}
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	}
	return w, resp
}

func (s *E2ETestSuite) login(t *testing.T) string {
	t.Helper()

	w, resp := s.request(t, http.MethodPost, "/api/v1/admin/login", "", map[string]any{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSeededCatalogIsServed(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodGet, "/api/v1/rooms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	roomList, ok := resp.Data["rooms"].([]interface{})
	require.True(t, ok)
	require.Len(t, roomList, 3)

	first := roomList[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "Deluxe City View", first["titleEn"])
	assert.Equal(t, float64(120), first["price"])
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodGet, "/api/v1/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)

	w, _ = s.request(t, http.MethodPost, "/api/v1/rooms", "not-a-token", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/v1/admin/login", "", map[string]any{
		"username": "admin",
		"password": "letmein",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestBookingLifecycle(t *testing.T) {
	s := setupTestSuite(t)
	token := s.login(t)

	// guest books the Deluxe room for three nights at 120
	w, resp := s.request(t, http.MethodPost, "/api/v1/bookings", "", map[string]any{
		"roomId":        "1",
		"customerName":  "Layla Hassan",
		"customerEmail": "layla@example.com",
		"checkIn":       "2024-06-01",
		"checkOut":      "2024-06-04",
		"guests":        2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, float64(360), created["totalPrice"])
	assert.Equal(t, "Pending", created["status"])
	bookingID := created["id"].(string)
	require.NotEmpty(t, bookingID)

	// admin sees it first in the list
	w, resp = s.request(t, http.MethodGet, "/api/v1/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := resp.Data["bookings"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, bookingID, list[0].(map[string]interface{})["id"])

	// confirm it
	w, resp = s.request(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/bookings/%s/status", bookingID), token,
		map[string]any{"status": "Confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, "Confirmed", updated["status"])
	assert.Equal(t, float64(360), updated["totalPrice"])

	// unknown room is rejected before pricing
	w, resp = s.request(t, http.MethodPost, "/api/v1/bookings", "", map[string]any{
		"roomId":        "999",
		"customerName":  "Ghost",
		"customerEmail": "ghost@example.com",
		"checkIn":       "2024-06-01",
		"checkOut":      "2024-06-02",
		"guests":        1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ROOM_NOT_FOUND", resp.Error.Code)
}

func TestNewestBookingListedFirst(t *testing.T) {
	s := setupTestSuite(t)
	token := s.login(t)

	for _, name := range []string{"First Guest", "Second Guest"} {
		w, _ := s.request(t, http.MethodPost, "/api/v1/bookings", "", map[string]any{
			"roomId":        "2",
			"customerName":  name,
			"customerEmail": "guest@example.com",
			"checkIn":       "2024-07-01",
			"checkOut":      "2024-07-02",
			"guests":        2,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		// booking ids come from the clock in milliseconds
		time.Sleep(2 * time.Millisecond)
	}

	_, resp := s.request(t, http.MethodGet, "/api/v1/bookings", token, nil)
	list := resp.Data["bookings"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, "Second Guest", list[0].(map[string]interface{})["customerName"])
	assert.Equal(t, "First Guest", list[1].(map[string]interface{})["customerName"])
}

func TestRoomManagement(t *testing.T) {
	s := setupTestSuite(t)
	token := s.login(t)

	// duplicate seed id is rejected
	w, resp := s.request(t, http.MethodPost, "/api/v1/rooms", token, map[string]any{
		"id":       "1",
		"type":     "Deluxe Room",
		"titleEn":  "Clone",
		"titleAr":  "نسخة",
		"price":    100,
		"capacity": 2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ROOM_EXISTS", resp.Error.Code)

	// fresh room is created
	w, resp = s.request(t, http.MethodPost, "/api/v1/rooms", token, map[string]any{
		"id":       "4",
		"type":     "Executive Room",
		"titleEn":  "Executive Corner",
		"titleAr":  "الجناح التنفيذي",
		"price":    180,
		"capacity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// price update sticks
	w, _ = s.request(t, http.MethodPut, "/api/v1/rooms/4", token, map[string]any{
		"type":     "Executive Room",
		"titleEn":  "Executive Corner",
		"titleAr":  "الجناح التنفيذي",
		"price":    210,
		"capacity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// updating a missing room is a 404, not a silent success
	w, resp = s.request(t, http.MethodPut, "/api/v1/rooms/999", token, map[string]any{
		"type":     "Executive Room",
		"titleEn":  "Nope",
		"titleAr":  "لا",
		"price":    210,
		"capacity": 2,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ROOM_NOT_FOUND", resp.Error.Code)

	// delete twice: both succeed
	for i := 0; i < 2; i++ {
		w, _ = s.request(t, http.MethodDelete, "/api/v1/rooms/4", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	_, resp = s.request(t, http.MethodGet, "/api/v1/rooms", "", nil)
	assert.Len(t, resp.Data["rooms"].([]interface{}), 3)
}

func TestStatsAndReset(t *testing.T) {
	s := setupTestSuite(t)
	token := s.login(t)

	w, _ := s.request(t, http.MethodPost, "/api/v1/bookings", "", map[string]any{
		"roomId":        "3",
		"customerName":  "Family Guest",
		"customerEmail": "family@example.com",
		"checkIn":       "2024-08-01",
		"checkOut":      "2024-08-03",
		"guests":        4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.request(t, http.MethodGet, "/api/v1/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := resp.Data["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["totalBookings"])
	assert.Equal(t, float64(1), stats["pendingBookings"])
	assert.Equal(t, float64(440), stats["revenue"])

	// reset without confirmation is refused
	w, resp = s.request(t, http.MethodPost, "/api/v1/admin/reset", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NOT_CONFIRMED", resp.Error.Code)

	// confirmed reset wipes bookings, restores seed, keeps the session
	w, _ = s.request(t, http.MethodPost, "/api/v1/admin/reset", token, map[string]any{"confirm": true})
	require.Equal(t, http.StatusOK, w.Code)

	_, resp = s.request(t, http.MethodGet, "/api/v1/bookings", token, nil)
	assert.Len(t, resp.Data["bookings"].([]interface{}), 0)

	_, resp = s.request(t, http.MethodGet, "/api/v1/admin/session", "", nil)
	assert.Equal(t, true, resp.Data["authenticated"])
}

func TestSessionFlagLifecycle(t *testing.T) {
	s := setupTestSuite(t)

	_, resp := s.request(t, http.MethodGet, "/api/v1/admin/session", "", nil)
	assert.Equal(t, false, resp.Data["authenticated"])

	token := s.login(t)

	_, resp = s.request(t, http.MethodGet, "/api/v1/admin/session", "", nil)
	assert.Equal(t, true, resp.Data["authenticated"])

	w, _ := s.request(t, http.MethodPost, "/api/v1/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, resp = s.request(t, http.MethodGet, "/api/v1/admin/session", "", nil)
	assert.Equal(t, false, resp.Data["authenticated"])
}

func TestConciergeAndContent(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/v1/concierge", "", map[string]any{
		"message":  "Do you have family rooms available this weekend?",
		"language": "en",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "en", resp.Data["language"])
	assert.NotEmpty(t, resp.Data["reply"])

	w, resp = s.request(t, http.MethodGet, "/api/v1/content/hotel", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hotel := resp.Data["hotel"].(map[string]interface{})
	assert.Equal(t, "Antalya Hotel Amman", hotel["name"])

	_, resp = s.request(t, http.MethodGet, "/api/v1/content/translations", "", nil)
	translations := resp.Data["translations"].(map[string]interface{})
	assert.Contains(t, translations, "heroTitle")
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahsan589/playspot/internal/helpers"
	"github.com/ahsan589/playspot/internal/middleware"
	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/models/mocks"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
}

func withUser(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &helpers.EnhancedClaims{
			CustomClaims: &helpers.CustomClaims{},
			Role:         role,
			UserID:       id,
		})
		c.Next()
	}
}

func newOwnerRouter(t *testing.T) (*gin.Engine, *mocks.BookingStore, *services.MemoryNotifier) {
	gin.SetMode(gin.TestMode)
	store := mocks.NewBookingStore(t)
	notifier := services.NewMemoryNotifier()
	sessions := services.NewSessionRegistry(func(ownerId string) *services.BookingController {
		return services.NewBookingController(ownerId, store, notifier, nil, nil)
	}, 0)

	r := gin.New()
	r.Use(withUser("owner-1", helpers.RoleOwner))
	r.GET("/owner/bookings", ListOwnerBookings(sessions))
	r.POST("/owner/bookings/refresh", RefreshOwnerBookings(sessions))
	r.GET("/owner/bookings/:id", GetOwnerBooking(sessions))
	r.POST("/owner/bookings/:id/select", SelectOwnerBooking(sessions))
	r.POST("/owner/bookings/:id/actions", RunBookingAction(sessions))
	r.PATCH("/owner/bookings/:id/status", UpdateBookingStatus(sessions))
	r.POST("/owner/view/back", BackToList(sessions))
	r.PUT("/owner/view/reason", SetDraftReason(sessions))
	r.DELETE("/owner/session", CloseOwnerSession(sessions))
	r.GET("/notifications", DrainNotifications(notifier))
	return r, store, notifier
}

func expectMount(store *mocks.BookingStore) {
	store.On("GetOwner", mock.Anything, "owner-1").Return(&models.Owner{ID: "owner-1", ApprovalStatus: models.ApprovalApproved}, nil).Once()
	store.On("ListGroundsByOwner", mock.Anything, "owner-1").Return([]*models.Ground{{ID: "g1", Name: "Arena One"}}, nil).Once()
	store.On("ListBookingsByGrounds", mock.Anything, []string{"g1"}).Return([]models.Booking{
		{ID: "b1", GroundID: "g1", PlayerID: "p1", Date: "2024-03-01", Status: models.BookingPending},
		{ID: "b2", GroundID: "g1", PlayerID: "p2", Date: "2024-02-01", Status: models.BookingConfirmed},
	}, nil).Once()
	store.On("GetPlayer", mock.Anything, mock.AnythingOfType("string")).Return(&models.Player{Name: "Ali"}, nil).Twice()
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestListOwnerBookings(t *testing.T) {
	r, store, _ := newOwnerRouter(t)
	expectMount(store)

	w := do(r, http.MethodGet, "/owner/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Count)

	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, models.ApprovalApproved, snap.Access.Status)
	assert.Equal(t, "b1", snap.Bookings[0].ID)

	w = do(r, http.MethodGet, "/owner/bookings?status=confirmed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode(t, w).Count)

	w = do(r, http.MethodGet, "/owner/bookings?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshOwnerBookings_FailureReturnsSnapshot(t *testing.T) {
	r, store, notifier := newOwnerRouter(t)
	expectMount(store)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/owner/bookings", nil).Code)

	store.On("GetOwner", mock.Anything, "owner-1").Return(nil, errors.New("unavailable")).Once()

	w := do(r, http.MethodPost, "/owner/bookings/refresh", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Len(t, snap.Bookings, 2)

	w = do(r, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode(t, w).Count)

	toasts, _ := notifier.Drain(t.Context(), "owner-1")
	assert.Empty(t, toasts)
}

func TestRunBookingAction(t *testing.T) {
	r, store, _ := newOwnerRouter(t)
	expectMount(store)

	w := do(r, http.MethodPost, "/owner/bookings/b1/actions", gin.H{"action": "reject"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	store.On("UpdateBookingStatus", mock.Anything, "b1", models.BookingRejected, "Ground flooded").Return(nil).Once()
	w = do(r, http.MethodPost, "/owner/bookings/b1/actions", gin.H{"action": "reject", "reason": "Ground flooded"})
	require.Equal(t, http.StatusOK, w.Code)

	var view services.BookingView
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &view))
	assert.Equal(t, models.BookingRejected, view.Status)
	assert.Equal(t, "Ground flooded", view.Reason)

	w = do(r, http.MethodPost, "/owner/bookings/b2/actions", gin.H{"action": "reject", "reason": "late"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/owner/bookings/zzz/actions", gin.H{"action": "confirm"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/owner/bookings/b1/actions", gin.H{"action": "delay"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingStatus(t *testing.T) {
	r, store, _ := newOwnerRouter(t)
	expectMount(store)

	w := do(r, http.MethodPatch, "/owner/bookings/b1/status", gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPatch, "/owner/bookings/b1/status", gin.H{"status": "rejected", "reason": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	store.On("UpdateBookingStatus", mock.Anything, "b1", models.BookingDelayed, "").Return(nil).Once()
	w = do(r, http.MethodPatch, "/owner/bookings/b1/status", gin.H{"status": "delayed"})
	require.Equal(t, http.StatusOK, w.Code)

	store.On("UpdateBookingStatus", mock.Anything, "b2", models.BookingCancelled, "").Return(errors.New("timeout")).Once()
	w = do(r, http.MethodPatch, "/owner/bookings/b2/status", gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestViewEndpoints(t *testing.T) {
	r, store, _ := newOwnerRouter(t)
	expectMount(store)

	w := do(r, http.MethodPut, "/owner/view/reason", gin.H{"reason": "x"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/owner/bookings/b1/select", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/owner/bookings/b2/select", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPut, "/owner/view/reason", gin.H{"reason": "Pitch closed"})
	require.Equal(t, http.StatusOK, w.Code)
	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &snap))
	assert.Equal(t, services.ViewDetail, snap.View)
	assert.Equal(t, "Pitch closed", snap.DraftReason)

	w = do(r, http.MethodPost, "/owner/view/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &snap))
	assert.Equal(t, services.ViewList, snap.View)

	w = do(r, http.MethodGet, "/owner/bookings/b2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/owner/bookings/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCloseOwnerSession(t *testing.T) {
	r, store, _ := newOwnerRouter(t)
	expectMount(store)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/owner/bookings", nil).Code)

	w := do(r, http.MethodDelete, "/owner/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Reopening mounts again.
	expectMount(store)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/owner/bookings", nil).Code)
}

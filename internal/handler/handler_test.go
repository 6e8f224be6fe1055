package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TicketGate/internal/domain"
	"github.com/stpnv0/TicketGate/internal/handler/dto"
	hmocks "github.com/stpnv0/TicketGate/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockBookingSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(eventSvc, bookingSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.GET("/bookings/user/:id", h.ListUserBookings)
		api.GET("/bookings/event/:id", h.ListEventBookings)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	return eventSvc, bookingSvc, userSvc, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	date := time.Now().Add(24 * time.Hour)
	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        "Concert",
		Description:  "Live music",
		EventDate:    date,
		Capacity:     100,
		PriceCents:   2500,
		ApprovalMode: domain.ApprovalModeAutomatic,
		CreatedAt:    time.Now(),
	}

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:        "Concert",
		Description:  "Live music",
		EventDate:    date.Format(time.RFC3339),
		Capacity:     100,
		PriceCents:   2500,
		ApprovalMode: "automatic",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Title)
	assert.Equal(t, "automatic", resp.ApprovalMode)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_UnknownApprovalMode(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","description":"Y","event_date":"2030-01-01T10:00:00Z","capacity":10,"approval_mode":"whitelist"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","description":"Y","event_date":"not-a-date","capacity":10,"approval_mode":"manual"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:          domain.Event{ID: eventID, Title: "Concert", Capacity: 100, EventDate: time.Now(), CreatedAt: time.Now()},
		AvailableSeats: 95,
		Bookings:       []domain.Booking{},
	}

	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 95, resp.AvailableSeats)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", EventDate: time.Now(), CreatedAt: time.Now()},
		{ID: "e2", Title: "Event 2", EventDate: time.Now(), CreatedAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		EventID:         eventID,
		UserID:          userID,
		TicketCount:     2,
		Status:          domain.BookingStatusApproved,
		TotalPriceCents: 5000,
		CreatedAt:       time.Now(),
	}

	bookingSvc.EXPECT().CreateBooking(mock.Anything, eventID, userID, 2).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{EventID: eventID, UserID: userID, TicketCount: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, int64(5000), resp.TotalPriceCents)
}

func TestHandler_CreateBooking_InvalidEventID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"event_id":"bad-id","user_id":"` + uuid.New().String() + `","ticket_count":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidTicketCount(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().CreateBooking(mock.Anything, eventID, userID, 0).Return(nil, domain.ErrInvalidTicketCount)

	body, _ := json.Marshal(dto.CreateBookingRequest{EventID: eventID, UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_CapacityExceeded(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().CreateBooking(mock.Anything, eventID, userID, 5).Return(nil, domain.ErrCapacityExceeded)

	body, _ := json.Marshal(dto.CreateBookingRequest{EventID: eventID, UserID: userID, TicketCount: 5})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_ConcurrencyConflict(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().CreateBooking(mock.Anything, eventID, userID, 1).Return(nil, domain.ErrConcurrencyConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{EventID: eventID, UserID: userID, TicketCount: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusPending, CreatedAt: time.Now()}

	bookingSvc.EXPECT().GetBooking(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetBooking(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateBookingStatus_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusApproved, CreatedAt: time.Now()}

	bookingSvc.EXPECT().UpdateStatus(mock.Anything, bookingID, domain.BookingStatusApproved).Return(booking, nil)

	body := []byte(`{"status":"approved"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_UpdateBookingStatus_UnknownStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+uuid.New().String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus_InvalidTransition(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().UpdateStatus(mock.Anything, bookingID, domain.BookingStatusApproved).Return(nil, domain.ErrInvalidTransition)

	body := []byte(`{"status":"approved"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().CancelBooking(mock.Anything, bookingID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUserBookings_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	page := &domain.BookingPage{
		Bookings: []*domain.Booking{
			{ID: "b1", EventID: "e1", UserID: userID, Status: domain.BookingStatusPending, CreatedAt: time.Now()},
		},
		Page:  0,
		Size:  10,
		Total: 1,
	}

	bookingSvc.EXPECT().ListByUser(mock.Anything, userID, 0, 10).Return(page, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/"+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, 1, resp.Total)
}

func TestHandler_ListUserBookings_PagingParams(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	page := &domain.BookingPage{Page: 2, Size: 25, Total: 60}

	bookingSvc.EXPECT().ListByUser(mock.Anything, userID, 2, 25).Return(page, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/"+userID+"?page=2&size=25", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListUserBookings_BadPage(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/"+uuid.New().String()+"?page=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEventBookings_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	page := &domain.BookingPage{
		Bookings: []*domain.Booking{
			{ID: "b1", EventID: eventID, UserID: "u1", Status: domain.BookingStatusApproved, CreatedAt: time.Now()},
		},
		Page:  0,
		Size:  10,
		Total: 1,
	}

	bookingSvc.EXPECT().ListByEvent(mock.Anything, eventID, 0, 10).Return(page, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/event/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	users := []*domain.User{
		{ID: "u1", Username: "alice", CreatedAt: time.Now()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

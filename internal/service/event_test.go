package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/TicketGate/internal/domain"
	"github.com/stpnv0/TicketGate/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewEventService(eventRepo, bookingRepo, ledgerRepo)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateEventInput{
		Title:        "Concert",
		Description:  "Live music",
		Location:     "Main Hall",
		EventDate:    time.Now().Add(24 * time.Hour),
		Capacity:     100,
		PriceCents:   2500,
		ApprovalMode: domain.ApprovalModeAutomatic,
	}

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Concert", event.Title)
	assert.Equal(t, "Live music", event.Description)
	assert.Equal(t, "Main Hall", event.Location)
	assert.Equal(t, 100, event.Capacity)
	assert.Equal(t, int64(2500), event.PriceCents)
	assert.Equal(t, domain.ApprovalModeAutomatic, event.ApprovalMode)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewEventService(eventRepo, bookingRepo, ledgerRepo)

	valid := domain.CreateEventInput{
		Title:        "Concert",
		EventDate:    time.Now().Add(time.Hour),
		Capacity:     10,
		PriceCents:   0,
		ApprovalMode: domain.ApprovalModeManual,
	}

	cases := []struct {
		name   string
		mutate func(in *domain.CreateEventInput)
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = "" }},
		{"zero capacity", func(in *domain.CreateEventInput) { in.Capacity = 0 }},
		{"negative capacity", func(in *domain.CreateEventInput) { in.Capacity = -5 }},
		{"negative price", func(in *domain.CreateEventInput) { in.PriceCents = -100 }},
		{"bad approval mode", func(in *domain.CreateEventInput) { in.ApprovalMode = "whitelist" }},
		{"past date", func(in *domain.CreateEventInput) { in.EventDate = time.Now().Add(-time.Hour) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			_, err := svc.CreateEvent(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	eventRepo.AssertNotCalled(t, "Create")
}

func TestEventService_GetDetails_AvailabilityFromLedger(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewEventService(eventRepo, bookingRepo, ledgerRepo)

	event := &domain.Event{ID: "e1", Title: "Concert", Capacity: 100}
	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", Status: domain.BookingStatusApproved, TicketCount: 30},
		{ID: "b2", EventID: "e1", Status: domain.BookingStatusPending, TicketCount: 5},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	ledgerRepo.EXPECT().Get(mock.Anything, "e1").Return(&domain.CapacityLedger{EventID: "e1", ApprovedTickets: 30, Version: 2}, nil)
	bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1", maxPageSize, 0).Return(bookings, 2, nil)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "Concert", details.Event.Title)
	assert.Equal(t, 70, details.AvailableSeats)
	assert.Len(t, details.Bookings, 2)
}

func TestEventService_GetDetails_EventNotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewEventService(eventRepo, bookingRepo, ledgerRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewEventService(eventRepo, bookingRepo, ledgerRepo)

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestEventService_List_RepoError(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	ledgerRepo := mocks.NewMockLedgerRepo(t)
	svc := NewEventService(eventRepo, bookingRepo, ledgerRepo)

	eventRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}

package confirm_booking_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	"github.com/m04kA/SMC-SlotBookingService/internal/integrations/emailservice"
	"github.com/m04kA/SMC-SlotBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-SlotBookingService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-SlotBookingService/pkg/logger"
)

type MockBookingLookup struct {
	mock.Mock
}

func (m *MockBookingLookup) Get(ctx context.Context, rawID string) (*domain.Booking, error) {
	args := m.Called(ctx, rawID)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func bookingWithEmail(email *string) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		CustomerID:    "u1",
		ResourceID:    "r1",
		Date:          "2025-01-10",
		Time:          "14:00",
		CustomerEmail: email,
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string {
	return &s
}

func TestUseCase_Execute_Sent(t *testing.T) {
	booking := bookingWithEmail(strPtr("u1@example.com"))
	id := booking.ID.String()

	lookup := new(MockBookingLookup)
	lookup.On("Get", mock.Anything, id).Return(booking, nil)

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, &domain.Notification{
		Recipients: []string{"u1@example.com"},
		Subject:    "Your appointment is confirmed!",
		Body:       fmt.Sprintf("Your appointment (ID: %s) has been confirmed.", id),
		IsHTML:     false,
	}).Return(nil)

	uc := confirm_booking.NewUseCase(lookup, notifier, logger.Nop())

	resp, err := uc.Execute(context.Background(), &confirm_booking.Request{BookingID: id})
	require.NoError(t, err)
	assert.Equal(t, id, resp.BookingID)
	assert.Equal(t, domain.Sent(), resp.Outcome)
	notifier.AssertExpectations(t)
}

func TestUseCase_Execute_NotifierFailureIsSwallowed(t *testing.T) {
	booking := bookingWithEmail(strPtr("u1@example.com"))
	id := booking.ID.String()

	lookup := new(MockBookingLookup)
	lookup.On("Get", mock.Anything, id).Return(booking, nil)

	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, mock.Anything).Return(emailservice.ErrUnavailable)

	uc := confirm_booking.NewUseCase(lookup, notifier, logger.Nop())

	resp, err := uc.Execute(context.Background(), &confirm_booking.Request{BookingID: id})
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationFailed, resp.Outcome.Status)
	assert.Contains(t, resp.Outcome.Reason, "unavailable")
}

func TestUseCase_Execute_UnreachableNotifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	booking := bookingWithEmail(strPtr("u1@example.com"))
	lookup := new(MockBookingLookup)
	lookup.On("Get", mock.Anything, booking.ID.String()).Return(booking, nil)

	client := emailservice.NewClient(url, time.Second, logger.Nop())
	uc := confirm_booking.NewUseCase(lookup, client, logger.Nop())

	resp, err := uc.Execute(context.Background(), &confirm_booking.Request{BookingID: booking.ID.String()})
	require.NoError(t, err)
	assert.False(t, resp.Outcome.IsSent())
}

func TestUseCase_Execute_Errors(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name      string
		bookingID string
		setup     func(l *MockBookingLookup)
		wantErr   error
	}{
		{
			name:      "missing id",
			bookingID: "  ",
			setup:     func(l *MockBookingLookup) {},
			wantErr:   confirm_booking.ErrMissingBookingID,
		},
		{
			name:      "invalid id",
			bookingID: "123",
			setup: func(l *MockBookingLookup) {
				l.On("Get", mock.Anything, "123").Return(nil, fmt.Errorf("%w: unexpected length 3", bookings.ErrInvalidBookingID))
			},
			wantErr: confirm_booking.ErrInvalidBookingID,
		},
		{
			name:      "not found",
			bookingID: id,
			setup: func(l *MockBookingLookup) {
				l.On("Get", mock.Anything, id).Return(nil, bookings.ErrBookingNotFound)
			},
			wantErr: confirm_booking.ErrBookingNotFound,
		},
		{
			name:      "no email",
			bookingID: id,
			setup: func(l *MockBookingLookup) {
				l.On("Get", mock.Anything, id).Return(bookingWithEmail(nil), nil)
			},
			wantErr: confirm_booking.ErrMissingEmail,
		},
		{
			name:      "storage error",
			bookingID: id,
			setup: func(l *MockBookingLookup) {
				l.On("Get", mock.Anything, id).Return(nil, fmt.Errorf("%w: boom", bookings.ErrInternal))
			},
			wantErr: confirm_booking.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := new(MockBookingLookup)
			tt.setup(lookup)
			notifier := new(MockNotifier)
			uc := confirm_booking.NewUseCase(lookup, notifier, logger.Nop())

			_, err := uc.Execute(context.Background(), &confirm_booking.Request{BookingID: tt.bookingID})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

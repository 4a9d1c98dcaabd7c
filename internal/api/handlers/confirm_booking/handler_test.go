package confirm_booking_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBookingService/internal/api/handlers/confirm_booking"
	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-SlotBookingService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-SlotBookingService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*confirmBooking.Response)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	const id = "6f1c1f7e-2a55-4f3e-9d5e-0b8f0b7c4a11"

	tests := []struct {
		name       string
		body       string
		setup      func(m *MockUseCase)
		wantStatus int
		wantBody   string
	}{
		{
			name: "sent",
			body: `{"appointment_id":"` + id + `"}`,
			setup: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, &confirmBooking.Request{BookingID: id}).
					Return(&confirmBooking.Response{BookingID: id, Outcome: domain.Sent()}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Confirmation processed","appointment_id":"` + id + `","notification_status":"sent"}`,
		},
		{
			name: "notifier failed",
			body: `{"appointment_id":"` + id + `"}`,
			setup: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).
					Return(&confirmBooking.Response{BookingID: id, Outcome: domain.Failed("timeout")}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Confirmation processed","appointment_id":"` + id + `","notification_status":"failed"}`,
		},
		{
			name:       "empty body",
			body:       "",
			setup:      func(m *MockUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"appointment_id is required"}`,
		},
		{
			name: "missing id",
			body: `{}`,
			setup: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, confirmBooking.ErrMissingBookingID)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"appointment_id is required"}`,
		},
		{
			name: "invalid id",
			body: `{"appointment_id":"123"}`,
			setup: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, confirmBooking.ErrInvalidBookingID)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid appointment ID format"}`,
		},
		{
			name: "not found",
			body: `{"appointment_id":"` + id + `"}`,
			setup: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, confirmBooking.ErrBookingNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Appointment not found"}`,
		},
		{
			name: "no email",
			body: `{"appointment_id":"` + id + `"}`,
			setup: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, confirmBooking.ErrMissingEmail)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Customer email not found in appointment"}`,
		},
		{
			name: "internal",
			body: `{"appointment_id":"` + id + `"}`,
			setup: func(m *MockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			tt.setup(uc)
			h := confirm_booking.NewHandler(uc, logger.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/appointments/confirm", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

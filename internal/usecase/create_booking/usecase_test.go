package create_booking_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SlotBookingService/pkg/logger"
	"github.com/m04kA/SMC-SlotBookingService/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBySlot(ctx context.Context, key domain.SlotKey) (*domain.Booking, error) {
	args := m.Called(ctx, key)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Booking) *domain.Booking); ok {
		return fn(ctx, booking), args.Error(1)
	}
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type conflictCounter struct {
	n atomic.Int64
}

func (c *conflictCounter) IncBookingConflict() {
	c.n.Add(1)
}

// memoryRepository хранилище с уникальностью по слоту, аналогично ограничению bookings_slot_unique
type memoryRepository struct {
	mu       sync.Mutex
	bookings map[domain.SlotKey]*domain.Booking
	inserts  atomic.Int64
	// gate задерживает FindBySlot, чтобы все конкурентные вызовы прошли предварительную проверку
	gate chan struct{}
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{bookings: make(map[domain.SlotKey]*domain.Booking)}
}

func (r *memoryRepository) FindBySlot(_ context.Context, key domain.SlotKey) (*domain.Booking, error) {
	r.mu.Lock()
	b, ok := r.bookings[key]
	r.mu.Unlock()

	if r.gate != nil {
		<-r.gate
	}
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *memoryRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := booking.SlotKey()
	if _, exists := r.bookings[key]; exists {
		return nil, bookingRepo.ErrSlotAlreadyBooked
	}
	r.bookings[key] = booking
	r.inserts.Add(1)
	return booking, nil
}

func (r *memoryRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

func strPtr(s string) *string {
	return &s
}

func validRequest() *create_booking.Request {
	return &create_booking.Request{
		CustomerID: "u1",
		ResourceID: "r1",
		Date:       "2025-01-10",
		Time:       "14:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	repo := new(MockBookingRepository)

	req := validRequest()
	req.CustomerEmail = strPtr("u1@example.com")

	key := domain.SlotKey{ResourceID: "r1", Date: "2025-01-10", Time: "14:00"}
	repo.On("FindBySlot", mock.Anything, key).Return(nil, bookingRepo.ErrBookingNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CustomerID == "u1" &&
			b.SlotKey() == key &&
			b.CustomerEmail != nil && *b.CustomerEmail == "u1@example.com" &&
			b.Status == domain.StatusConfirmed &&
			b.CreatedAt.Equal(now) && b.CreatedAt.Location() == time.UTC
	})).Return(func(_ context.Context, b *domain.Booking) *domain.Booking { return b }, nil)

	uc := create_booking.NewUseCase(repo, nil, logger.Nop()).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, resp.ID, 36)
	assert.Equal(t, "u1", resp.CustomerID)
	assert.Equal(t, "r1", resp.ResourceID)
	assert.Equal(t, "2025-01-10", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, now.UTC(), resp.CreatedAt)
	repo.AssertExpectations(t)
}

func TestUseCase_Execute_EmptyEmailIsAbsent(t *testing.T) {
	repo := newMemoryRepository()
	uc := create_booking.NewUseCase(repo, nil, logger.Nop())

	req := validRequest()
	req.CustomerEmail = strPtr("   ")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.CustomerEmail)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *create_booking.Request)
		wantErr error
	}{
		{"missing customer_id", func(r *create_booking.Request) { r.CustomerID = "" }, create_booking.ErrMissingFields},
		{"missing resource_id", func(r *create_booking.Request) { r.ResourceID = "" }, create_booking.ErrMissingFields},
		{"missing date", func(r *create_booking.Request) { r.Date = "" }, create_booking.ErrMissingFields},
		{"blank time", func(r *create_booking.Request) { r.Time = "  " }, create_booking.ErrMissingFields},
		{"bad email", func(r *create_booking.Request) { r.CustomerEmail = strPtr("not-an-email") }, create_booking.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			uc := create_booking.NewUseCase(repo, nil, logger.Nop())

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "FindBySlot", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_StoresValuesAsSubmitted(t *testing.T) {
	tests := []struct {
		name string
		req  create_booking.Request
	}{
		{"single digit hour", create_booking.Request{CustomerID: "u1", ResourceID: "r1", Date: "2025-01-10", Time: "9:05"}},
		{"seconds in time", create_booking.Request{CustomerID: "u1", ResourceID: "r1", Date: "2025-01-10", Time: "14:00:00"}},
		{"surrounding spaces", create_booking.Request{CustomerID: " u1 ", ResourceID: "r1 ", Date: "2025-01-10", Time: "14:00"}},
		{"free-form date", create_booking.Request{CustomerID: "u1", ResourceID: "r1", Date: "10.01.2025", Time: "14:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			uc := create_booking.NewUseCase(repo, nil, logger.Nop())

			req := tt.req
			resp, err := uc.Execute(context.Background(), &req)
			require.NoError(t, err)

			assert.Equal(t, tt.req.CustomerID, resp.CustomerID)
			assert.Equal(t, tt.req.ResourceID, resp.ResourceID)
			assert.Equal(t, tt.req.Date, resp.Date)
			assert.Equal(t, tt.req.Time, resp.Time)

			key := domain.SlotKey{ResourceID: tt.req.ResourceID, Date: types.DateString(tt.req.Date), Time: types.TimeString(tt.req.Time)}
			stored, err := repo.FindBySlot(context.Background(), key)
			require.NoError(t, err)
			assert.Equal(t, tt.req.CustomerID, stored.CustomerID)
		})
	}
}

func TestUseCase_Execute_SequentialDistinctSlots(t *testing.T) {
	repo := newMemoryRepository()
	uc := create_booking.NewUseCase(repo, nil, logger.Nop())

	requests := []*create_booking.Request{
		{CustomerID: "u1", ResourceID: "r1", Date: "2025-01-10", Time: "14:00"},
		{CustomerID: "u1", ResourceID: "r1", Date: "2025-01-10", Time: "15:00"},
		{CustomerID: "u2", ResourceID: "r2", Date: "2025-01-10", Time: "14:00"},
		{CustomerID: "u2", ResourceID: "r1", Date: "2025-01-11", Time: "14:00"},
	}

	ids := make(map[string]struct{})
	for _, req := range requests {
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		ids[resp.ID] = struct{}{}
	}

	assert.Len(t, ids, len(requests))
	assert.Equal(t, len(requests), repo.count())
}

func TestUseCase_Execute_SequentialSameSlotConflicts(t *testing.T) {
	repo := newMemoryRepository()
	conflicts := &conflictCounter{}
	uc := create_booking.NewUseCase(repo, conflicts, logger.Nop())

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.CustomerID = "u2"
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, create_booking.ErrSlotAlreadyBooked)

	assert.Equal(t, 1, repo.count())
	assert.EqualValues(t, 1, repo.inserts.Load())
	assert.EqualValues(t, 1, conflicts.n.Load())
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	const bookers = 16

	repo := newMemoryRepository()
	repo.gate = make(chan struct{})
	conflicts := &conflictCounter{}
	uc := create_booking.NewUseCase(repo, conflicts, logger.Nop())

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
		rejected  atomic.Int64
	)
	for i := 0; i < bookers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, create_booking.ErrSlotAlreadyBooked):
				rejected.Add(1)
			}
		}()
	}

	// Все горутины проходят предварительную проверку до первой вставки
	for i := 0; i < bookers; i++ {
		repo.gate <- struct{}{}
	}
	wg.Wait()

	assert.EqualValues(t, 1, successes.Load())
	assert.EqualValues(t, bookers-1, rejected.Load())
	assert.Equal(t, 1, repo.count())
	assert.EqualValues(t, bookers-1, conflicts.n.Load())
}

func TestUseCase_Execute_StorageErrors(t *testing.T) {
	t.Run("pre-check fails", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("FindBySlot", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
		uc := create_booking.NewUseCase(repo, nil, logger.Nop())

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, create_booking.ErrInternal)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("FindBySlot", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrBookingNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))
		uc := create_booking.NewUseCase(repo, nil, logger.Nop())

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, create_booking.ErrInternal)
	})
}

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	"github.com/m04kA/SMC-SlotBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SlotBookingService/pkg/types"
)

const (
	tableBookings = "bookings"

	// pqUniqueViolation код ошибки PostgreSQL unique_violation
	pqUniqueViolation = "23505"

	onConflictSlot = "ON CONFLICT (resource_id, booking_date, start_time) DO NOTHING"
)

var bookingColumns = []string{
	"id",
	"customer_id",
	"resource_id",
	"booking_date",
	"start_time",
	"customer_email",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db           DBExecutor
	queryTimeout time.Duration
}

// NewRepository создает новый экземпляр репозитория бронирований
// queryTimeout ограничивает каждый запрос к БД (0 - без ограничения)
func NewRepository(db DBExecutor, queryTimeout time.Duration) *Repository {
	return &Repository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// Create атомарно создает бронирование
// Уникальность слота гарантируется ограничением UNIQUE (resource_id, booking_date, start_time):
// вставка выполняется одним запросом INSERT ... ON CONFLICT DO NOTHING, поэтому
// из N конкурентных вставок одного и того же слота успешной будет ровно одна.
// Если слот уже занят, возвращает ErrSlotAlreadyBooked.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.CustomerID,
			booking.ResourceID,
			string(booking.Date),
			string(booking.Time),
			booking.CustomerEmail,
			string(booking.Status),
			booking.CreatedAt,
		).
		Suffix(onConflictSlot).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - get rows affected: %v", ErrExecQuery, err)
	}

	// ON CONFLICT DO NOTHING: слот занят другим бронированием
	if rowsAffected == 0 {
		return nil, ErrSlotAlreadyBooked
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// FindBySlot ищет бронирование на слот (resource_id, date, time)
// Возвращает ErrBookingNotFound, если слот свободен
func (r *Repository) FindBySlot(ctx context.Context, key domain.SlotKey) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{
			"resource_id":  key.ResourceID,
			"booking_date": string(key.Date),
			"start_time":   string(key.Time),
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindBySlot - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindBySlot - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// DeleteAll удаляет все бронирования (обслуживающая операция, см. cmd/clearbookings)
// Возвращает количество удалённых записей
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := psqlbuilder.Delete(tableBookings).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// scanBooking сканирует одну строку в domain.Booking
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var (
		booking       domain.Booking
		date, start   string
		status        string
		customerEmail sql.NullString
	)

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ResourceID,
		&date,
		&start,
		&customerEmail,
		&status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Date = types.DateString(date)
	booking.Time = types.TimeString(start)
	booking.Status = domain.BookingStatus(status)
	booking.CreatedAt = booking.CreatedAt.UTC()
	if customerEmail.Valid {
		booking.CustomerEmail = &customerEmail.String
	}

	return &booking, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

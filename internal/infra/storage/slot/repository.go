package slot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
	"github.com/m04kA/SMC-SlotBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SlotBookingService/pkg/types"
)

const tableSlots = "available_slots"

// Repository репозиторий слотов (инвентарь создаётся вне сервиса, здесь только чтение)
type Repository struct {
	db           DBExecutor
	queryTimeout time.Duration
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor, queryTimeout time.Duration) *Repository {
	return &Repository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// List возвращает слоты, опционально отфильтрованные по ресурсу
// Сортировка: дата, время, ресурс
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"resource_id",
		"slot_date",
		"start_time",
		"attributes",
	).
		From(tableSlots).
		OrderBy("slot_date ASC, start_time ASC, resource_id ASC")

	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var (
			slot        domain.Slot
			date, start string
			attributes  []byte
		)

		if err := rows.Scan(&slot.ID, &slot.ResourceID, &date, &start, &attributes); err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.Date = types.DateString(date)
		slot.Time = types.TimeString(start)

		attrs, err := decodeAttributes(attributes)
		if err != nil {
			return nil, fmt.Errorf("%w: slot id=%s: %v", ErrInvalidAttributes, slot.ID, err)
		}
		slot.Attributes = attrs

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func decodeAttributes(raw []byte) (map[string]interface{}, error) {
	attrs := make(map[string]interface{})
	if len(raw) == 0 {
		return attrs, nil
	}
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

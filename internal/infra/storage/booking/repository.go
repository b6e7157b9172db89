package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
	"github.com/m04kA/SMC-VenueCalendar/pkg/psqlbuilder"
)

const (
	seminarsTable = "seminars"
	hallsTable    = "seminar_halls"

	// Дата заявки в том же порядке полей, что и у адаптера нормализации
	bookingDateExpr = "COALESCE(date, start_date, applied_at::date, created_at::date)"
)

// Repository репозиторий для чтения заявок на бронирование площадок.
// Только чтение: заявки создаются и согласуются во внешней системе.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRaw возвращает заявки в исходном виде для адаптера нормализации.
// Фильтры:
// - Date: только заявки на этот день (date, иначе start_date, applied_at, created_at)
// - Venue: по названию или ID площадки
//
// Статус не фильтруется в SQL: отсев неподтверждённых заявок делает движок календаря.
func (r *Repository) ListRaw(ctx context.Context, query domain.BookingsQuery) ([]ingest.RawRecord, error) {
	sqlQuery, args, err := buildListQuery(query).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRaw - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRaw - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRawRecords(rows)
}

// ListVenues возвращает список площадок, отсортированный по названию
func (r *Repository) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	sqlQuery, args, err := psqlbuilder.Select("id", "name", "capacity").
		From(hallsTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVenues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0)
	for rows.Next() {
		var h hallRow
		if err := rows.Scan(&h.ID, &h.Name, &h.Capacity); err != nil {
			return nil, fmt.Errorf("%w: ListVenues - scan hall: %v", ErrScanRow, err)
		}
		venues = append(venues, h.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVenues - rows iteration: %v", ErrScanRow, err)
	}

	return venues, nil
}

// buildListQuery строит SELECT по таблице seminars
func buildListQuery(query domain.BookingsQuery) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(seminarColumns...).
		From(seminarsTable).
		OrderBy("date ASC NULLS LAST", "start_time ASC", "id ASC")

	if query.Date != nil {
		builder = builder.Where(squirrel.Expr(bookingDateExpr+" = ?", query.Date.Format(domain.DateFormat)))
	}

	if query.Venue != "" {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"hall_name": query.Venue},
			squirrel.Expr("hall_id::text = ?", query.Venue),
		})
	}

	return builder
}

// scanRawRecords сканирует строки seminars в записи источника
func scanRawRecords(rows *sql.Rows) ([]ingest.RawRecord, error) {
	records := make([]ingest.RawRecord, 0)

	for rows.Next() {
		var row seminarRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("%w: scan seminar: %v", ErrScanRow, err)
		}
		records = append(records, row.toRawRecord())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return records, nil
}

package booking

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
)

// seminarRow строка таблицы seminars. Почти все поля nullable: таблица
// наполняется формой заявки, и старые записи заполнены частично.
type seminarRow struct {
	ID          int64
	HallName    sql.NullString
	HallID      sql.NullInt64
	Date        sql.NullTime
	StartDate   sql.NullTime
	EndDate     sql.NullTime
	StartTime   sql.NullString
	EndTime     sql.NullString
	Status      sql.NullString
	Title       sql.NullString
	BookingName sql.NullString
	Department  sql.NullString
	Email       sql.NullString
	Phone       sql.NullString
	Remarks     sql.NullString
	AppliedAt   sql.NullTime
	CreatedAt   sql.NullTime
}

var seminarColumns = []string{
	"id",
	"hall_name",
	"hall_id",
	"date",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"status",
	"slot_title",
	"booking_name",
	"department",
	"email",
	"phone",
	"remarks",
	"applied_at",
	"created_at",
}

func (r *seminarRow) scanTargets() []interface{} {
	return []interface{}{
		&r.ID,
		&r.HallName,
		&r.HallID,
		&r.Date,
		&r.StartDate,
		&r.EndDate,
		&r.StartTime,
		&r.EndTime,
		&r.Status,
		&r.Title,
		&r.BookingName,
		&r.Department,
		&r.Email,
		&r.Phone,
		&r.Remarks,
		&r.AppliedAt,
		&r.CreatedAt,
	}
}

// toRawRecord переводит строку в формат записи upstream API,
// чтобы обе площадки данных проходили через один адаптер нормализации
func (r *seminarRow) toRawRecord() ingest.RawRecord {
	rec := ingest.RawRecord{
		"id": strconv.FormatInt(r.ID, 10),
	}

	putString(rec, "hallName", r.HallName)
	putString(rec, "startTime", r.StartTime)
	putString(rec, "endTime", r.EndTime)
	putString(rec, "status", r.Status)
	putString(rec, "slotTitle", r.Title)
	putString(rec, "bookingName", r.BookingName)
	putString(rec, "department", r.Department)
	putString(rec, "email", r.Email)
	putString(rec, "phone", r.Phone)
	putString(rec, "remarks", r.Remarks)

	if r.HallID.Valid {
		rec["hall_id"] = strconv.FormatInt(r.HallID.Int64, 10)
	}

	putDate(rec, "date", r.Date, domain.DateFormat)
	putDate(rec, "startDate", r.StartDate, domain.DateFormat)
	putDate(rec, "endDate", r.EndDate, domain.DateFormat)
	putDate(rec, "appliedAt", r.AppliedAt, time.RFC3339)
	putDate(rec, "createdAt", r.CreatedAt, time.RFC3339)

	return rec
}

func putString(rec ingest.RawRecord, key string, v sql.NullString) {
	if v.Valid {
		rec[key] = v.String
	}
}

// putDate форматирует время в зоне, которую вернул драйвер: перевод в UTC сдвинул бы дату
func putDate(rec ingest.RawRecord, key string, v sql.NullTime, layout string) {
	if v.Valid {
		rec[key] = v.Time.Format(layout)
	}
}

// hallRow строка таблицы seminar_halls
type hallRow struct {
	ID       int64
	Name     string
	Capacity sql.NullInt64
}

func (h *hallRow) toDomain() domain.Venue {
	venue := domain.Venue{
		ID:   strconv.FormatInt(h.ID, 10),
		Name: h.Name,
	}
	if h.Capacity.Valid {
		capacity := int(h.Capacity.Int64)
		venue.Capacity = &capacity
	}
	return venue
}

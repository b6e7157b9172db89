package ingest

import (
	"errors"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// RawRecord запись бронирования в том виде, в котором её отдаёт источник (декодированный JSON)
type RawRecord map[string]any

// Rejection запись, которую не удалось привести к domain.Booking
type Rejection struct {
	SourceIndex int
	ID          string // Идентификатор, если его удалось определить
	Err         error
}

// Reason возвращает короткую причину отклонения для логов и метрик
func (r Rejection) Reason() string {
	switch {
	case r.Err == nil:
		return "unknown"
	case errors.Is(r.Err, ErrMissingDate):
		return "missing_date"
	case errors.Is(r.Err, ErrMalformedDate):
		return "malformed_date"
	default:
		return "malformed_record"
	}
}

// Result результат нормализации пачки записей
type Result struct {
	Bookings []domain.Booking
	Rejected []Rejection
}

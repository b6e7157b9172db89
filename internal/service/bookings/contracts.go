package bookings

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
)

// Source источник заявок: upstream API (hallservice) или PostgreSQL (storage/booking)
type Source interface {
	ListRaw(ctx context.Context, query domain.BookingsQuery) ([]ingest.RawRecord, error)
	ListVenues(ctx context.Context) ([]domain.Venue, error)
}

// Normalizer приводит записи источника к domain.Booking
type Normalizer interface {
	Normalize(records []ingest.RawRecord) ingest.Result
}

// Observer учитывает обращения к источнику (метрики). Может быть nil.
type Observer interface {
	ObserveUpstream(source, operation string, err error, seconds float64)
	RecordAccepted(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_month_calendar

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// BookingsService интерфейс сервиса чтения бронирований
type BookingsService interface {
	List(ctx context.Context, query domain.BookingsQuery) ([]domain.Booking, error)
}

// BuildObserver учитывает построение календаря (метрики). Может быть nil.
type BuildObserver interface {
	ObserveBuild(view string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

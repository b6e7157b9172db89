package get_day_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/calendar"
)

const viewName = "day"

// UseCase use case получения подтверждённых бронирований площадки на день
type UseCase struct {
	bookings BookingsService
	observer BuildObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case. observer может быть nil.
func NewUseCase(bookings BookingsService, observer BuildObserver, logger Logger) *UseCase {
	return &UseCase{
		bookings: bookings,
		observer: observer,
		logger:   logger,
	}
}

// Execute выполняет use case получения бронирований дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayBookings: date=%s, venue=%q", req.Date, req.Venue)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetDayBookings: validation failed: %v", err)
		return nil, err
	}

	started := time.Now()

	// 2. Запрос, ограниченный днём. Площадка в источник не передаётся: upstream фильтрует
	// только по названию, а ключ запроса может быть и ID площадки
	bookings, err := uc.bookings.List(ctx, domain.BookingsQuery{Date: &date})
	if err != nil {
		uc.logger.Error("GetDayBookings: failed to list bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Источник может игнорировать фильтры, поэтому день и площадка проверяются повторно
	dayBookings := make([]domain.Booking, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if b.ISODate() != req.Date || !b.MatchesVenue(req.Venue) {
			continue
		}
		dayBookings = append(dayBookings, *b)
	}

	// 4. Собираем представление дня
	items := calendar.AssembleDayDetail(dayBookings)
	occupancy := calendar.CalculateOccupancy(dayBookings)

	if uc.observer != nil {
		uc.observer.ObserveBuild(viewName, time.Since(started).Seconds())
	}

	uc.logger.Info("GetDayBookings: date=%s, venue=%q: %d approved of %d, %d%% full",
		req.Date, req.Venue, len(items), len(dayBookings), occupancy.PercentFull)

	return &Response{
		Date:      date,
		Venue:     req.Venue,
		Items:     items,
		Occupancy: occupancy,
	}, nil
}

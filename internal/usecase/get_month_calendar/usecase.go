package get_month_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/calendar"
)

const viewName = "grid"

// UseCase use case построения месячного календаря загруженности площадки
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

// Execute выполняет use case получения месячной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthCalendar: year=%d, month=%d, venue=%q, department=%q",
		req.Year, req.Month, req.Venue, req.Department)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthCalendar: validation failed: %v", err)
		return nil, err
	}

	started := time.Now()

	// 2. Получаем бронирования. Фильтр по площадке применяет движок:
	// он сравнивает и название, и ID, а источник умеет только название.
	bookings, err := uc.bookings.List(ctx, domain.BookingsQuery{})
	if err != nil {
		uc.logger.Error("GetMonthCalendar: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Строим сетку
	filter := calendar.GridFilter{Venue: req.Venue, Department: req.Department}
	grid, err := calendar.BuildMonthGridWithFilter(bookings, filter, req.Year, req.Month)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidParameters) {
			uc.logger.Warn("GetMonthCalendar: invalid parameters: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
		}
		uc.logger.Error("GetMonthCalendar: failed to build grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build grid: %v", ErrInternal, err)
	}

	if uc.observer != nil {
		uc.observer.ObserveBuild(viewName, time.Since(started).Seconds())
	}

	placed := 0
	for _, day := range grid.Days() {
		placed += len(day.Bookings)
	}

	uc.logger.Info("GetMonthCalendar: built grid %04d-%02d for venue=%q with %d of %d bookings",
		req.Year, req.Month, req.Venue, placed, len(bookings))

	return &Response{
		Venue:      req.Venue,
		Department: req.Department,
		Grid:       grid,
		Excluded:   len(bookings) - placed,
	}, nil
}

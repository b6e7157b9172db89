package export_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/calendar"
)

const viewName = "export"

// UseCase use case построения печатного календаря площадки на месяц
type UseCase struct {
	bookings       BookingsService
	defaultPerCell int
	observer       BuildObserver
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultPerCell применяется, когда в запросе perCell не задан.
func NewUseCase(bookings BookingsService, defaultPerCell int, observer BuildObserver, logger Logger) *UseCase {
	if defaultPerCell <= 0 {
		defaultPerCell = domain.DefaultExportPerCell
	}
	return &UseCase{
		bookings:       bookings,
		defaultPerCell: defaultPerCell,
		observer:       observer,
		logger:         logger,
	}
}

// Execute выполняет use case построения печатного календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportCalendar: year=%d, month=%d, venue=%q, perCell=%d",
		req.Year, req.Month, req.Venue, req.PerCell)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExportCalendar: validation failed: %v", err)
		return nil, err
	}

	perCell := req.PerCell
	if perCell == 0 {
		perCell = uc.defaultPerCell
	}

	started := time.Now()

	// 2. Площадки и бронирования запрашиваются параллельно
	var (
		venues   []domain.Venue
		bookings []domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		venues, err = uc.bookings.Venues(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = uc.bookings.List(gctx, domain.BookingsQuery{})
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("ExportCalendar: failed to fetch data for venue=%q: %v", req.Venue, err)
		return nil, fmt.Errorf("%w: failed to fetch data: %v", ErrInternal, err)
	}

	// 3. Площадка должна быть в справочнике
	venue, ok := resolveVenue(venues, req.Venue)
	if !ok {
		uc.logger.Warn("ExportCalendar: venue=%q not found among %d venues", req.Venue, len(venues))
		return nil, fmt.Errorf("%w: %q", ErrVenueNotFound, req.Venue)
	}

	// 4. Строим печатный календарь. Фильтр по ключу запроса: движок сравнит его и с названием, и с ID.
	export, err := calendar.BuildExport(bookings, req.Venue, req.Year, req.Month, perCell)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidParameters) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
		}
		uc.logger.Error("ExportCalendar: failed to build export: %v", err)
		return nil, fmt.Errorf("%w: failed to build export: %v", ErrInternal, err)
	}
	export.Venue = venue.Name

	if uc.observer != nil {
		uc.observer.ObserveBuild(viewName, time.Since(started).Seconds())
	}

	uc.logger.Info("ExportCalendar: built export %04d-%02d for venue=%q, overflow=%d",
		req.Year, req.Month, venue.Name, len(export.Overflow))

	return &Response{
		Venue:  venue,
		Export: export,
	}, nil
}

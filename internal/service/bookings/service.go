package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
)

// Service сервис чтения бронирований: получает записи из источника
// и прогоняет их через адаптер нормализации
type Service struct {
	source     Source
	sourceName string
	normalizer Normalizer
	observer   Observer
	logger     Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// sourceName попадает в метки метрик ("api", "postgres"), observer может быть nil.
func NewService(
	source Source,
	sourceName string,
	normalizer Normalizer,
	observer Observer,
	logger Logger,
) *Service {
	return &Service{
		source:     source,
		sourceName: sourceName,
		normalizer: normalizer,
		observer:   observer,
		logger:     logger,
	}
}

// List возвращает нормализованные бронирования по запросу.
// Отклонённые записи не считаются ошибкой: адаптер их логирует и учитывает.
func (s *Service) List(ctx context.Context, query domain.BookingsQuery) ([]domain.Booking, error) {
	started := time.Now()
	records, err := s.source.ListRaw(ctx, query)
	s.observe("list_bookings", err, started)
	if err != nil {
		s.logger.Error("List: source=%s error (venue=%q): %v", s.sourceName, query.Venue, err)
		return nil, fmt.Errorf("%w: List - %v", ErrSourceUnavailable, err)
	}

	result := s.normalizer.Normalize(records)
	if s.observer != nil {
		s.observer.RecordAccepted(len(result.Bookings))
	}

	return result.Bookings, nil
}

// ListVenues возвращает площадки источника
func (s *Service) ListVenues(ctx context.Context) (*models.VenueListResponse, error) {
	venues, err := s.Venues(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainVenueList(venues), nil
}

// Venues возвращает площадки в domain модели
func (s *Service) Venues(ctx context.Context) ([]domain.Venue, error) {
	started := time.Now()
	venues, err := s.source.ListVenues(ctx)
	s.observe("list_venues", err, started)
	if err != nil {
		s.logger.Error("ListVenues: source=%s error: %v", s.sourceName, err)
		return nil, fmt.Errorf("%w: ListVenues - %v", ErrSourceUnavailable, err)
	}

	s.logger.Info("ListVenues: fetched %d venues from %s", len(venues), s.sourceName)
	return venues, nil
}

func (s *Service) observe(operation string, err error, started time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveUpstream(s.sourceName, operation, err, time.Since(started).Seconds())
}

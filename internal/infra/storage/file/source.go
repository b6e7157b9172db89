package file

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
)

// Source источник заявок из JSON-выгрузки upstream API (массив или {"seminars": [...]}).
// Файл перечитывается при каждом запросе.
type Source struct {
	path string
}

// NewSource создает источник по пути к файлу
func NewSource(path string) *Source {
	return &Source{path: path}
}

// ListRaw возвращает записи файла. Фильтры запроса не применяются: их применяет движок календаря.
func (s *Source) ListRaw(ctx context.Context, _ domain.BookingsQuery) ([]ingest.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, s.path, err)
	}

	records, err := ingest.DecodeRecords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, s.path, err)
	}
	return records, nil
}

// ListVenues собирает площадки из самих заявок: в выгрузке справочника площадок нет.
// Площадка определяется названием, ID берётся из первой заявки, где он указан.
// Заявки только с ID дают площадку с ID вместо названия.
func (s *Source) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	records, err := s.ListRaw(ctx, domain.BookingsQuery{})
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*domain.Venue)
	idOnly := make(map[string]struct{})
	for _, b := range ingest.Normalize(records).Bookings {
		switch {
		case b.VenueName != "":
			v, ok := byName[b.VenueName]
			if !ok {
				v = &domain.Venue{Name: b.VenueName}
				byName[b.VenueName] = v
			}
			if v.ID == "" {
				v.ID = b.VenueID
			}
		case b.VenueID != "":
			idOnly[b.VenueID] = struct{}{}
		}
	}

	venues := make([]domain.Venue, 0, len(byName)+len(idOnly))
	named := make(map[string]struct{}, len(byName))
	for _, v := range byName {
		venues = append(venues, *v)
		if v.ID != "" {
			named[v.ID] = struct{}{}
		}
	}
	for id := range idOnly {
		if _, ok := named[id]; ok {
			continue
		}
		venues = append(venues, domain.Venue{ID: id, Name: id})
	}

	sort.Slice(venues, func(i, j int) bool {
		return venues[i].Name < venues[j].Name
	})
	return venues, nil
}

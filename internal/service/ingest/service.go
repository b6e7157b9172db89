package ingest

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// Adapter приводит записи источника к domain.Booking и отчитывается об отклонённых записях
type Adapter struct {
	logger   Logger
	recorder RejectionRecorder
}

// NewAdapter создает новый экземпляр адаптера. recorder может быть nil.
func NewAdapter(logger Logger, recorder RejectionRecorder) *Adapter {
	return &Adapter{
		logger:   logger,
		recorder: recorder,
	}
}

// Normalize нормализует пачку записей, логируя отклонённые.
// Отклонение записи никогда не прерывает обработку пачки.
func (a *Adapter) Normalize(records []RawRecord) Result {
	result := Normalize(records)

	for i := range result.Bookings {
		b := &result.Bookings[i]
		if b.Status != domain.StatusUnknown && !b.Status.IsKnown() {
			a.logger.Warn("Ingest: record index=%d id=%q has unrecognized status %q, not counted", b.SourceIndex, b.ID, b.Status)
		}
	}

	if len(result.Rejected) == 0 {
		return result
	}

	byReason := make(map[string]int)
	for _, rej := range result.Rejected {
		byReason[rej.Reason()]++
		a.logger.Warn("Ingest: record index=%d id=%q rejected: %v", rej.SourceIndex, rej.ID, rej.Err)
	}

	if a.recorder != nil {
		for reason, count := range byReason {
			a.recorder.RecordRejected(reason, count)
		}
	}

	a.logger.Info("Ingest: normalized %d records, rejected %d", len(result.Bookings), len(result.Rejected))
	return result
}

// Normalize приводит записи к domain.Booking. Чистая функция.
func Normalize(records []RawRecord) Result {
	result := Result{
		Bookings: make([]domain.Booking, 0, len(records)),
	}

	for i, rec := range records {
		booking, err := NormalizeRecord(i, rec)
		if err != nil {
			rej := Rejection{SourceIndex: i, Err: err}
			if rec != nil {
				rej.ID = rec.first(idFields)
			}
			result.Rejected = append(result.Rejected, rej)
			continue
		}
		result.Bookings = append(result.Bookings, booking)
	}

	return result
}

// NormalizeRecord приводит одну запись к domain.Booking
func NormalizeRecord(index int, rec RawRecord) (domain.Booking, error) {
	if rec == nil {
		return domain.Booking{}, ErrMalformedRecord
	}

	date, err := resolveDate(rec)
	if err != nil {
		return domain.Booking{}, err
	}

	return domain.Booking{
		ID:          rec.first(idFields),
		SourceIndex: index,
		VenueName:   rec.first(venueNameFields),
		VenueID:     rec.first(venueIDFields),
		Date:        date,
		DateField:   datePortion(rec.str(fieldPath{"date"})),
		StartDate:   datePortion(rec.str(fieldPath{"startDate"})),
		EndDate:     datePortion(rec.str(fieldPath{"endDate"})),
		StartTime:   rec.str(fieldPath{"startTime"}),
		EndTime:     rec.str(fieldPath{"endTime"}),
		Status:      domain.NormalizeStatus(rec.str(fieldPath{"status"})),
		Title:       rec.first(titleFields),
		Coordinator: rec.first(coordinatorFields),
		Department:  rec.first(departmentFields),
		Email:       rec.first(emailFields),
		Phone:       rec.first(phoneFields),
		Remarks:     rec.first(remarksFields),
	}, nil
}

// resolveDate берёт первое заполненное поле даты; если оно не разбирается, запись отклоняется
func resolveDate(rec RawRecord) (t time.Time, err error) {
	for _, path := range dateFields {
		raw := rec.str(path)
		if raw == "" {
			continue
		}
		parsed, ok := parseDate(raw)
		if !ok {
			return t, fmt.Errorf("%w: field %s=%q", ErrMalformedDate, path[0], raw)
		}
		return parsed, nil
	}
	return t, ErrMissingDate
}

package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/pkg/types"
)

// DayDetailItem бронирование дня, подготовленное к показу
type DayDetailItem struct {
	Key       string // Стабильный ключ для раскрытия/сворачивания в UI
	Title     string
	TimeRange string

	// Нормализованное время (HH:MM), пустое если не разобралось
	Start types.TimeString
	End   types.TimeString

	Booking domain.Booking
}

// AssembleDayDetail оставляет только APPROVED бронирования дня, сохраняя порядок,
// и подготавливает их к показу.
//
// Ключ берётся из ID бронирования, а при его отсутствии из позиции во входном списке.
// Настоящие дубли не схлопываются: ключ нужен только для состояния UI в рамках одного показа.
func AssembleDayDetail(bookings []domain.Booking) []DayDetailItem {
	items := make([]DayDetailItem, 0, len(bookings))

	for i := range bookings {
		b := bookings[i]
		if !b.IsApproved() {
			continue
		}

		items = append(items, DayDetailItem{
			Key:       detailKey(&b, i),
			Title:     displayTitle(&b, domain.UntitledBookingTitle),
			TimeRange: FormatTimeRange(&b),
			Start:     normalizedTime(b.StartTime),
			End:       normalizedTime(b.EndTime),
			Booking:   b,
		})
	}

	return items
}

// FormatTimeRange строит строку интервала для показа:
// "start — end", иначе "startDate → endDate" для многодневных, иначе дата, иначе "Full day"
func FormatTimeRange(b *domain.Booking) string {
	if b.StartTime != "" && b.EndTime != "" {
		return fmt.Sprintf("%s — %s", b.StartTime, b.EndTime)
	}
	if b.StartDate != "" && b.EndDate != "" && b.StartDate != b.EndDate {
		return fmt.Sprintf("%s → %s", b.StartDate, b.EndDate)
	}
	if b.DateField != "" {
		return b.DateField
	}
	if b.StartDate != "" {
		return b.StartDate
	}
	return domain.FullDayLabel
}

func detailKey(b *domain.Booking, position int) string {
	if b.ID != "" {
		return b.ID
	}
	return fmt.Sprintf("%s%d", domain.SyntheticKeyPrefix, position)
}

func displayTitle(b *domain.Booking, fallback string) string {
	if b.Title != "" {
		return b.Title
	}
	return fallback
}

func normalizedTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return ""
	}
	return ts
}

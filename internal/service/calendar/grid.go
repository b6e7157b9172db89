package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// GridFilter фильтр бронирований для месячной сетки. Пустые поля не фильтруют.
type GridFilter struct {
	Venue      string // Название или ID площадки, точное совпадение
	Department string // Без учета регистра
}

// Matches returns true if the booking passes the filter
func (f GridFilter) Matches(b *domain.Booking) bool {
	return b.MatchesVenue(f.Venue) && b.MatchesDepartment(f.Department)
}

// ParseMonthParams приводит год и месяц из строк запроса к числам и проверяет диапазон
func ParseMonthParams(yearRaw, monthRaw string) (int, int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(yearRaw))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year %q is not a number", ErrInvalidParameters, yearRaw)
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthRaw))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q is not a number", ErrInvalidParameters, monthRaw)
	}
	if err := ValidateMonth(year, month); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

// ValidateMonth проверяет, что (year, month) описывают существующий месяц
func ValidateMonth(year, month int) error {
	if month < domain.MinCalendarMonth || month > domain.MaxCalendarMonth {
		return fmt.Errorf("%w: month %d out of range %d-%d",
			ErrInvalidParameters, month, domain.MinCalendarMonth, domain.MaxCalendarMonth)
	}
	if year < domain.MinCalendarYear || year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: year %d out of range %d-%d",
			ErrInvalidParameters, year, domain.MinCalendarYear, domain.MaxCalendarYear)
	}
	return nil
}

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday возвращает день недели первого числа месяца (0 = воскресенье)
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// ISODate форматирует дату сетки как YYYY-MM-DD
func ISODate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
}

// BuildMonthGrid строит месячную сетку по площадке. Пустой venueFilter означает все площадки.
func BuildMonthGrid(bookings []domain.Booking, venueFilter string, year, month int) (*domain.MonthGrid, error) {
	return BuildMonthGridWithFilter(bookings, GridFilter{Venue: venueFilter}, year, month)
}

// BuildMonthGridWithFilter строит месячную сетку: ведущие пустые ячейки по дню недели первого числа,
// затем по одной ячейке на каждый день месяца с бронированиями и загруженностью.
//
// Бронирования без даты или вне месяца отбрасываются без ошибки.
// Ошибка возвращается только для некорректных параметров (ErrInvalidParameters).
// Функция не хранит состояние между вызовами.
func BuildMonthGridWithFilter(bookings []domain.Booking, filter GridFilter, year, month int) (*domain.MonthGrid, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, err
	}

	// Шаг 1: фильтруем и раскладываем по датам
	buckets := make(map[string][]domain.Booking)
	for i := range bookings {
		b := &bookings[i]
		if !b.InMonth(year, month) || !filter.Matches(b) {
			continue
		}
		key := b.ISODate()
		buckets[key] = append(buckets[key], *b)
	}

	// Шаг 2: собираем сетку
	blanks := FirstWeekday(year, month)
	days := DaysInMonth(year, month)

	grid := &domain.MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: blanks,
		Cells:         make([]*domain.DayBucket, blanks, blanks+days),
	}

	for day := 1; day <= days; day++ {
		date := ISODate(year, month, day)
		grid.Cells = append(grid.Cells, newDayBucket(date, buckets[date]))
	}

	return grid, nil
}

func newDayBucket(date string, bookings []domain.Booking) *domain.DayBucket {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	occ := CalculateOccupancy(bookings)

	return &domain.DayBucket{
		Date:            date,
		Bookings:        bookings,
		BookingCount:    occ.BookingCount,
		OccupiedMinutes: occ.OccupiedMinutes,
		PercentFull:     occ.PercentFull,
		OverlapMinutes:  occ.OverlapMinutes,
		HasConflict:     occ.HasConflict(),
	}
}

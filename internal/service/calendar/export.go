package calendar

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/pkg/types"
)

var departmentSplitRe = regexp.MustCompile(`[\s-]+`)

// ExportEntry бронирование в печатном календаре
type ExportEntry struct {
	Key             string
	Date            string
	TimeRange       string // "start-end"
	DurationLabel   string // "1.5h", пусто если длительность не определена
	Title           string
	Venue           string
	Coordinator     string
	Phone           string
	DepartmentLabel string
}

// ExportDay ячейка печатного календаря
type ExportDay struct {
	Date        string
	PercentFull int
	Entries     []ExportEntry // Не больше perCell записей
	Hidden      int           // Сколько записей ушло в Overflow
}

// Export печатный календарь месяца
type Export struct {
	Year          int
	Month         int
	Venue         string
	LeadingBlanks int
	Cells         []*ExportDay // nil для ведущих пустых ячеек
	Overflow      []ExportEntry
}

// BuildExport строит печатный календарь. Сетка выводится заново из тех же бронирований,
// что и интерактивный календарь, поэтому PercentFull в обоих представлениях совпадает.
// В ячейку попадают первые perCell подтверждённых бронирований дня, остальные в Overflow.
func BuildExport(bookings []domain.Booking, venue string, year, month, perCell int) (*Export, error) {
	if perCell <= 0 {
		perCell = domain.DefaultExportPerCell
	}

	grid, err := BuildMonthGrid(bookings, venue, year, month)
	if err != nil {
		return nil, err
	}

	export := &Export{
		Year:          grid.Year,
		Month:         grid.Month,
		Venue:         venue,
		LeadingBlanks: grid.LeadingBlanks,
		Cells:         make([]*ExportDay, grid.LeadingBlanks, len(grid.Cells)),
		Overflow:      []ExportEntry{},
	}

	for _, day := range grid.Days() {
		entries := exportEntries(day)

		cell := &ExportDay{
			Date:        day.Date,
			PercentFull: day.PercentFull,
			Entries:     entries,
		}
		if len(entries) > perCell {
			cell.Entries = entries[:perCell]
			cell.Hidden = len(entries) - perCell
			export.Overflow = append(export.Overflow, entries[perCell:]...)
		}
		export.Cells = append(export.Cells, cell)
	}

	return export, nil
}

// exportEntries возвращает подтверждённые бронирования дня, отсортированные по времени начала
func exportEntries(day *domain.DayBucket) []ExportEntry {
	items := AssembleDayDetail(day.Bookings)

	sort.SliceStable(items, func(i, j int) bool {
		return startsBefore(items[i], items[j])
	})

	entries := make([]ExportEntry, len(items))
	for i, item := range items {
		b := item.Booking
		entries[i] = ExportEntry{
			Key:             item.Key,
			Date:            day.Date,
			TimeRange:       fmt.Sprintf("%s-%s", b.StartTime, b.EndTime),
			DurationLabel:   DurationLabel(b.StartTime, b.EndTime),
			Title:           displayTitle(&b, domain.UntitledExportTitle),
			Venue:           b.VenueName,
			Coordinator:     b.Coordinator,
			Phone:           b.Phone,
			DepartmentLabel: DepartmentLabel(b.Department),
		}
	}
	return entries
}

// startsBefore сравнивает по нормализованному времени начала;
// если хотя бы одно время не разобрано, сравниваются строки
func startsBefore(a, b DayDetailItem) bool {
	if !a.Start.IsZero() && !b.Start.IsZero() {
		return a.Start.IsBefore(b.Start)
	}
	return startSortKey(a) < startSortKey(b)
}

func startSortKey(item DayDetailItem) string {
	if !item.Start.IsZero() {
		return item.Start.String()
	}
	return item.Booking.StartTime
}

// DurationLabel возвращает длительность в часах с одним знаком после запятой ("1.5h", "2h").
// Пусто, если время не разбирается или длительность не положительная.
func DurationLabel(startTime, endTime string) string {
	start, ok := types.ParseMinutes(startTime)
	if !ok {
		return ""
	}
	end, ok := types.ParseMinutes(endTime)
	if !ok || end <= start {
		return ""
	}
	hours := math.Round(float64(end-start)/60*10) / 10
	return strconv.FormatFloat(hours, 'f', -1, 64) + "h"
}

// DepartmentLabel сокращает название подразделения для печати:
// пустое -> "GEN", короткое -> в верхнем регистре, длинное -> аббревиатура по словам
func DepartmentLabel(department string) string {
	department = strings.TrimSpace(department)
	if department == "" {
		return domain.DefaultDepartmentLabel
	}
	if len([]rune(department)) <= domain.DepartmentLabelMaxLength {
		return strings.ToUpper(department)
	}

	var sb strings.Builder
	for _, word := range departmentSplitRe.Split(department, -1) {
		if word == "" {
			continue
		}
		sb.WriteRune([]rune(word)[0])
	}
	return strings.ToUpper(sb.String())
}

package calendar

import (
	"math"
	"sort"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/pkg/types"
)

// Occupancy загруженность одного дня относительно рабочего окна
type Occupancy struct {
	BookingCount    int // Количество APPROVED бронирований, даже если время не разобралось
	OccupiedMinutes int // Сумма длительностей без объединения пересечений
	PercentFull     int // [0, 100]

	UnionMinutes   int // Длительность объединения интервалов
	OverlapMinutes int // OccupiedMinutes - UnionMinutes
}

// HasConflict returns true if approved bookings overlap inside the working window
func (o Occupancy) HasConflict() bool {
	return o.OverlapMinutes > 0
}

type interval struct {
	from, to int
}

// CalculateOccupancy считает загруженность дня по APPROVED бронированиям.
//
// Каждое бронирование обрезается по окну [WorkStartMinutes, WorkEndMinutes) и суммируется независимо,
// пересечения не объединяются. Бронирования без разбираемого времени или с end <= start дают 0 минут,
// но учитываются в BookingCount. Неподтверждённые бронирования игнорируются.
func CalculateOccupancy(bookings []domain.Booking) Occupancy {
	var (
		occ       Occupancy
		intervals []interval
	)

	for i := range bookings {
		b := &bookings[i]
		if !b.IsApproved() {
			continue
		}
		occ.BookingCount++

		from, to, ok := windowInterval(b.StartTime, b.EndTime)
		if !ok {
			continue
		}
		occ.OccupiedMinutes += to - from
		intervals = append(intervals, interval{from: from, to: to})
	}

	occ.UnionMinutes = unionMinutes(intervals)
	occ.OverlapMinutes = occ.OccupiedMinutes - occ.UnionMinutes
	occ.PercentFull = percentFull(occ.BookingCount, occ.OccupiedMinutes)

	return occ
}

// windowInterval разбирает время и обрезает интервал по рабочему окну
func windowInterval(startTime, endTime string) (int, int, bool) {
	start, ok := types.ParseMinutes(startTime)
	if !ok {
		return 0, 0, false
	}
	end, ok := types.ParseMinutes(endTime)
	if !ok || end <= start {
		return 0, 0, false
	}

	from := clamp(start, domain.WorkStartMinutes, domain.WorkEndMinutes)
	to := clamp(end, domain.WorkStartMinutes, domain.WorkEndMinutes)
	if to <= from {
		return 0, 0, false
	}
	return from, to, true
}

func percentFull(bookingCount, occupiedMinutes int) int {
	if bookingCount == 0 {
		return 0
	}
	p := float64(occupiedMinutes) / float64(domain.WorkSpanMinutes) * 100
	return int(math.Round(math.Min(domain.MaxPercentFull, p)))
}

func unionMinutes(intervals []interval) int {
	if len(intervals) == 0 {
		return 0
	}

	sorted := make([]interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].from < sorted[j].from
	})

	total := 0
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.from <= current.to {
			if next.to > current.to {
				current.to = next.to
			}
			continue
		}
		total += current.to - current.from
		current = next
	}
	return total + current.to - current.from
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

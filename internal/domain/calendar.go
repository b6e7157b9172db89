package domain

// Venue represents a bookable venue (seminar hall)
type Venue struct {
	ID       string
	Name     string
	Capacity *int
}

// DayBucket represents a single calendar day with its bookings and occupancy
type DayBucket struct {
	Date     string    // YYYY-MM-DD, always derived from the grid position
	Bookings []Booking // Все бронирования дня в порядке источника

	BookingCount    int // Только APPROVED
	OccupiedMinutes int
	PercentFull     int // [0, 100]

	// Диагностика пересечений, на PercentFull не влияет
	OverlapMinutes int
	HasConflict    bool
}

// IsFree returns true if the day has no approved bookings
func (d *DayBucket) IsFree() bool {
	return d.BookingCount == 0
}

// IsFull returns true if the working window is completely booked
func (d *DayBucket) IsFull() bool {
	return d.PercentFull >= MaxPercentFull
}

// MonthGrid represents a month calendar: leading blanks followed by one cell per day
type MonthGrid struct {
	Year          int
	Month         int
	LeadingBlanks int
	Cells         []*DayBucket // nil for leading blanks
}

// Days returns the non-blank cells in calendar order
func (g *MonthGrid) Days() []*DayBucket {
	if g.LeadingBlanks >= len(g.Cells) {
		return nil
	}
	return g.Cells[g.LeadingBlanks:]
}

// Day returns the bucket for the given day of month (1-based), or nil
func (g *MonthGrid) Day(day int) *DayBucket {
	days := g.Days()
	if day < 1 || day > len(days) {
		return nil
	}
	return days[day-1]
}

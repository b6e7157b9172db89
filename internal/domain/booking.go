package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUnknown         BookingStatus = ""
	StatusPending         BookingStatus = "PENDING"
	StatusApproved        BookingStatus = "APPROVED"
	StatusRejected        BookingStatus = "REJECTED"
	StatusCancelRequested BookingStatus = "CANCEL_REQUESTED"
	StatusCancelled       BookingStatus = "CANCELLED"
)

// NormalizeStatus приводит статус из внешнего источника к каноническому виду.
// Неизвестные непустые значения сохраняются в верхнем регистре.
func NormalizeStatus(raw string) BookingStatus {
	return BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsKnown returns true if the status is one of KnownStatuses
func (s BookingStatus) IsKnown() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking represents a venue booking in canonical form.
// Records from external sources are mapped into it once, at ingestion.
type Booking struct {
	ID          string // Идентификатор из источника, может быть пустым
	SourceIndex int    // Позиция записи в исходном массиве

	VenueName string
	VenueID   string

	Date      time.Time // Календарная дата бронирования (UTC, полночь)
	DateField string    // "date" как в источнике (только дата)
	StartDate string    // "startDate" как в источнике (только дата)
	EndDate   string    // "endDate" как в источнике (только дата)

	StartTime string // Время начала как в источнике, "HH:MM" или "HH:MM AM/PM"
	EndTime   string

	Status BookingStatus

	// Descriptive passthrough, not interpreted by the calendar
	Title       string
	Coordinator string
	Department  string
	Email       string
	Phone       string
	Remarks     string
}

// IsApproved returns true if the booking counts towards occupancy
func (b *Booking) IsApproved() bool {
	for _, s := range CountedStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// HasDate returns true if the booking date was resolved
func (b *Booking) HasDate() bool {
	return !b.Date.IsZero()
}

// ISODate returns the booking date as YYYY-MM-DD, or an empty string
func (b *Booking) ISODate() string {
	if !b.HasDate() {
		return ""
	}
	return b.Date.Format(DateFormat)
}

// InMonth returns true if the booking date falls into the given year and month
func (b *Booking) InMonth(year, month int) bool {
	if !b.HasDate() {
		return false
	}
	return b.Date.Year() == year && int(b.Date.Month()) == month
}

// MatchesVenue returns true if the booking belongs to the venue.
// An empty venue matches every booking.
func (b *Booking) MatchesVenue(venue string) bool {
	if venue == "" {
		return true
	}
	return b.VenueName == venue || (b.VenueID != "" && b.VenueID == venue)
}

// MatchesDepartment returns true if the booking belongs to the department (case-insensitive).
// An empty department matches every booking.
func (b *Booking) MatchesDepartment(department string) bool {
	if department == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(b.Department), strings.TrimSpace(department))
}

// BookingsQuery фильтр для получения бронирований из источника
type BookingsQuery struct {
	Date  *time.Time // Конкретная дата (опционально)
	Venue string     // Название площадки (опционально)
}

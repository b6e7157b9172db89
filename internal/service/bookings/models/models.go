package models

import (
	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// VenueResponse площадка в ответе API
type VenueResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// BookingResponse бронирование в ответах календаря
type BookingResponse struct {
	ID          string `json:"id,omitempty"`
	Venue       string `json:"venue,omitempty"`
	VenueID     string `json:"venueId,omitempty"`
	Date        string `json:"date,omitempty"` // "2024-03-04"
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	StartTime   string `json:"startTime,omitempty"` // Как пришло из источника
	EndTime     string `json:"endTime,omitempty"`
	Status      string `json:"status"`
	Title       string `json:"title,omitempty"`
	Coordinator string `json:"coordinator,omitempty"`
	Department  string `json:"department,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
}

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:       v.ID,
		Name:     v.Name,
		Capacity: v.Capacity,
	}
}

// FromDomainVenueList конвертирует список площадок в DTO
func FromDomainVenueList(venues []domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, len(venues)),
	}
	for i := range venues {
		resp.Venues[i] = FromDomainVenue(&venues[i])
	}
	return resp
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		Venue:       b.VenueName,
		VenueID:     b.VenueID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		Title:       b.Title,
		Coordinator: b.Coordinator,
		Department:  b.Department,
		Email:       b.Email,
		Phone:       b.Phone,
		Remarks:     b.Remarks,
	}
	if b.HasDate() {
		resp.Date = b.ISODate()
	}
	return resp
}

// FromDomainBookingList конвертирует список бронирований в DTO
func FromDomainBookingList(bookings []domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = FromDomainBooking(&bookings[i])
	}
	return resp
}

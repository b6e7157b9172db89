package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/pkg/types"
)

func TestAssembleDayDetail_ApprovedOnly(t *testing.T) {
	bookings := []domain.Booking{
		booking("r1", "Hall A", "2024-03-04", "09:00", "10:00", domain.StatusRejected),
		booking("a1", "Hall A", "2024-03-04", "09:00", "10:00", domain.StatusApproved),
	}

	items := AssembleDayDetail(bookings)

	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].Key)
}

func TestAssembleDayDetail_KeysAndOrder(t *testing.T) {
	bookings := []domain.Booking{
		booking("", "Hall A", "2024-03-04", "11:00", "12:00", domain.StatusApproved),
		booking("", "Hall A", "2024-03-04", "09:00", "10:00", domain.StatusCancelled),
		booking("x", "Hall A", "2024-03-04", "09:00", "10:00", domain.StatusApproved),
		booking("x", "Hall A", "2024-03-04", "09:00", "10:00", domain.StatusApproved),
		booking("", "Hall A", "2024-03-04", "14:00", "15:00", domain.StatusApproved),
	}

	items := AssembleDayDetail(bookings)

	require.Len(t, items, 4, "true duplicates are not collapsed")
	assert.Equal(t, "idx-0", items[0].Key)
	assert.Equal(t, "x", items[1].Key)
	assert.Equal(t, "x", items[2].Key)
	assert.Equal(t, "idx-4", items[3].Key, "synthetic key is the position in the input")

	again := AssembleDayDetail(bookings)
	assert.Equal(t, items, again)
}

func TestAssembleDayDetail_TitleAndTimes(t *testing.T) {
	b := booking("1", "Hall A", "2024-03-04", "2:00 PM", "3:30 PM", domain.StatusApproved)

	items := AssembleDayDetail([]domain.Booking{b})

	require.Len(t, items, 1)
	assert.Equal(t, domain.UntitledBookingTitle, items[0].Title)
	assert.Equal(t, types.TimeString("14:00"), items[0].Start)
	assert.Equal(t, types.TimeString("15:30"), items[0].End)
	assert.Equal(t, "2:00 PM — 3:30 PM", items[0].TimeRange)
}

func TestAssembleDayDetail_Empty(t *testing.T) {
	items := AssembleDayDetail(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFormatTimeRange(t *testing.T) {
	tests := []struct {
		name string
		b    domain.Booking
		want string
	}{
		{name: "times", b: domain.Booking{StartTime: "09:00", EndTime: "10:00", DateField: "2024-03-04"}, want: "09:00 — 10:00"},
		{name: "only start time", b: domain.Booking{StartTime: "09:00", DateField: "2024-03-04"}, want: "2024-03-04"},
		{name: "day range", b: domain.Booking{StartDate: "2024-03-04", EndDate: "2024-03-06"}, want: "2024-03-04 → 2024-03-06"},
		{name: "same day range", b: domain.Booking{StartDate: "2024-03-04", EndDate: "2024-03-04"}, want: "2024-03-04"},
		{name: "date", b: domain.Booking{DateField: "2024-03-05"}, want: "2024-03-05"},
		{name: "nothing", b: domain.Booking{}, want: "Full day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeRange(&tt.b))
		})
	}
}

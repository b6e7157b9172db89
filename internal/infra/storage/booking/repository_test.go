package booking

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, args, err := buildListQuery(domain.BookingsQuery{}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "FROM seminars")
		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("date and venue", func(t *testing.T) {
		date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

		query, args, err := buildListQuery(domain.BookingsQuery{Date: &date, Venue: "Hall A"}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query,
			"WHERE COALESCE(date, start_date, applied_at::date, created_at::date) = $1 AND (hall_name = $2 OR hall_id::text = $3)")
		assert.Equal(t, []interface{}{"2024-03-04", "Hall A", "Hall A"}, args)
	})
}

func TestBuildListQuery_DateFallbackMatchesNormalizedDate(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	query, args, err := buildListQuery(domain.BookingsQuery{Date: &day}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE "+bookingDateExpr+" = $1")
	require.Len(t, args, 1)

	row := seminarRow{
		ID:        5,
		HallName:  sql.NullString{String: "Hall A", Valid: true},
		StartDate: sql.NullTime{Time: day, Valid: true},
		AppliedAt: sql.NullTime{Time: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), Valid: true},
	}

	booking, err := ingest.NormalizeRecord(0, row.toRawRecord())
	require.NoError(t, err)
	assert.Equal(t, args[0], booking.ISODate(), "row without date is selected by the day it lands on in the grid")
}

func TestSeminarRow_NormalizesLikeAPIRecord(t *testing.T) {
	row := seminarRow{
		ID:         17,
		HallName:   sql.NullString{String: "Hall A", Valid: true},
		HallID:     sql.NullInt64{Int64: 3, Valid: true},
		Date:       sql.NullTime{Time: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Valid: true},
		StartTime:  sql.NullString{String: "09:00", Valid: true},
		EndTime:    sql.NullString{String: "10:30", Valid: true},
		Status:     sql.NullString{String: "approved", Valid: true},
		Title:      sql.NullString{String: "Orientation", Valid: true},
		Department: sql.NullString{String: "CSE", Valid: true},
	}

	booking, err := ingest.NormalizeRecord(0, row.toRawRecord())
	require.NoError(t, err)

	assert.Equal(t, "17", booking.ID)
	assert.Equal(t, "Hall A", booking.VenueName)
	assert.Equal(t, "3", booking.VenueID)
	assert.Equal(t, "2024-03-04", booking.ISODate())
	assert.Equal(t, domain.StatusApproved, booking.Status)
	assert.Equal(t, "Orientation", booking.Title)
	assert.Equal(t, "CSE", booking.Department)
}

func TestSeminarRow_FallsBackToAppliedAt(t *testing.T) {
	row := seminarRow{
		ID:        1,
		AppliedAt: sql.NullTime{Time: time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC), Valid: true},
	}

	rec := row.toRawRecord()
	_, hasDate := rec["date"]
	assert.False(t, hasDate, "NULL columns are omitted")

	booking, err := ingest.NormalizeRecord(0, rec)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-10", booking.ISODate())

	ist := time.FixedZone("IST", 5*60*60+30*60)
	row.AppliedAt = sql.NullTime{Time: time.Date(2024, 2, 5, 1, 0, 0, 0, ist), Valid: true}

	booking, err = ingest.NormalizeRecord(0, row.toRawRecord())
	require.NoError(t, err)
	assert.Equal(t, "2024-02-05", booking.ISODate(), "timestamp keeps its wall-clock date")
}

func TestHallRow_ToDomain(t *testing.T) {
	withCapacity := hallRow{ID: 2, Name: "Main Auditorium", Capacity: sql.NullInt64{Int64: 300, Valid: true}}
	venue := withCapacity.toDomain()
	assert.Equal(t, "2", venue.ID)
	require.NotNil(t, venue.Capacity)
	assert.Equal(t, 300, *venue.Capacity)

	noCapacity := hallRow{ID: 3, Name: "Lab"}
	assert.Nil(t, noCapacity.toDomain().Capacity)
}

package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

const dump = `{"seminars": [
	{"id": 1, "hallName": "Lab", "hall_id": 2, "date": "2024-02-05", "status": "APPROVED"},
	{"id": 2, "hall": {"name": "Auditorium"}, "date": "2024-02-06", "status": "PENDING"},
	{"id": 3, "hallName": "Lab", "date": "2024-02-07"},
	{"id": 4, "hallName": "Ghost"}
]}`

func writeDump(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSource_ListRaw(t *testing.T) {
	records, err := NewSource(writeDump(t, dump)).ListRaw(context.Background(), domain.BookingsQuery{Venue: "Lab"})
	require.NoError(t, err)
	assert.Len(t, records, 4, "filters are left to the calendar engine")
}

func TestSource_ListVenues(t *testing.T) {
	venues, err := NewSource(writeDump(t, dump)).ListVenues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Venue{
		{Name: "Auditorium"},
		{ID: "2", Name: "Lab"},
	}, venues, "venues of rejected records are not listed")
}

func TestSource_ListVenues_MergesIDs(t *testing.T) {
	body := `[
		{"hallName": "Lab", "date": "2024-02-05"},
		{"hallName": "Lab", "hall_id": 42, "date": "2024-02-06"},
		{"hall_id": 42, "date": "2024-02-07"},
		{"hall_id": 9, "date": "2024-02-07"}
	]`

	venues, err := NewSource(writeDump(t, body)).ListVenues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Venue{
		{ID: "9", Name: "9"},
		{ID: "42", Name: "Lab"},
	}, venues)
}

func TestSource_Errors(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "missing.json")).ListRaw(context.Background(), domain.BookingsQuery{})
	assert.ErrorIs(t, err, ErrReadFile)

	_, err = NewSource(writeDump(t, `{"seminars": 5}`)).ListRaw(context.Background(), domain.BookingsQuery{})
	assert.ErrorIs(t, err, ErrDecode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewSource(writeDump(t, dump)).ListRaw(ctx, domain.BookingsQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}

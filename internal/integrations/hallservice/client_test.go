package hallservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "token-1", time.Second, logger.Nop())
}

func TestListVenues(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/halls", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Main Auditorium", "capacity": 300},
			{"_id": "abc", "hallName": "Seminar Hall 2"},
			{"title": ""}
		]`))
	})

	venues, err := client.ListVenues(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 2)

	assert.Equal(t, "1", venues[0].ID)
	assert.Equal(t, "Main Auditorium", venues[0].Name)
	require.NotNil(t, venues[0].Capacity)
	assert.Equal(t, 300, *venues[0].Capacity)

	assert.Equal(t, "abc", venues[1].ID)
	assert.Equal(t, "Seminar Hall 2", venues[1].Name)
}

func TestListVenues_Envelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"halls": [{"id": "7", "name": "Lab"}]}`))
	})

	venues, err := client.ListVenues(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Lab", venues[0].Name)
}

func TestListRaw_PassesFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seminars", r.URL.Path)
		assert.Equal(t, "2024-03-04", r.URL.Query().Get("date"))
		assert.Equal(t, "Hall A", r.URL.Query().Get("hallName"))
		_, _ = w.Write([]byte(`{"seminars": [{"id": 5, "hallName": "Hall A", "date": "2024-03-04", "status": "APPROVED"}]}`))
	})

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	records, err := client.ListRaw(context.Background(), domain.BookingsQuery{Date: &date, Venue: "Hall A"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Hall A", records[0]["hallName"])
}

func TestListRaw_NoFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	})

	records, err := client.ListRaw(context.Background(), domain.BookingsQuery{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrUnavailable},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrInvalidResponse},
		{name: "broken json", status: http.StatusOK, body: `[{`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListRaw(context.Background(), domain.BookingsQuery{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL, "", time.Second, logger.Nop())
	_, err := client.ListVenues(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

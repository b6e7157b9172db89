package list_venues

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
)

type fakeService struct {
	resp *models.VenueListResponse
	err  error
}

func (f *fakeService) ListVenues(context.Context) (*models.VenueListResponse, error) {
	return f.resp, f.err
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.VenueListResponse{Venues: []models.VenueResponse{{ID: "1", Name: "Hall A"}}}}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.VenueListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hall A", body.Venues[0].Name)
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{err: errors.New("down")}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

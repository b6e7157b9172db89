package logout

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/session"
	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
)

func TestHandle_BroadcastsToSubscribers(t *testing.T) {
	hub := session.NewHub(1, logger.Nop())
	events, unsubscribe, err := hub.Subscribe()
	require.NoError(t, err)
	defer unsubscribe()

	rec := httptest.NewRecorder()
	NewHandler(hub, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", strings.NewReader(`{"reason":"admin"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	ev := <-events
	assert.Equal(t, session.EventLogout, ev.Kind)
	assert.Equal(t, "admin", ev.Reason)
	assert.True(t, hub.Snapshot().LoggedOut)
}

func TestHandle_EmptyBody(t *testing.T) {
	hub := session.NewHub(1, logger.Nop())
	rec := httptest.NewRecorder()

	NewHandler(hub, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hub.Snapshot().LoggedOut)
}

func TestHandle_BrokenBody(t *testing.T) {
	hub := session.NewHub(1, logger.Nop())
	rec := httptest.NewRecorder()

	NewHandler(hub, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", strings.NewReader(`{"reason":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, hub.Snapshot().LoggedOut)
}

package get_session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/session"
	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
)

func TestHandle(t *testing.T) {
	hub := session.NewHub(1, logger.Nop())
	_, err := hub.SetTheme(session.ThemeDark)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(hub, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body session.Context
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, session.ThemeDark, body.Theme)
	assert.False(t, body.LoggedOut)
	assert.Equal(t, uint64(1), body.Version)
}

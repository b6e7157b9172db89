package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/pkg/logger"
)

func newTestHub(buffer int) *Hub {
	h := NewHub(buffer, logger.Nop())
	fixed := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }
	return h
}

func TestHub_DefaultSnapshot(t *testing.T) {
	snap := newTestHub(0).Snapshot()

	assert.Equal(t, ThemeLight, snap.Theme)
	assert.False(t, snap.LoggedOut)
	assert.Nil(t, snap.LoggedOutAt)
	assert.Zero(t, snap.Version)
}

func TestHub_LogoutNotifiesAllSubscribers(t *testing.T) {
	h := newTestHub(4)

	first, unsubFirst, err := h.Subscribe()
	require.NoError(t, err)
	defer unsubFirst()
	second, unsubSecond, err := h.Subscribe()
	require.NoError(t, err)
	defer unsubSecond()

	h.Logout("admin")

	for _, ch := range []<-chan Event{first, second} {
		select {
		case ev := <-ch:
			assert.Equal(t, EventLogout, ev.Kind)
			assert.Equal(t, "admin", ev.Reason)
			assert.Equal(t, uint64(1), ev.Version)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}

	snap := h.Snapshot()
	assert.True(t, snap.LoggedOut)
	assert.Equal(t, "admin", snap.LogoutReason)
	require.NotNil(t, snap.LoggedOutAt)
	assert.Equal(t, 2, snap.Subscribers)
}

func TestHub_UnsubscribeClosesAndIsIdempotent(t *testing.T) {
	h := newTestHub(1)

	ch, unsubscribe, err := h.Subscribe()
	require.NoError(t, err)

	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.Snapshot().Subscribers)

	// после отписки рассылка не паникует
	h.Logout("dept")
}

func TestHub_SetTheme(t *testing.T) {
	h := newTestHub(4)
	ch, unsubscribe, err := h.Subscribe()
	require.NoError(t, err)
	defer unsubscribe()

	ev, err := h.SetTheme(ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, ev.Theme)
	assert.Equal(t, EventTheme, (<-ch).Kind)

	// та же тема повторно не рассылается
	_, err = h.SetTheme(ThemeDark)
	require.NoError(t, err)
	assert.Len(t, ch, 0)
	assert.Equal(t, uint64(1), h.Snapshot().Version)

	_, err = h.SetTheme("neon")
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.Equal(t, ThemeDark, h.Snapshot().Theme)
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	h := newTestHub(1)
	ch, unsubscribe, err := h.Subscribe()
	require.NoError(t, err)
	defer unsubscribe()

	h.Logout("a")
	h.Logout("b")
	h.Logout("c")

	assert.Len(t, ch, 1)
	assert.Equal(t, "a", (<-ch).Reason)
	assert.Equal(t, uint64(2), h.Dropped())
}

func TestHub_Close(t *testing.T) {
	h := newTestHub(1)
	ch, unsubscribe, err := h.Subscribe()
	require.NoError(t, err)

	h.Close()
	h.Close()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	_, _, err = h.Subscribe()
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestHub_ConcurrentUse(t *testing.T) {
	h := newTestHub(8)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch, unsubscribe, err := h.Subscribe()
			if err != nil {
				return
			}
			if i%2 == 0 {
				h.Logout("tab")
			} else {
				_, _ = h.SetTheme(ThemeDark)
			}
			for len(ch) > 0 {
				<-ch
			}
			unsubscribe()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, h.Snapshot().Subscribers)
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme(" DTAO ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	_, err = ParseTheme("")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

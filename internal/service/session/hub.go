package session

import (
	"sync"
	"time"
)

const DefaultBufferSize = 16

// Hub хранит состояние сессии (тема, выход) и рассылает изменения подписчикам.
// Создаётся явно и передаётся туда, где нужен; глобального состояния нет.
//
// Рассылка не блокирует публикующего: если буфер подписчика заполнен,
// событие для него теряется (учитывается в Dropped).
type Hub struct {
	mu          sync.Mutex
	state       Context
	subscribers map[uint64]chan Event
	nextID      uint64
	dropped     uint64
	bufferSize  int
	closed      bool

	now    func() time.Time
	logger Logger
}

// NewHub создает hub. bufferSize <= 0 означает DefaultBufferSize.
func NewHub(bufferSize int, logger Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		state:       Context{Theme: DefaultTheme},
		subscribers: make(map[uint64]chan Event),
		bufferSize:  bufferSize,
		now:         time.Now,
		logger:      logger,
	}
}

// Subscribe возвращает канал событий и функцию отписки.
// Отписка закрывает канал; повторный вызов ничего не делает.
func (h *Hub) Subscribe() (<-chan Event, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, nil, ErrHubClosed
	}

	id := h.nextID
	h.nextID++
	ch := make(chan Event, h.bufferSize)
	h.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subscribers[id]; ok {
				delete(h.subscribers, id)
				close(sub)
			}
		})
	}

	return ch, unsubscribe, nil
}

// Logout отмечает выход и рассылает событие всем подписчикам
func (h *Hub) Logout(reason string) Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	at := h.now()
	h.state.LoggedOut = true
	h.state.LogoutReason = reason
	h.state.LoggedOutAt = &at
	h.state.Version++

	event := Event{Kind: EventLogout, Reason: reason, Version: h.state.Version, At: at}
	h.broadcastLocked(event)

	if h.logger != nil {
		h.logger.Info("Session: logout (reason=%q), notified %d subscribers", reason, len(h.subscribers))
	}
	return event
}

// SetTheme меняет тему. Повторная установка той же темы событие не рассылает.
func (h *Hub) SetTheme(theme Theme) (Event, error) {
	theme, err := ParseTheme(string(theme))
	if err != nil {
		return Event{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.Theme == theme {
		return Event{Kind: EventTheme, Theme: theme, Version: h.state.Version, At: h.now()}, nil
	}

	h.state.Theme = theme
	h.state.Version++

	event := Event{Kind: EventTheme, Theme: theme, Version: h.state.Version, At: h.now()}
	h.broadcastLocked(event)
	return event, nil
}

// Snapshot возвращает копию текущего состояния
func (h *Hub) Snapshot() Context {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := h.state
	if h.state.LoggedOutAt != nil {
		at := *h.state.LoggedOutAt
		snapshot.LoggedOutAt = &at
	}
	snapshot.Subscribers = len(h.subscribers)
	return snapshot
}

// Dropped количество событий, потерянных из-за переполненных буферов подписчиков
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close закрывает все каналы подписчиков. Новые подписки после Close невозможны.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}

func (h *Hub) broadcastLocked(event Event) {
	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.dropped++
		}
	}
}

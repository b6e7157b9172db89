package hallservice

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// Hall площадка в ответе /halls. Сервис отдаёт разные наборы полей
// в зависимости от версии, поэтому название и ID берутся по цепочке.
type Hall struct {
	ID       json.RawMessage `json:"id,omitempty"`
	MongoID  json.RawMessage `json:"_id,omitempty"`
	HallName string          `json:"hallName,omitempty"`
	Name     string          `json:"name,omitempty"`
	Title    string          `json:"title,omitempty"`
	Capacity *int            `json:"capacity,omitempty"`
}

// hallsEnvelope ответ /halls в виде объекта
type hallsEnvelope struct {
	Halls []Hall `json:"halls"`
	Data  []Hall `json:"data"`
}

// ToDomain конвертирует площадку в domain модель
func (h *Hall) ToDomain() domain.Venue {
	id := rawString(h.ID)
	if id == "" {
		id = rawString(h.MongoID)
	}

	name := firstNonEmpty(h.HallName, h.Name, h.Title)
	if name == "" {
		name = id
	}

	return domain.Venue{
		ID:       id,
		Name:     name,
		Capacity: h.Capacity,
	}
}

// rawString возвращает строку или число из JSON как строку
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return n.String()
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

package ingest

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// fieldPath путь к полю записи, вложенные объекты через элементы пути
type fieldPath []string

// Цепочки полей источника. Берётся первое непустое значение.
var (
	idFields = []fieldPath{{"id"}, {"_id"}, {"_key"}, {"raw", "id"}, {"raw", "_id"}}

	venueNameFields = []fieldPath{{"hallName"}, {"hall", "name"}, {"hall"}, {"room"}, {"venue"}, {"venue", "name"}}
	venueIDFields   = []fieldPath{{"hall_id"}, {"hallId"}, {"hall", "id"}, {"hall", "_id"}, {"venue", "id"}, {"venue", "_id"}}

	// Порядок важен: дата бронирования определяется первым заполненным полем
	dateFields = []fieldPath{{"date"}, {"startDate"}, {"appliedAt"}, {"createdAt"}}

	titleFields       = []fieldPath{{"slotTitle"}, {"title"}, {"name"}, {"bookingName"}}
	coordinatorFields = []fieldPath{{"bookingName"}}
	departmentFields  = []fieldPath{{"department"}, {"dept"}}
	emailFields       = []fieldPath{{"email"}, {"bookingEmail"}}
	phoneFields       = []fieldPath{{"phone"}, {"bookingPhone"}}
	remarksFields     = []fieldPath{{"remarks"}}
)

var dateLayouts = []string{
	domain.DateFormat,
	"2006-1-2",
}

// lookup возвращает значение по пути или nil
func (r RawRecord) lookup(path fieldPath) any {
	var current any = map[string]any(r)
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return current
}

// str возвращает строковое значение поля; числа приводятся к строке, объекты игнорируются
func (r RawRecord) str(path fieldPath) string {
	switch v := r.lookup(path).(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// first возвращает первое непустое значение цепочки
func (r RawRecord) first(chain []fieldPath) string {
	for _, path := range chain {
		if v := r.str(path); v != "" {
			return v
		}
	}
	return ""
}

// datePortion отрезает время от даты: "2024-02-05T10:00:00Z" -> "2024-02-05"
func datePortion(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	return s
}

// parseDate разбирает дату YYYY-MM-DD (допускается время после даты)
func parseDate(s string) (time.Time, bool) {
	iso := datePortion(s)
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

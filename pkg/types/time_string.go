package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается, когда строку нельзя привести к HH:MM
	ErrInvalidTimeString = errors.New("types: invalid time string")

	clock24Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12Re = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	digitRe   = regexp.MustCompile(`\d`)

	// Полные временные метки, которые встречаются в выгрузках бронирований
	timestampLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"15:04:05",
	}

	// dateparser принимает только полные абсолютные даты со временем:
	// относительные выражения ("in 2 hours") и unix timestamp ("5") отбрасываются
	parserConfig = &dateparser.Configuration{
		Languages:     []string{"en"},
		CurrentTime:   time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		StrictParsing: true,
	}
	absoluteParser = &dateparser.Parser{
		ParserTypes: []dateparser.ParserType{dateparser.AbsoluteTime},
	}
)

// TimeString время суток в формате HH:MM (24 часа)
type TimeString string

// NewTimeStringFromMinutes создает TimeString из минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes out of range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// NewTimeStringFromString разбирает строку времени в любом поддерживаемом формате
// и нормализует её к HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, ok := ParseMinutes(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeStringFromMinutes(minutes)
}

// Minutes возвращает количество минут от полуночи
// Для некорректного значения возвращает -1
func (t TimeString) Minutes() int {
	m := clock24Re.FindStringSubmatch(string(t))
	if m == nil {
		return -1
	}
	minutes, ok := clockMinutes(m[1], m[2])
	if !ok {
		return -1
	}
	return minutes
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// ParseMinutes переводит строку времени суток в минуты от полуночи [0, 1439].
//
// Поддерживаемые форматы:
//   - 24 часа: "9:30", "09:30"
//   - 12 часов: "2:30 PM", "02:30pm" (12 AM = 0, 12 PM = 12)
//   - любая полная временная метка, из которой можно извлечь часы и минуты
//
// Второе значение false означает, что строку разобрать не удалось. Функция никогда не паникует.
func ParseMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		return clockMinutes(m[1], m[2])
	}

	if m := clock12Re.FindStringSubmatch(s); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return 0, false
		}
		minute, err := strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, false
		}
		switch strings.ToUpper(m[3]) {
		case "AM":
			if hour == 12 {
				hour = 0
			}
		case "PM":
			if hour < 12 {
				hour += 12
			}
		}
		return hour*60 + minute, true
	}

	return parseTimestampMinutes(s)
}

func clockMinutes(hourStr, minuteStr string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// parseTimestampMinutes извлекает часы и минуты из полной даты-времени
func parseTimestampMinutes(s string) (int, bool) {
	// Без цифр времени быть не может, в dateparser такие строки не отправляем
	if !digitRe.MatchString(s) {
		return 0, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}

	dt, err := absoluteParser.Parse(parserConfig, s)
	if err != nil || dt.Time.IsZero() {
		return 0, false
	}
	return dt.Time.Hour()*60 + dt.Time.Minute(), true
}

package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout.
const DateLayout = "2006-01-02"

// ClockLayout is the 24h time-of-day layout.
const ClockLayout = "15:04:05"

var weekdayNames = map[string]time.Weekday{}

func init() {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		weekdayNames[name] = d
		weekdayNames[name[:3]] = d
	}
}

// ParseWeekday reads a stored day-of-week value. Names are matched case-insensitively
// in full or three-letter form; numbers use Sunday=0 through Saturday=6.
func ParseWeekday(val any) (time.Weekday, error) {
	switch v := val.(type) {
	case time.Weekday:
		if v < time.Sunday || v > time.Saturday {
			return 0, fmt.Errorf("weekday out of range: %d", int(v))
		}
		return v, nil
	case string, []byte:
		s := strings.ToLower(strings.TrimSpace(ToString(v)))
		if d, ok := weekdayNames[s]; ok {
			return d, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("unknown weekday: %q", s)
		}
		return ParseWeekday(n)
	case nil:
		return 0, fmt.Errorf("weekday is null")
	default:
		n := ToInt(v)
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday out of range: %d", n)
		}
		return time.Weekday(n), nil
	}
}

// CalendarWeekday returns the weekday of the calendar date carried by t.
// Only the year, month and day in t's own location are used, so the result
// does not depend on the process time zone.
func CalendarWeekday(t time.Time) time.Weekday {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Weekday()
}

// FormatDate renders the calendar date carried by t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

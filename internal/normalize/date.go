package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day zero of the workbook's 1900 date system. Serial 1 is 1900-01-01;
// the offset also absorbs the format's historical 1900 leap-year bug.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dayMonthYear = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)

// Fallback layouts tried after the day/month/year pattern.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// ParseDate converts a raw cell value into an absolute instant. Priority:
// workbook serial number, then D/M/Y strings (European day-first), then
// generic calendar layouts. Two-digit years 00-30 land in ref's century
// and 31-99 in the one before it; ref is passed in explicitly so the
// century split stays reproducible.
func ParseDate(raw string, ref time.Time) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		return fromSerial(serial)
	}

	if m := dayMonthYear.FindStringSubmatch(value); m != nil {
		return fromDayMonthYear(m, ref)
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func fromSerial(serial float64) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}
	days := int(serial)
	frac := serial - float64(days)
	t := serialEpoch.AddDate(0, 0, days).
		Add(time.Duration(frac * float64(24*time.Hour)))
	return t, true
}

func fromDayMonthYear(m []string, ref time.Time) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if len(m[3]) <= 2 {
		century := ref.Year() / 100 * 100
		if year <= 30 {
			year += century
		} else {
			year += century - 100
		}
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range components (32/01 becomes 01/02),
	// so round-trip the parts to reject impossible dates.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}

	return t, true
}

package normalize

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var datePartSep = regexp.MustCompile(`[/-]`)

// DayFirst parses dates in the French day/month/year convention, accepting
// "/" or "-" as separator and two-digit years (mapped into 2000+).
// "03/09/2025" is the 3rd of September. Invalid calendar dates report false.
func DayFirst(raw string) (time.Time, bool) {
	p, ok := splitDateParts(raw)
	if !ok {
		return time.Time{}, false
	}
	return buildDate(p[2], p[1], p[0])
}

// MonthFirst parses dates in the month/day/year convention used by exactly
// one survey-export column (the response timestamp).
func MonthFirst(raw string) (time.Time, bool) {
	p, ok := splitDateParts(raw)
	if !ok {
		return time.Time{}, false
	}
	return buildDate(p[2], p[0], p[1])
}

// DateList parses a " - " separated list of day-first dates, e.g.
// "02/09/2025 - 03/09/2025 - 05/09/2025". Unparseable segments are dropped;
// the survivors come back sorted ascending.
func DateList(raw string) []time.Time {
	var dates []time.Time
	for _, segment := range strings.Split(raw, " - ") {
		if d, ok := DayFirst(strings.TrimSpace(segment)); ok {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func splitDateParts(raw string) ([3]int, bool) {
	var out [3]int
	parts := datePartSep.Split(strings.TrimSpace(raw), -1)
	if len(parts) != 3 {
		return out, false
	}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// buildDate validates the calendar date by round-tripping through time.Date,
// which silently normalizes overflow (32/01 becomes 01/02).
func buildDate(year, month, day int) (time.Time, bool) {
	if year < 100 {
		year += 2000
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

package normalize

import (
	"strconv"
	"strings"
)

// textGrades maps the survey vocabulary to the 1-5 scale. Keys are lowercase;
// the accented and plain spellings of "très" are both present so lookups stay
// accent-insensitive without a transliteration pass.
var textGrades = map[string]int{
	"très bien":    5,
	"tres bien":    5,
	"bien":         4,
	"moyen":        3,
	"mauvais":      2,
	"très mauvais": 1,
	"tres mauvais": 1,
}

// TextGrade maps a textual survey grade to an integer 1-5. Unknown or empty
// text reports false.
func TextGrade(raw string) (int, bool) {
	grade, ok := textGrades[strings.ToLower(strings.TrimSpace(raw))]
	return grade, ok
}

// Scale10To5 collapses a 1-10 survey answer into five equal buckets:
// 1-2 -> 1, 3-4 -> 2, 5-6 -> 3, 7-8 -> 4, 9-10 -> 5. Non-numeric or
// out-of-range input reports false.
func Scale10To5(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > 10 {
		return 0, false
	}
	return (n-1)/2 + 1, true
}

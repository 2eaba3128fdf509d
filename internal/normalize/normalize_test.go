package normalize

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"CUST67221 EIFFAGE GENIE CIVIL (Vélizy)", "EIFFAGE GENIE CIVIL"},
		{"CUST12 ACME", "ACME"},
		{"ACME (Paris)", "ACME"},
		{"ACME", "ACME"},
		{"  CUST9 ACME SAS  ", "ACME SAS"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CompanyName(tc.raw), "raw=%q", tc.raw)
	}
}

func TestCompanyCity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Vélizy", CompanyCity("CUST67221 EIFFAGE GENIE CIVIL (Vélizy)"))
	assert.Equal(t, "", CompanyCity("ACME"))
}

func TestNameFromEmail(t *testing.T) {
	t.Parallel()

	name, ok := NameFromEmail("jean-philippe.gelebart@arkance-systems.com")
	require.True(t, ok)
	assert.Equal(t, "Jean-Philippe", name.First)
	assert.Equal(t, "Gelebart", name.Last)

	name, ok = NameFromEmail("marie.de.la.tour@example.com")
	require.True(t, ok)
	assert.Equal(t, "Marie", name.First)
	assert.Equal(t, "De La Tour", name.Last)

	_, ok = NameFromEmail("admin@example.com")
	assert.False(t, ok, "single-segment local part has no name")

	_, ok = NameFromEmail("not-an-email")
	assert.False(t, ok)
}

func TestSplitFullName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		full  string
		first string
		last  string
	}{
		{"DUPONT JEAN", "JEAN", "DUPONT"},
		{"GELEBART JEAN PHILIPPE", "JEAN PHILIPPE", "GELEBART"},
		{"Jean Dupont", "Jean", "Dupont"},
		{"Jean Dupont Martin", "Jean", "Dupont Martin"},
		{"Jean", "Jean", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		name := SplitFullName(tc.full)
		assert.Equal(t, tc.first, name.First, "full=%q", tc.full)
		assert.Equal(t, tc.last, name.Last, "full=%q", tc.full)
	}
}

func TestTextGrade(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw   string
		grade int
		ok    bool
	}{
		{"Très bien", 5, true},
		{"tres bien", 5, true},
		{"TRES BIEN", 5, true},
		{"Bien", 4, true},
		{"Moyen", 3, true},
		{"Mauvais", 2, true},
		{"Très mauvais", 1, true},
		{"  Bien  ", 4, true},
		{"Excellent", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		grade, ok := TextGrade(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.grade, grade, "raw=%q", tc.raw)
	}
}

func TestScale10To5(t *testing.T) {
	t.Parallel()

	want := map[string]int{
		"1": 1, "2": 1,
		"3": 2, "4": 2,
		"5": 3, "6": 3,
		"7": 4, "8": 4,
		"9": 5, "10": 5,
	}
	for raw, expected := range want {
		got, ok := Scale10To5(raw)
		require.True(t, ok, "raw=%q", raw)
		assert.Equal(t, expected, got, "raw=%q", raw)
	}

	for _, raw := range []string{"0", "11", "-3", "abc", ""} {
		_, ok := Scale10To5(raw)
		assert.False(t, ok, "raw=%q", raw)
	}

	// Monotonic non-decreasing over the valid range.
	prev := 0
	for n := 1; n <= 10; n++ {
		got, ok := Scale10To5(strconv.Itoa(n))
		require.True(t, ok)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestDayFirst(t *testing.T) {
	t.Parallel()

	d, ok := DayFirst("03/09/2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC), d)

	d, ok = DayFirst("03-09-25")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC), d)

	for _, raw := range []string{"31/02/2025", "03/13/2025", "1/2", "a/b/c", ""} {
		_, ok := DayFirst(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestMonthFirst(t *testing.T) {
	t.Parallel()

	d, ok := MonthFirst("09/03/2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC), d)

	_, ok = MonthFirst("13/03/2025")
	assert.False(t, ok)
}

func TestDateList(t *testing.T) {
	t.Parallel()

	dates := DateList("05/09/2025 - 02/09/2025 - garbage - 03/09/2025")
	require.Len(t, dates, 3)
	assert.Equal(t, 2, dates[0].Day())
	assert.Equal(t, 3, dates[1].Day())
	assert.Equal(t, 5, dates[2].Day())

	assert.Empty(t, DateList(""))
}

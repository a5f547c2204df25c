package sf2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	cases := map[string]time.Month{
		"February": time.February,
		"feb":      time.February,
		" june ":   time.June,
		"2":        time.February,
		"02":       time.February,
		"12":       time.December,
	}
	for in, want := range cases {
		got, err := ParseMonth(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "ju", "13", "0", "Smarch"} {
		_, err := ParseMonth(bad)
		assert.ErrorIs(t, err, ErrInvalidRequest, bad)
	}
}

func TestCalendarYear(t *testing.T) {
	y, err := CalendarYear("2024-2025", time.February)
	require.NoError(t, err)
	assert.Equal(t, 2025, y)

	y, err = CalendarYear("2024-2025", time.September)
	require.NoError(t, err)
	assert.Equal(t, 2024, y)

	y, err = CalendarYear("2024 / 2025", time.June)
	require.NoError(t, err)
	assert.Equal(t, 2024, y)

	y, err = CalendarYear("2023", time.March)
	require.NoError(t, err)
	assert.Equal(t, 2023, y)

	_, err = CalendarYear("SY twenty", time.March)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = CalendarYear("", time.March)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestSchoolYearOf(t *testing.T) {
	assert.Equal(t, "2024-2025", SchoolYearOf(2025, time.February))
	assert.Equal(t, "2025-2026", SchoolYearOf(2025, time.August))

	y, err := CalendarYear(SchoolYearOf(2025, time.May), time.May)
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "SF2_7 MABINI_February_2024-2025.xlsx", Filename("7 MABINI", "February", "2024-2025"))
	assert.Equal(t, "SF2_7-A_March_2024-2025.xlsx", Filename(` "7/A" `, "March", "2024-2025"))
}

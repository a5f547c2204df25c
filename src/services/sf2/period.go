package sf2

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMonth accepts "February", "feb", "2" or "02".
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), nil
		}
		return 0, fmt.Errorf("%w: month %q out of range", ErrInvalidRequest, s)
	}
	lower := strings.ToLower(s)
	if len(lower) >= 3 {
		for m := time.January; m <= time.December; m++ {
			if strings.HasPrefix(strings.ToLower(m.String()), lower) {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidRequest, s)
}

// CalendarYear resolves the calendar year of month within a school year
// such as "2024-2025". Classes open in June, so June–December belong to the
// first year and January–May to the second.
func CalendarYear(schoolYear string, month time.Month) (int, error) {
	parts := strings.FieldsFunc(schoolYear, func(r rune) bool {
		return r == '-' || r == '–' || r == '/' || r == ' '
	})
	if len(parts) == 0 {
		return 0, fmt.Errorf("%w: empty school year", ErrInvalidRequest)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: school year %q", ErrInvalidRequest, schoolYear)
	}
	if len(parts) == 1 {
		return start, nil
	}
	end, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: school year %q", ErrInvalidRequest, schoolYear)
	}
	if month >= time.June {
		return start, nil
	}
	return end, nil
}

// SchoolYearOf is the inverse of CalendarYear: the "YYYY-YYYY" school year a
// calendar month falls in.
func SchoolYearOf(year int, month time.Month) string {
	if month >= time.June {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// Filename is SF2_{section}_{month}_{schoolYear}.xlsx with path separators
// removed.
func Filename(section, month, schoolYear string) string {
	clean := strings.NewReplacer("/", "-", "\\", "-", "\"", "")
	return fmt.Sprintf("SF2_%s_%s_%s.xlsx",
		clean.Replace(strings.TrimSpace(section)),
		clean.Replace(strings.TrimSpace(month)),
		clean.Replace(strings.TrimSpace(schoolYear)))
}

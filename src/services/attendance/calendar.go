package attendance

import (
	"time"

	"attendance-sf2/src/models"
)

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "M",
	time.Tuesday:   "T",
	time.Wednesday: "W",
	time.Thursday:  "TH",
	time.Friday:    "F",
}

// DaysInMonth uses day 0 of the following month, so leap years come from
// the standard library's Gregorian arithmetic.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekdays lists Monday–Friday of the month in order.
func Weekdays(year int, month time.Month) []models.Weekday {
	return WeekdaysIn(year, month, DaysInMonth(year, month))
}

// WeekdaysIn is Weekdays restricted to days 1..days. days larger than the
// real month length is clamped.
func WeekdaysIn(year int, month time.Month, days int) []models.Weekday {
	if n := DaysInMonth(year, month); days > n {
		days = n
	}
	out := make([]models.Weekday, 0, 23)
	for d := 1; d <= days; d++ {
		wd := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday()
		if label, ok := weekdayLabels[wd]; ok {
			out = append(out, models.Weekday{Day: d, Label: label})
		}
	}
	return out
}

package attendance

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"attendance-sf2/src/models"
)

// SF2Students builds one attendance row per roster student for the month:
// attendance[d-1] is true when the student has an AM-in scan on day d.
// Students are sorted by name; scans of students outside the roster are
// ignored.
func SF2Students(records []models.DailyAttendanceRecord, roster []models.Student, year int, month time.Month) []models.SF2Student {
	days := DaysInMonth(year, month)
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	present := make(map[string]map[int]bool)
	for _, rec := range records {
		if !strings.HasPrefix(rec.Date, prefix) || !PresentOnSF2(rec) {
			continue
		}
		t, err := time.Parse(DateLayout, rec.Date)
		if err != nil {
			continue
		}
		if present[rec.StudentID] == nil {
			present[rec.StudentID] = make(map[int]bool)
		}
		present[rec.StudentID][t.Day()] = true
	}

	out := make([]models.SF2Student, 0, len(roster))
	for _, st := range roster {
		row := make([]bool, days)
		for d := range present[st.StudentID] {
			row[d-1] = true
		}
		out = append(out, models.SF2Student{
			Name:       st.Name,
			Gender:     st.Gender,
			Attendance: row,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// AbsentDays counts weekdays in the month without a presence mark.
func AbsentDays(attendance []bool, weekdays []models.Weekday) int {
	absent := 0
	for _, wd := range weekdays {
		if !IsPresent(attendance, wd.Day) {
			absent++
		}
	}
	return absent
}

// IsPresent reports attendance for 1-based day; days past the slice are absent.
func IsPresent(attendance []bool, day int) bool {
	return day >= 1 && day <= len(attendance) && attendance[day-1]
}

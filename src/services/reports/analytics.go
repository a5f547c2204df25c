package reports

import (
	"sort"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/services/roster"
)

// DailyTotals counts attendance per date. enrolled is the roster size used
// for the absent column; with enrolled <= 0 only scanned students whose day
// earned no credit are counted absent.
func DailyTotals(records []models.DailyAttendanceRecord, enrolled int) []models.DailyTotal {
	index := make(map[string]int)
	totals := make([]models.DailyTotal, 0)

	for _, rec := range records {
		i, ok := index[rec.Date]
		if !ok {
			i = len(totals)
			index[rec.Date] = i
			totals = append(totals, models.DailyTotal{Date: rec.Date})
		}
		t := &totals[i]
		t.Scanned++

		c := attendance.Credit(rec)
		t.Credit += c
		switch c {
		case attendance.CreditFull:
			t.Present++
		case attendance.CreditHalf:
			t.HalfDay++
		}
		if attendance.PresentOnSF2(rec) {
			t.SF2Present++
		}
	}

	for i := range totals {
		t := &totals[i]
		if enrolled > 0 {
			t.Absent = enrolled - t.Present - t.HalfDay
			if t.Absent < 0 {
				t.Absent = 0
			}
		} else {
			t.Absent = t.Scanned - t.Present - t.HalfDay
		}
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals
}

// SectionTotals aggregates credit per section label, sorted by grade then
// label.
func SectionTotals(records []models.DailyAttendanceRecord) []models.SectionTotal {
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)
	totals := make([]models.SectionTotal, 0)

	for _, rec := range records {
		i, ok := index[rec.SectionLabel]
		if !ok {
			i = len(totals)
			index[rec.SectionLabel] = i
			seen[rec.SectionLabel] = make(map[string]bool)
			totals = append(totals, models.SectionTotal{
				SectionLabel: rec.SectionLabel,
				Grade:        roster.GradeBucket(rec.SectionLabel),
			})
		}
		t := &totals[i]
		if !seen[rec.SectionLabel][rec.StudentID] {
			seen[rec.SectionLabel][rec.StudentID] = true
			t.Students++
		}
		c := attendance.Credit(rec)
		t.Credit += c
		if c > 0 {
			t.StudentDays++
		}
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Grade != totals[j].Grade {
			return roster.GradeLess(totals[i].Grade, totals[j].Grade)
		}
		return totals[i].SectionLabel < totals[j].SectionLabel
	})
	return totals
}

package attendance

import (
	"fmt"
	"sort"
	"strings"

	"attendance-sf2/src/models"
)

// TieBreaker orders attendees whose total credit is equal.
type TieBreaker string

const (
	TieBreakStable    TieBreaker = "stable" // first-seen order
	TieBreakName      TieBreaker = "name"
	TieBreakStudentID TieBreaker = "studentId"
)

func ParseTieBreaker(s string) (TieBreaker, error) {
	switch TieBreaker(s) {
	case "", TieBreakStable:
		return TieBreakStable, nil
	case TieBreakName, TieBreakStudentID:
		return TieBreaker(s), nil
	}
	return "", fmt.Errorf("unknown tie breaker %q", s)
}

// Totals sums daily credit per student, in first-seen order.
func Totals(records []models.DailyAttendanceRecord) []models.TopAttendee {
	index := make(map[string]int)
	totals := make([]models.TopAttendee, 0)
	for _, rec := range records {
		i, ok := index[rec.StudentID]
		if !ok {
			i = len(totals)
			index[rec.StudentID] = i
			totals = append(totals, models.TopAttendee{
				StudentID:    rec.StudentID,
				StudentName:  rec.StudentName,
				SectionLabel: rec.SectionLabel,
			})
		}
		c := Credit(rec)
		totals[i].Credit += c
		if c > 0 {
			totals[i].Days++
		}
	}
	return totals
}

// RankTopAttendees returns the n students with the highest total credit.
// n <= 0 returns everyone.
func RankTopAttendees(records []models.DailyAttendanceRecord, n int, tb TieBreaker) []models.TopAttendee {
	totals := Totals(records)
	sort.SliceStable(totals, func(i, j int) bool {
		a, b := totals[i], totals[j]
		if a.Credit != b.Credit {
			return a.Credit > b.Credit
		}
		switch tb {
		case TieBreakName:
			return strings.ToLower(a.StudentName) < strings.ToLower(b.StudentName)
		case TieBreakStudentID:
			return a.StudentID < b.StudentID
		}
		return false
	})
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

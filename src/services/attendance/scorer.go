package attendance

import (
	"strings"

	"attendance-sf2/src/models"
)

type SessionKind int

const (
	KindUnknown SessionKind = iota
	KindWholeDay
	KindAM
	KindPM
)

// Credit values
const (
	CreditNone = 0.0
	CreditHalf = 0.5
	CreditFull = 1.0
)

// KindOf classifies a normalized session tag. "WD", "WD AM" and "WD PM"
// are all whole-day family.
func KindOf(session string) SessionKind {
	switch {
	case session == models.SessionWD || strings.HasPrefix(session, models.SessionWD+" "):
		return KindWholeDay
	case session == models.SessionAM:
		return KindAM
	case session == models.SessionPM:
		return KindPM
	}
	return KindUnknown
}

// Credit scores one day for ranking. The record's Session (first event of
// the day) picks the rule set.
func Credit(rec models.DailyAttendanceRecord) float64 {
	switch KindOf(rec.Session) {
	case KindWholeDay:
		if rec.AMIn != "" && rec.PMOut != "" {
			return CreditFull
		}
		if rec.AMIn != "" {
			return CreditHalf
		}
	case KindAM:
		if rec.AMIn != "" && rec.AMOut != "" {
			return CreditFull
		}
	case KindPM:
		if rec.PMIn != "" && rec.PMOut != "" {
			return CreditFull
		}
	}
	return CreditNone
}

// PresentOnSF2 is the form's presence rule: an AM-in scan, nothing else.
// PM scans never count here even when they earn ranking credit.
func PresentOnSF2(rec models.DailyAttendanceRecord) bool {
	return rec.AMIn != ""
}

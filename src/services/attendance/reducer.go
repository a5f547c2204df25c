package attendance

import "attendance-sf2/src/models"

// Reduce folds normalized scans into one record per (student, date), in the
// order each pair is first seen. Events are applied in stream order:
// IN fills an empty slot only, OUT always overwrites.
//
// A plain "WD" event satisfies both the AM and the PM rule, so a single
// whole-day tap-in fills amIn and pmIn together.
func Reduce(events []models.NormalizedScan) []models.DailyAttendanceRecord {
	index := make(map[string]int)
	records := make([]models.DailyAttendanceRecord, 0)

	for _, ev := range events {
		key := ev.StudentID + "|" + ev.Date
		i, ok := index[key]
		if !ok {
			i = len(records)
			index[key] = i
			records = append(records, models.DailyAttendanceRecord{
				StudentID:    ev.StudentID,
				StudentName:  ev.StudentName,
				SectionLabel: ev.SectionLabel,
				Date:         ev.Date,
				Session:      ev.Session,
			})
		}
		rec := &records[i]
		if rec.StudentName == "" {
			rec.StudentName = ev.StudentName
		}
		if rec.SectionLabel == "" {
			rec.SectionLabel = ev.SectionLabel
		}
		Apply(rec, ev)
	}
	return records
}

// Apply runs one scan through the per-day state machine.
func Apply(rec *models.DailyAttendanceRecord, ev models.NormalizedScan) {
	if affectsAM(ev.Session) {
		applySlot(&rec.AMIn, &rec.AMOut, ev)
	}
	if affectsPM(ev.Session) {
		applySlot(&rec.PMIn, &rec.PMOut, ev)
	}
}

func applySlot(in, out *string, ev models.NormalizedScan) {
	switch ev.Action {
	case models.ActionIn:
		if *in == "" {
			*in = ev.Time
		}
	case models.ActionOut:
		*out = ev.Time
	}
}

func affectsAM(session string) bool {
	switch session {
	case models.SessionWD, models.SessionWDAM, models.SessionAM:
		return true
	}
	return false
}

func affectsPM(session string) bool {
	switch session {
	case models.SessionWD, models.SessionWDPM, models.SessionPM:
		return true
	}
	return false
}

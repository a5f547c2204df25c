package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/services/roster"
)

// ScanWriter is the part of the store the seeder writes to.
type ScanWriter interface {
	InsertScanEvents(ctx context.Context, events []models.RawScanEvent) error
}

// Options controls how sample scans are generated.
type Options struct {
	SchoolID string
	Year     int
	Month    time.Month
	Location *time.Location
	// AbsentEvery: student k is absent on day d when (d+k) % AbsentEvery == 0.
	// 0 disables absences.
	AbsentEvery int
}

// BuildScans creates a whole-day IN / OUT pair for every member of section on
// every weekday of the month, skipping deterministic absences. Every fourth
// present day only has the IN so reports also see half days.
func BuildScans(section models.Section, students []models.Student, opts Options) []models.RawScanEvent {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	label := roster.SectionLabel(section)
	var events []models.RawScanEvent
	for _, wd := range attendance.Weekdays(opts.Year, opts.Month) {
		for k, s := range students {
			if opts.AbsentEvery > 0 && (wd.Day+k)%opts.AbsentEvery == 0 {
				continue
			}
			in := time.Date(opts.Year, opts.Month, wd.Day, 7, k%30, 0, 0, loc)
			events = append(events, models.RawScanEvent{
				StudentID:    s.StudentID,
				StudentName:  s.Name,
				SectionLabel: label,
				SchoolID:     opts.SchoolID,
				Timestamp:    in,
				Action:       models.ActionIn,
				Session:      models.SessionWD,
			})
			if (wd.Day+k)%4 == 0 {
				continue
			}
			events = append(events, models.RawScanEvent{
				StudentID:    s.StudentID,
				StudentName:  s.Name,
				SectionLabel: label,
				SchoolID:     opts.SchoolID,
				Timestamp:    in.Add(9 * time.Hour),
				Action:       models.ActionOut,
				Session:      models.SessionWD,
			})
		}
	}
	return events
}

// SeedSchool generates scans for every section of the school.
func SeedSchool(ctx context.Context, src roster.Source, w ScanWriter, opts Options) (int, error) {
	sections, err := src.ListSections(ctx, opts.SchoolID)
	if err != nil {
		return 0, err
	}
	students, err := src.ListStudents(ctx, opts.SchoolID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, sec := range sections {
		n, err := SeedScans(ctx, w, sec, roster.Resolve(sec, students), opts)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SeedScans writes the generated scans for one section in batches.
func SeedScans(ctx context.Context, w ScanWriter, section models.Section, students []models.Student, opts Options) (int, error) {
	events := BuildScans(section, students, opts)
	const batch = 500
	for start := 0; start < len(events); start += batch {
		end := start + batch
		if end > len(events) {
			end = len(events)
		}
		if err := w.InsertScanEvents(ctx, events[start:end]); err != nil {
			return start, fmt.Errorf("insert scans %d-%d: %w", start, end, err)
		}
	}
	log.Printf("✅ Seeded %d scan events for %s (%d students, %d-%02d)", len(events), roster.SectionLabel(section), len(students), opts.Year, int(opts.Month))
	return len(events), nil
}

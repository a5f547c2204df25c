package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/services/roster"

	"go.uber.org/zap"
)

var ErrInvalidRange = errors.New("invalid date range")

// Query selects the scans a report covers. To is exclusive.
type Query struct {
	SchoolID  string
	SectionID string
	From      time.Time
	To        time.Time
	Limit     int
}

// Service builds dashboard reports straight from the event store.
type Service struct {
	events attendance.EventSource
	roster roster.Source
	loc    *time.Location
	tb     attendance.TieBreaker
	log    *zap.Logger
}

func NewService(events attendance.EventSource, rs roster.Source, loc *time.Location, tb attendance.TieBreaker, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{events: events, roster: rs, loc: loc, tb: tb, log: log}
}

func (s *Service) Location() *time.Location { return s.loc }

// Records returns the reduced daily records for q.
func (s *Service) Records(ctx context.Context, q Query) ([]models.DailyAttendanceRecord, string, int, error) {
	if q.From.IsZero() || q.To.IsZero() || !q.From.Before(q.To) {
		return nil, "", 0, ErrInvalidRange
	}

	sq := models.ScanQuery{SchoolID: q.SchoolID, From: q.From, To: q.To}
	label := ""
	enrolled := 0

	if q.SectionID != "" {
		section, members, err := roster.Members(ctx, s.roster, q.SchoolID, q.SectionID)
		if err != nil {
			return nil, "", 0, err
		}
		label = roster.SectionLabel(*section)
		sq.SectionLabel = label
		enrolled = len(members)
	} else if s.roster != nil {
		students, err := s.roster.ListStudents(ctx, q.SchoolID)
		if err != nil {
			return nil, "", 0, fmt.Errorf("list students: %w", err)
		}
		enrolled = len(students)
	}

	records, err := attendance.DailyRecords(ctx, s.events, sq, s.loc)
	if err != nil {
		return nil, "", 0, fmt.Errorf("load scan events: %w", err)
	}
	return records, label, enrolled, nil
}

// Report assembles top attendees, daily totals and section totals.
func (s *Service) Report(ctx context.Context, q Query) (models.AttendanceReport, error) {
	records, label, enrolled, err := s.Records(ctx, q)
	if err != nil {
		return models.AttendanceReport{}, err
	}

	report := models.AttendanceReport{
		From:          q.From.In(s.loc).Format(attendance.DateLayout),
		To:            q.To.In(s.loc).AddDate(0, 0, -1).Format(attendance.DateLayout),
		SectionLabel:  label,
		TopAttendees:  attendance.RankTopAttendees(records, q.Limit, s.tb),
		DailyTotals:   DailyTotals(records, enrolled),
		SectionTotals: SectionTotals(records),
	}

	s.log.Debug("attendance report built",
		zap.String("school", q.SchoolID),
		zap.String("section", label),
		zap.Int("records", len(records)),
		zap.Int("enrolled", enrolled),
	)
	return report, nil
}

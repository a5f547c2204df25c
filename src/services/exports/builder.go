package exports

import (
	"context"
	"fmt"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/services/cache"
	"attendance-sf2/src/services/roster"
	"attendance-sf2/src/services/sf2"

	"go.uber.org/zap"
)

// Builder turns stored scans and the section roster into an SF2Request.
type Builder struct {
	events attendance.EventSource
	roster roster.Source
	cache  *cache.ReportCache
	loc    *time.Location
	log    *zap.Logger
}

func NewBuilder(events attendance.EventSource, rs roster.Source, rc *cache.ReportCache, loc *time.Location, log *zap.Logger) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{events: events, roster: rs, cache: rc, loc: loc, log: log}
}

// Build loads one section-month. The cache is consulted first; a cache
// failure is logged and the build falls through to the store. The cache
// holds only roster and scan derived fields; caller fields are stamped on
// every call.
func (b *Builder) Build(ctx context.Context, req models.ExportJobRequest) (models.SF2Request, error) {
	month := time.Month(req.Month)
	if month < time.January || month > time.December {
		return models.SF2Request{}, fmt.Errorf("%w: month %d", sf2.ErrInvalidRequest, req.Month)
	}

	key := cache.SF2Key(req.SchoolID, req.SectionID, req.Year, month)
	if cached, ok, err := b.cache.GetSF2(ctx, key); err != nil {
		b.log.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return stampRequest(cached, req, month), nil
	}

	section, members, err := roster.Members(ctx, b.roster, req.SchoolID, req.SectionID)
	if err != nil {
		return models.SF2Request{}, err
	}

	from, to := attendance.MonthRange(req.Year, month, b.loc)
	q := models.ScanQuery{
		SchoolID:     req.SchoolID,
		SectionLabel: roster.SectionLabel(*section),
		From:         from,
		To:           to,
	}
	records, err := attendance.DailyRecords(ctx, b.events, q, b.loc)
	if err != nil {
		return models.SF2Request{}, fmt.Errorf("load scan events: %w", err)
	}

	out := models.SF2Request{
		SchoolID:    req.SchoolID,
		Month:       month.String(),
		Year:        req.Year,
		GradeLevel:  roster.Grade(section.SectionID),
		Section:     section.SectionName,
		Adviser:     section.Adviser,
		DaysInMonth: attendance.DaysInMonth(req.Year, month),
		Students:    attendance.SF2Students(records, members, req.Year, month),
	}

	if err := b.cache.SetSF2(ctx, key, out); err != nil {
		b.log.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
	b.log.Info("sf2 matrix built",
		zap.String("school", req.SchoolID),
		zap.String("section", q.SectionLabel),
		zap.Int("students", len(members)),
		zap.Int("records", len(records)),
	)
	return stampRequest(out, req, month), nil
}

// stampRequest fills the fields that come from the caller, not the store.
func stampRequest(out models.SF2Request, req models.ExportJobRequest, month time.Month) models.SF2Request {
	out.SchoolName = req.SchoolName
	out.SchoolYear = req.SchoolYear
	if out.SchoolYear == "" {
		out.SchoolYear = sf2.SchoolYearOf(req.Year, month)
	}
	return out
}

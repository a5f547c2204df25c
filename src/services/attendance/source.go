package attendance

import (
	"context"
	"sort"
	"time"

	"attendance-sf2/src/models"
)

// EventSource is any store that can return raw scan documents.
type EventSource interface {
	FetchScanEvents(ctx context.Context, q models.ScanQuery) ([]map[string]interface{}, error)
}

// DailyRecords fetches, normalizes and reduces the scans matching q. Stores
// may ignore the time bounds (timestamps are not uniformly typed), so the
// range is applied again after normalization. Scans are ordered by instant
// before reduction so first-IN/last-OUT follow real time regardless of the
// store's return order.
func DailyRecords(ctx context.Context, src EventSource, q models.ScanQuery, loc *time.Location) ([]models.DailyAttendanceRecord, error) {
	raw, err := src.FetchScanEvents(ctx, q)
	if err != nil {
		return nil, err
	}
	scans := InRange(Normalize(raw, loc), q.From, q.To)
	sort.SliceStable(scans, func(i, j int) bool {
		return scans[i].Timestamp.Before(scans[j].Timestamp)
	})
	return Reduce(scans), nil
}

// MonthRange returns [first day, first day of next month) in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// InRange keeps scans with From <= Timestamp < To. Zero bounds are open.
func InRange(scans []models.NormalizedScan, from, to time.Time) []models.NormalizedScan {
	if from.IsZero() && to.IsZero() {
		return scans
	}
	kept := scans[:0:0]
	for _, s := range scans {
		if !from.IsZero() && s.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && !s.Timestamp.Before(to) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

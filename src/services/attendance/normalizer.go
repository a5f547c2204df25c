package attendance

import (
	"math"
	"strings"
	"time"

	"attendance-sf2/src/models"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "03:04 PM"
)

// zone-less layouts are wall-clock times in the attendance location
var stringTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Normalize converts raw scan documents into canonical scans. Records whose
// timestamp cannot be resolved are dropped; the batch never fails.
//
// Date and Time are derived in loc, so every caller must pass the same
// location for a given school or late-night scans land on different days.
func Normalize(raw []map[string]interface{}, loc *time.Location) []models.NormalizedScan {
	out := make([]models.NormalizedScan, 0, len(raw))
	for _, r := range raw {
		if scan, ok := NormalizeOne(r, loc); ok {
			out = append(out, scan)
		}
	}
	return out
}

// NormalizeOne normalizes a single raw record. ok is false when the record
// has no usable timestamp.
func NormalizeOne(r map[string]interface{}, loc *time.Location) (models.NormalizedScan, bool) {
	if loc == nil {
		loc = time.UTC
	}
	instant, ok := ResolveInstant(r["timestamp"], loc)
	if !ok {
		return models.NormalizedScan{}, false
	}
	local := instant.In(loc)

	return models.NormalizedScan{
		StudentID:    strings.TrimSpace(cast.ToString(r["studentId"])),
		StudentName:  firstString(r, "studentName", "name"),
		SectionLabel: firstString(r, "section", "sectionLabel"),
		Date:         local.Format(DateLayout),
		Time:         local.Format(TimeLayout),
		Action:       NormalizeAction(cast.ToString(r["action"])),
		Session:      NormalizeSession(cast.ToString(r["session"])),
		Timestamp:    instant,
	}, true
}

// NormalizeAction uppercases the scan action ("in" -> "IN").
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}

// NormalizeSession uppercases the session, collapses separators and
// defaults a missing value to whole day.
func NormalizeSession(session string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(session)
	s = strings.Join(strings.Fields(strings.ToUpper(s)), " ")
	if s == "" {
		return models.SessionWD
	}
	return s
}

// ResolveInstant reads an instant from the shapes scan stores produce:
// time.Time, mongo DateTime/Timestamp, Firestore-style {seconds,nanoseconds}
// maps, epoch numbers and date strings. Strings without a zone are read as
// wall-clock time in loc.
func ResolveInstant(v interface{}, loc *time.Location) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case primitive.DateTime:
		return t.Time(), true
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0), t.T != 0
	case bson.M:
		return instantFromMap(t)
	case bson.D:
		return instantFromMap(t.Map())
	case map[string]interface{}:
		return instantFromMap(t)
	case string:
		return instantFromString(t, loc)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return time.Time{}, false
		}
		return instantFromEpoch(int64(t))
	case float32, int, int32, int64, uint32, uint64:
		n, err := cast.ToInt64E(t)
		if err != nil {
			return time.Time{}, false
		}
		return instantFromEpoch(n)
	}
	return time.Time{}, false
}

func instantFromMap(m map[string]interface{}) (time.Time, bool) {
	secRaw, ok := m["seconds"]
	if !ok {
		secRaw, ok = m["_seconds"]
	}
	if !ok {
		return time.Time{}, false
	}
	sec, err := cast.ToInt64E(secRaw)
	if err != nil {
		return time.Time{}, false
	}
	nsRaw, ok := m["nanoseconds"]
	if !ok {
		nsRaw = m["_nanoseconds"]
	}
	return time.Unix(sec, cast.ToInt64(nsRaw)), true
}

func instantFromString(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range stringTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	t, err := cast.ToTimeInDefaultLocationE(s, loc)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// epoch values above 1e11 are milliseconds (JavaScript Date), below are seconds
func instantFromEpoch(n int64) (time.Time, bool) {
	if n <= 0 {
		return time.Time{}, false
	}
	if n > 1e11 {
		return time.UnixMilli(n), true
	}
	return time.Unix(n, 0), true
}

func firstString(r map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(cast.ToString(r[k])); s != "" {
			return s
		}
	}
	return ""
}

package test

import (
	"fmt"
	"testing"
	"time"

	"attendance-sf2/src/models"
)

// TestTimer is a utility for measuring test execution time
type TestTimer struct {
	start time.Time
	name  string
}

// NewTestTimer creates a new test timer
func NewTestTimer(name string) *TestTimer {
	return &TestTimer{
		start: time.Now(),
		name:  name,
	}
}

// Stop stops the timer and prints the duration
func (t *TestTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, duration)
	return duration
}

// Timed runs fn and fails t when it takes longer than max.
func Timed(t *testing.T, name string, max time.Duration, fn func()) {
	t.Helper()
	timer := NewTestTimer(name)
	fn()
	PerformanceAssertion(t, name, timer.Stop(), max)
}

// PerformanceAssertion checks if a test meets performance requirements
func PerformanceAssertion(t *testing.T, testName string, duration time.Duration, maxDuration time.Duration) {
	if duration > maxDuration {
		t.Errorf("❌ %s performance test failed: took %v, expected less than %v", testName, duration, maxDuration)
	} else {
		t.Logf("✅ %s performance test passed: took %v (under %v limit)", testName, duration, maxDuration)
	}
}

// ScanDoc builds a raw scan document the way the stores return it.
func ScanDoc(studentID, name, section string, ts interface{}, action, session string) map[string]interface{} {
	return map[string]interface{}{
		"studentId":   studentID,
		"studentName": name,
		"section":     section,
		"timestamp":   ts,
		"action":      action,
		"session":     session,
	}
}

// At is a UTC instant on the given date and clock time.
func At(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Scan builds an already-normalized scan.
func Scan(studentID, date, clock, action, session string) models.NormalizedScan {
	return models.NormalizedScan{
		StudentID: studentID,
		Date:      date,
		Time:      clock,
		Action:    action,
		Session:   session,
	}
}

// Roster builds n students of one gender for section token "7 MABINI".
func Roster(prefix, gender string, n int) []models.Student {
	out := make([]models.Student, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Student{
			StudentID: fmt.Sprintf("SCH001_7 MABINI_%s%03d", prefix, i),
			Name:      fmt.Sprintf("%s Student %02d", prefix, i),
			Gender:    gender,
			SchoolID:  "SCH001",
		})
	}
	return out
}

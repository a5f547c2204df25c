package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mabini = models.Section{SectionID: "G7", SectionName: "Mabini", SchoolID: "300123"}

func learners() []models.Student {
	return []models.Student{
		{StudentID: "300123_7 MABINI_001", Name: "Dela Cruz, Juan", Gender: "Male", SchoolID: "300123"},
		{StudentID: "300123_7 MABINI_002", Name: "Reyes, Ana", Gender: "Female", SchoolID: "300123"},
	}
}

type recorder struct {
	batches [][]models.RawScanEvent
	failAt  int
}

func (r *recorder) InsertScanEvents(_ context.Context, events []models.RawScanEvent) error {
	if r.failAt > 0 && len(r.batches)+1 == r.failAt {
		return errors.New("write failed")
	}
	r.batches = append(r.batches, events)
	return nil
}

type fakeRoster struct {
	sections []models.Section
	students []models.Student
}

func (f fakeRoster) GetSection(context.Context, string, string) (*models.Section, error) {
	return &f.sections[0], nil
}
func (f fakeRoster) ListSections(context.Context, string) ([]models.Section, error) {
	return f.sections, nil
}
func (f fakeRoster) ListStudents(context.Context, string) ([]models.Student, error) {
	return f.students, nil
}

func TestBuildScansWeekdaysOnly(t *testing.T) {
	opts := Options{SchoolID: "300123", Year: 2025, Month: time.February, Location: time.UTC}
	events := BuildScans(mabini, learners(), opts)

	weekdays := attendance.Weekdays(2025, time.February)
	wantOut := 0
	for _, wd := range weekdays {
		for k := range learners() {
			if (wd.Day+k)%4 != 0 {
				wantOut++
			}
		}
	}

	in, out := 0, 0
	for _, ev := range events {
		assert.Equal(t, "7 MABINI", ev.SectionLabel)
		ts, ok := ev.Timestamp.(time.Time)
		require.True(t, ok)
		assert.NotEqual(t, time.Saturday, ts.Weekday())
		assert.NotEqual(t, time.Sunday, ts.Weekday())
		assert.Equal(t, models.SessionWD, ev.Session)
		switch ev.Action {
		case models.ActionIn:
			in++
		case models.ActionOut:
			out++
		}
	}
	assert.Equal(t, len(weekdays)*2, in)
	assert.Equal(t, wantOut, out)
}

func TestBuildScansAbsences(t *testing.T) {
	opts := Options{SchoolID: "300123", Year: 2025, Month: time.February, AbsentEvery: 3}
	events := BuildScans(mabini, learners()[:1], opts)

	for _, ev := range events {
		day := ev.Timestamp.(time.Time).Day()
		assert.NotZero(t, day%3, "student 0 should be absent on day %d", day)
	}
}

func TestSeedSchoolBatches(t *testing.T) {
	students := make([]models.Student, 0, 30)
	for i := 0; i < 30; i++ {
		students = append(students, models.Student{StudentID: "300123_7 MABINI_x", Name: "Learner"})
	}
	src := fakeRoster{sections: []models.Section{mabini}, students: students}
	w := &recorder{}

	n, err := SeedSchool(context.Background(), src, w, Options{SchoolID: "300123", Year: 2025, Month: time.February})
	require.NoError(t, err)
	assert.Greater(t, n, 500)

	written := 0
	for _, b := range w.batches {
		assert.LessOrEqual(t, len(b), 500)
		written += len(b)
	}
	assert.Equal(t, n, written)
}

func TestSeedScansStopsOnWriteError(t *testing.T) {
	students := make([]models.Student, 30)
	for i := range students {
		students[i] = models.Student{StudentID: "300123_7 MABINI_x"}
	}
	w := &recorder{failAt: 2}

	n, err := SeedScans(context.Background(), w, mabini, students, Options{Year: 2025, Month: time.February})
	assert.Error(t, err)
	assert.Equal(t, 500, n)
}

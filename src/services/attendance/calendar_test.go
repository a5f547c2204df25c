package attendance

import (
	"testing"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdaysFebruary2025(t *testing.T) {
	days := Weekdays(2025, time.February)

	require.Len(t, days, 20)
	assert.Equal(t, models.Weekday{Day: 3, Label: "M"}, days[0])
	assert.Equal(t, models.Weekday{Day: 28, Label: "F"}, days[len(days)-1])

	seen := make(map[int]bool)
	for _, d := range days {
		seen[d.Day] = true
	}
	for _, weekend := range []int{1, 2, 8, 9, 15, 16, 22, 23} {
		assert.False(t, seen[weekend], "day %d is a weekend", weekend)
	}
}

func TestWeekdayLabels(t *testing.T) {
	days := Weekdays(2025, time.February)
	labels := []string{}
	for _, d := range days[:5] {
		labels = append(labels, d.Label)
	}
	assert.Equal(t, []string{"M", "T", "W", "TH", "F"}, labels)
}

func TestWeekdaysLeapYear(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2100, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))

	days := Weekdays(2024, time.February)
	require.Len(t, days, 21)
	assert.Equal(t, models.Weekday{Day: 29, Label: "TH"}, days[len(days)-1])
}

func TestWeekdaysInClampsToMonthLength(t *testing.T) {
	assert.Equal(t, Weekdays(2025, time.February), WeekdaysIn(2025, time.February, 31))
	assert.Len(t, WeekdaysIn(2025, time.February, 7), 5)
}

func TestSF2StudentsUsesAMInOnly(t *testing.T) {
	roster := append(test.Roster("M", "Male", 2), test.Roster("F", "Female", 1)...)
	m1, m2, f1 := roster[0].StudentID, roster[1].StudentID, roster[2].StudentID

	records := []models.DailyAttendanceRecord{
		{StudentID: m1, Date: "2025-02-03", Session: models.SessionWD, AMIn: "07:00 AM"},
		{StudentID: m1, Date: "2025-02-04", Session: models.SessionPM, PMIn: "01:00 PM", PMOut: "05:00 PM"},
		{StudentID: m2, Date: "2025-02-05", Session: models.SessionAM, AMIn: "07:00 AM", AMOut: "11:00 AM"},
		{StudentID: f1, Date: "2025-03-03", Session: models.SessionWD, AMIn: "07:00 AM"},
		{StudentID: "SCH001_7 RIZAL_001", Date: "2025-02-03", Session: models.SessionWD, AMIn: "07:00 AM"},
	}

	rows := SF2Students(records, roster, 2025, time.February)

	require.Len(t, rows, 3)
	byName := map[string]models.SF2Student{}
	for _, r := range rows {
		require.Len(t, r.Attendance, 28)
		byName[r.Name] = r
	}
	m1Row := byName[roster[0].Name]
	assert.True(t, m1Row.Attendance[2])
	assert.False(t, m1Row.Attendance[3], "PM-only day is absent on SF2")
	assert.True(t, byName[roster[1].Name].Attendance[4])
	for _, v := range byName[roster[2].Name].Attendance {
		assert.False(t, v, "March scan must not leak into February")
	}
}

func TestAbsentDays(t *testing.T) {
	weekdays := Weekdays(2025, time.February)
	att := make([]bool, 28)
	att[2] = true  // Feb 3
	att[0] = true  // Feb 1 is Saturday, ignored
	att[27] = true // Feb 28

	assert.Equal(t, 18, AbsentDays(att, weekdays))
	assert.Equal(t, 20, AbsentDays(nil, weekdays))
}

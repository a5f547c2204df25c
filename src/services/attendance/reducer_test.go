package attendance

import (
	"testing"

	"attendance-sf2/src/models"
	"attendance-sf2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = "2025-02-03"

func TestReduceFirstInWinsLastOutWins(t *testing.T) {
	recs := Reduce([]models.NormalizedScan{
		test.Scan("A", day, "07:00 AM", models.ActionIn, models.SessionAM),
		test.Scan("A", day, "07:30 AM", models.ActionIn, models.SessionAM),
		test.Scan("A", day, "11:00 AM", models.ActionOut, models.SessionAM),
		test.Scan("A", day, "11:45 AM", models.ActionOut, models.SessionAM),
		test.Scan("A", day, "01:00 PM", models.ActionIn, models.SessionPM),
		test.Scan("A", day, "01:10 PM", models.ActionIn, models.SessionPM),
		test.Scan("A", day, "04:00 PM", models.ActionOut, models.SessionPM),
		test.Scan("A", day, "05:00 PM", models.ActionOut, models.SessionPM),
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "07:00 AM", recs[0].AMIn)
	assert.Equal(t, "11:45 AM", recs[0].AMOut)
	assert.Equal(t, "01:00 PM", recs[0].PMIn)
	assert.Equal(t, "05:00 PM", recs[0].PMOut)
	assert.Equal(t, models.SessionAM, recs[0].Session)
}

func TestReduceWholeDayInFillsBothSlots(t *testing.T) {
	recs := Reduce([]models.NormalizedScan{
		test.Scan("A", day, "07:00 AM", models.ActionIn, models.SessionWD),
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "07:00 AM", recs[0].AMIn)
	assert.Equal(t, "07:00 AM", recs[0].PMIn)
	assert.Empty(t, recs[0].AMOut)
	assert.Empty(t, recs[0].PMOut)
}

func TestReduceWholeDayOutFillsBothOutSlots(t *testing.T) {
	recs := Reduce([]models.NormalizedScan{
		test.Scan("A", day, "07:00 AM", models.ActionIn, models.SessionWD),
		test.Scan("A", day, "04:30 PM", models.ActionOut, models.SessionWD),
	})

	assert.Equal(t, "04:30 PM", recs[0].AMOut)
	assert.Equal(t, "04:30 PM", recs[0].PMOut)
}

func TestReduceWholeDaySubSessions(t *testing.T) {
	recs := Reduce([]models.NormalizedScan{
		test.Scan("A", day, "07:00 AM", models.ActionIn, models.SessionWDAM),
		test.Scan("B", day, "01:00 PM", models.ActionIn, models.SessionWDPM),
	})

	require.Len(t, recs, 2)
	assert.Equal(t, "07:00 AM", recs[0].AMIn)
	assert.Empty(t, recs[0].PMIn)
	assert.Empty(t, recs[1].AMIn)
	assert.Equal(t, "01:00 PM", recs[1].PMIn)
}

func TestReduceWholeDayInDoesNotOverwriteEarlierIn(t *testing.T) {
	recs := Reduce([]models.NormalizedScan{
		test.Scan("A", day, "06:50 AM", models.ActionIn, models.SessionAM),
		test.Scan("A", day, "07:00 AM", models.ActionIn, models.SessionWD),
	})

	assert.Equal(t, "06:50 AM", recs[0].AMIn)
	assert.Equal(t, "07:00 AM", recs[0].PMIn)
}

func TestReduceUnknownSessionIsNoop(t *testing.T) {
	recs := Reduce([]models.NormalizedScan{
		test.Scan("A", day, "07:00 AM", models.ActionIn, "EVENING"),
		test.Scan("A", day, "07:05 AM", "BREAK", models.SessionAM),
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "EVENING", recs[0].Session)
	assert.Empty(t, recs[0].AMIn)
	assert.Empty(t, recs[0].AMOut)
	assert.Empty(t, recs[0].PMIn)
	assert.Empty(t, recs[0].PMOut)
}

func TestReduceGroupsByStudentAndDate(t *testing.T) {
	recs := Reduce([]models.NormalizedScan{
		test.Scan("A", "2025-02-03", "07:00 AM", models.ActionIn, models.SessionWD),
		test.Scan("B", "2025-02-03", "07:01 AM", models.ActionIn, models.SessionWD),
		test.Scan("A", "2025-02-04", "07:02 AM", models.ActionIn, models.SessionWD),
		test.Scan("A", "2025-02-03", "04:00 PM", models.ActionOut, models.SessionWD),
	})

	require.Len(t, recs, 3)
	assert.Equal(t, "A", recs[0].StudentID)
	assert.Equal(t, "2025-02-03", recs[0].Date)
	assert.Equal(t, "04:00 PM", recs[0].PMOut)
	assert.Equal(t, "B", recs[1].StudentID)
	assert.Equal(t, "2025-02-04", recs[2].Date)
}

package sf2

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func templatePath(t *testing.T, l Layout) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SF2.xlsx")
	require.NoError(t, SaveTemplate(l, path))
	return path
}

// deterministic matrix: student k is present on day d when (d+k) % 3 != 0
func sampleRequest(males, females int) models.SF2Request {
	req := models.SF2Request{
		SchoolID:    "300123",
		SchoolName:  "Mabini National High School",
		SchoolYear:  "2024-2025",
		Month:       "February",
		GradeLevel:  "7",
		Section:     "MABINI",
		Adviser:     "Maria Santos",
		DaysInMonth: 28,
	}
	add := func(prefix, gender string, n, offset int) {
		for k := 0; k < n; k++ {
			att := make([]bool, 28)
			for d := 1; d <= 28; d++ {
				att[d-1] = (d+k+offset)%3 != 0
			}
			req.Students = append(req.Students, models.SF2Student{
				Name:       fmt.Sprintf("%s, Learner %02d", prefix, k+1),
				Gender:     gender,
				Attendance: att,
			})
		}
	}
	add("Dela Cruz", "Male", males, 0)
	add("Reyes", "Female", females, 7)
	return req
}

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func intAt(t *testing.T, f *excelize.File, sheet string, col, row int) int {
	t.Helper()
	v, err := f.GetCellValue(sheet, Cell(col, row))
	require.NoError(t, err)
	n, err := strconv.Atoi(v)
	require.NoError(t, err, "cell %s = %q", Cell(col, row), v)
	return n
}

func TestRenderTotalsMatchInput(t *testing.T) {
	l := DefaultLayout()
	r := NewRenderer(templatePath(t, l), l, 10*time.Second, nil)
	req := sampleRequest(5, 5)

	data, err := r.Render(context.Background(), req)
	require.NoError(t, err)
	f := open(t, data)

	weekdays := attendance.Weekdays(2025, time.February)
	require.Len(t, weekdays, 20)

	for j, wd := range weekdays {
		male, female := 0, 0
		for _, s := range req.Students {
			if !s.Attendance[wd.Day-1] {
				continue
			}
			if models.GenderBand(s.Gender) == models.GenderMale {
				male++
			} else {
				female++
			}
		}
		col := l.DayCol(j)
		assert.Equal(t, male, intAt(t, f, l.Sheet, col, l.MaleTotalRow), "male total day %d", wd.Day)
		assert.Equal(t, female, intAt(t, f, l.Sheet, col, l.FemaleTotalRow), "female total day %d", wd.Day)
		assert.Equal(t, male+female, intAt(t, f, l.Sheet, col, l.CombinedTotalRow), "combined total day %d", wd.Day)
	}
}

func TestRenderHeaderAndDayColumns(t *testing.T) {
	l := DefaultLayout()
	r := NewRenderer(templatePath(t, l), l, 0, nil)

	data, err := r.Render(context.Background(), sampleRequest(1, 1))
	require.NoError(t, err)
	f := open(t, data)

	get := func(cell string) string {
		v, err := f.GetCellValue(l.Sheet, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "300123", get(l.SchoolIDCell))
	assert.Equal(t, "2024-2025", get(l.SchoolYearCell))
	assert.Equal(t, "February", get(l.MonthCell))
	assert.Equal(t, "Mabini National High School", get(l.SchoolNameCell))
	assert.Equal(t, "7", get(l.GradeLevelCell))
	assert.Equal(t, "MABINI", get(l.SectionCell))
	assert.Equal(t, "Maria Santos", get(l.AdviserCell))

	// first weekday of Feb 2025 is Monday the 3rd, in column D
	assert.Equal(t, "D", colName(l.FirstDayCol))
	assert.Equal(t, "3", get("D11"))
	assert.Equal(t, "M", get("D12"))
	assert.Equal(t, "TH", get("G12"))
	assert.Equal(t, "28", get(Cell(l.DayCol(19), l.DateRow)))
	// 20 weekdays: the 21st day column stays empty
	assert.Equal(t, "", get(Cell(l.DayCol(20), l.DateRow)))
}

func TestRenderStudentRows(t *testing.T) {
	l := DefaultLayout()
	r := NewRenderer(templatePath(t, l), l, 0, nil)
	req := sampleRequest(2, 3)

	data, err := r.Render(context.Background(), req)
	require.NoError(t, err)
	f := open(t, data)

	get := func(col, row int) string {
		v, err := f.GetCellValue(l.Sheet, Cell(col, row))
		require.NoError(t, err)
		return v
	}

	// numbering restarts inside each band
	assert.Equal(t, "1", get(l.NumberCol, 14))
	assert.Equal(t, "2", get(l.NumberCol, 15))
	assert.Equal(t, "", get(l.NumberCol, 16))
	assert.Equal(t, "1", get(l.NumberCol, 36))
	assert.Equal(t, "3", get(l.NumberCol, 38))

	assert.Equal(t, "Dela Cruz, Learner 01", get(l.NameCol, 14))
	assert.Equal(t, "Reyes, Learner 01", get(l.NameCol, 36))

	weekdays := attendance.Weekdays(2025, time.February)
	first := req.Students[0]
	for j, wd := range weekdays {
		want := ""
		if first.Attendance[wd.Day-1] {
			want = l.PresentMark
		}
		assert.Equal(t, want, get(l.DayCol(j), 14), "day %d", wd.Day)
	}
	assert.Equal(t, strconv.Itoa(attendance.AbsentDays(first.Attendance, weekdays)), get(l.AbsentCol, 14))
}

func TestRenderKeepsTemplateStructure(t *testing.T) {
	l := DefaultLayout()
	path := templatePath(t, l)
	tpl, err := excelize.OpenFile(path)
	require.NoError(t, err)
	wantMerges, err := tpl.GetMergeCells(l.Sheet)
	require.NoError(t, err)
	tpl.Close()

	r := NewRenderer(path, l, 0, nil)
	data, err := r.Render(context.Background(), sampleRequest(21, 25))
	require.NoError(t, err)
	f := open(t, data)

	gotMerges, err := f.GetMergeCells(l.Sheet)
	require.NoError(t, err)
	assert.Equal(t, len(wantMerges), len(gotMerges))

	for row, label := range map[int]string{
		l.MaleTotalRow:     MaleTotalLabel,
		l.FemaleTotalRow:   FemaleTotalLabel,
		l.CombinedTotalRow: CombinedLabel,
	} {
		v, err := f.GetCellValue(l.Sheet, Cell(l.NameCol, row))
		require.NoError(t, err)
		assert.Equal(t, label, v)
	}
	v, err := f.GetCellValue(l.Sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, TitleText, v)

	// the template on disk is untouched
	again, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer again.Close()
	name, err := again.GetCellValue(l.Sheet, Cell(l.NameCol, l.Male.Start))
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestRenderIsIdempotent(t *testing.T) {
	l := DefaultLayout()
	r := NewRenderer(templatePath(t, l), l, 0, nil)
	req := sampleRequest(4, 6)

	first, err := r.Render(context.Background(), req)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), req)
	require.NoError(t, err)

	rows1, err := open(t, first).GetRows(l.Sheet)
	require.NoError(t, err)
	rows2, err := open(t, second).GetRows(l.Sheet)
	require.NoError(t, err)
	assert.Equal(t, rows1, rows2)
}

func TestRenderBandOverflow(t *testing.T) {
	l := DefaultLayout()
	path := templatePath(t, l)

	_, err := NewRenderer(path, l, 0, nil).Render(context.Background(), sampleRequest(22, 1))
	assert.ErrorIs(t, err, ErrBandOverflow)
	assert.True(t, IsClientError(err))

	l.Overflow = OverflowTruncate
	data, err := NewRenderer(path, l, 0, nil).Render(context.Background(), sampleRequest(22, 26))
	require.NoError(t, err)
	f := open(t, data)
	last, err := f.GetCellValue(l.Sheet, Cell(l.NumberCol, l.Male.End()))
	require.NoError(t, err)
	assert.Equal(t, "21", last)
	label, err := f.GetCellValue(l.Sheet, Cell(l.NameCol, l.MaleTotalRow))
	require.NoError(t, err)
	assert.Equal(t, MaleTotalLabel, label)
}

func TestRenderMissingTemplate(t *testing.T) {
	l := DefaultLayout()
	r := NewRenderer(filepath.Join(t.TempDir(), "missing.xlsx"), l, 0, nil)

	data, err := r.Render(context.Background(), sampleRequest(1, 1))
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrTemplateUnavailable)
	assert.False(t, IsClientError(err))
}

func TestRenderMissingSheet(t *testing.T) {
	l := DefaultLayout()
	path := templatePath(t, l)
	l.Sheet = "School Form 2"

	_, err := NewRenderer(path, l, 0, nil).Render(context.Background(), sampleRequest(1, 1))
	assert.ErrorIs(t, err, ErrSheetMissing)
}

func TestRenderInvalidMonth(t *testing.T) {
	l := DefaultLayout()
	req := sampleRequest(1, 1)
	req.Month = "Smarch"

	_, err := NewRenderer(templatePath(t, l), l, 0, nil).Render(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	l := DefaultLayout()
	r := NewRenderer(templatePath(t, l), l, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data, err := r.Render(ctx, sampleRequest(1, 1))
	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.False(t, IsClientError(err))
}

func TestDefaultLayoutIsValid(t *testing.T) {
	l := DefaultLayout()
	require.NoError(t, l.Validate())
	assert.Equal(t, 34, l.Male.End())
	assert.Equal(t, 60, l.Female.End())

	bad := l
	bad.Male.Capacity = 22
	assert.Error(t, bad.Validate())
}

func TestRenderRejectsLongAttendance(t *testing.T) {
	l := DefaultLayout()
	req := sampleRequest(1, 0)
	req.Students[0].Attendance = make([]bool, 31)

	_, err := NewRenderer(templatePath(t, l), l, 0, nil).Render(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRenderFullFormPerformance(t *testing.T) {
	l := DefaultLayout()
	r := NewRenderer(templatePath(t, l), l, 0, nil)
	req := sampleRequest(21, 25)

	test.Timed(t, "SF2 render (46 learners)", 5*time.Second, func() {
		_, err := r.Render(context.Background(), req)
		require.NoError(t, err)
	})
}

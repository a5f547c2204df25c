package sf2

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Renderer fills the SF2 template with one month of attendance. It only
// writes data cells; labels, merges and legend come from the template file,
// which is opened fresh on every call and never written back.
type Renderer struct {
	templatePath string
	layout       Layout
	timeout      time.Duration
	log          *zap.Logger
}

func NewRenderer(templatePath string, layout Layout, timeout time.Duration, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{templatePath: templatePath, layout: layout, timeout: timeout, log: log}
}

func (r *Renderer) Layout() Layout { return r.layout }

// plan is everything derived from the request before the template is touched.
type plan struct {
	month    time.Month
	year     int
	weekdays []models.Weekday
	males    []models.SF2Student
	females  []models.SF2Student
}

// Render produces the xlsx bytes. Any failure yields no output.
func (r *Renderer) Render(ctx context.Context, req models.SF2Request) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		utils.SF2Renders.WithLabelValues("timeout").Inc()
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		data, err := r.render(req)
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		utils.SF2Renders.WithLabelValues("timeout").Inc()
		return nil, fmt.Errorf("%w: %w", ErrGeneration, ctx.Err())
	case res := <-done:
		utils.SF2RenderSeconds.Observe(time.Since(start).Seconds())
		if res.err != nil {
			utils.SF2Renders.WithLabelValues("error").Inc()
			return nil, res.err
		}
		utils.SF2Renders.WithLabelValues("ok").Inc()
		return res.data, nil
	}
}

func (r *Renderer) render(req models.SF2Request) ([]byte, error) {
	p, err := r.plan(req)
	if err != nil {
		return nil, err
	}

	f, err := r.openTemplate()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := r.fill(f, req, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	r.log.Info("sf2 rendered",
		zap.String("school", req.SchoolID),
		zap.String("section", req.Section),
		zap.Int("year", p.year),
		zap.String("month", p.month.String()),
		zap.Int("males", len(p.males)),
		zap.Int("females", len(p.females)),
		zap.Int("weekdays", len(p.weekdays)),
	)
	return buf.Bytes(), nil
}

func (r *Renderer) openTemplate() (*excelize.File, error) {
	if _, err := os.Stat(r.templatePath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}
	f, err := excelize.OpenFile(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateUnavailable, err)
	}
	idx, err := f.GetSheetIndex(r.layout.Sheet)
	if err != nil || idx < 0 {
		f.Close()
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetMissing, r.layout.Sheet, r.templatePath)
	}
	return f, nil
}

func (r *Renderer) plan(req models.SF2Request) (plan, error) {
	var p plan

	month, err := ParseMonth(req.Month)
	if err != nil {
		return p, err
	}
	year := req.Year
	if year == 0 {
		if year, err = CalendarYear(req.SchoolYear, month); err != nil {
			return p, err
		}
	}
	p.month, p.year = month, year

	days := req.DaysInMonth
	if days <= 0 {
		days = attendance.DaysInMonth(year, month)
	}
	p.weekdays = attendance.WeekdaysIn(year, month, days)
	if len(p.weekdays) > r.layout.DayColumns {
		return p, fmt.Errorf("%w: %d weekdays exceed %d day columns", ErrInvalidRequest, len(p.weekdays), r.layout.DayColumns)
	}

	for _, st := range req.Students {
		if len(st.Attendance) > days {
			return p, fmt.Errorf("%w: %q has %d attendance days, month has %d", ErrInvalidRequest, st.Name, len(st.Attendance), days)
		}
		if models.GenderBand(st.Gender) == models.GenderMale {
			p.males = append(p.males, st)
		} else {
			p.females = append(p.females, st)
		}
	}

	if p.males, err = r.fitBand("male", p.males, r.layout.Male); err != nil {
		return p, err
	}
	if p.females, err = r.fitBand("female", p.females, r.layout.Female); err != nil {
		return p, err
	}
	return p, nil
}

func (r *Renderer) fitBand(name string, students []models.SF2Student, band Band) ([]models.SF2Student, error) {
	if len(students) <= band.Capacity {
		return students, nil
	}
	if r.layout.Overflow == OverflowTruncate {
		r.log.Warn("sf2 band overflow, extra rows dropped",
			zap.String("band", name),
			zap.Int("students", len(students)),
			zap.Int("capacity", band.Capacity),
		)
		return students[:band.Capacity], nil
	}
	return nil, fmt.Errorf("%w: %d %s students, band holds %d", ErrBandOverflow, len(students), name, band.Capacity)
}

// sheetWriter keeps the first excelize error so the fill code stays linear.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) value(cell string, v interface{}) {
	if w.err != nil || cell == "" {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, v)
}

func (w *sheetWriter) style(from, to string, id int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, id)
}

func (w *sheetWriter) cell(col, row int, v interface{}, id int) {
	c := Cell(col, row)
	if v != nil {
		w.value(c, v)
	}
	w.style(c, c, id)
}

func (r *Renderer) fill(f *excelize.File, req models.SF2Request, p plan) error {
	st, err := newStyles(f)
	if err != nil {
		return err
	}
	l := r.layout
	w := &sheetWriter{f: f, sheet: l.Sheet}

	for cell, v := range map[string]string{
		l.SchoolIDCell:   req.SchoolID,
		l.SchoolYearCell: req.SchoolYear,
		l.MonthCell:      p.month.String(),
		l.SchoolNameCell: req.SchoolName,
		l.GradeLevelCell: req.GradeLevel,
		l.SectionCell:    req.Section,
		l.AdviserCell:    req.Adviser,
	} {
		if cell == "" {
			continue
		}
		w.value(cell, v)
		w.style(cell, cell, st.header)
	}

	for i, wd := range p.weekdays {
		w.cell(l.DayCol(i), l.DateRow, wd.Day, st.dayHeader)
		w.cell(l.DayCol(i), l.LabelRow, wd.Label, st.dayHeader)
	}

	maleTotals, maleAbsent := r.fillBand(w, st, l.Male, p.males, p.weekdays)
	femaleTotals, femaleAbsent := r.fillBand(w, st, l.Female, p.females, p.weekdays)

	combined := make([]int, len(p.weekdays))
	for i := range combined {
		combined[i] = maleTotals[i] + femaleTotals[i]
	}
	r.fillTotals(w, st, l.MaleTotalRow, maleTotals, maleAbsent)
	r.fillTotals(w, st, l.FemaleTotalRow, femaleTotals, femaleAbsent)
	r.fillTotals(w, st, l.CombinedTotalRow, combined, maleAbsent+femaleAbsent)

	return w.err
}

// fillBand writes the student rows of one band and returns the per-weekday
// presence totals and the band's total absences.
func (r *Renderer) fillBand(w *sheetWriter, st styles, band Band, students []models.SF2Student, weekdays []models.Weekday) ([]int, int) {
	l := r.layout
	totals := make([]int, len(weekdays))
	absentTotal := 0

	for i, s := range students {
		row := band.Row(i)
		w.cell(l.NumberCol, row, i+1, st.number)
		w.value(Cell(l.NameCol, row), s.Name)
		w.style(Cell(l.NameCol, row), Cell(l.NameEndCol, row), st.name)

		for j, wd := range weekdays {
			var mark interface{}
			if attendance.IsPresent(s.Attendance, wd.Day) {
				mark = l.PresentMark
				totals[j]++
			}
			w.cell(l.DayCol(j), row, mark, st.mark)
		}

		absent := attendance.AbsentDays(s.Attendance, weekdays)
		absentTotal += absent
		w.cell(l.AbsentCol, row, absent, st.number)
	}
	return totals, absentTotal
}

func (r *Renderer) fillTotals(w *sheetWriter, st styles, row int, totals []int, absent int) {
	l := r.layout
	for j, n := range totals {
		w.cell(l.DayCol(j), row, n, st.total)
	}
	w.cell(l.AbsentCol, row, absent, st.total)
}

// IsClientError reports whether err comes from the request rather than the
// server (bad payload or a band that cannot hold the roster).
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrBandOverflow)
}

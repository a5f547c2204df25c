package sf2

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Template labels written by BuildTemplate; the renderer never writes these.
const (
	TitleText         = "School Form 2 (SF2) Daily Attendance Report of Learners"
	MaleTotalLabel    = "<=== MALE | TOTAL Per Day ===>"
	FemaleTotalLabel  = "<=== FEMALE | TOTAL Per Day ===>"
	CombinedLabel     = "Combined TOTAL PER DAY"
	LearnerNameHeader = "LEARNER'S NAME (Last Name, First Name, Middle Name)"
)

// BuildTemplate creates a blank SF2 workbook with the static labels, merges
// and borders of the paper form, for deployments without the official file.
func BuildTemplate(l Layout) (*excelize.File, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", l.Sheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := buildTemplate(f, l); err != nil {
		f.Close()
		return nil, fmt.Errorf("build sf2 template: %w", err)
	}
	return f, nil
}

// SaveTemplate writes BuildTemplate's workbook to path.
func SaveTemplate(l Layout, path string) error {
	f, err := BuildTemplate(l)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func buildTemplate(f *excelize.File, l Layout) error {
	w := &sheetWriter{f: f, sheet: l.Sheet}
	last := l.LastCol()

	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	label, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	boxed, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 8},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}
	grid, err := f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return err
	}

	merge := func(from, to string) {
		if w.err == nil {
			w.err = f.MergeCell(l.Sheet, from, to)
		}
	}

	w.value("A1", TitleText)
	merge("A1", Cell(last, 1))
	w.style("A1", "A1", title)
	w.value("A2", "(This replaces Form 1, Form 2 & STS Form 4 - Absenteeism and Dropout Profile)")
	merge("A2", Cell(last, 2))

	for _, lbl := range []struct {
		valueCell string
		text      string
	}{
		{l.SchoolIDCell, "School ID"},
		{l.SchoolYearCell, "School Year"},
		{l.MonthCell, "Report for the Month of"},
		{l.SchoolNameCell, "Name of School"},
		{l.GradeLevelCell, "Grade Level"},
		{l.SectionCell, "Section"},
	} {
		col, row, err := excelize.CellNameToCoordinates(lbl.valueCell)
		if err != nil {
			return err
		}
		labelCell := Cell(col-1, row)
		w.value(labelCell, lbl.text)
		w.style(labelCell, labelCell, label)
	}

	headerTop := l.DateRow - 1
	w.value(Cell(l.NumberCol, headerTop), "No.")
	merge(Cell(l.NumberCol, headerTop), Cell(l.NumberCol, l.LabelRow))
	w.value(Cell(l.NameCol, headerTop), LearnerNameHeader)
	merge(Cell(l.NameCol, headerTop), Cell(l.NameEndCol, l.LabelRow))
	w.value(Cell(l.FirstDayCol, headerTop), "(1st row for date, 2nd row for Day: M,T,W,TH,F)")
	merge(Cell(l.FirstDayCol, headerTop), Cell(l.DayCol(l.DayColumns-1), headerTop))
	w.value(Cell(l.AbsentCol, headerTop), "Total for the Month")
	merge(Cell(l.AbsentCol, headerTop), Cell(l.TardyCol, headerTop))
	w.value(Cell(l.AbsentCol, l.DateRow), "ABSENT")
	merge(Cell(l.AbsentCol, l.DateRow), Cell(l.AbsentCol, l.LabelRow))
	w.value(Cell(l.TardyCol, l.DateRow), "TARDY")
	merge(Cell(l.TardyCol, l.DateRow), Cell(l.TardyCol, l.LabelRow))
	w.value(Cell(l.RemarksCol, headerTop), "REMARKS")
	merge(Cell(l.RemarksCol, headerTop), Cell(l.RemarksCol, l.LabelRow))
	w.style(Cell(1, headerTop), Cell(last, l.LabelRow), boxed)

	for _, band := range []Band{l.Male, l.Female} {
		for row := band.Start; row <= band.End(); row++ {
			merge(Cell(l.NameCol, row), Cell(l.NameEndCol, row))
		}
		w.style(Cell(1, band.Start), Cell(last, band.End()), grid)
	}

	for _, t := range []struct {
		row  int
		text string
	}{
		{l.MaleTotalRow, MaleTotalLabel},
		{l.FemaleTotalRow, FemaleTotalLabel},
		{l.CombinedTotalRow, CombinedLabel},
	} {
		w.value(Cell(l.NameCol, t.row), t.text)
		merge(Cell(l.NameCol, t.row), Cell(l.NameEndCol, t.row))
		w.style(Cell(1, t.row), Cell(last, t.row), boxed)
	}

	legend := l.CombinedTotalRow + 2
	w.value(Cell(l.NameCol, legend), "GUIDELINES:")
	w.value(Cell(l.NameCol, legend+1), "CODES FOR CHECKING ATTENDANCE: "+l.PresentMark+" - Present; (blank) - Absent")
	w.value(Cell(l.NameCol, legend+2), "The attendance shall be accomplished daily. Refer to the codes for checking learners' attendance.")

	if l.AdviserCell != "" {
		col, row, err := excelize.CellNameToCoordinates(l.AdviserCell)
		if err != nil {
			return err
		}
		w.value(Cell(col, row-1), "Prepared by:")
		w.value(Cell(col, row+1), "(Signature of Teacher over Printed Name)")
	}

	if w.err != nil {
		return w.err
	}
	if err := f.SetColWidth(l.Sheet, "A", "A", 4); err != nil {
		return err
	}
	if err := f.SetColWidth(l.Sheet, colName(l.NameCol), colName(l.NameEndCol), 18); err != nil {
		return err
	}
	return f.SetColWidth(l.Sheet, colName(l.FirstDayCol), colName(l.DayCol(l.DayColumns-1)), 3.5)
}

func colName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

package sf2

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// OverflowPolicy decides what happens when a gender band has more students
// than template rows.
type OverflowPolicy string

const (
	OverflowError    OverflowPolicy = "error"
	OverflowTruncate OverflowPolicy = "truncate"
)

func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch OverflowPolicy(strings.ToLower(s)) {
	case "", OverflowError:
		return OverflowError, nil
	case OverflowTruncate:
		return OverflowTruncate, nil
	}
	return "", fmt.Errorf("unknown overflow policy %q", s)
}

// Band is a contiguous block of student rows.
type Band struct {
	Start    int
	Capacity int
}

func (b Band) End() int { return b.Start + b.Capacity - 1 }

// Row returns the sheet row of the i-th (0-based) student in the band.
func (b Band) Row(i int) int { return b.Start + i }

// Layout is the fixed geometry of the SF2 sheet. Columns and rows are
// 1-based, matching excelize coordinates.
type Layout struct {
	Sheet string

	SchoolIDCell   string
	SchoolYearCell string
	MonthCell      string
	SchoolNameCell string
	GradeLevelCell string
	SectionCell    string
	AdviserCell    string

	DateRow  int
	LabelRow int

	NumberCol   int
	NameCol     int
	NameEndCol  int
	FirstDayCol int
	DayColumns  int
	AbsentCol   int
	TardyCol    int
	RemarksCol  int

	Male             Band
	Female           Band
	MaleTotalRow     int
	FemaleTotalRow   int
	CombinedTotalRow int

	PresentMark string
	Overflow    OverflowPolicy
}

// DefaultLayout is the DepEd SF2 paper form: males on rows 14–34, females
// on 36–60, totals on 35/61/62, day columns D..AB.
func DefaultLayout() Layout {
	return Layout{
		Sheet: "SF2",

		SchoolIDCell:   "C6",
		SchoolYearCell: "K6",
		MonthCell:      "X6",
		SchoolNameCell: "C8",
		GradeLevelCell: "X8",
		SectionCell:    "AC8",
		AdviserCell:    "Y66",

		DateRow:  11,
		LabelRow: 12,

		NumberCol:   1,
		NameCol:     2,
		NameEndCol:  3,
		FirstDayCol: 4,
		DayColumns:  25,
		AbsentCol:   29,
		TardyCol:    30,
		RemarksCol:  31,

		Male:             Band{Start: 14, Capacity: 21},
		Female:           Band{Start: 36, Capacity: 25},
		MaleTotalRow:     35,
		FemaleTotalRow:   61,
		CombinedTotalRow: 62,

		PresentMark: "✓",
		Overflow:    OverflowError,
	}
}

// DayCol is the column of the i-th (0-based) weekday.
func (l Layout) DayCol(i int) int { return l.FirstDayCol + i }

// LastCol is the right edge of the form.
func (l Layout) LastCol() int { return l.RemarksCol }

// Cell converts 1-based column/row to an A1 reference.
func Cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		// only reachable with non-positive coordinates, which Layout never produces
		panic(err)
	}
	return name
}

// Validate checks the layout is self-consistent.
func (l Layout) Validate() error {
	switch {
	case l.Sheet == "":
		return fmt.Errorf("layout: empty sheet name")
	case l.DayColumns <= 0 || l.FirstDayCol <= l.NameEndCol:
		return fmt.Errorf("layout: bad day column band")
	case l.AbsentCol < l.DayCol(l.DayColumns):
		return fmt.Errorf("layout: absent column overlaps day columns")
	case l.Male.Capacity <= 0 || l.Female.Capacity <= 0:
		return fmt.Errorf("layout: empty student band")
	case l.Male.End() >= l.MaleTotalRow:
		return fmt.Errorf("layout: male band runs into its total row")
	case l.Female.Start <= l.MaleTotalRow || l.Female.End() >= l.FemaleTotalRow:
		return fmt.Errorf("layout: female band overlaps a total row")
	case l.CombinedTotalRow <= l.FemaleTotalRow:
		return fmt.Errorf("layout: combined total must follow female total")
	}
	return nil
}

package sf2

import "github.com/xuri/excelize/v2"

type styles struct {
	header    int
	dayHeader int
	number    int
	name      int
	mark      int
	total     int
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

const fontFamily = "Arial Narrow"

// newStyles registers the cell styles written data cells carry. Style IDs
// are per workbook, so this runs once for every opened template.
func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	if s.dayHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return s, err
	}
	if s.number, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return s, err
	}
	if s.name, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", Indent: 1},
		Border:    thinBorder,
	}); err != nil {
		return s, err
	}
	if s.mark, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontFamily, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return s, err
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	}); err != nil {
		return s, err
	}
	return s, nil
}

package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"attendance-sf2/src/models"

	"github.com/jung-kurt/gofpdf"
)

const PDFContentType = "application/pdf"

// PDFFilename is Attendance_{section}_{from}_{to}.pdf; "ALL" when the report
// spans the whole school.
func PDFFilename(report models.AttendanceReport) string {
	section := strings.TrimSpace(report.SectionLabel)
	if section == "" {
		section = "ALL"
	}
	section = strings.NewReplacer("/", "-", "\\", "-", "\"", "").Replace(section)
	return fmt.Sprintf("Attendance_%s_%s_%s.pdf", section, report.From, report.To)
}

// RenderPDF writes the report as an A4 summary: top attendees then per-day
// totals.
func RenderPDF(report models.AttendanceReport, schoolName string, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Attendance Summary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if schoolName != "" {
		pdf.Cell(0, 7, fmt.Sprintf("School: %s", schoolName))
		pdf.Ln(7)
	}
	section := report.SectionLabel
	if section == "" {
		section = "All sections"
	}
	pdf.Cell(0, 7, fmt.Sprintf("Section: %s", section))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s", report.From, report.To))
	pdf.Ln(12)

	table(pdf, "Top Attendees",
		[]string{"#", "Student", "Section", "Days", "Credit"},
		[]float64{10, 80, 45, 20, 25},
		1, len(report.TopAttendees),
		func(i int) []string {
			a := report.TopAttendees[i]
			return []string{
				fmt.Sprint(i + 1), a.StudentName, a.SectionLabel,
				fmt.Sprint(a.Days), fmt.Sprintf("%.1f", a.Credit),
			}
		})

	table(pdf, "Daily Totals",
		[]string{"Date", "Present", "Half Day", "Absent", "SF2 Present", "Credit"},
		[]float64{35, 25, 25, 25, 30, 25},
		-1, len(report.DailyTotals),
		func(i int) []string {
			d := report.DailyTotals[i]
			return []string{
				d.Date, fmt.Sprint(d.Present), fmt.Sprint(d.HalfDay),
				fmt.Sprint(d.Absent), fmt.Sprint(d.SF2Present), fmt.Sprintf("%.1f", d.Credit),
			}
		})

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 10, fmt.Sprintf("Generated: %s", generatedAt.Format("02 January 2006 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// table draws a bordered grid; column left is left-aligned, the rest centred.
func table(pdf *gofpdf.Fpdf, title string, header []string, widths []float64, left, n int, row func(int) []string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	if n == 0 {
		total := 0.0
		for _, w := range widths {
			total += w
		}
		pdf.CellFormat(total, 7, "No records", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for i := 0; i < n; i++ {
		for j, v := range row(i) {
			align := "C"
			if j == left {
				align = "L"
			}
			pdf.CellFormat(widths[j], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

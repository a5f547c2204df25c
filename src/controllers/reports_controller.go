package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/services/reports"
	"attendance-sf2/src/services/sf2"
	"attendance-sf2/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportsController struct {
	Reports *reports.Service
	Log     *zap.Logger
}

func NewReportsController(svc *reports.Service, log *zap.Logger) *ReportsController {
	return &ReportsController{Reports: svc, Log: logger(log)}
}

// parseQuery อ่านช่วงวันที่จาก from/to (YYYY-MM-DD, รวมวันสุดท้าย) หรือ year+month
func (h *ReportsController) parseQuery(c *fiber.Ctx) (reports.Query, error) {
	loc := h.Reports.Location()
	q := reports.Query{
		SectionID: strings.TrimSpace(c.Query("sectionId")),
		Limit:     c.QueryInt("limit", 10),
	}
	schoolID, err := schoolScope(c, c.Query("schoolId"))
	if err != nil {
		return q, err
	}
	q.SchoolID = schoolID

	if m := c.Query("month"); m != "" {
		month, err := sf2.ParseMonth(m)
		if err != nil {
			return q, err
		}
		year := c.QueryInt("year")
		if year == 0 {
			return q, fmt.Errorf("%w: year is required with month", reports.ErrInvalidRange)
		}
		q.From, q.To = attendance.MonthRange(year, month, loc)
		return q, nil
	}

	from, err := time.ParseInLocation(attendance.DateLayout, c.Query("from"), loc)
	if err != nil {
		return q, fmt.Errorf("%w: from must be YYYY-MM-DD", reports.ErrInvalidRange)
	}
	to := from
	if s := c.Query("to"); s != "" {
		if to, err = time.ParseInLocation(attendance.DateLayout, s, loc); err != nil {
			return q, fmt.Errorf("%w: to must be YYYY-MM-DD", reports.ErrInvalidRange)
		}
	}
	q.From, q.To = from, to.AddDate(0, 0, 1)
	return q, nil
}

// Summary godoc
// @Summary      Attendance summary
// @Description  Top attendees, daily totals and section totals for a date range
// @Tags         reports
// @Produce      json
// @Param        schoolId   query  string  false  "School ID"
// @Param        sectionId  query  string  false  "Section ID"
// @Param        from       query  string  false  "First date (YYYY-MM-DD)"
// @Param        to         query  string  false  "Last date, inclusive (YYYY-MM-DD)"
// @Param        year       query  int     false  "Calendar year (with month)"
// @Param        month      query  string  false  "Month (name or 1-12)"
// @Param        limit      query  int     false  "Top attendees"  default(10)
// @Success      200  {object}  models.AttendanceReport
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /reports [get]
func (h *ReportsController) Summary(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return h.queryError(c, err)
	}
	report, err := h.Reports.Report(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// TopAttendees godoc
// @Summary      Top attendees
// @Tags         reports
// @Produce      json
// @Param        schoolId   query  string  false  "School ID"
// @Param        sectionId  query  string  false  "Section ID"
// @Param        from       query  string  false  "First date (YYYY-MM-DD)"
// @Param        to         query  string  false  "Last date, inclusive (YYYY-MM-DD)"
// @Param        limit      query  int     false  "How many"  default(10)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /reports/top-attendees [get]
func (h *ReportsController) TopAttendees(c *fiber.Ctx) error {
	return h.part(c, "Top attendees retrieved successfully", func(r models.AttendanceReport) interface{} { return r.TopAttendees })
}

// DailyTotals godoc
// @Summary      Per-day attendance totals
// @Tags         reports
// @Produce      json
// @Param        schoolId   query  string  false  "School ID"
// @Param        sectionId  query  string  false  "Section ID"
// @Param        from       query  string  false  "First date (YYYY-MM-DD)"
// @Param        to         query  string  false  "Last date, inclusive (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /reports/daily-totals [get]
func (h *ReportsController) DailyTotals(c *fiber.Ctx) error {
	return h.part(c, "Daily totals retrieved successfully", func(r models.AttendanceReport) interface{} { return r.DailyTotals })
}

// SectionTotals godoc
// @Summary      Per-section attendance totals
// @Tags         reports
// @Produce      json
// @Param        schoolId   query  string  false  "School ID"
// @Param        from       query  string  false  "First date (YYYY-MM-DD)"
// @Param        to         query  string  false  "Last date, inclusive (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /reports/section-totals [get]
func (h *ReportsController) SectionTotals(c *fiber.Ctx) error {
	return h.part(c, "Section totals retrieved successfully", func(r models.AttendanceReport) interface{} { return r.SectionTotals })
}

// PDF godoc
// @Summary      Attendance summary as PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        schoolId    query  string  false  "School ID"
// @Param        schoolName  query  string  false  "School name for the header"
// @Param        sectionId   query  string  false  "Section ID"
// @Param        from        query  string  false  "First date (YYYY-MM-DD)"
// @Param        to          query  string  false  "Last date, inclusive (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /reports/pdf [get]
func (h *ReportsController) PDF(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return h.queryError(c, err)
	}
	report, err := h.Reports.Report(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.Log, err)
	}

	data, err := reports.RenderPDF(report, c.Query("schoolName"), time.Now().In(h.Reports.Location()))
	if err != nil {
		return respondError(c, h.Log, err)
	}
	c.Set(fiber.HeaderContentType, reports.PDFContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", reports.PDFFilename(report)))
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *ReportsController) part(c *fiber.Ctx, message string, pick func(models.AttendanceReport) interface{}) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return h.queryError(c, err)
	}
	report, err := h.Reports.Report(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
		"from":    report.From,
		"to":      report.To,
		"data":    pick(report),
	})
}

func (h *ReportsController) queryError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrSchoolForbidden) {
		return respondError(c, h.Log, err)
	}
	return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
}

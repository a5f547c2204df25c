package controllers

import (
	"fmt"
	"strings"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/exports"
	"attendance-sf2/src/services/sf2"
	"attendance-sf2/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SF2Controller struct {
	Renderer *sf2.Renderer
	Exports  *exports.Service
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewSF2Controller(r *sf2.Renderer, ex *exports.Service, v *validator.Validate, log *zap.Logger) *SF2Controller {
	return &SF2Controller{Renderer: r, Exports: ex, Validate: v, Log: logger(log)}
}

// Generate godoc
// @Summary      Generate SF2 workbook
// @Description  Fill the SF2 template from a client-supplied attendance matrix
// @Tags         sf2
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body      models.SF2Request  true  "SF2 payload"
// @Success      200   {file}    file
// @Failure      400   {object}  models.ErrorResponse
// @Failure      422   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Failure      403   {object}  models.ErrorResponse
// @Router       /sf2/generate [post]
func (h *SF2Controller) Generate(c *fiber.Ctx) error {
	var req models.SF2Request
	var err error
	if err = c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.SchoolID, err = schoolScope(c, req.SchoolID); err != nil {
		return respondError(c, h.Log, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.ValidationError(c, err)
	}

	data, err := h.Renderer.Render(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return sendXLSX(c, data, sf2.Filename(req.Section, req.Month, req.SchoolYear))
}

// FromSection godoc
// @Summary      Generate SF2 from stored scans
// @Description  Build the month's attendance matrix from the event store and roster, then render it
// @Tags         sf2
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        sectionId   path   string  true   "Section ID"
// @Param        schoolId    query  string  false  "School ID (defaults to the token's school)"
// @Param        schoolName  query  string  false  "School name printed on the form"
// @Param        year        query  int     true   "Calendar year"
// @Param        month       query  string  true   "Month (name or 1-12)"
// @Param        schoolYear  query  string  false  "School year, e.g. 2024-2025"
// @Success      200   {file}    file
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      422   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Failure      403   {object}  models.ErrorResponse
// @Router       /sf2/sections/{sectionId} [get]
func (h *SF2Controller) FromSection(c *fiber.Ctx) error {
	req, err := exportRequestFromQuery(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.SchoolID, err = schoolScope(c, req.SchoolID); err != nil {
		return respondError(c, h.Log, err)
	}
	if req.SchoolName == "" {
		req.SchoolName = req.SchoolID
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.ValidationError(c, err)
	}

	data, name, err := h.Exports.Generate(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return sendXLSX(c, data, name)
}

func exportRequestFromQuery(c *fiber.Ctx) (models.ExportJobRequest, error) {
	req := models.ExportJobRequest{
		SchoolID:   strings.TrimSpace(c.Query("schoolId")),
		SchoolName: strings.TrimSpace(c.Query("schoolName")),
		SectionID:  strings.TrimSpace(c.Params("sectionId")),
		SchoolYear: strings.TrimSpace(c.Query("schoolYear")),
		Year:       c.QueryInt("year"),
	}
	if m := c.Query("month"); m != "" {
		month, err := sf2.ParseMonth(m)
		if err != nil {
			return req, err
		}
		req.Month = int(month)
	}
	if req.Year == 0 && req.SchoolYear != "" && req.Month != 0 {
		y, err := sf2.CalendarYear(req.SchoolYear, time.Month(req.Month))
		if err != nil {
			return req, err
		}
		req.Year = y
	}
	return req, nil
}

func sendXLSX(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, sf2.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Status(fiber.StatusOK).Send(data)
}

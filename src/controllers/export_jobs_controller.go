package controllers

import (
	"fmt"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/exports"
	"attendance-sf2/src/services/sf2"
	"attendance-sf2/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExportJobsController struct {
	Exports  *exports.Service
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewExportJobsController(ex *exports.Service, v *validator.Validate, log *zap.Logger) *ExportJobsController {
	return &ExportJobsController{Exports: ex, Validate: v, Log: logger(log)}
}

// Submit godoc
// @Summary      Queue an SF2 export
// @Tags         exports
// @Accept       json
// @Produce      json
// @Param        body  body      models.ExportJobRequest  true  "Export request"
// @Success      202   {object}  models.ExportJob
// @Failure      400   {object}  models.ErrorResponse
// @Failure      503   {object}  models.ErrorResponse
// @Failure      403   {object}  models.ErrorResponse
// @Router       /exports/sf2 [post]
func (h *ExportJobsController) Submit(c *fiber.Ctx) error {
	var req models.ExportJobRequest
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

	job, err := h.Exports.Submit(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

// Status godoc
// @Summary      Export job status
// @Tags         exports
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  models.ExportJob
// @Failure      404  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /exports/{id} [get]
func (h *ExportJobsController) Status(c *fiber.Ctx) error {
	job, err := h.Exports.Status(c.UserContext(), c.Params("id"))
	if err == nil {
		_, err = schoolScope(c, job.Request.SchoolID)
	}
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(job)
}

// Download godoc
// @Summary      Download a finished export
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Job ID"
// @Success      200  {file}    file
// @Failure      404  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /exports/{id}/download [get]
func (h *ExportJobsController) Download(c *fiber.Ctx) error {
	job, err := h.Exports.Status(c.UserContext(), c.Params("id"))
	if err == nil {
		_, err = schoolScope(c, job.Request.SchoolID)
	}
	if err != nil {
		return respondError(c, h.Log, err)
	}
	data, name, err := h.Exports.Download(c.UserContext(), job.ID)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	c.Set(fiber.HeaderContentType, sf2.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Status(fiber.StatusOK).Send(data)
}

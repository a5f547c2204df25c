package controllers

import (
	"attendance-sf2/src/services/roster"
	"attendance-sf2/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SectionsController struct {
	Roster roster.Source
	Log    *zap.Logger
}

func NewSectionsController(rs roster.Source, log *zap.Logger) *SectionsController {
	return &SectionsController{Roster: rs, Log: logger(log)}
}

// List godoc
// @Summary      Sections grouped by grade
// @Tags         sections
// @Produce      json
// @Param        schoolId  query  string  false  "School ID (defaults to the token's school)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /sections [get]
func (h *SectionsController) List(c *fiber.Ctx) error {
	schoolID, err := schoolScope(c, c.Query("schoolId"))
	if err != nil {
		return respondError(c, h.Log, err)
	}
	if schoolID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "schoolId is required")
	}

	sections, err := h.Roster.ListSections(c.UserContext(), schoolID)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Sections retrieved successfully",
		"data":    roster.GroupByGrade(sections),
	})
}

// Students godoc
// @Summary      Students of a section
// @Description  Resolved through the explicit section reference, falling back to the legacy studentId token
// @Tags         sections
// @Produce      json
// @Param        sectionId  path   string  true  "Section ID"
// @Param        schoolId   query  string  false  "School ID (defaults to the token's school)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /sections/{sectionId}/students [get]
func (h *SectionsController) Students(c *fiber.Ctx) error {
	schoolID, err := schoolScope(c, c.Query("schoolId"))
	if err != nil {
		return respondError(c, h.Log, err)
	}
	section, students, err := roster.Members(c.UserContext(), h.Roster, schoolID, c.Params("sectionId"))
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Students retrieved successfully",
		"section": section,
		"label":   roster.SectionLabel(*section),
		"data":    students,
	})
}

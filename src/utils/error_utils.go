// error_utils.go
package utils

import (
	"errors"

	"attendance-sf2/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// ValidationError ตอบ 400 พร้อม field ที่ไม่ผ่าน validator
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Namespace()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: "validation failed",
		Errors:  fields,
	})
}

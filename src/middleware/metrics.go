package middleware

import (
	"strconv"

	"attendance-sf2/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Metrics counts requests by route pattern and status.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		utils.HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

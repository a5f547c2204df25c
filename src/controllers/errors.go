package controllers

import (
	"context"
	"errors"

	"attendance-sf2/src/services/cache"
	"attendance-sf2/src/services/exports"
	"attendance-sf2/src/services/reports"
	"attendance-sf2/src/services/roster"
	"attendance-sf2/src/services/sf2"
	"attendance-sf2/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sf2.ErrBandOverflow):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, sf2.ErrInvalidRequest), errors.Is(err, reports.ErrInvalidRange):
		return fiber.StatusBadRequest
	case errors.Is(err, roster.ErrSectionNotFound),
		errors.Is(err, cache.ErrJobNotFound),
		errors.Is(err, cache.ErrArtifactNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, exports.ErrQueueUnavailable), errors.Is(err, cache.ErrRedisUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, ErrSchoolForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	}
	return fiber.StatusInternalServerError
}

// respondError logs server-side failures and writes the ErrorResponse.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	return utils.HandleError(c, status, err.Error())
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

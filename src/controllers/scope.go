package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ErrSchoolForbidden = errors.New("token is not scoped to this school")

// schoolScope resolves the school a request may touch. Without a token
// (auth disabled) or with an admin token the requested school is used as is;
// otherwise an empty request falls back to the token's school and a
// different school is rejected.
func schoolScope(c *fiber.Ctx, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	own, _ := c.Locals("schoolId").(string)
	role, _ := c.Locals("role").(string)
	if own == "" || strings.EqualFold(role, "admin") {
		return requested, nil
	}
	if requested == "" {
		return own, nil
	}
	if requested != own {
		return "", ErrSchoolForbidden
	}
	return own, nil
}

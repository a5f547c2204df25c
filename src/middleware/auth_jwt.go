package middleware

import (
	"strings"

	"attendance-sf2/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT ตรวจ Bearer token ด้วย secret ที่ส่งเข้ามา
func AuthJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
		}

		c.Locals("userId", claims.UserID)
		c.Locals("schoolId", claims.SchoolID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequireRole ใช้หลัง AuthJWT
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if strings.EqualFold(role, r) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}
}

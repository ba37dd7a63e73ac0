package middleware

import (
	"github.com/gofiber/fiber/v2"

	"gymku_backend/internals/constants"
	helper "gymku_backend/internals/helpers"
)

// IsGymAdmin hanya meloloskan token dengan role gym_admin (atau owner).
func IsGymAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role != constants.RoleGymAdmin && role != constants.RoleOwner {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorGymAdmin("admin gym"))
		}
		return c.Next()
	}
}

// IsOwner hanya meloloskan token owner (super admin lintas tenant).
func IsOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromToken(c) != constants.RoleOwner {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner("owner"))
		}
		return c.Next()
	}
}

// IsMember hanya meloloskan token member (self-service).
func IsMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromToken(c) != constants.RoleMember {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorMember("member"))
		}
		return c.Next()
	}
}

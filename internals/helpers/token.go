package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys Locals yang di-hydrate oleh middleware AuthJWT.
const (
	LocUserID   = "user_id"
	LocGymID    = "gym_id"
	LocMemberID = "member_id"
	LocRole     = "role"
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid")
	}
	return id, nil
}

// GetGymIDFromToken mengambil tenant gym aktif dari claims.
func GetGymIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocGymID)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

func GetMemberIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocMemberID)
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return s
	}
	return ""
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return id, nil
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "gymku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi access token HMAC lalu meng-hydrate Locals
// (user_id, gym_id, member_id, role) untuk helper & guard berikutnya.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		if v := strClaim(claims, "role"); v != "" {
			c.Locals(helper.LocRole, v)
		}
		if v := strClaim(claims, "gym_id"); v != "" {
			c.Locals(helper.LocGymID, v)
		}
		if v := strClaim(claims, "member_id"); v != "" {
			c.Locals(helper.LocMemberID, v)
		}

		// user_id: ambil sub/id/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "sub") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "id") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "user_id"))
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

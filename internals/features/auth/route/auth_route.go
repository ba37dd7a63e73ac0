package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gymku_backend/internals/features/auth/controller"
	"gymku_backend/internals/middlewares"
)

// AuthPublicRoutes: login + refresh (group /api/auth, tanpa JWT).
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	router.Post("/admin/login", middlewares.LoginRateLimiter(), ctrl.AdminLogin)
	router.Post("/member/login", middlewares.LoginRateLimiter(), ctrl.MemberLogin)
	router.Post("/owner/login", middlewares.LoginRateLimiter(), ctrl.OwnerLogin)
	router.Post("/refresh", ctrl.Refresh)
}

// AuthProtectedRoutes: operasi akun yang butuh JWT (dipasang di group ber-auth).
func AuthProtectedRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	router.Post("/change-password", ctrl.ChangePassword)
}

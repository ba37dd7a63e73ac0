package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gymCtrl "gymku_backend/internals/features/gyms/controller"
)

// GymOwnerRoutes: manajemen tenant oleh owner (super admin).
func GymOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gymCtrl.NewGymController(db)

	g := r.Group("/gyms")
	g.Post("/", ctrl.CreateGym)
	g.Get("/", ctrl.ListGyms)
	g.Get("/:id", ctrl.GetGym)
	g.Put("/:id", ctrl.UpdateGym)
	g.Delete("/:id", ctrl.DeactivateGym)
	g.Post("/:id/regenerate-qr", ctrl.RegenerateQRCode)

	r.Get("/stats", ctrl.OwnerStats)
}

// GymAdminRoutes: profil gym milik admin yang sedang login.
func GymAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gymCtrl.NewGymController(db)

	g := r.Group("/gym")
	g.Get("/profile", ctrl.GetOwnProfile)
	g.Put("/profile", ctrl.UpdateOwnProfile)
}

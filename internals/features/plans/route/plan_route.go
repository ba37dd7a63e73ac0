package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planController "gymku_backend/internals/features/plans/controller"
)

// PlanAdminRoutes: CRUD paket membership (group /api/a).
func PlanAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := planController.NewPlanController(db)

	plans := router.Group("/plans")
	plans.Post("/", ctrl.CreatePlan)
	plans.Get("/", ctrl.ListPlans)
	plans.Get("/:id", ctrl.GetPlan)
	plans.Put("/:id", ctrl.UpdatePlan)
	plans.Delete("/:id", ctrl.DeactivatePlan)
}

// PlanPublicRoutes: daftar paket utk halaman pendaftaran (group /api/public).
func PlanPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := planController.NewPlanController(db)

	router.Get("/gyms/:qr_code/plans", ctrl.PublicPlansByGymCode)
}

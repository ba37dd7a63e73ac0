package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberCtrl "gymku_backend/internals/features/members/controller"
)

// MemberAdminRoutes: CRUD member oleh admin gym.
func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := memberCtrl.NewMemberController(db)

	g := r.Group("/members")
	g.Post("/", ctrl.CreateMember)
	g.Get("/", ctrl.ListMembers)
	g.Get("/by-barcode/:barcode", ctrl.GetMemberByBarcode)
	g.Get("/:id", ctrl.GetMember)
	g.Put("/:id", ctrl.UpdateMember)
	g.Delete("/:id", ctrl.DeleteMember)
}

// MemberUserRoutes: self-service member.
func MemberUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := memberCtrl.NewMemberController(db)

	g := r.Group("/members")
	g.Get("/me", ctrl.GetOwnProfile)
}

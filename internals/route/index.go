package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	attendanceController "gymku_backend/internals/features/attendance/controller"
	attendanceRoute "gymku_backend/internals/features/attendance/route"
	authRoute "gymku_backend/internals/features/auth/route"
	gymRoute "gymku_backend/internals/features/gyms/route"
	memberRoute "gymku_backend/internals/features/members/route"
	paymentRoute "gymku_backend/internals/features/payments/route"
	planRoute "gymku_backend/internals/features/plans/route"
	authMw "gymku_backend/internals/middlewares/auth_gym"
	guard "gymku_backend/internals/middlewares/features"
)

// SetupRoutes memasang semua group API:
//
//	/api/auth   — login, refresh (tanpa JWT)
//	/api/public — webhook gateway, katalog paket pendaftaran
//	/api/a      — panel admin gym (JWT + role gym_admin)
//	/api/u      — self-service member (JWT + role member)
//	/api/o      — panel owner platform (JWT + role owner)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	jwtAuth := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// Satu controller kehadiran untuk group admin & member: lock per member
	// hanya bekerja kalau kedua jalur scan berbagi Engine yang sama.
	attendanceCtrl := attendanceController.NewAttendanceController(db)

	// ===== Tanpa autentikasi =====
	auth := api.Group("/auth")
	authRoute.AuthPublicRoutes(auth, db)

	public := api.Group("/public")
	paymentRoute.PaymentPublicRoutes(public, db)
	planRoute.PlanPublicRoutes(public, db)

	// ===== Admin gym =====
	admin := api.Group("/a", jwtAuth, guard.IsGymAdmin())
	gymRoute.GymAdminRoutes(admin, db)
	memberRoute.MemberAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, attendanceCtrl)
	planRoute.PlanAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)

	// ===== Member =====
	user := api.Group("/u", jwtAuth, guard.IsMember())
	memberRoute.MemberUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, attendanceCtrl)
	paymentRoute.PaymentUserRoutes(user, db)

	// ===== Owner platform =====
	owner := api.Group("/o", jwtAuth, guard.IsOwner())
	gymRoute.GymOwnerRoutes(owner, db)

	// Ganti password berlaku semua role, cukup JWT
	account := api.Group("/account", jwtAuth)
	authRoute.AuthProtectedRoutes(account, db)
}

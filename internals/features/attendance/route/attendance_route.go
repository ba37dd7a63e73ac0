package route

import (
	"github.com/gofiber/fiber/v2"

	attendanceController "gymku_backend/internals/features/attendance/controller"
	"gymku_backend/internals/middlewares"
)

// Kedua installer menerima controller yang sama: satu Engine (dan satu set
// lock per member) melayani scan admin maupun self-scan member dalam proses.

// AttendanceAdminRoutes: scan front desk + proyeksi harian (group /api/a).
func AttendanceAdminRoutes(router fiber.Router, ctrl *attendanceController.AttendanceController) {
	attendance := router.Group("/attendance")
	attendance.Post("/scan", middlewares.ScanRateLimiter(), ctrl.ScanMember)
	attendance.Get("/", ctrl.ListAttendance)
	attendance.Get("/present", ctrl.CurrentlyPresent)
}

// AttendanceUserRoutes: self-scan QR gym + riwayat pribadi (group /api/u).
func AttendanceUserRoutes(router fiber.Router, ctrl *attendanceController.AttendanceController) {
	attendance := router.Group("/attendance")
	attendance.Post("/scan", middlewares.ScanRateLimiter(), ctrl.SelfScan)
	attendance.Get("/history", ctrl.MyHistory)
}

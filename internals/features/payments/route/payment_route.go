package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	paymentController "gymku_backend/internals/features/payments/controller"
)

// PaymentAdminRoutes: tagihan + pelunasan manual (group /api/a).
func PaymentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db, configs.GetEnv("MIDTRANS_SERVER_KEY"))

	payments := router.Group("/payments")
	payments.Post("/", ctrl.CreatePayment)
	payments.Get("/", ctrl.ListPayments)
	payments.Get("/:id", ctrl.GetPayment)
	payments.Post("/:id/mark-paid", ctrl.MarkPaidManually)
}

// PaymentUserRoutes: tagihan member yang login (group /api/u).
func PaymentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db, configs.GetEnv("MIDTRANS_SERVER_KEY"))

	router.Get("/payments", ctrl.MyPayments)
}

// PaymentPublicRoutes: webhook gateway (group /api/public).
func PaymentPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db, configs.GetEnv("MIDTRANS_SERVER_KEY"))

	router.Post("/payments/midtrans/callback", ctrl.MidtransCallback)
}

package middlewares

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"gymku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar aplikasi.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())

	// log per-request verbose, hidupkan saat debugging
	if os.Getenv("VERBOSE_HTTP_LOG") == "true" {
		app.Use(logger.LoggerMiddleware())
	}
}

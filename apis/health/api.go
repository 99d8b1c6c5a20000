package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all health API routes with the Fiber application.
// It sets up the health check endpoint under the /api/v1 path.
func RegisterRoutes(app *fiber.App) {
	healthGroup := app.Group("/api/v1")

	healthGroup.Get("/health", HealthHandler)
}

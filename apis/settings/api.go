package settings

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the read-only configuration routes under /api/v1/config.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	group := app.Group("/api/v1/config")

	group.Get("/", handler.GetConfig)
	group.Get("/environment", handler.GetEnvironment)
	group.Get("/log-levels", handler.ListLogLevelsJSON)
	group.Get("/log-levels.toon", handler.ListLogLevelsTOON)
	group.Get("/log-levels/:name", handler.GetLogLevel)
}

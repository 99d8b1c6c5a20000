package handlers

import (
	"github.com/redhat-appstudio/appconfig/apis/health"
	"github.com/redhat-appstudio/appconfig/apis/prometheus"
	"github.com/redhat-appstudio/appconfig/apis/settings"
	"github.com/redhat-appstudio/appconfig/internal/config"
	"github.com/redhat-appstudio/appconfig/internal/version"
	"github.com/redhat-appstudio/appconfig/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers every API on app. m may be nil when metrics are disabled.
func SetupRoutes(app *fiber.App, cfg *config.Config, m *metrics.Metrics) {
	health.RegisterRoutes(app)
	settings.RegisterRoutes(app, settings.NewHandler(cfg))

	if cfg.Metrics.Enabled {
		prometheus.RegisterRoutes(app, cfg.Metrics.Path, m)
	}

	app.Get("/", RootHandler)
}

// RootHandler returns the service name, version and where to look next.
func RootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "appconfig",
		"version": version.GetShortVersion(),
		"docs":    "/api/v1/config",
		"health":  "/api/v1/health",
	})
}

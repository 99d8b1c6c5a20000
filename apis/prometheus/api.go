package prometheus

import (
	"github.com/redhat-appstudio/appconfig/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the Prometheus exposition endpoint at path.
// A nil m registers a 503 fallback so scrapers see why nothing is served.
func RegisterRoutes(app *fiber.App, path string, m *metrics.Metrics) {
	if m == nil {
		app.Get(path, func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusServiceUnavailable, "metrics are disabled")
		})
		return
	}

	handler := promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{
		Registry: m.Registry(),
	})
	app.Get(path, adaptor.HTTPHandler(handler))
}

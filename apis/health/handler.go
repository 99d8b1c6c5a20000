package health

import (
	"time"

	"github.com/redhat-appstudio/appconfig/internal/version"

	"github.com/gofiber/fiber/v2"
)

var startTime = time.Now()

// HealthHandler returns status, version and uptime.
func HealthHandler(c *fiber.Ctx) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version.GetShortVersion(),
		Uptime:    time.Since(startTime).Round(time.Second).String(),
	}

	return c.JSON(response)
}

package prometheus

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/redhat-appstudio/appconfig/apis/common"
	"github.com/redhat-appstudio/appconfig/internal/config"
	"github.com/redhat-appstudio/appconfig/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	m := metrics.New()
	m.Observe(&config.Config{Environment: "development", LogLevel: "DEBUG"})

	app := fiber.New()
	RegisterRoutes(app, "/metrics", m)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `appconfig_log_level_severity{level="WARNING"} 30`)
	assert.Contains(t, string(body), `appconfig_environment_info{environment="development"} 1`)
	assert.Contains(t, string(body), "appconfig_active_log_level 10")
}

func TestRegisterRoutes_Disabled(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	RegisterRoutes(app, "/metrics", nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

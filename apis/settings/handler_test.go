package settings

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/redhat-appstudio/appconfig/apis/common"
	"github.com/redhat-appstudio/appconfig/internal/config"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: common.ErrorHandler,
	})
	RegisterRoutes(app, NewHandler(cfg))
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestGetConfig(t *testing.T) {
	app := newTestApp(&config.Config{Environment: "development", LogLevel: "info"})

	status, body := get(t, app, "/api/v1/config")
	require.Equal(t, fiber.StatusOK, status)

	var resp ConfigResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "development", resp.Environment)
	assert.Equal(t, "INFO", resp.LogLevel)
	assert.Equal(t, map[string]int{
		"DEBUG":    10,
		"INFO":     20,
		"WARNING":  30,
		"ERROR":    40,
		"CRITICAL": 50,
	}, resp.LogLevels)
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		name               string
		environment        string
		expectedEnv        string
		expectedProduction bool
	}{
		{name: "development", environment: "development", expectedEnv: "development"},
		{name: "production", environment: "prod", expectedEnv: "production", expectedProduction: true},
		{name: "unknown falls back to default", environment: "staging", expectedEnv: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&config.Config{Environment: tt.environment, LogLevel: "INFO"})

			status, body := get(t, app, "/api/v1/config/environment")
			require.Equal(t, fiber.StatusOK, status)

			var resp EnvironmentResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, tt.expectedEnv, resp.Environment)
			assert.Equal(t, tt.expectedProduction, resp.Production)
		})
	}
}

func TestListLogLevelsJSON(t *testing.T) {
	app := newTestApp(&config.Config{Environment: "development", LogLevel: "INFO"})

	status, body := get(t, app, "/api/v1/config/log-levels")
	require.Equal(t, fiber.StatusOK, status)

	var resp LogLevelListResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, []LogLevelEntry{
		{Name: "DEBUG", Severity: 10},
		{Name: "INFO", Severity: 20},
		{Name: "WARNING", Severity: 30},
		{Name: "ERROR", Severity: 40},
		{Name: "CRITICAL", Severity: 50},
	}, resp.Levels)
}

func TestListLogLevelsTOON(t *testing.T) {
	app := newTestApp(&config.Config{Environment: "development", LogLevel: "INFO"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/config/log-levels.toon", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/toon")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	for _, name := range config.LevelNames() {
		assert.Contains(t, string(body), name)
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedEntry  LogLevelEntry
	}{
		{name: "canonical name", path: "WARNING", expectedStatus: fiber.StatusOK, expectedEntry: LogLevelEntry{Name: "WARNING", Severity: 30}},
		{name: "lower case", path: "critical", expectedStatus: fiber.StatusOK, expectedEntry: LogLevelEntry{Name: "CRITICAL", Severity: 50}},
		{name: "alias", path: "warn", expectedStatus: fiber.StatusOK, expectedEntry: LogLevelEntry{Name: "WARNING", Severity: 30}},
		{name: "unknown", path: "TRACE", expectedStatus: fiber.StatusNotFound},
		{name: "non-ascii lookalike", path: "%C4%B1nfo", expectedStatus: fiber.StatusNotFound},
	}

	app := newTestApp(&config.Config{Environment: "development", LogLevel: "INFO"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, "/api/v1/config/log-levels/"+tt.path)
			require.Equal(t, tt.expectedStatus, status)

			if tt.expectedStatus != fiber.StatusOK {
				var errResp common.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &errResp))
				assert.True(t, errResp.Error)
				assert.Contains(t, errResp.Message, "unknown log level")
				return
			}

			var entry LogLevelEntry
			require.NoError(t, json.Unmarshal(body, &entry))
			assert.Equal(t, tt.expectedEntry, entry)
		})
	}
}

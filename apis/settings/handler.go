package settings

import (
	"net/url"

	"github.com/redhat-appstudio/appconfig/internal/config"
	"github.com/redhat-appstudio/appconfig/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/toon-format/toon-go"
)

// Handler serves the severity table and the configured environment.
type Handler struct {
	cfg *config.Config
}

// NewHandler creates a handler reporting the values selected by cfg.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// GetConfig handles GET /api/v1/config
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	levels := make(map[string]int, len(config.LevelNames()))
	for name, sev := range config.SrcLogLevels() {
		levels[name] = int(sev)
	}

	return c.JSON(ConfigResponse{
		Environment: h.cfg.Env().String(),
		LogLevel:    h.cfg.Severity().String(),
		LogLevels:   levels,
	})
}

// GetEnvironment handles GET /api/v1/config/environment
func (h *Handler) GetEnvironment(c *fiber.Ctx) error {
	env := h.cfg.Env()
	return c.JSON(EnvironmentResponse{
		Environment: env.String(),
		Production:  env.IsProduction(),
	})
}

// ListLogLevelsJSON handles GET /api/v1/config/log-levels
func (h *Handler) ListLogLevelsJSON(c *fiber.Ctx) error {
	return c.JSON(levelList())
}

// ListLogLevelsTOON handles GET /api/v1/config/log-levels.toon
func (h *Handler) ListLogLevelsTOON(c *fiber.Ctx) error {
	out, err := toon.Marshal(levelList())
	if err != nil {
		logger.Errorf("Failed to encode log levels as TOON: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to encode log levels")
	}

	c.Set(fiber.HeaderContentType, "text/toon; charset=utf-8")
	return c.Send(out)
}

// GetLogLevel handles GET /api/v1/config/log-levels/:name
// The name is matched case-insensitively and accepts the "warn" and "fatal" aliases.
func (h *Handler) GetLogLevel(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed level name")
	}

	sev, err := config.ParseLevel(name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(LogLevelEntry{Name: sev.String(), Severity: int(sev)})
}

func levelList() LogLevelListResponse {
	names := config.LevelNames()
	entries := make([]LogLevelEntry, 0, len(names))
	for _, name := range names {
		sev, _ := config.LookupLevel(name)
		entries = append(entries, LogLevelEntry{Name: name, Severity: int(sev)})
	}
	return LogLevelListResponse{Levels: entries, Count: len(entries)}
}

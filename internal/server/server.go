package server

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/redhat-appstudio/appconfig/apis/common"
	"github.com/redhat-appstudio/appconfig/internal/config"
	"github.com/redhat-appstudio/appconfig/internal/handlers"
	"github.com/redhat-appstudio/appconfig/internal/version"
	"github.com/redhat-appstudio/appconfig/pkg/logger"
	"github.com/redhat-appstudio/appconfig/pkg/metrics"
	"github.com/redhat-appstudio/appconfig/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server represents the HTTP server instance with all its components.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config

	// storage publishes the configuration snapshot; nil when Redis is disabled
	storage *storage.RedisClient
}

// New initializes the logger, metrics, storage and routes for cfg.
// cfg must already be validated. When Redis storage is enabled but the
// server cannot be reached, New fails.
func New(cfg *config.Config) (*Server, error) {
	if err := logger.InitFromConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "appconfig " + version.GetVersion(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          common.ErrorHandler,
		DisableStartupMessage: cfg.Env().IsProduction(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		m.Observe(cfg)
		logger.Infof("Metrics exposition enabled at %s", cfg.Metrics.Path)
	}

	handlers.SetupRoutes(app, cfg, m)

	var storageClient *storage.RedisClient
	if cfg.Storage.Redis.Enabled {
		var err error
		storageClient, err = storage.NewManager(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis storage: %w", err)
		}
		logger.Infof("Redis storage client initialized - Address: %s", cfg.Storage.Redis.Address)
	}

	return &Server{
		app:     app,
		cfg:     cfg,
		storage: storageClient,
	}, nil
}

// App exposes the Fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start publishes the configuration snapshot (when storage is enabled) and
// then blocks serving HTTP.
func (s *Server) Start() error {
	s.publishSnapshot(context.Background())

	logger.Infof("Listening on :%s (environment: %s, log level: %s)", s.cfg.Port, s.cfg.Env(), s.cfg.Severity())
	return s.app.Listen(":" + s.cfg.Port)
}

// publishSnapshot writes the snapshot once. New already refused to start
// without a reachable Redis; a write that fails after that is logged and
// the server keeps serving.
func (s *Server) publishSnapshot(ctx context.Context) {
	if s.storage == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.storage.PublishSnapshot(ctx, storage.BuildSnapshot(s.cfg, time.Now())); err != nil {
		logger.Errorf("Failed to publish configuration snapshot: %v", err)
		return
	}
	logger.Infof("Configuration snapshot published to %s", s.storage.SnapshotKey())
}

// Shutdown stops the HTTP server and releases the Redis connection.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.app.ShutdownWithContext(ctx)
	if s.storage != nil {
		if cerr := s.storage.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	_ = logger.Sync()
	return err
}

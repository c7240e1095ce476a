// Package api exposes the ingestion pipeline over HTTP as a small JSON API,
// mirroring the upload-and-summarize flow of the dashboard frontends that
// consume it.
package api

import (
	"fmt"

	"pesalens/mpesa-csv/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Server wraps the fiber application and its configuration.
type Server struct {
	app *fiber.App
	cfg *config.Config
	log *logrus.Logger
}

// New builds a Server with its routes registered. The returned server is not
// yet listening; call Listen, or use App with fiber's test helper.
func New(cfg *config.Config, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}

	app := fiber.New(fiber.Config{
		AppName:   "mpesa-csv",
		BodyLimit: cfg.Server.BodyLimitMB * 1024 * 1024,
	})

	s := &Server{
		app: app,
		cfg: cfg,
		log: logger,
	}

	app.Get("/healthz", s.handleHealth)
	app.Post("/api/v1/parse", s.handleParse)

	return s
}

// App returns the underlying fiber application, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the configured port.
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.log.WithField("addr", addr).Info("Starting HTTP server")
	return s.app.Listen(addr)
}

// internal/server/server.go
package server

import (
	"context"
	"net/http"
	_ "net/http/pprof"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"german-tagger/internal/common/config"
	"german-tagger/internal/common/logger"
	"german-tagger/internal/tagging"
)

// Server wires the HTTP surface around the tagging service.
type Server struct {
	echo    *echo.Echo
	cfg     config.ServerConfig
	service *tagging.Service
	logger  logger.Logger
}

func New(cfg config.ServerConfig, service *tagging.Service, log logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		cfg:     cfg,
		service: service,
		logger:  log.With(map[string]interface{}{"component": "server"}),
	}

	e.Use(s.requestIDMiddleware())

	e.GET("/health", s.handleHealth)
	e.POST("/tag", s.handleTag)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	// pprof registers itself on the default mux
	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))

	return s
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{
		"addr": s.cfg.Addr(),
	})

	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		ReadTimeout:  config.GetDuration(s.cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(s.cfg.WriteTimeout),
	}
	return s.echo.StartServer(srv)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

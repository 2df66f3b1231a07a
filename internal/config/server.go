package config

import (
	"fmt"
	"os"

	poseHandler "PoseGolang/internal/api/pose/handler"
	poseService "PoseGolang/internal/api/pose/service"
	"PoseGolang/internal/middleware"
	"PoseGolang/pkg/blazepose"
	"PoseGolang/pkg/imaging"
	"PoseGolang/pkg/metrics"
	"PoseGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler
	blazepose  blazepose.IBlazepose
	imaging    imaging.IImaging
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.blazepose == nil {
		return nil, fmt.Errorf("pose landmarker manager is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithBlazepose(manager blazepose.IBlazepose) ServerOption {
	return func(s *Server) error {
		s.blazepose = manager
		return nil
	}
}

func WithImaging() ServerOption {
	return func(s *Server) error {
		s.imaging = imaging.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Pose detection domain
	poseServices := poseService.NewPoseService(s.log, s.blazepose, s.imaging)
	poseHandlers := poseHandler.New(s.log, s.validator, s.middleware, poseServices, s.utils)

	s.setupHealthCheck(poseHandlers)
	s.setupMetrics()
	s.handlers = append(s.handlers, poseHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck(h *poseHandler.PoseHandler) {
	s.engine.Get("/health", h.Health)
}

func (s *Server) setupMetrics() {
	s.engine.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}),
	))
}

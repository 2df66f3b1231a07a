package poseHandler

import (
	poseService "PoseGolang/internal/api/pose/service"
	"PoseGolang/internal/middleware"
	"PoseGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type PoseHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	poseService poseService.IPoseService
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ps poseService.IPoseService,
	utils utils.IUtils,
) *PoseHandler {
	return &PoseHandler{
		log:         log,
		validator:   validator,
		middleware:  middleware,
		poseService: ps,
		utils:       utils,
	}
}

func (h *PoseHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	poseGroup := srv.Group("/pose")
	poseGroup.Get("/health", h.Health)
	poseGroup.Use("/ws", wsMiddleware)
	poseGroup.Get("/ws", websocket.New(h.handlePoseWebSocket))
	poseGroup.Post("/detect", h.middleware.NewRateLimiter, h.middleware.NewAPIKeyMiddleware, h.DetectPose)
}

package handlerUtil

import (
	"errors"

	"PoseGolang/internal/api/pose"
	"PoseGolang/pkg/log"
	"PoseGolang/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle converts a domain error into the transport response. Only the five
// taxonomy members get a distinguishing code; anything else is coerced into a
// processing error with a short message so internal detail never leaks.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	if errors.Is(err, pose.ErrInvalidImage) {
		h.logger.WithFields(fields).Warn("Image payload could not be decoded")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "INVALID_IMAGE",
		})
	}

	if errors.Is(err, pose.ErrNoPoseDetected) {
		h.logger.WithFields(fields).Warn("No pose detected")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "NO_POSE_DETECTED",
		})
	}

	if errors.Is(err, pose.ErrModelUnavailable) {
		h.logger.WithFields(fields).Error("Pose model unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "MODEL_UNAVAILABLE",
		})
	}

	if errors.Is(err, pose.ErrUnauthorized) {
		h.logger.WithFields(fields).Warn("Unauthorized request")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "UNAUTHORIZED",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(fields).Error("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "PROCESSING_ERROR",
		})
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":    "An unexpected error occurred",
		"code":     "PROCESSING_ERROR",
		"trace_id": traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}

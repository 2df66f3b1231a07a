package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	APISecretEnv = "API_SECRET"

	bearerPrefix = "Bearer "
)

// NewAPIKeyMiddleware gates detection routes behind the configured secret.
// An empty API_SECRET is open mode: the deployment accepts unauthenticated
// access and every request passes.
func (m *middleware) NewAPIKeyMiddleware(ctx *fiber.Ctx) error {
	if authorized(os.Getenv(APISecretEnv), ctx.Get(fiber.HeaderAuthorization)) {
		return ctx.Next()
	}

	m.log.WithFields(logrus.Fields{
		"path":      ctx.Path(),
		"client_ip": ctx.IP(),
	}).Warn("Rejected request with missing or invalid API key")

	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized, API key missing or invalid",
		"code":  "UNAUTHORIZED",
	})
}

// authorized strips the bearer scheme and compares the remainder against the
// secret with plain equality.
// TODO: harden with subtle.ConstantTimeCompare.
func authorized(secret, header string) bool {
	if secret == "" {
		return true
	}
	if header == "" {
		return false
	}
	return strings.TrimPrefix(header, bearerPrefix) == secret
}

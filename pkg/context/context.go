package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const RequestIDKey = "request_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx carries the request ID from the fiber locals into a plain
// context for the service layer.
func FromFiberCtx(ctx *fiber.Ctx) context.Context {
	requestID, ok := ctx.Locals("X-Request-ID").(string)
	if !ok {
		requestID = ""
	}
	return WithRequestID(context.Background(), requestID)
}

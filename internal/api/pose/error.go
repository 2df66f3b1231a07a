package pose

import (
	"PoseGolang/pkg/response"
	"net/http"
)

var (
	ErrUnauthorized     = response.NewError(http.StatusUnauthorized, "invalid API key")
	ErrInvalidImage     = response.NewError(http.StatusBadRequest, "image could not be decoded")
	ErrNoPoseDetected   = response.NewError(http.StatusUnprocessableEntity, "no pose detected in image, ensure full body is visible with good lighting")
	ErrModelUnavailable = response.NewError(http.StatusServiceUnavailable, "pose model is unavailable")
	ErrProcessing       = response.NewError(http.StatusInternalServerError, "processing error")
)

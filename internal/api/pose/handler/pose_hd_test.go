package poseHandler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"PoseGolang/internal/api/pose"
	"PoseGolang/internal/entity"
	"PoseGolang/internal/middleware"
	"PoseGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type fakePoseService struct {
	result *pose.DetectResponse
	err    error
	loaded bool
}

func (f *fakePoseService) DetectPose(ctx context.Context, req pose.DetectRequest) (*pose.DetectResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakePoseService) ProcessFrame(frame []byte) (*pose.DetectResponse, error) {
	return f.DetectPose(context.Background(), pose.DetectRequest{})
}

func (f *fakePoseService) Health() pose.HealthResponse {
	return pose.HealthResponse{Status: "ok", ModelLoaded: f.loaded, Version: pose.Version}
}

func fullResult() *pose.DetectResponse {
	landmarks := make([]entity.Landmark, 0, 33)
	for i := 0; i < 33; i++ {
		landmarks = append(landmarks, entity.Landmark{
			X: 0.5, Y: 0.5, Z: -0.1, Visibility: 0.95, Name: entity.LandmarkName(i),
		})
	}
	return &pose.DetectResponse{
		Landmarks:        landmarks,
		ImageWidth:       512,
		ImageHeight:      384,
		Confidence:       0.95,
		Model:            pose.DefaultModel,
		ProcessingTimeMs: 12,
	}
}

func newTestApp(svc *fakePoseService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	h := New(logger, validator.New(), mw, svc, utils.New())
	h.Start(app.Group("/v1"))
	app.Get("/health", h.Health)

	return app
}

func detectRequest(t *testing.T, body map[string]string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/pose/detect", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("failed to unmarshal response %s: %v", body, err)
	}
}

func validImage() string {
	return base64.StdEncoding.EncodeToString([]byte("fake-encoded-image"))
}

func TestDetectPose_Success(t *testing.T) {
	app := newTestApp(&fakePoseService{result: fullResult()})

	resp, err := app.Test(detectRequest(t, map[string]string{
		"image":        validImage(),
		"returnFormat": "normalized",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}

	var result pose.DetectResponse
	decodeBody(t, resp, &result)

	if len(result.Landmarks) != 33 {
		t.Errorf("landmarks = %d, expected 33", len(result.Landmarks))
	}
	if result.Landmarks[0].Name != "nose" {
		t.Errorf("first landmark = %q, expected nose", result.Landmarks[0].Name)
	}
	if result.ImageWidth != 512 || result.ImageHeight != 384 {
		t.Errorf("dimensions = %dx%d, expected 512x384", result.ImageWidth, result.ImageHeight)
	}
	if result.Model != pose.DefaultModel {
		t.Errorf("model = %q, expected %q", result.Model, pose.DefaultModel)
	}
}

func TestDetectPose_ValidationFailures(t *testing.T) {
	app := newTestApp(&fakePoseService{result: fullResult()})

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing image", map[string]string{"returnFormat": "normalized"}},
		{"bad return format", map[string]string{"image": validImage(), "returnFormat": "polar"}},
		{"bad capture type", map[string]string{"image": validImage(), "captureType": "top"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(detectRequest(t, tt.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, expected 400", resp.StatusCode)
			}

			var body map[string]string
			decodeBody(t, resp, &body)
			if body["code"] != "VALIDATION_ERROR" {
				t.Errorf("code = %q, expected VALIDATION_ERROR", body["code"])
			}
		})
	}
}

func TestDetectPose_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"invalid image", pose.ErrInvalidImage, http.StatusBadRequest, "INVALID_IMAGE"},
		{"no pose detected", pose.ErrNoPoseDetected, http.StatusUnprocessableEntity, "NO_POSE_DETECTED"},
		{"model unavailable", pose.ErrModelUnavailable, http.StatusServiceUnavailable, "MODEL_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakePoseService{err: tt.err})

			resp, err := app.Test(detectRequest(t, map[string]string{"image": validImage()}))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %d, expected %d", resp.StatusCode, tt.expectedStatus)
			}

			var body map[string]string
			decodeBody(t, resp, &body)
			if body["code"] != tt.expectedCode {
				t.Errorf("code = %q, expected %q", body["code"], tt.expectedCode)
			}
		})
	}
}

func TestDetectPose_APIKeyGate(t *testing.T) {
	t.Setenv(middleware.APISecretEnv, "supersecret")

	app := newTestApp(&fakePoseService{result: fullResult()})

	req := detectRequest(t, map[string]string{"image": validImage()})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status without credential = %d, expected 401", resp.StatusCode)
	}

	req = detectRequest(t, map[string]string{"image": validImage()})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer supersecret")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status with credential = %d, expected 200", resp.StatusCode)
	}

	req = detectRequest(t, map[string]string{"image": validImage()})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer wrong")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status with wrong credential = %d, expected 401", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(&fakePoseService{loaded: true})

	for _, path := range []string{"/health", "/v1/pose/health"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status = %d, expected 200", path, resp.StatusCode)
		}

		var health pose.HealthResponse
		decodeBody(t, resp, &health)
		if health.Status != "ok" || !health.ModelLoaded || health.Version != pose.Version {
			t.Errorf("%s health = %+v", path, health)
		}
	}
}

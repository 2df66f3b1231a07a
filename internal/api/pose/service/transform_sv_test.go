package poseService

import (
	"fmt"
	"math"
	"testing"

	"PoseGolang/internal/entity"
	"PoseGolang/pkg/blazepose"
)

func rawPose(n int) []blazepose.RawLandmark {
	landmarks := make([]blazepose.RawLandmark, 0, n)
	for i := 0; i < n; i++ {
		visibility := 0.5 + float64(i%5)*0.1
		landmarks = append(landmarks, blazepose.RawLandmark{
			X:          float64(i) / float64(n),
			Y:          float64(n-i) / float64(n),
			Z:          -0.05 * float64(i),
			Visibility: &visibility,
			Presence:   0.99,
		})
	}
	return landmarks
}

func TestTransformLandmarks_NormalizedPassesThrough(t *testing.T) {
	raw := rawPose(33)
	landmarks, _ := transformLandmarks(raw, 512, 384, entity.ReturnFormatNormalized)

	if len(landmarks) != 33 {
		t.Fatalf("landmark count = %d, expected 33", len(landmarks))
	}

	for i, lm := range landmarks {
		if math.Abs(lm.X-raw[i].X) > 1e-6 || math.Abs(lm.Y-raw[i].Y) > 1e-6 {
			t.Errorf("landmark %d: (%f, %f) not passed through from (%f, %f)",
				i, lm.X, lm.Y, raw[i].X, raw[i].Y)
		}
		if lm.Name != entity.LandmarkName(i) {
			t.Errorf("landmark %d name = %q, expected %q", i, lm.Name, entity.LandmarkName(i))
		}
	}
}

func TestTransformLandmarks_PixelScalesXYOnly(t *testing.T) {
	raw := rawPose(33)
	width, height := 512, 384

	normalized, _ := transformLandmarks(raw, width, height, entity.ReturnFormatNormalized)
	pixel, _ := transformLandmarks(raw, width, height, entity.ReturnFormatPixel)

	for i := range pixel {
		expectedX := roundTo(raw[i].X*float64(width), coordinatePrecision)
		expectedY := roundTo(raw[i].Y*float64(height), coordinatePrecision)

		if math.Abs(pixel[i].X-expectedX) > 1e-6 {
			t.Errorf("landmark %d: pixel x = %f, expected %f", i, pixel[i].X, expectedX)
		}
		if math.Abs(pixel[i].Y-expectedY) > 1e-6 {
			t.Errorf("landmark %d: pixel y = %f, expected %f", i, pixel[i].Y, expectedY)
		}
		if math.Abs(pixel[i].Z-normalized[i].Z) > 1e-6 {
			t.Errorf("landmark %d: z changed across spaces: %f vs %f", i, pixel[i].Z, normalized[i].Z)
		}
	}
}

func TestTransformLandmarks_ConfidenceIsMeanVisibility(t *testing.T) {
	raw := rawPose(33)
	_, confidence := transformLandmarks(raw, 512, 384, entity.ReturnFormatNormalized)

	total := 0.0
	for _, lm := range raw {
		total += *lm.Visibility
	}
	expected := total / float64(len(raw))

	if math.Abs(confidence-expected) > 1e-4 {
		t.Errorf("confidence = %f, expected mean visibility %f", confidence, expected)
	}
}

func TestTransformLandmarks_VisibilityFallsBackToPresence(t *testing.T) {
	raw := []blazepose.RawLandmark{
		{X: 0.5, Y: 0.5, Z: 0, Presence: 0.8},
		{X: 0.1, Y: 0.2, Z: 0, Presence: 0.6},
	}

	landmarks, confidence := transformLandmarks(raw, 100, 100, entity.ReturnFormatNormalized)

	if landmarks[0].Visibility != 0.8 || landmarks[1].Visibility != 0.6 {
		t.Errorf("visibility = (%f, %f), expected presence fallback (0.8, 0.6)",
			landmarks[0].Visibility, landmarks[1].Visibility)
	}
	if math.Abs(confidence-0.7) > 1e-4 {
		t.Errorf("confidence = %f, expected 0.7", confidence)
	}
}

func TestTransformLandmarks_EmptyInputYieldsZeroConfidence(t *testing.T) {
	landmarks, confidence := transformLandmarks(nil, 512, 384, entity.ReturnFormatNormalized)

	if len(landmarks) != 0 {
		t.Errorf("expected no landmarks, got %d", len(landmarks))
	}
	if confidence != 0 {
		t.Errorf("confidence = %f, expected 0", confidence)
	}
}

func TestTransformLandmarks_SynthesizedNamesBeyondCatalogue(t *testing.T) {
	raw := rawPose(35)
	landmarks, _ := transformLandmarks(raw, 512, 384, entity.ReturnFormatNormalized)

	for i := 33; i < 35; i++ {
		expected := fmt.Sprintf("landmark_%d", i)
		if landmarks[i].Name != expected {
			t.Errorf("landmark %d name = %q, expected %q", i, landmarks[i].Name, expected)
		}
	}
}

func TestTransformLandmarks_Rounding(t *testing.T) {
	visibility := 0.123456789
	raw := []blazepose.RawLandmark{
		{X: 0.1234567891, Y: 0.9876543219, Z: -0.0001234567, Visibility: &visibility, Presence: 1},
	}

	landmarks, confidence := transformLandmarks(raw, 100, 100, entity.ReturnFormatNormalized)

	if landmarks[0].X != 0.123457 {
		t.Errorf("x = %v, expected 6-digit rounding 0.123457", landmarks[0].X)
	}
	if landmarks[0].Y != 0.987654 {
		t.Errorf("y = %v, expected 6-digit rounding 0.987654", landmarks[0].Y)
	}
	if landmarks[0].Z != -0.000123 {
		t.Errorf("z = %v, expected 6-digit rounding -0.000123", landmarks[0].Z)
	}
	if landmarks[0].Visibility != 0.1235 {
		t.Errorf("visibility = %v, expected 4-digit rounding 0.1235", landmarks[0].Visibility)
	}
	if confidence != 0.1235 {
		t.Errorf("confidence = %v, expected 4-digit rounding 0.1235", confidence)
	}
}

package poseService

import (
	"math"

	"PoseGolang/internal/entity"
	"PoseGolang/pkg/blazepose"
)

const (
	coordinatePrecision = 6
	visibilityPrecision = 4
)

// transformLandmarks maps raw engine output into the requested coordinate
// space and computes the aggregate confidence. Pixel space scales x by width
// and y by height; z stays engine-native in both spaces since depth has no
// pixel scale. Visibility falls back to the presence score when the model
// head does not emit an explicit visibility value.
func transformLandmarks(raw []blazepose.RawLandmark, width, height int, format entity.ReturnFormat) ([]entity.Landmark, float64) {
	landmarks := make([]entity.Landmark, 0, len(raw))
	totalVisibility := 0.0

	for i, lm := range raw {
		x, y := lm.X, lm.Y
		if format == entity.ReturnFormatPixel {
			x *= float64(width)
			y *= float64(height)
		}

		visibility := lm.Presence
		if lm.Visibility != nil {
			visibility = *lm.Visibility
		}
		totalVisibility += visibility

		landmarks = append(landmarks, entity.Landmark{
			X:          roundTo(x, coordinatePrecision),
			Y:          roundTo(y, coordinatePrecision),
			Z:          roundTo(lm.Z, coordinatePrecision),
			Visibility: roundTo(visibility, visibilityPrecision),
			Name:       entity.LandmarkName(i),
		})
	}

	if len(raw) == 0 {
		return landmarks, 0
	}

	return landmarks, roundTo(totalVisibility/float64(len(raw)), visibilityPrecision)
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

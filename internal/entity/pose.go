package entity

import "fmt"

// Landmark is a single anatomical keypoint of a detected pose. X and Y are
// either normalized ([0,1]) or pixel coordinates depending on the requested
// return format; Z is always engine-native depth.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
	Name       string  `json:"name"`
}

type ReturnFormat string

const (
	ReturnFormatNormalized ReturnFormat = "normalized"
	ReturnFormatPixel      ReturnFormat = "pixel"
)

type CaptureType string

const (
	CaptureTypeFront CaptureType = "front"
	CaptureTypeSide  CaptureType = "side"
	CaptureTypeBack  CaptureType = "back"
)

// LandmarkNames is the BlazePose topology: 33 points, index-stable. Engine
// output index i always maps to position i.
var LandmarkNames = [33]string{
	"nose", "left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear", "mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder", "left_elbow", "right_elbow",
	"left_wrist", "right_wrist", "left_pinky", "right_pinky",
	"left_index", "right_index", "left_thumb", "right_thumb",
	"left_hip", "right_hip", "left_knee", "right_knee",
	"left_ankle", "right_ankle", "left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

// LandmarkName returns the catalogue name for index i, or a synthesized
// landmark_<i> for indices beyond the catalogue.
func LandmarkName(i int) string {
	if i >= 0 && i < len(LandmarkNames) {
		return LandmarkNames[i]
	}
	return fmt.Sprintf("landmark_%d", i)
}

package blazepose

import "gocv.io/x/gocv"

// RawLandmark is one keypoint exactly as the engine emits it: x/y/z normalized
// to the input image, visibility only present when the model head provides it,
// presence always present. Consumers fall back from Visibility to Presence.
type RawLandmark struct {
	X          float64
	Y          float64
	Z          float64
	Visibility *float64
	Presence   float64
}

// Pose is a single detected body: the full ordered landmark set plus the
// engine's pose score.
type Pose struct {
	Score     float64
	Landmarks []RawLandmark
}

// ILandmarker runs single-image pose inference. An empty result slice means
// the engine found no pose; that is not an error.
type ILandmarker interface {
	DetectPose(img gocv.Mat) ([]Pose, error)
}

// IBlazepose owns the process-lifetime landmarker handle.
type IBlazepose interface {
	Acquire() (ILandmarker, error)
	Loaded() bool
}

package blazepose

import (
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	"gocv.io/x/gocv"
)

const (
	inputSize         = 256
	landmarkCount     = 33
	valuesPerLandmark = 5

	// Fixed policy parameters: single-pose mode, moderate confidence gates,
	// no segmentation output.
	minPoseDetectionConfidence = 0.5
	minPosePresenceConfidence  = 0.5
	minTrackingConfidence      = 0.5

	layerLandmarks = "Identity"
	layerPoseFlag  = "Identity_1"
)

// Landmarker wraps the BlazePose full-body ONNX graph. gocv nets keep
// internal forward-pass state, so inference is serialized by a mutex.
type Landmarker struct {
	net gocv.Net
	mu  sync.Mutex
}

func newLandmarker(modelPath string) (*Landmarker, error) {
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", modelPath)
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load pose network from %s", modelPath)
	}

	if err := net.SetPreferableBackend(gocv.NetBackendDefault); err != nil {
		return nil, fmt.Errorf("failed to set network backend: %w", err)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetCPU); err != nil {
		return nil, fmt.Errorf("failed to set network target: %w", err)
	}

	return &Landmarker{net: net}, nil
}

// DetectPose runs one inference pass and returns at most one pose. The frame
// is letterbox-free resized to the network input inside BlobFromImage; all
// landmark coordinates come back normalized to the source frame.
func (l *Landmarker) DetectPose(img gocv.Mat) ([]Pose, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img.Empty() {
		return nil, fmt.Errorf("input frame is empty")
	}

	blob := gocv.BlobFromImage(img, 1.0/255.0, image.Pt(inputSize, inputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	l.net.SetInput(blob, "")
	outs := l.net.ForwardLayers([]string{layerLandmarks, layerPoseFlag})
	defer func() {
		for i := range outs {
			outs[i].Close()
		}
	}()

	if len(outs) < 2 {
		return nil, fmt.Errorf("unexpected network output count: %d", len(outs))
	}

	score := float64(outs[1].GetFloatAt(0, 0))
	if score < minPoseDetectionConfidence {
		return nil, nil
	}

	raw := outs[0]
	count := raw.Total() / valuesPerLandmark
	landmarks := make([]RawLandmark, 0, count)
	for i := 0; i < count; i++ {
		base := i * valuesPerLandmark
		visibility := sigmoid(float64(raw.GetFloatAt(0, base+3)))
		landmarks = append(landmarks, RawLandmark{
			X:          float64(raw.GetFloatAt(0, base)) / inputSize,
			Y:          float64(raw.GetFloatAt(0, base+1)) / inputSize,
			Z:          float64(raw.GetFloatAt(0, base+2)) / inputSize,
			Visibility: &visibility,
			Presence:   sigmoid(float64(raw.GetFloatAt(0, base+4))),
		})
	}

	return []Pose{{Score: score, Landmarks: landmarks}}, nil
}

func (l *Landmarker) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.net.Close()
}

func sigmoid(v float64) float64 {
	return 1.0 / (1.0 + math.Exp(-v))
}

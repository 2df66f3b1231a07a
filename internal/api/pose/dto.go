package pose

import "PoseGolang/internal/entity"

const (
	Version      = "1.0.0"
	DefaultModel = "blazepose_full"
)

type DetectRequest struct {
	Image        string `json:"image" form:"image" validate:"required"`
	CaptureType  string `json:"captureType" form:"captureType" validate:"omitempty,oneof=front side back"`
	Model        string `json:"model" form:"model"`
	ReturnFormat string `json:"returnFormat" form:"returnFormat" validate:"omitempty,oneof=normalized pixel"`
}

// ApplyDefaults fills the advisory fields the client may omit. CaptureType and
// Model never alter detection; they are metadata and echo respectively.
func (r *DetectRequest) ApplyDefaults() {
	if r.CaptureType == "" {
		r.CaptureType = string(entity.CaptureTypeFront)
	}
	if r.Model == "" {
		r.Model = DefaultModel
	}
	if r.ReturnFormat == "" {
		r.ReturnFormat = string(entity.ReturnFormatNormalized)
	}
}

type DetectResponse struct {
	Landmarks        []entity.Landmark `json:"landmarks"`
	ImageWidth       int               `json:"imageWidth"`
	ImageHeight      int               `json:"imageHeight"`
	Confidence       float64           `json:"confidence"`
	Model            string            `json:"model"`
	ProcessingTimeMs int64             `json:"processingTimeMs"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Version     string `json:"version"`
}

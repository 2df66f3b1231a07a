// Package imaging decodes encoded image payloads into frames the pose engine
// can consume.
package imaging

import (
	"errors"

	"gocv.io/x/gocv"
)

var ErrUndecodable = errors.New("payload is not a decodable image")

type IImaging interface {
	Decode(payload []byte) (gocv.Mat, int, int, error)
}

type imaging struct{}

func New() IImaging {
	return &imaging{}
}

// Decode turns encoded image bytes (JPEG, PNG, ...) into a 3-channel BGR
// frame at the image's native resolution. IMReadColor drops alpha and expands
// grayscale, so the engine always sees three channels. The caller owns the
// returned Mat and must Close it. No resizing happens here; scaling to the
// network input is the engine's concern.
func (i *imaging) Decode(payload []byte) (gocv.Mat, int, int, error) {
	mat, err := gocv.IMDecode(payload, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, 0, 0, ErrUndecodable
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, 0, 0, ErrUndecodable
	}
	return mat, mat.Cols(), mat.Rows(), nil
}

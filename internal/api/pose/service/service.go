package poseService

import (
	"PoseGolang/internal/api/pose"
	"PoseGolang/pkg/blazepose"
	"PoseGolang/pkg/imaging"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPoseService interface {
	DetectPose(ctx context.Context, req pose.DetectRequest) (*pose.DetectResponse, error)
	ProcessFrame(frame []byte) (*pose.DetectResponse, error)
	Health() pose.HealthResponse
}

type poseService struct {
	log       *logrus.Logger
	blazepose blazepose.IBlazepose
	imaging   imaging.IImaging
}

func NewPoseService(
	log *logrus.Logger,
	bp blazepose.IBlazepose,
	img imaging.IImaging,
) IPoseService {
	return &poseService{
		log:       log,
		blazepose: bp,
		imaging:   img,
	}
}

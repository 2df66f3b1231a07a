package poseService

import (
	"encoding/base64"
	"time"

	"PoseGolang/internal/api/pose"
	"PoseGolang/internal/entity"
	contextPkg "PoseGolang/pkg/context"
	"PoseGolang/pkg/log"
	"PoseGolang/pkg/metrics"

	"golang.org/x/net/context"
)

func (s *poseService) DetectPose(ctx context.Context, req pose.DetectRequest) (*pose.DetectResponse, error) {
	start := time.Now()
	req.ApplyDefaults()

	payload, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		metrics.RecordDetection(metrics.OutcomeInvalidImage, time.Since(start))
		return nil, pose.ErrInvalidImage
	}

	result, err := s.detect(payload, entity.ReturnFormat(req.ReturnFormat), req.Model, start)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"request_id":   contextPkg.GetRequestID(ctx),
		"landmarks":    len(result.Landmarks),
		"confidence":   result.Confidence,
		"time_ms":      result.ProcessingTimeMs,
		"capture_type": req.CaptureType,
	}).Info("Pose detected")

	return result, nil
}

// ProcessFrame runs the pipeline on a raw (not base64) image frame with the
// default coordinate space. Each frame is independent; nothing carries over
// between calls.
func (s *poseService) ProcessFrame(frame []byte) (*pose.DetectResponse, error) {
	return s.detect(frame, entity.ReturnFormatNormalized, pose.DefaultModel, time.Now())
}

func (s *poseService) Health() pose.HealthResponse {
	return pose.HealthResponse{
		Status:      "ok",
		ModelLoaded: s.blazepose.Loaded(),
		Version:     pose.Version,
	}
}

// detect is the orchestration path shared by the HTTP and websocket surfaces:
// ingest, acquire the landmarker, run single-image inference, transform the
// primary pose. Every failure leaves through one of the tagged pose errors.
func (s *poseService) detect(payload []byte, format entity.ReturnFormat, model string, start time.Time) (*pose.DetectResponse, error) {
	frame, width, height, err := s.imaging.Decode(payload)
	if err != nil {
		metrics.RecordDetection(metrics.OutcomeInvalidImage, time.Since(start))
		return nil, pose.ErrInvalidImage
	}
	defer frame.Close()

	landmarker, err := s.blazepose.Acquire()
	if err != nil {
		metrics.RecordDetection(metrics.OutcomeModelUnavailable, time.Since(start))
		return nil, pose.ErrModelUnavailable
	}

	poses, err := landmarker.DetectPose(frame)
	if err != nil {
		s.log.Errorf("Pose inference failed: %v", err)
		metrics.RecordDetection(metrics.OutcomeProcessingError, time.Since(start))
		return nil, pose.ErrProcessing
	}

	if len(poses) == 0 {
		metrics.RecordDetection(metrics.OutcomeNoPose, time.Since(start))
		return nil, pose.ErrNoPoseDetected
	}

	// Only the primary pose is used, in engine output order, even when the
	// engine reports more than one candidate.
	landmarks, confidence := transformLandmarks(poses[0].Landmarks, width, height, format)

	result := &pose.DetectResponse{
		Landmarks:        landmarks,
		ImageWidth:       width,
		ImageHeight:      height,
		Confidence:       confidence,
		Model:            model,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}

	metrics.RecordDetection(metrics.OutcomeDetected, time.Since(start))
	return result, nil
}

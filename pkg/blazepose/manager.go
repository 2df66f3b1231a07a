package blazepose

import (
	"sync"
	"sync/atomic"

	"PoseGolang/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// Manager owns the single process-lifetime Landmarker. Construction is lazy
// and at-most-once: concurrent first requests serialize on the mutex and only
// the first one pays for the asset download and network load. A failed load is
// not cached, so a later request retries the initialization.
type Manager struct {
	mu         sync.Mutex
	landmarker ILandmarker
	loaded     atomic.Bool
	loader     func() (ILandmarker, error)
	log        *logrus.Logger
}

func NewManager(log *logrus.Logger, modelPath, modelURL string) *Manager {
	return &Manager{
		log: log,
		loader: func() (ILandmarker, error) {
			if err := ensureModelAsset(log, modelPath, modelURL); err != nil {
				return nil, err
			}
			return newLandmarker(modelPath)
		},
	}
}

func (m *Manager) Acquire() (ILandmarker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.landmarker != nil {
		return m.landmarker, nil
	}

	m.log.Info("Loading pose landmarker model...")
	landmarker, err := m.loader()
	if err != nil {
		m.log.Errorf("Failed to load pose landmarker: %v", err)
		return nil, err
	}

	m.landmarker = landmarker
	m.loaded.Store(true)
	metrics.RecordModelLoad()
	m.log.Info("Pose landmarker loaded successfully")

	return m.landmarker, nil
}

func (m *Manager) Loaded() bool {
	return m.loaded.Load()
}

// WarmUp acquires the landmarker in the background so the one-time model cost
// is charged to startup instead of the first request.
func (m *Manager) WarmUp() {
	go func() {
		if _, err := m.Acquire(); err != nil {
			m.log.Warnf("Model warm-up failed, will retry on demand: %v", err)
		}
	}()
}

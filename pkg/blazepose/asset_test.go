package blazepose

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestEnsureModelAsset_DownloadsOnceAndPersists(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("model-bytes"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "models", "pose_landmarker_full.onnx")

	if err := ensureModelAsset(quietLogger(), path, srv.URL); err != nil {
		t.Fatalf("ensureModelAsset failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("asset not persisted: %v", err)
	}
	if string(content) != "model-bytes" {
		t.Errorf("asset content = %q", content)
	}

	if err := ensureModelAsset(quietLogger(), path, srv.URL); err != nil {
		t.Fatalf("second ensureModelAsset failed: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("asset fetched %d times, expected 1", got)
	}
}

func TestEnsureModelAsset_MissingAssetWithoutURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.onnx")

	if err := ensureModelAsset(quietLogger(), path, ""); err == nil {
		t.Fatal("expected error when asset is missing and no URL is configured")
	}
}

func TestEnsureModelAsset_BadStatusLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "pose.onnx")

	if err := ensureModelAsset(quietLogger(), path, srv.URL); err == nil {
		t.Fatal("expected error on non-200 download")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("a failed download must not leave an asset behind")
	}
}

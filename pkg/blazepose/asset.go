package blazepose

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

var assetClient = &http.Client{
	Timeout: 5 * time.Minute,
}

// ensureModelAsset makes the model file available at path, downloading it from
// url on first use. The download goes through a temp file and a rename so a
// partial fetch never leaves a corrupt asset behind.
func ensureModelAsset(log *logrus.Logger, path, url string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat model asset: %w", err)
	}

	if url == "" {
		return fmt.Errorf("model asset %s not found and no model URL configured", path)
	}

	log.Infof("Model asset not found, downloading from %s", url)

	resp, err := assetClient.Get(url)
	if err != nil {
		return fmt.Errorf("model asset download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model asset download returned status: %d", resp.StatusCode)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}

	tmp := path + ".download"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write model file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close model file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move model file into place: %w", err)
	}

	log.Info("Model asset downloaded successfully")
	return nil
}

package view

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxviazov/portfolio-service/internal/model"
)

// Export writes p as a static site: dir/index.html plus the embedded assets
// under dir/static. Asset links are relative so the site works from disk or
// a subpath. Existing files are overwritten; nothing is deleted.
func Export(dir string, p model.Page) error {
	assetDir := strings.TrimPrefix(StaticPrefix, "/")
	p.Meta.AssetBase = assetDir

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	staticDir := filepath.Join(dir, assetDir)
	return fs.WalkDir(Static(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(staticDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(Static(), path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("copy static asset %s: %w", path, err)
		}
		return nil
	})
}

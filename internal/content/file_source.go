package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// documentFiles are tried in order inside a FileSource directory.
var documentFiles = []string{"data.json", "data.yaml", "data.yml"}

// FileSource reads the document from a local directory. It backs file:// BASE_API
// values and is what Watch observes during local development.
type FileSource struct {
	dir     string
	maxBody int64
	log     zerolog.Logger
}

func NewFileSource(dir string, opts SourceOptions, logger zerolog.Logger) *FileSource {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	l := logger.With().Str("module", "content").Str("component", "file_source").Logger()
	return &FileSource{dir: dir, maxBody: maxBody, log: l}
}

// Dir is the directory holding the document file.
func (s *FileSource) Dir() string { return s.dir }

func (s *FileSource) Fetch(ctx context.Context) (model.Document, error) {
	if err := ctx.Err(); err != nil {
		return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	path, err := s.locate()
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if info.Size() > s.maxBody {
		return model.Document{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrFetchFailed, path, s.maxBody)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if isYAML(path) {
		if body, err = yamlToJSON(body); err != nil {
			return model.Document{}, fmt.Errorf("%w: %s: %w", ErrFetchFailed, path, err)
		}
	}

	doc, err := Decode(body)
	if err != nil {
		return model.Document{}, err
	}
	if len(doc.Skipped) > 0 {
		s.log.Warn().Strs("fields", doc.Skipped).Str("path", path).Msg("content fields skipped, shape mismatch")
	}
	return doc, nil
}

func (s *FileSource) locate() (string, error) {
	for _, name := range documentFiles {
		p := filepath.Join(s.dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("no %s in %s: %w", strings.Join(documentFiles, ", "), s.dir, os.ErrNotExist)
}

func isDocumentFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range documentFiles {
		if base == name {
			return true
		}
	}
	return false
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// yamlToJSON lets YAML documents go through the same Decode path as JSON ones.
func yamlToJSON(b []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

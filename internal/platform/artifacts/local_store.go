package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
)

// LocalStore writes receipt artifacts to a directory on disk. The directory
// is expected to be served statically under baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

var _ gateways.ReceiptArtifactStore = (*LocalStore)(nil)

// NewLocalStore creates the target directory if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put writes the artifact under dir, creating subdirectories from the key.
func (s *LocalStore) Put(_ context.Context, key string, _ string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact subdirectory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt artifact: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Package filesystem stores diagram documents on local disk.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// DocumentStore implements repositories.DocumentRepository under a root directory
type DocumentStore struct {
	root string
}

// NewDocumentStore creates a store resolving slash-separated paths against root
func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

func (s *DocumentStore) resolve(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

// ReadDocument returns the content of a root-relative document
func (s *DocumentStore) ReadDocument(_ context.Context, path string) ([]byte, error) {
	full := s.resolve(path)

	//nolint:gosec // G304: path is derived from a discovered diagram
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entities.ErrDocumentNotFound, full)
		}
		return nil, fmt.Errorf("failed to read document %s: %w", full, err)
	}

	return data, nil
}

// WriteDocument replaces a document through a temporary file and rename,
// so readers never observe a partially written file. The file mode is kept.
func (s *DocumentStore) WriteDocument(_ context.Context, path string, data []byte) error {
	full := s.resolve(path)

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", entities.ErrDocumentNotFound, full)
		}
		return fmt.Errorf("failed to stat document %s: %w", full, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), "."+filepath.Base(full)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	//nolint:errcheck // Best-effort cleanup; fails harmlessly after a successful rename
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpName, full); err != nil {
		return fmt.Errorf("failed to replace document %s: %w", full, err)
	}

	return nil
}

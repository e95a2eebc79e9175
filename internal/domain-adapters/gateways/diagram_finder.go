package gateways

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ochairo/pumlsync/internal/domain/entities"
	"github.com/ochairo/pumlsync/internal/domain/services"
)

// DiagramFinder implements repositories.DiagramRepository with a glob over the scan root
type DiagramFinder struct {
	root         string
	pattern      string
	suffix       string
	documentName string
}

// NewDiagramFinder creates a new diagram finder
func NewDiagramFinder(root, pattern, suffix, documentName string) *DiagramFinder {
	return &DiagramFinder{
		root:         root,
		pattern:      pattern,
		suffix:       suffix,
		documentName: documentName,
	}
}

// ListDiagrams returns every file under root matching the pattern, e.g. "*/etc/*.urm.puml".
// Matches whose name does not end in the suffix are skipped. A root without matches yields an empty list.
func (f *DiagramFinder) ListDiagrams(_ context.Context) ([]*entities.Diagram, error) {
	info, err := os.Stat(f.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("scan root does not exist: %s", f.root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan root %s: %w", f.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", f.root)
	}

	// The root stays out of the pattern so its name is never read as glob syntax
	fsys := os.DirFS(f.root)
	matches, err := fs.Glob(fsys, f.pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob pattern %s: %w", f.pattern, err)
	}

	diagrams := make([]*entities.Diagram, 0, len(matches))
	for _, match := range matches {
		if !strings.HasSuffix(match, f.suffix) {
			continue
		}

		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", match, err)
		}
		if info.IsDir() {
			continue
		}

		diagram, err := services.ParseDiagram(match, f.suffix, f.documentName)
		if err != nil {
			return nil, err
		}
		diagrams = append(diagrams, diagram)
	}

	return diagrams, nil
}

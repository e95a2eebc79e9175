// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// DiagramRepository discovers diagram-definition files
type DiagramRepository interface {
	// ListDiagrams returns every diagram matching the configured pattern
	ListDiagrams(ctx context.Context) ([]*entities.Diagram, error)
}

// DocumentRepository reads and rewrites the documents that carry render identifiers
type DocumentRepository interface {
	// ReadDocument returns the content of a root-relative document
	ReadDocument(ctx context.Context, path string) ([]byte, error)

	// WriteDocument replaces the content of a root-relative document
	WriteDocument(ctx context.Context, path string, data []byte) error
}

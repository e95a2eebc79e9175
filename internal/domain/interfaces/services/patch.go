// Package services defines interfaces for domain services.
package services

import (
	"context"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// PatchService inserts render identifiers into diagram documents
type PatchService interface {
	// IdentifierLine returns the line that carries the identifier, e.g. "pumlid: abc123"
	IdentifierLine(id string) string

	// PatchDocument inserts the identifier line before the first marker of the diagram's document
	PatchDocument(ctx context.Context, diagram *entities.Diagram, id string) error

	// ManualNotice describes the edit a human has to make for a diagram that is not self-named
	ManualNotice(diagram *entities.Diagram, id string) string
}

package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ochairo/pumlsync/internal/domain/entities"
	"github.com/ochairo/pumlsync/internal/domain/interfaces/repositories"
	"github.com/ochairo/pumlsync/internal/domain/interfaces/services"
)

// patchService implements PatchService on top of a document repository
type patchService struct {
	documents repositories.DocumentRepository
	marker    string
	idKey     string
}

// NewPatchService creates a new patch service with dependency injection
func NewPatchService(documents repositories.DocumentRepository, cfg entities.DocumentConfig) services.PatchService {
	return &patchService{
		documents: documents,
		marker:    cfg.Marker,
		idKey:     cfg.IDKey,
	}
}

// IdentifierLine returns "<key>: <id>"
func (s *patchService) IdentifierLine(id string) string {
	return s.idKey + ": " + id
}

// PatchDocument rewrites the diagram's document with the identifier line inserted
func (s *patchService) PatchDocument(ctx context.Context, diagram *entities.Diagram, id string) error {
	content, err := s.documents.ReadDocument(ctx, diagram.Document)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", diagram.Document, err)
	}

	patched, err := InsertBeforeMarker(content, s.marker, s.IdentifierLine(id))
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", diagram.Document, err)
	}

	if err := s.documents.WriteDocument(ctx, diagram.Document, patched); err != nil {
		return fmt.Errorf("failed to write %s: %w", diagram.Document, err)
	}

	return nil
}

// ManualNotice names the document to edit and the line to add
func (s *patchService) ManualNotice(diagram *entities.Diagram, id string) string {
	return fmt.Sprintf("add the following line to the %s that corresponds to %s:\n%s",
		diagram.Document, diagram.Path, s.IdentifierLine(id))
}

// InsertBeforeMarker returns a copy of content with line and a newline inserted
// immediately before the first occurrence of marker. Nothing else changes.
func InsertBeforeMarker(content []byte, marker, line string) ([]byte, error) {
	if marker == "" {
		return nil, fmt.Errorf("%w: empty marker", entities.ErrMarkerNotFound)
	}

	idx := bytes.Index(content, []byte(marker))
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", entities.ErrMarkerNotFound, marker)
	}

	out := make([]byte, 0, len(content)+len(line)+1)
	out = append(out, content[:idx]...)
	out = append(out, line...)
	out = append(out, '\n')
	out = append(out, content[idx:]...)
	return out, nil
}

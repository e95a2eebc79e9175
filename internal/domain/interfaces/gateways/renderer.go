// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// RendererGateway uploads diagrams to a remote rendering service
type RendererGateway interface {
	// Render uploads the diagram and returns the identifier derived from the final response URL
	Render(ctx context.Context, diagram *entities.Diagram) (*entities.Render, error)
}

// SignatureGateway verifies diagram sources before they are uploaded
type SignatureGateway interface {
	// VerifyDiagram checks the detached signature of the diagram at the given root-relative path
	VerifyDiagram(ctx context.Context, path string) error
}

// Package services implements domain business logic and use cases.
package services

import (
	"fmt"
	"path"
	"strings"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// ParseDiagram decomposes a slash-separated, root-relative path into a Diagram.
// The parent is the first path element and the artifact is the file name with suffix removed.
func ParseDiagram(relPath, suffix, documentName string) (*entities.Diagram, error) {
	parts := strings.Split(relPath, "/")
	if len(parts) < 2 || parts[0] == "" || parts[len(parts)-1] == "" {
		return nil, fmt.Errorf("%w: %q", entities.ErrMalformedPath, relPath)
	}

	parent := parts[0]
	return &entities.Diagram{
		Path:     relPath,
		Parent:   parent,
		Artifact: strings.TrimSuffix(parts[len(parts)-1], suffix),
		Document: path.Join(parent, documentName),
	}, nil
}

// IncludeText builds the renderer payload that pulls the diagram from the raw repository URL
func IncludeText(directive, repositoryBaseURL, diagramPath string) string {
	return directive + " " + repositoryBaseURL + diagramPath
}

// ExtractIdentifier strips prefix from the final response URL.
// A URL without the prefix is returned unchanged.
func ExtractIdentifier(finalURL, prefix string) string {
	return strings.TrimPrefix(finalURL, prefix)
}

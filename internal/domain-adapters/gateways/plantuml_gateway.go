// Package gateways implements the domain gateway and repository interfaces.
package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ochairo/pumlsync/internal/domain/entities"
	"github.com/ochairo/pumlsync/internal/domain/services"
)

// plantUMLGateway uploads diagrams to a PlantUML server through its form endpoint.
// The server answers with a redirect to a URL ending in the encoded diagram id.
type plantUMLGateway struct {
	endpoint          string
	resultPrefix      string
	repositoryBaseURL string
	includeDirective  string
	httpClient        *http.Client
}

// NewPlantUMLGateway creates a new PlantUML gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewPlantUMLGateway(cfg entities.RendererConfig) *plantUMLGateway {
	return &plantUMLGateway{
		endpoint:          cfg.Endpoint,
		resultPrefix:      cfg.ResultPrefix,
		repositoryBaseURL: cfg.RepositoryBaseURL,
		includeDirective:  cfg.IncludeDirective,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Render posts the include directive for the diagram and extracts the id from the final URL
func (g *plantUMLGateway) Render(ctx context.Context, diagram *entities.Diagram) (*entities.Render, error) {
	form := url.Values{}
	form.Set("text", services.IncludeText(g.includeDirective, g.repositoryBaseURL, diagram.Path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	// Drain so the connection can be reused by the next diagram
	_, _ = io.Copy(io.Discard, resp.Body)

	finalURL := resp.Request.URL.String()

	return &entities.Render{
		ID:         services.ExtractIdentifier(finalURL, g.resultPrefix),
		URL:        finalURL,
		StatusCode: resp.StatusCode,
	}, nil
}

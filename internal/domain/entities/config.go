package entities

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the complete runtime configuration
type Config struct {
	Root      string
	Pattern   string // Glob relative to Root
	Suffix    string // Stripped from the file name to obtain the artifact name
	DryRun    bool
	KeepGoing bool
	Renderer  RendererConfig
	Document  DocumentConfig
	Signing   SigningConfig
	Log       LogConfig
}

// RendererConfig configures the remote rendering service
type RendererConfig struct {
	Endpoint          string
	ResultPrefix      string // Stripped from the final response URL to obtain the identifier
	RepositoryBaseURL string // Raw-content base the include directive points at
	IncludeDirective  string
	Timeout           time.Duration
}

// DocumentConfig configures the document patcher
type DocumentConfig struct {
	Name   string // File name inside the parent folder
	Marker string // Identifier line is inserted before the first occurrence
	IDKey  string
}

// SigningConfig configures the optional source signature gate
type SigningConfig struct {
	Keyring         string // Empty disables verification
	SignatureSuffix string
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		Root:    ".",
		Pattern: "*/etc/*.urm.puml",
		Suffix:  ".urm.puml",
		Renderer: RendererConfig{
			Endpoint:          "http://plantuml.com/plantuml/uml",
			ResultPrefix:      "http://plantuml.com/plantuml/uml/",
			RepositoryBaseURL: "https://raw.githubusercontent.com/iluwatar/java-design-patterns/master/",
			IncludeDirective:  "!includeurl",
			Timeout:           30 * time.Second,
		},
		Document: DocumentConfig{
			Name:   "README.md",
			Marker: "categories:",
			IDKey:  "pumlid",
		},
		Signing: SigningConfig{
			SignatureSuffix: ".asc",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DeriveResultPrefix points the result prefix at a custom endpoint.
// It only applies when the endpoint moved away from the default while the prefix did not.
func (c *Config) DeriveResultPrefix() {
	defaults := DefaultConfig().Renderer
	if c.Renderer.Endpoint == defaults.Endpoint || c.Renderer.ResultPrefix != defaults.ResultPrefix {
		return
	}
	c.Renderer.ResultPrefix = strings.TrimSuffix(c.Renderer.Endpoint, "/") + "/"
}

// SigningEnabled reports whether diagrams must carry a valid signature
func (c *Config) SigningEnabled() bool {
	return c.Signing.Keyring != ""
}

// Validate checks that the configuration can drive a sync run
func (c *Config) Validate() error {
	switch {
	case c.Root == "":
		return fmt.Errorf("%w: root must not be empty", ErrInvalidConfig)
	case c.Pattern == "":
		return fmt.Errorf("%w: pattern must not be empty", ErrInvalidConfig)
	case c.Renderer.Endpoint == "":
		return fmt.Errorf("%w: renderer endpoint must not be empty", ErrInvalidConfig)
	case c.Renderer.Timeout <= 0:
		return fmt.Errorf("%w: renderer timeout must be positive, got %s", ErrInvalidConfig, c.Renderer.Timeout)
	case c.Document.Name == "":
		return fmt.Errorf("%w: document name must not be empty", ErrInvalidConfig)
	case c.Document.Marker == "":
		return fmt.Errorf("%w: document marker must not be empty", ErrInvalidConfig)
	case c.Document.IDKey == "":
		return fmt.Errorf("%w: document id key must not be empty", ErrInvalidConfig)
	case c.SigningEnabled() && c.Signing.SignatureSuffix == "":
		return fmt.Errorf("%w: signature suffix must not be empty when a keyring is set", ErrInvalidConfig)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

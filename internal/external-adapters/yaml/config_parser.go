// Package yaml provides YAML-based configuration parsing and loading.
package yaml

import (
	"fmt"
	"os"
	"time"

	"github.com/ochairo/pumlsync/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	Root      string       `yaml:"root"`
	Pattern   string       `yaml:"pattern"`
	Suffix    string       `yaml:"suffix"`
	DryRun    bool         `yaml:"dry_run"`
	KeepGoing bool         `yaml:"keep_going"`
	Renderer  yamlRenderer `yaml:"renderer"`
	Document  yamlDocument `yaml:"document"`
	Signing   yamlSigning  `yaml:"signing"`
	Log       yamlLog      `yaml:"log"`
}

type yamlRenderer struct {
	Endpoint          string `yaml:"endpoint"`
	ResultPrefix      string `yaml:"result_prefix"`
	RepositoryBaseURL string `yaml:"repository_base_url"`
	IncludeDirective  string `yaml:"include_directive"`
	Timeout           string `yaml:"timeout"`
}

type yamlDocument struct {
	Name   string `yaml:"name"`
	Marker string `yaml:"marker"`
	IDKey  string `yaml:"id_key"`
}

type yamlSigning struct {
	Keyring         string `yaml:"keyring"`
	SignatureSuffix string `yaml:"signature_suffix"`
}

type yamlLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML configuration file on top of base
func (p *ConfigParser) ParseFile(filePath string, base *entities.Config) (*entities.Config, error) {
	//nolint:gosec // G304: filePath is the configuration path given by the user
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data, base)
}

// Parse parses YAML bytes on top of base. Keys absent from the document keep base values.
func (p *ConfigParser) Parse(data []byte, base *entities.Config) (*entities.Config, error) {
	yc := fromEntity(base)
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	timeout, err := time.ParseDuration(yc.Renderer.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid renderer timeout %q: %w", yc.Renderer.Timeout, err)
	}

	// Convert to domain entity
	return &entities.Config{
		Root:      yc.Root,
		Pattern:   yc.Pattern,
		Suffix:    yc.Suffix,
		DryRun:    yc.DryRun,
		KeepGoing: yc.KeepGoing,
		Renderer: entities.RendererConfig{
			Endpoint:          yc.Renderer.Endpoint,
			ResultPrefix:      yc.Renderer.ResultPrefix,
			RepositoryBaseURL: yc.Renderer.RepositoryBaseURL,
			IncludeDirective:  yc.Renderer.IncludeDirective,
			Timeout:           timeout,
		},
		Document: entities.DocumentConfig{
			Name:   yc.Document.Name,
			Marker: yc.Document.Marker,
			IDKey:  yc.Document.IDKey,
		},
		Signing: entities.SigningConfig{
			Keyring:         yc.Signing.Keyring,
			SignatureSuffix: yc.Signing.SignatureSuffix,
		},
		Log: entities.LogConfig{
			Level:  yc.Log.Level,
			Format: yc.Log.Format,
		},
	}, nil
}

func fromEntity(c *entities.Config) yamlConfig {
	return yamlConfig{
		Root:      c.Root,
		Pattern:   c.Pattern,
		Suffix:    c.Suffix,
		DryRun:    c.DryRun,
		KeepGoing: c.KeepGoing,
		Renderer: yamlRenderer{
			Endpoint:          c.Renderer.Endpoint,
			ResultPrefix:      c.Renderer.ResultPrefix,
			RepositoryBaseURL: c.Renderer.RepositoryBaseURL,
			IncludeDirective:  c.Renderer.IncludeDirective,
			Timeout:           c.Renderer.Timeout.String(),
		},
		Document: yamlDocument{
			Name:   c.Document.Name,
			Marker: c.Document.Marker,
			IDKey:  c.Document.IDKey,
		},
		Signing: yamlSigning{
			Keyring:         c.Signing.Keyring,
			SignatureSuffix: c.Signing.SignatureSuffix,
		},
		Log: yamlLog{
			Level:  c.Log.Level,
			Format: c.Log.Format,
		},
	}
}

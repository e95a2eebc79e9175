// Package env applies PUMLSYNC_* environment variables to a configuration.
package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// Prefix is prepended to every variable name
const Prefix = "PUMLSYNC_"

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyOverrides applies environment variables read from the process environment
func ApplyOverrides(cfg *entities.Config) error {
	return Apply(cfg, os.LookupEnv)
}

// Apply overrides cfg with every non-empty PUMLSYNC_* variable returned by lookup
func Apply(cfg *entities.Config, lookup LookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(Prefix + name)
		return v, ok && v != ""
	}

	stringVars := map[string]*string{
		"ROOT":                         &cfg.Root,
		"PATTERN":                      &cfg.Pattern,
		"SUFFIX":                       &cfg.Suffix,
		"RENDERER_ENDPOINT":            &cfg.Renderer.Endpoint,
		"RENDERER_RESULT_PREFIX":       &cfg.Renderer.ResultPrefix,
		"RENDERER_REPOSITORY_BASE_URL": &cfg.Renderer.RepositoryBaseURL,
		"RENDERER_INCLUDE_DIRECTIVE":   &cfg.Renderer.IncludeDirective,
		"DOCUMENT_NAME":                &cfg.Document.Name,
		"DOCUMENT_MARKER":              &cfg.Document.Marker,
		"DOCUMENT_ID_KEY":              &cfg.Document.IDKey,
		"SIGNING_KEYRING":              &cfg.Signing.Keyring,
		"SIGNING_SIGNATURE_SUFFIX":     &cfg.Signing.SignatureSuffix,
		"LOG_LEVEL":                    &cfg.Log.Level,
		"LOG_FORMAT":                   &cfg.Log.Format,
	}
	for name, field := range stringVars {
		if v, ok := get(name); ok {
			*field = v
		}
	}

	boolVars := map[string]*bool{
		"DRY_RUN":    &cfg.DryRun,
		"KEEP_GOING": &cfg.KeepGoing,
	}
	for name, field := range boolVars {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s %q: %w", Prefix, name, v, err)
			}
			*field = b
		}
	}

	if v, ok := get("RENDERER_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sRENDERER_TIMEOUT %q: %w", Prefix, v, err)
		}
		cfg.Renderer.Timeout = d
	}

	return nil
}

package entities

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty root", func(c *Config) { c.Root = "" }},
		{"empty pattern", func(c *Config) { c.Pattern = "" }},
		{"empty endpoint", func(c *Config) { c.Renderer.Endpoint = "" }},
		{"zero timeout", func(c *Config) { c.Renderer.Timeout = 0 }},
		{"negative timeout", func(c *Config) { c.Renderer.Timeout = -time.Second }},
		{"empty document", func(c *Config) { c.Document.Name = "" }},
		{"empty marker", func(c *Config) { c.Document.Marker = "" }},
		{"empty id key", func(c *Config) { c.Document.IDKey = "" }},
		{"keyring without suffix", func(c *Config) {
			c.Signing.Keyring = "keys.asc"
			c.Signing.SignatureSuffix = ""
		}},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_DeriveResultPrefix(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		prefix   string
		want     string
	}{
		{"default endpoint", "", "", "http://plantuml.com/plantuml/uml/"},
		{"custom endpoint", "http://127.0.0.1:8080/plantuml/uml", "", "http://127.0.0.1:8080/plantuml/uml/"},
		{"custom endpoint with slash", "http://render.local/uml/", "", "http://render.local/uml/"},
		{"explicit prefix kept", "http://render.local/form", "http://render.local/png/", "http://render.local/png/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.endpoint != "" {
				cfg.Renderer.Endpoint = tt.endpoint
			}
			if tt.prefix != "" {
				cfg.Renderer.ResultPrefix = tt.prefix
			}

			cfg.DeriveResultPrefix()
			if cfg.Renderer.ResultPrefix != tt.want {
				t.Errorf("ResultPrefix = %q, want %q", cfg.Renderer.ResultPrefix, tt.want)
			}
		})
	}
}

func TestDiagram_SelfNamed(t *testing.T) {
	if !(&Diagram{Parent: "foo", Artifact: "foo"}).SelfNamed() {
		t.Error("SelfNamed() = false for matching parent and artifact")
	}
	if (&Diagram{Parent: "foo", Artifact: "bar"}).SelfNamed() {
		t.Error("SelfNamed() = true for different parent and artifact")
	}
}

func TestSyncReport_Count(t *testing.T) {
	report := &SyncReport{Outcomes: []*SyncOutcome{
		{Action: ActionPatched},
		{Action: ActionManual},
		{Action: ActionPatched},
	}}

	if got := report.Count(ActionPatched); got != 2 {
		t.Errorf("Count(patched) = %d, want 2", got)
	}
	if report.Failed() {
		t.Error("Failed() = true, want false")
	}

	report.Outcomes = append(report.Outcomes, &SyncOutcome{Action: ActionFailed})
	if !report.Failed() {
		t.Error("Failed() = false after a failed outcome")
	}
}

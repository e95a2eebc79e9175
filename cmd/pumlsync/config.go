package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/ochairo/pumlsync/internal/domain/entities"
	"github.com/ochairo/pumlsync/internal/external-adapters/env"
	"github.com/ochairo/pumlsync/internal/external-adapters/yaml"
)

// commonFlags are shared by every command that scans a tree
type commonFlags struct {
	root       string
	configPath string
	pattern    string
	logLevel   string
	logFormat  string
}

func (c *commonFlags) register(fs *pflag.FlagSet) {
	defaults := entities.DefaultConfig()
	fs.StringVarP(&c.root, "root", "r", defaults.Root, "Root directory to scan")
	fs.StringVarP(&c.configPath, "config", "c", "", "Configuration file (default: <root>/"+yaml.DefaultConfigFile+" if present)")
	fs.StringVar(&c.pattern, "pattern", defaults.Pattern, "Glob of diagram files relative to the root")
	fs.StringVar(&c.logLevel, "log-level", defaults.Log.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.logFormat, "log-format", defaults.Log.Format, "Log format (text or json)")
}

// loadConfig merges defaults, the YAML file, PUMLSYNC_* variables and changed flags.
// configFile is empty when no file was read.
func (c *commonFlags) loadConfig(fs *pflag.FlagSet) (cfg *entities.Config, configFile string, err error) {
	cfg = entities.DefaultConfig()
	repo := yaml.NewConfigRepository()

	if c.configPath != "" {
		cfg, err = repo.Load(c.configPath, cfg)
		if err != nil {
			return nil, "", err
		}
		configFile = c.configPath
	} else {
		cfg, configFile, err = repo.LoadFromRoot(c.rootHint(fs), cfg)
		if err != nil {
			return nil, "", err
		}
	}

	if err := env.ApplyOverrides(cfg); err != nil {
		return nil, "", err
	}

	if fs.Changed("root") {
		cfg.Root = c.root
	}
	if fs.Changed("pattern") {
		cfg.Pattern = c.pattern
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = c.logFormat
	}

	return cfg, configFile, nil
}

// rootHint is where the default configuration file is looked up
func (c *commonFlags) rootHint(fs *pflag.FlagSet) string {
	if fs.Changed("root") {
		return c.root
	}
	if root := os.Getenv(env.Prefix + "ROOT"); root != "" {
		return root
	}
	return entities.DefaultConfig().Root
}

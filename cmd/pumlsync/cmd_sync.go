package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/ochairo/pumlsync/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/pumlsync/internal/domain-orchestrators"
	"github.com/ochairo/pumlsync/internal/domain/entities"
	"github.com/ochairo/pumlsync/internal/domain/interfaces"
	domaingateways "github.com/ochairo/pumlsync/internal/domain/interfaces/gateways"
	"github.com/ochairo/pumlsync/internal/domain/services"
	"github.com/ochairo/pumlsync/internal/external-adapters/filesystem"
	"github.com/ochairo/pumlsync/internal/external-adapters/logrus"
)

func runSync(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("sync", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var common commonFlags
	common.register(fs)

	defaults := entities.DefaultConfig()
	var (
		dryRun    = fs.BoolP("dry-run", "n", false, "Upload and report, but do not modify any document")
		keepGoing = fs.BoolP("keep-going", "k", false, "Continue with the next diagram after a failure")
		endpoint  = fs.String("endpoint", defaults.Renderer.Endpoint, "Renderer form endpoint")
		timeout   = fs.Duration("timeout", defaults.Renderer.Timeout, "Timeout for each render request")
		idKey     = fs.String("id-key", defaults.Document.IDKey, "Key of the identifier line inserted into documents")
		keyring   = fs.String("keyring", "", "OpenPGP keyring (file or URL); requires a valid signature for every diagram")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: pumlsync sync [options]

Upload every diagram to the renderer and insert its id into the README of the
folder it belongs to. Diagrams whose file name does not match their folder are
reported for manual editing.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Examples:
  pumlsync sync
  pumlsync sync --root ~/src/java-design-patterns --dry-run
  pumlsync sync --keep-going --log-format json
`)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error parsing flags: %v\n", err)
		return 1
	}

	cfg, configFile, err := common.loadConfig(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = *dryRun
	}
	if fs.Changed("keep-going") {
		cfg.KeepGoing = *keepGoing
	}
	if fs.Changed("endpoint") {
		cfg.Renderer.Endpoint = *endpoint
	}
	if fs.Changed("timeout") {
		cfg.Renderer.Timeout = *timeout
	}
	if fs.Changed("id-key") {
		cfg.Document.IDKey = *idKey
	}
	if fs.Changed("keyring") {
		cfg.Signing.Keyring = *keyring
	}
	cfg.DeriveResultPrefix()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	baseLogger, err := logrus.NewLogger(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := baseLogger.With(interfaces.F("run_id", uuid.NewString()))
	if configFile != "" {
		logger.Debug("Loaded configuration file", interfaces.F("path", configFile))
	}

	if err := executeSync(ctx, cfg, logger, newConsole(stdout)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// executeSync wires the adapters into the orchestrator and prints the results
func executeSync(ctx context.Context, cfg *entities.Config, logger interfaces.Logger, out *console) error {
	// A nil *signatureGateway must not end up inside the interface
	var signatures domaingateways.SignatureGateway
	if cfg.SigningEnabled() {
		gw, err := gateways.NewSignatureGateway(ctx, cfg.Signing.Keyring, cfg.Root, cfg.Signing.SignatureSuffix)
		if err != nil {
			return err
		}
		logger.Info("Signature verification enabled",
			interfaces.F("keyring", cfg.Signing.Keyring), interfaces.F("keys", gw.GetKeyringSize()))
		signatures = gw
	}

	orch := orchestrators.NewSyncOrchestrator(
		gateways.NewDiagramFinder(cfg.Root, cfg.Pattern, cfg.Suffix, cfg.Document.Name),
		gateways.NewPlantUMLGateway(cfg.Renderer),
		services.NewPatchService(filesystem.NewDocumentStore(cfg.Root), cfg.Document),
		signatures,
		orchestrators.SyncOrchestratorConfig{
			ResultPrefix: cfg.Renderer.ResultPrefix,
			DryRun:       cfg.DryRun,
			KeepGoing:    cfg.KeepGoing,
			Progress:     out.outcome,
		},
		logger,
	)

	report, err := orch.Sync(ctx)
	out.summary(report)
	return err
}

// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ochairo/pumlsync/internal/domain/entities"
	"github.com/ochairo/pumlsync/internal/domain/interfaces"
	"github.com/ochairo/pumlsync/internal/domain/interfaces/gateways"
	"github.com/ochairo/pumlsync/internal/domain/interfaces/repositories"
	"github.com/ochairo/pumlsync/internal/domain/interfaces/services"
)

// SyncOrchestrator runs the discover, render, patch loop over every diagram
type SyncOrchestrator struct {
	diagrams     repositories.DiagramRepository
	renderer     gateways.RendererGateway
	patcher      services.PatchService
	signatures   gateways.SignatureGateway
	resultPrefix string
	dryRun       bool
	keepGoing    bool
	progress     func(*entities.SyncOutcome)
	logger       interfaces.Logger
}

// SyncOrchestratorConfig holds configuration for the orchestrator
type SyncOrchestratorConfig struct {
	ResultPrefix string // Used only to warn about unexpected final URLs
	DryRun       bool
	KeepGoing    bool

	// Progress is called after each diagram, in processing order
	Progress func(*entities.SyncOutcome)
}

// NewSyncOrchestrator creates a new sync orchestrator.
// signatures and logger may be nil.
func NewSyncOrchestrator(
	diagrams repositories.DiagramRepository,
	renderer gateways.RendererGateway,
	patcher services.PatchService,
	signatures gateways.SignatureGateway,
	config SyncOrchestratorConfig,
	logger interfaces.Logger,
) *SyncOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &SyncOrchestrator{
		diagrams:     diagrams,
		renderer:     renderer,
		patcher:      patcher,
		signatures:   signatures,
		resultPrefix: config.ResultPrefix,
		dryRun:       config.DryRun,
		keepGoing:    config.KeepGoing,
		progress:     config.Progress,
		logger:       logger,
	}
}

// Sync processes every discovered diagram in discovery order.
//
// By default the first failure stops the batch: documents already patched stay
// patched and the remaining diagrams are not touched. With KeepGoing the failure
// is recorded and the loop continues. The returned error joins every failure.
// The report is returned even when err is non-nil.
func (o *SyncOrchestrator) Sync(ctx context.Context) (*entities.SyncReport, error) {
	startTime := time.Now()
	report := &entities.SyncReport{}

	diagrams, err := o.diagrams.ListDiagrams(ctx)
	if err != nil {
		report.Duration = time.Since(startTime)
		return report, fmt.Errorf("diagram discovery failed: %w", err)
	}
	o.logger.Info("Discovered diagrams", interfaces.F("count", len(diagrams)))

	var errs []error
	for _, diagram := range diagrams {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		outcome := o.syncDiagram(ctx, diagram)
		report.Outcomes = append(report.Outcomes, outcome)
		if o.progress != nil {
			o.progress(outcome)
		}

		if outcome.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", diagram.Path, outcome.Err))
			if !o.keepGoing {
				o.logger.Warn("Aborting batch after failure",
					interfaces.F("remaining", len(diagrams)-len(report.Outcomes)))
				break
			}
		}
	}

	report.Duration = time.Since(startTime)
	return report, errors.Join(errs...)
}

func (o *SyncOrchestrator) syncDiagram(ctx context.Context, diagram *entities.Diagram) *entities.SyncOutcome {
	outcome := &entities.SyncOutcome{Diagram: diagram}
	fail := func(err error) *entities.SyncOutcome {
		outcome.Action = entities.ActionFailed
		outcome.Err = err
		o.logger.Error("Diagram failed", interfaces.F("path", diagram.Path), interfaces.F("error", err))
		return outcome
	}

	o.logger.Info("Processing diagram",
		interfaces.F("path", diagram.Path),
		interfaces.F("parent", diagram.Parent),
		interfaces.F("artifact", diagram.Artifact))

	if o.signatures != nil {
		if err := o.signatures.VerifyDiagram(ctx, diagram.Path); err != nil {
			return fail(err)
		}
	}

	render, err := o.renderer.Render(ctx, diagram)
	if err != nil {
		return fail(err)
	}
	outcome.Render = render
	outcome.Line = o.patcher.IdentifierLine(render.ID)

	o.logger.Info("Rendered diagram", interfaces.F("path", diagram.Path), interfaces.F("id", render.ID))
	if o.resultPrefix != "" && !strings.HasPrefix(render.URL, o.resultPrefix) {
		o.logger.Warn("Final URL does not carry the expected prefix",
			interfaces.F("url", render.URL), interfaces.F("prefix", o.resultPrefix))
	}
	if render.StatusCode >= http.StatusBadRequest {
		o.logger.Warn("Renderer returned an error status",
			interfaces.F("path", diagram.Path), interfaces.F("status", render.StatusCode))
	}

	if !diagram.SelfNamed() {
		outcome.Action = entities.ActionManual
		outcome.Notice = o.patcher.ManualNotice(diagram, render.ID)
		o.logger.Warn("Manual edit required",
			interfaces.F("path", diagram.Path), interfaces.F("document", diagram.Document))
		return outcome
	}

	if o.dryRun {
		outcome.Action = entities.ActionDryRun
		o.logger.Info("Dry run, document left untouched", interfaces.F("document", diagram.Document))
		return outcome
	}

	if err := o.patcher.PatchDocument(ctx, diagram, render.ID); err != nil {
		return fail(err)
	}

	outcome.Action = entities.ActionPatched
	o.logger.Info("Patched document", interfaces.F("document", diagram.Document), interfaces.F("line", outcome.Line))
	return outcome
}

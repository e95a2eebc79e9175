package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/ochairo/pumlsync/internal/domain-adapters/gateways"
)

func runList(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var common commonFlags
	common.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: pumlsync list [options]

List discovered diagrams and whether their README can be patched automatically.
The renderer is not contacted.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error parsing flags: %v\n", err)
		return 1
	}

	cfg, _, err := common.loadConfig(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	finder := gateways.NewDiagramFinder(cfg.Root, cfg.Pattern, cfg.Suffix, cfg.Document.Name)
	diagrams, err := finder.ListDiagrams(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error listing diagrams: %v\n", err)
		return 1
	}

	out := newConsole(stdout)
	out.printf("%s\n\n", out.title.Render(fmt.Sprintf("Diagrams under %s (%d total):", cfg.Root, len(diagrams))))

	for _, d := range diagrams {
		mode := out.ok.Render("auto")
		if !d.SelfNamed() {
			mode = out.warn.Render("manual")
		}
		out.printf("  %-50s %s\n", d.Path, mode)
		out.printf("  %-50s parent: %s, artifact: %s, document: %s\n", "", d.Parent, d.Artifact, d.Document)
	}

	return 0
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches to a subcommand and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// sync is the default command, so "pumlsync --dry-run" works
	command := "sync"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "sync":
		return runSync(ctx, args, stdout, stderr)
	case "list":
		return runList(ctx, args, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "pumlsync %s\n", version)
		return 0
	case "help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `pumlsync - Publish PlantUML diagrams and record their render ids

Usage:
  pumlsync [command] [options]

Commands:
  sync      Upload every <parent>/etc/*.puml diagram and patch <parent>/README.md (default)
  list      List discovered diagrams without contacting the renderer
  version   Print version information
  help      Show this help

Configuration is read from defaults, .pumlsync.yml in the root (or --config),
PUMLSYNC_* environment variables and flags, in increasing precedence.

Use "pumlsync <command> --help" for more information about a command.`)
}

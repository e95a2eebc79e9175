package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// console renders human-readable progress. Styles degrade to plain text when w is not a terminal.
type console struct {
	out    io.Writer
	title  lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	dim    lipgloss.Style
	notice lipgloss.Style
}

func newConsole(w io.Writer) *console {
	r := lipgloss.NewRenderer(w)
	return &console{
		out:    w,
		title:  r.NewStyle().Bold(true),
		ok:     r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		fail:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dim:    r.NewStyle().Faint(true),
		notice: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("3")).Padding(0, 1),
	}
}

func (c *console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// outcome prints one line per processed diagram, plus a boxed notice for manual edits
func (c *console) outcome(o *entities.SyncOutcome) {
	d := o.Diagram
	switch o.Action {
	case entities.ActionPatched:
		c.printf("%s %s %s\n", c.ok.Render("✅ patched"), d.Document, c.dim.Render(o.Line))
	case entities.ActionDryRun:
		c.printf("%s %s %s\n", c.warn.Render("🔎 dry-run"), d.Document, c.dim.Render("would add: "+o.Line))
	case entities.ActionManual:
		c.printf("%s %s\n", c.warn.Render("⚠️  manual"), d.Path)
		c.printf("%s\n", c.notice.Render(o.Notice))
	case entities.ActionFailed:
		c.printf("%s %s: %v\n", c.fail.Render("❌ failed"), d.Path, o.Err)
	}
}

func (c *console) summary(r *entities.SyncReport) {
	c.printf("\n%s %d diagrams in %s: %d patched, %d manual, %d dry-run, %d failed\n",
		c.title.Render("Summary:"),
		len(r.Outcomes),
		r.Duration.Round(time.Millisecond),
		r.Count(entities.ActionPatched),
		r.Count(entities.ActionManual),
		r.Count(entities.ActionDryRun),
		r.Count(entities.ActionFailed))
}

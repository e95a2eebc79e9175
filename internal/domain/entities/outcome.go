package entities

import "time"

// SyncAction describes what happened to a single diagram
type SyncAction string

const (
	ActionPatched SyncAction = "patched"
	ActionManual  SyncAction = "manual"
	ActionDryRun  SyncAction = "dry-run"
	ActionFailed  SyncAction = "failed"
)

// SyncOutcome is the per-diagram result of a sync run
type SyncOutcome struct {
	Diagram *Diagram
	Render  *Render
	Action  SyncAction
	Line    string // Identifier line that was (or should be) added
	Notice  string // Manual-action notice, set when Action is ActionManual
	Err     error
}

// SyncReport aggregates the outcomes of one run in processing order
type SyncReport struct {
	Outcomes []*SyncOutcome
	Duration time.Duration
}

// Count returns the number of outcomes with the given action
func (r *SyncReport) Count(action SyncAction) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == action {
			n++
		}
	}
	return n
}

// Failed reports whether any diagram failed
func (r *SyncReport) Failed() bool {
	return r.Count(ActionFailed) > 0
}

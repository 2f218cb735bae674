// ABOUTME: Organize: plan and apply moves of top-level files into their category directories
// ABOUTME: Planning is read-only so callers can confirm once before anything moves

package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// PlannedMove is one file the organizer would relocate.
type PlannedMove struct {
	From     string
	To       string
	Conflict bool // destination already exists; the move will be skipped
}

// PlanOrganize lists top-level files whose extension belongs to a category.
func (w *Workspace) PlanOrganize() ([]PlannedMove, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", w.root, err)
	}
	var plan []PlannedMove
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		c, ok := w.CategoryOf(e.Name())
		if !ok {
			continue
		}
		dest := filepath.Join(w.Dir(c), e.Name())
		_, statErr := os.Lstat(dest)
		plan = append(plan, PlannedMove{
			From:     filepath.Join(w.root, e.Name()),
			To:       dest,
			Conflict: statErr == nil,
		})
	}
	slices.SortFunc(plan, func(a, b PlannedMove) int { return strings.Compare(a.From, b.From) })
	return plan, nil
}

// MoveOutcome records what happened to one planned move.
type MoveOutcome struct {
	PlannedMove
	Err error
}

// ApplyOrganize performs a plan. Conflicts and failures are reported per
// file; the remaining moves still run.
func (w *Workspace) ApplyOrganize(plan []PlannedMove) []MoveOutcome {
	out := make([]MoveOutcome, 0, len(plan))
	for _, m := range plan {
		res := MoveOutcome{PlannedMove: m}
		if err := os.MkdirAll(filepath.Dir(m.To), 0o755); err != nil {
			res.Err = fmt.Errorf("creating %s: %w", w.Rel(filepath.Dir(m.To)), err)
		} else {
			res.Err = w.moveFile(m.From, m.To)
		}
		out = append(out, res)
	}
	return out
}

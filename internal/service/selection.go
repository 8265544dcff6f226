package service

import (
	"context"
	"fmt"

	"github.com/jask/tabkit/internal/database/repository"
	"github.com/jask/tabkit/tabs"
)

// SelectionService persists which tab of a named set was last selected.
// Sets are keyed by the controller id, which is stable for named sets.
type SelectionService struct {
	Selections *repository.SelectionRepo
}

// Restore selects the stored tab of ctrl. It matches by tab key first and
// falls back to the stored index when the key is gone. It reports whether a
// selection was applied.
func (s *SelectionService) Restore(ctx context.Context, ctrl *tabs.Controller) (bool, error) {
	if s.Selections == nil {
		return false, fmt.Errorf("selections: repo not configured")
	}
	sel, err := s.Selections.Get(ctx, ctrl.ID())
	if err != nil {
		return false, fmt.Errorf("get selection: %w", err)
	}
	if sel == nil {
		return false, nil
	}
	idx := ctrl.IndexOf(sel.TabKey)
	if idx < 0 {
		idx = sel.TabIndex
	}
	return ctrl.Select(idx), nil
}

// Snapshot captures the current selection of ctrl under name. It only reads
// ctrl, so callers take it on the update goroutine and store it elsewhere.
func Snapshot(ctrl *tabs.Controller, name string) (repository.Selection, bool) {
	idx := ctrl.SelectedIndex()
	if idx < 0 {
		return repository.Selection{}, false
	}
	return repository.Selection{SetID: ctrl.ID(), SetName: name, TabKey: ctrl.SelectedKey(), TabIndex: idx}, true
}

// Save stores the current selection of ctrl under name. Empty sets are not
// stored.
func (s *SelectionService) Save(ctx context.Context, ctrl *tabs.Controller, name string) error {
	sel, ok := Snapshot(ctrl, name)
	if !ok {
		return nil
	}
	return s.Store(ctx, sel)
}

func (s *SelectionService) Store(ctx context.Context, sel repository.Selection) error {
	if s.Selections == nil {
		return fmt.Errorf("selections: repo not configured")
	}
	if err := s.Selections.Upsert(ctx, sel); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

func (s *SelectionService) List(ctx context.Context) ([]repository.Selection, error) {
	if s.Selections == nil {
		return nil, fmt.Errorf("selections: repo not configured")
	}
	return s.Selections.List(ctx)
}

// Import upserts every selection in sels.
func (s *SelectionService) Import(ctx context.Context, sels []repository.Selection) (int, error) {
	if s.Selections == nil {
		return 0, fmt.Errorf("selections: repo not configured")
	}
	for i, sel := range sels {
		if sel.SetID == "" {
			sel.SetID = tabs.SetID(sel.SetName)
		}
		if err := s.Selections.Upsert(ctx, sel); err != nil {
			return i, fmt.Errorf("import %s: %w", sel.SetName, err)
		}
	}
	return len(sels), nil
}

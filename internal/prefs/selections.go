package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jask/tabkit/internal/database/repository"
)

// Snapshot is the on-disk form of exported selections.
type Snapshot struct {
	ExportedAt time.Time        `json:"exported_at"`
	Selections []SelectionEntry `json:"selections"`
}

type SelectionEntry struct {
	SetID    string `json:"set_id"`
	SetName  string `json:"set_name"`
	TabKey   string `json:"tab_key"`
	TabIndex int    `json:"tab_index"`
}

// SaveSelections writes sels to path, replacing it atomically.
func SaveSelections(path string, sels []repository.Selection) error {
	snap := Snapshot{ExportedAt: time.Now().UTC().Truncate(time.Second), Selections: []SelectionEntry{}}
	for _, s := range sels {
		snap.Selections = append(snap.Selections, SelectionEntry{SetID: s.SetID, SetName: s.SetName, TabKey: s.TabKey, TabIndex: s.TabIndex})
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir export dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSelections reads a snapshot written by SaveSelections. A missing file
// yields nil, nil.
func LoadSelections(path string) ([]repository.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	out := make([]repository.Selection, 0, len(snap.Selections))
	for _, e := range snap.Selections {
		out = append(out, repository.Selection{SetID: e.SetID, SetName: e.SetName, TabKey: e.TabKey, TabIndex: e.TabIndex})
	}
	return out, nil
}

package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"fmt"
	"os" // For file system operations like reading and writing files
	"path/filepath"
	"time"

	"dotsync/internal/linker"
	"dotsync/internal/logger" // Custom logger package for logging errors and debug info
)

// LinkState records a symlink created (or confirmed) by a reconcile pass.
type LinkState struct {
	Source   string    `json:"source"`    // Managed file inside the dotfiles directory
	Target   string    `json:"target"`    // Symlink path inside the home directory
	LinkedAt time.Time `json:"linked_at"` // Last time a pass confirmed the link
}

// BackupState records the most recent backup taken for a managed file name.
// Older backups of the same name are overwritten on disk, so only the last one is kept here.
type BackupState struct {
	Original string    `json:"original"` // Path the entry was moved away from
	Path     string    `json:"path"`     // Where the entry now lives in the backup directory
	TakenAt  time.Time `json:"taken_at"` // When the backup was made
}

// State holds the entire saved state for dotsync, keyed by managed file name.
type State struct {
	LastRun time.Time              `json:"last_run"`
	Links   map[string]LinkState   `json:"links"`
	Backups map[string]BackupState `json:"backups"`
}

// New returns an empty State with initialized maps.
func New() *State {
	return &State{
		Links:   make(map[string]LinkState),
		Backups: make(map[string]BackupState),
	}
}

// LoadState loads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be parsed, it returns a new empty State.
// The maps are always non-nil.
func LoadState(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("[DEBUG] No readable state at %s: %v\n", path, err)
		return New()
	}

	var st State
	if err := json.Unmarshal(file, &st); err != nil {
		logger.Warn("[WARN] Ignoring corrupt state file %s: %v\n", path, err)
		return New()
	}

	// Ensure maps are initialized if JSON contained null for these fields
	if st.Links == nil {
		st.Links = make(map[string]LinkState)
	}
	if st.Backups == nil {
		st.Backups = make(map[string]BackupState)
	}
	return &st
}

// Record folds the outcome of a reconcile pass into the state.
// Links for managed files that were not linked in this pass (platform-filtered or
// removed from the dotfiles directory) are dropped.
func (st *State) Record(res linker.Result, now time.Time) {
	st.LastRun = now

	current := make(map[string]LinkState, len(res.Links))
	for _, l := range res.Links {
		current[l.Name] = LinkState{Source: l.Source, Target: l.Target, LinkedAt: now}
	}
	st.Links = current

	for _, b := range res.Backups {
		st.Backups[b.Name] = BackupState{Original: b.Original, Path: b.Path, TakenAt: now}
	}
}

// RecordPartial folds in what an interrupted pass managed to do before failing.
// Existing links are kept, since the pass did not reach every managed file, and
// LastRun is left alone.
func (st *State) RecordPartial(res linker.Result, now time.Time) {
	for _, l := range res.Links {
		st.Links[l.Name] = LinkState{Source: l.Source, Target: l.Target, LinkedAt: now}
	}
	for _, target := range res.Removed {
		for name, l := range st.Links {
			if l.Target == target {
				delete(st.Links, name)
			}
		}
	}
	for _, b := range res.Backups {
		st.Backups[b.Name] = BackupState{Original: b.Original, Path: b.Path, TakenAt: now}
	}
}

// SaveState writes the given State struct to a JSON file at the given path,
// creating the parent directory if needed. The JSON is indented for readability.
func SaveState(path string, st *State) error {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Log debug info showing the full JSON state being written (can be verbose)
	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(path, file, 0644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", path, err)
	}
	return nil
}

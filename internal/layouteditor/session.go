// Package layouteditor drives an interactive layout-editing session: it
// owns the authoritative layout config, applies mutation commands with
// commit/preview semantics, keeps undo/redo history, and notifies a
// persistence hook after every committed change.
package layouteditor

import (
	"math"

	"github.com/llehouerou/tides/internal/layout"
)

// PersistFunc receives the sanitized layout after every committed change.
type PersistFunc func(layout.Config)

// Session is single-threaded: callers running it from multiple goroutines
// must serialize access themselves, history included.
type Session struct {
	cfg     layout.Config
	history layout.History
	persist PersistFunc

	workspaceW int
	workspaceH int
}

// New builds a session around a layout config, sanitizing it first.
// persist may be nil.
func New(cfg layout.Config, persist PersistFunc) *Session {
	return &Session{
		cfg:        layout.Sanitize(cfg),
		persist:    persist,
		workspaceW: 1,
		workspaceH: 1,
	}
}

// Layout returns a copy of the current layout config.
func (s *Session) Layout() layout.Config {
	return s.cfg.Clone()
}

// SetWorkspaceSize records the current viewport; zero dimensions are
// floored to one pixel.
func (s *Session) SetWorkspaceSize(w, h int) {
	s.workspaceW = max(w, 1)
	s.workspaceH = max(h, 1)
}

// WorkspaceSize returns the current non-zero viewport size.
func (s *Session) WorkspaceSize() (int, int) {
	return s.workspaceW, s.workspaceH
}

// Metrics solves the current layout against the workspace.
func (s *Session) Metrics(splitterPx int) layout.Metrics {
	return layout.Solve(s.cfg.Root, s.workspaceW, s.workspaceH, splitterPx)
}

// SelectedLeafID returns the current selection, or "".
func (s *Session) SelectedLeafID() string {
	return s.cfg.SelectedLeafID
}

// SelectLeaf updates the transient selection. Selection changes are not
// history events.
func (s *Session) SelectLeaf(leafID string) {
	s.cfg.SelectedLeafID = leafID
	s.cfg = layout.Sanitize(s.cfg)
}

// EnsureSelection selects the first leaf when nothing is selected.
func (s *Session) EnsureSelection() {
	if s.cfg.SelectedLeafID == "" {
		s.SelectLeaf(s.cfg.Root.FirstLeafID())
	}
}

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo snapshot is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// ResolvePanelSelection maps an editor panel code to the panel kind stored
// in the tree plus the action preset it implies. The cluster variants all
// store the generic button cluster; only the preset differs.
func ResolvePanelSelection(code int) (layout.PanelKind, []int) {
	switch layout.PanelKindFromCode(code) {
	case layout.PanelImportButtonCluster:
		return layout.PanelButtonCluster, append([]int(nil), layout.ImportClusterPreset...)
	case layout.PanelTransportButtonCluster:
		return layout.PanelButtonCluster, append([]int(nil), layout.TransportClusterPreset...)
	case layout.PanelUtilityButtonCluster:
		return layout.PanelButtonCluster, append([]int(nil), layout.UtilityClusterPreset...)
	default:
		return layout.PanelKindFromCode(code), nil
	}
}

// QuantizeRatio rounds a splitter ratio to two decimals so persisted
// layouts stay stable across drag sessions. Non-finite values pass
// through for the sanitizer to repair.
func QuantizeRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return ratio
	}
	return math.Round(ratio*100) / 100
}

// ReplaceSelectedLeaf swaps the selected leaf's panel. Replacing with the
// none panel deletes the leaf and moves selection to the first remaining
// leaf. Returns false when nothing is selected or the mutation is
// rejected.
func (s *Session) ReplaceSelectedLeaf(panelCode int) bool {
	selected := s.cfg.SelectedLeafID
	if selected == "" {
		return false
	}
	panel, preset := ResolvePanelSelection(panelCode)
	next, ok := layout.ReplaceLeafPanel(s.cfg, selected, panel)
	if !ok {
		return false
	}
	if panel == layout.PanelNone {
		next.SelectedLeafID = next.Root.FirstLeafID()
	} else {
		next.SelectedLeafID = selected
	}
	applyPreset(&next, selected, preset)
	s.commit(next)
	return true
}

// SplitSelectedLeaf splits the selected leaf along an axis, filling the
// new sibling with the chosen panel. Selection follows the newly created
// leaf when one was created.
func (s *Session) SplitSelectedLeaf(axisCode, panelCode int) bool {
	selected := s.cfg.SelectedLeafID
	if selected == "" {
		return false
	}
	axis := layout.SplitAxisFromCode(axisCode)
	panel, preset := ResolvePanelSelection(panelCode)
	next, ok := layout.SplitLeaf(s.cfg, selected, axis, panel)
	if !ok {
		return false
	}
	added := layout.NewlyAddedLeafIDs(s.cfg, next)
	var addedID string
	if len(added) > 0 {
		addedID = added[0]
	}
	switch {
	case panel == layout.PanelNone:
		next.SelectedLeafID = selected
	case addedID != "":
		next.SelectedLeafID = addedID
	default:
		next.SelectedLeafID = next.Root.FirstLeafID()
	}
	applyPreset(&next, addedID, preset)
	s.commit(next)
	return true
}

// DeleteSelectedLeaf removes the selected leaf and selects the first
// remaining one.
func (s *Session) DeleteSelectedLeaf() bool {
	selected := s.cfg.SelectedLeafID
	if selected == "" {
		return false
	}
	next, ok := layout.DeleteLeaf(s.cfg, selected)
	if !ok {
		return false
	}
	next.SelectedLeafID = next.Root.FirstLeafID()
	s.commit(next)
	return true
}

// AddRootLeaf installs a fresh root leaf when the layout is empty.
func (s *Session) AddRootLeaf(panelCode int) bool {
	panel, preset := ResolvePanelSelection(panelCode)
	next := layout.AddRootLeafIfEmpty(s.cfg, panel)
	added := layout.NewlyAddedLeafIDs(s.cfg, next)
	next.SelectedLeafID = next.Root.FirstLeafID()
	if len(added) > 0 {
		applyPreset(&next, added[0], preset)
	}
	s.commit(next)
	return true
}

// PreviewSplitterRatio returns the layout as it would look with the given
// ratio applied, without committing, recording history, or persisting.
// Used for live drag feedback.
func (s *Session) PreviewSplitterRatio(splitID string, ratio float64) (layout.Config, bool) {
	return layout.SetSplitRatio(s.cfg, splitID, ratio)
}

// CommitSplitterRatio quantizes and commits a splitter ratio at the end of
// a drag.
func (s *Session) CommitSplitterRatio(splitID string, ratio float64) bool {
	next, ok := layout.SetSplitRatio(s.cfg, splitID, QuantizeRatio(ratio))
	if !ok {
		return false
	}
	next.SelectedLeafID = s.cfg.SelectedLeafID
	s.commit(next)
	return true
}

// Undo restores the previous committed layout.
func (s *Session) Undo() bool {
	restored, ok := s.history.Undo(s.cfg)
	if !ok {
		return false
	}
	s.cfg = layout.Sanitize(restored)
	s.persistCurrent()
	return true
}

// Redo restores the layout undone last.
func (s *Session) Redo() bool {
	restored, ok := s.history.Redo(s.cfg)
	if !ok {
		return false
	}
	s.cfg = layout.Sanitize(restored)
	s.persistCurrent()
	return true
}

// ResetToDefault installs the bundled default layout as a committed edit.
func (s *Session) ResetToDefault() {
	next := layout.DefaultConfig()
	next.SelectedLeafID = next.Root.FirstLeafID()
	s.commit(layout.Sanitize(next))
}

func (s *Session) commit(next layout.Config) {
	s.history.RecordCommit(s.cfg)
	s.cfg = layout.Sanitize(next)
	s.persistCurrent()
}

func (s *Session) persistCurrent() {
	if s.persist != nil {
		s.persist(s.cfg.Clone())
	}
}

func applyPreset(cfg *layout.Config, leafID string, preset []int) {
	if leafID == "" || preset == nil {
		return
	}
	if panel, ok := cfg.Root.PanelForLeaf(leafID); !ok || panel != layout.PanelButtonCluster {
		return
	}
	cfg.ButtonClusters = layout.UpsertClusterActions(cfg.ButtonClusters, leafID, preset)
}

package layout

import (
	"slices"
	"testing"
)

func twoLeafConfig() Config {
	return Sanitize(Config{
		Root: SplitNode("s1", AxisVertical, 0.5,
			LeafNode("l1", PanelTrackList),
			LeafNode("l2", PanelStatusBar),
		),
	})
}

func TestReplaceLeafPanel(t *testing.T) {
	cfg := twoLeafConfig()

	out, ok := ReplaceLeafPanel(cfg, "l2", PanelSeekBar)
	if !ok {
		t.Fatal("replace rejected")
	}
	if panel, _ := out.Root.PanelForLeaf("l2"); panel != PanelSeekBar {
		t.Errorf("panel = %v, want seek bar", panel)
	}

	// Unknown leaf is rejected.
	if _, ok := ReplaceLeafPanel(cfg, "l9", PanelSeekBar); ok {
		t.Error("replace accepted unknown leaf id")
	}

	// Split ids are not leaves.
	if _, ok := ReplaceLeafPanel(cfg, "s1", PanelSeekBar); ok {
		t.Error("replace accepted a split id")
	}
}

func TestReplaceLeafPanelSamePanel(t *testing.T) {
	cfg := twoLeafConfig()
	out, ok := ReplaceLeafPanel(cfg, "l1", PanelTrackList)
	if !ok {
		t.Fatal("replace rejected")
	}
	if !slices.Equal(out.Root.LeafIDs(), cfg.Root.LeafIDs()) {
		t.Errorf("leaf ids changed: %v -> %v", cfg.Root.LeafIDs(), out.Root.LeafIDs())
	}
}

func TestReplaceLeafPanelWithNoneDeletes(t *testing.T) {
	cfg := twoLeafConfig()
	out, ok := ReplaceLeafPanel(cfg, "l1", PanelNone)
	if !ok {
		t.Fatal("replace rejected")
	}
	if out.Root.Kind != NodeLeaf || out.Root.ID != "l2" {
		t.Errorf("root = %+v, want surviving leaf l2", out.Root)
	}
}

func TestReplaceLeafAllowsDuplicatePanels(t *testing.T) {
	cfg := twoLeafConfig()
	out, ok := ReplaceLeafPanel(cfg, "l2", PanelTrackList)
	if !ok {
		t.Fatal("replace rejected")
	}
	panels := collectPanels(out.Root)
	want := []PanelKind{PanelTrackList, PanelTrackList}
	if !slices.Equal(panels, want) {
		t.Errorf("panels = %v, want %v", panels, want)
	}
}

func TestSplitLeaf(t *testing.T) {
	cfg := twoLeafConfig()
	out, ok := SplitLeaf(cfg, "l1", AxisHorizontal, PanelSpacer)
	if !ok {
		t.Fatal("split rejected")
	}

	split := out.Root.First
	if split.Kind != NodeSplit {
		t.Fatalf("first child = %+v, want split", split)
	}
	if split.Axis != AxisHorizontal {
		t.Errorf("axis = %v, want horizontal", split.Axis)
	}
	if split.Ratio != 0.5 {
		t.Errorf("ratio = %v, want 0.5", split.Ratio)
	}

	// Original leaf keeps its identity as the first child; the new
	// sibling is always second.
	if split.First.ID != "l1" || split.First.Panel != PanelTrackList {
		t.Errorf("first child = %+v, want original leaf l1", split.First)
	}
	if split.Second.Kind != NodeLeaf || split.Second.Panel != PanelSpacer {
		t.Errorf("second child = %+v, want spacer leaf", split.Second)
	}
	if split.Second.ID == "l1" || split.Second.ID == "l2" || split.Second.ID == "" {
		t.Errorf("new leaf id = %q, want a fresh id", split.Second.ID)
	}

	assertUniqueIDs(t, out.Root)
}

func TestSplitLeafWithNoneCollapsesBack(t *testing.T) {
	cfg := twoLeafConfig()
	out, ok := SplitLeaf(cfg, "l1", AxisVertical, PanelNone)
	if !ok {
		t.Fatal("split rejected")
	}
	// The empty second branch compacts away, leaving the structure
	// unchanged.
	if !slices.Equal(out.Root.LeafIDs(), cfg.Root.LeafIDs()) {
		t.Errorf("leaf ids = %v, want %v", out.Root.LeafIDs(), cfg.Root.LeafIDs())
	}
}

func TestSplitLeafUnknownID(t *testing.T) {
	if _, ok := SplitLeaf(twoLeafConfig(), "l9", AxisVertical, PanelSpacer); ok {
		t.Error("split accepted unknown leaf id")
	}
}

func TestSplitThenDeleteNewLeafRestores(t *testing.T) {
	cfg := twoLeafConfig()
	split, ok := SplitLeaf(cfg, "l1", AxisHorizontal, PanelSpacer)
	if !ok {
		t.Fatal("split rejected")
	}
	newID := split.Root.First.Second.ID

	out, ok := DeleteLeaf(split, newID)
	if !ok {
		t.Fatal("delete rejected")
	}
	if !slices.Equal(out.Root.LeafIDs(), cfg.Root.LeafIDs()) {
		t.Errorf("leaf ids = %v, want %v", out.Root.LeafIDs(), cfg.Root.LeafIDs())
	}
	for _, id := range cfg.Root.LeafIDs() {
		got, _ := out.Root.PanelForLeaf(id)
		want, _ := cfg.Root.PanelForLeaf(id)
		if got != want {
			t.Errorf("panel for %s = %v, want %v", id, got, want)
		}
	}
}

func TestDeleteLeaf(t *testing.T) {
	cfg := twoLeafConfig()

	out, ok := DeleteLeaf(cfg, "l1")
	if !ok {
		t.Fatal("delete rejected")
	}
	if out.Root.Kind != NodeLeaf || out.Root.ID != "l2" {
		t.Errorf("root = %+v, want surviving leaf l2", out.Root)
	}

	// Deleting the last leaf leaves an empty root.
	out, ok = DeleteLeaf(out, "l2")
	if !ok {
		t.Fatal("delete rejected")
	}
	if !out.Root.IsEmpty() {
		t.Errorf("root = %+v, want empty", out.Root)
	}

	if _, ok := DeleteLeaf(out, "l2"); ok {
		t.Error("delete accepted id absent from empty tree")
	}
}

func TestDeleteLeafCollapsesNestedSplits(t *testing.T) {
	cfg := Sanitize(Config{
		Root: SplitNode("s1", AxisVertical, 0.3,
			LeafNode("l1", PanelPlaylistSwitcher),
			SplitNode("s2", AxisHorizontal, 0.6,
				LeafNode("l2", PanelTrackList),
				LeafNode("l3", PanelStatusBar),
			),
		),
	})

	out, ok := DeleteLeaf(cfg, "l3")
	if !ok {
		t.Fatal("delete rejected")
	}
	if out.Root.Kind != NodeSplit || out.Root.ID != "s1" {
		t.Fatalf("root = %+v, want split s1", out.Root)
	}
	if out.Root.Second.Kind != NodeLeaf || out.Root.Second.ID != "l2" {
		t.Errorf("second child = %+v, want leaf l2 after collapse", out.Root.Second)
	}
}

func TestSetSplitRatio(t *testing.T) {
	cfg := twoLeafConfig()

	out, ok := SetSplitRatio(cfg, "s1", 0.3)
	if !ok {
		t.Fatal("set ratio rejected")
	}
	if out.Root.Ratio != 0.3 {
		t.Errorf("ratio = %v, want 0.3", out.Root.Ratio)
	}

	// Out-of-range values are clamped, not rejected.
	out, ok = SetSplitRatio(cfg, "s1", 0.99)
	if !ok {
		t.Fatal("set ratio rejected")
	}
	if out.Root.Ratio != 0.95 {
		t.Errorf("ratio = %v, want clamp to 0.95", out.Root.Ratio)
	}

	if _, ok := SetSplitRatio(cfg, "s9", 0.5); ok {
		t.Error("set ratio accepted unknown split id")
	}
	if _, ok := SetSplitRatio(cfg, "l1", 0.5); ok {
		t.Error("set ratio accepted a leaf id")
	}
}

func TestAddRootLeafIfEmpty(t *testing.T) {
	empty := Sanitize(Config{})

	out := AddRootLeafIfEmpty(empty, PanelSeekBar)
	if out.Root.Kind != NodeLeaf || out.Root.Panel != PanelSeekBar {
		t.Errorf("root = %+v, want seek bar leaf", out.Root)
	}

	// PanelNone defaults to a track list.
	out = AddRootLeafIfEmpty(empty, PanelNone)
	if out.Root.Kind != NodeLeaf || out.Root.Panel != PanelTrackList {
		t.Errorf("root = %+v, want track list leaf", out.Root)
	}

	// Non-empty trees come back unchanged.
	cfg := twoLeafConfig()
	out = AddRootLeafIfEmpty(cfg, PanelSeekBar)
	if !slices.Equal(out.Root.LeafIDs(), cfg.Root.LeafIDs()) {
		t.Errorf("leaf ids = %v, want %v", out.Root.LeafIDs(), cfg.Root.LeafIDs())
	}
}

func TestMutationsDoNotAliasInput(t *testing.T) {
	cfg := twoLeafConfig()
	out, ok := SetSplitRatio(cfg, "s1", 0.3)
	if !ok {
		t.Fatal("set ratio rejected")
	}
	out.Root.First.Panel = PanelSpacer
	if panel, _ := cfg.Root.PanelForLeaf("l1"); panel != PanelTrackList {
		t.Error("mutating the result leaked into the input config")
	}
}

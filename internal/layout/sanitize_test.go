package layout

import (
	"math"
	"reflect"
	"slices"
	"testing"
)

func collectPanels(root *Node) []PanelKind {
	var panels []PanelKind
	root.Walk(func(n *Node) {
		if n.Kind == NodeLeaf {
			panels = append(panels, n.Panel)
		}
	})
	return panels
}

func assertUniqueIDs(t *testing.T, root *Node) {
	t.Helper()
	seen := make(map[string]bool)
	root.Walk(func(n *Node) {
		if n.Kind == NodeEmpty {
			return
		}
		if n.ID == "" {
			t.Errorf("node of kind %d has empty id", n.Kind)
		}
		if seen[n.ID] {
			t.Errorf("duplicate id %q", n.ID)
		}
		seen[n.ID] = true
	})
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := map[string]Config{
		"default": DefaultConfig(),
		"corrupt": {
			Root: SplitNode("s1", AxisVertical, 3.7,
				LeafNode("l1", PanelControlBar),
				SplitNode("s1", AxisHorizontal, math.NaN(),
					LeafNode("", PanelAlbumArtPane),
					LeafNode("l1", PanelTrackList),
				),
			),
		},
		"empty": {},
	}

	for name, cfg := range inputs {
		t.Run(name, func(t *testing.T) {
			once := Sanitize(cfg)
			twice := Sanitize(once)
			if !reflect.DeepEqual(once, twice) {
				t.Errorf("second sanitize changed the config:\nonce:  %+v\ntwice: %+v", once, twice)
			}
		})
	}
}

func TestSanitizeKeepsDuplicatePanels(t *testing.T) {
	cfg := Sanitize(Config{
		Root: SplitNode("s1", AxisVertical, 0.5,
			LeafNode("a", PanelTrackList),
			LeafNode("b", PanelTrackList),
		),
	})
	if got := collectPanels(cfg.Root); !slices.Equal(got, []PanelKind{PanelTrackList, PanelTrackList}) {
		t.Fatalf("panels = %v, want two track lists", got)
	}

	m := Solve(cfg.Root, 900, 650, SplitterThicknessPx)
	if len(m.Leaves) != 2 {
		t.Fatalf("solved %d leaves, want 2", len(m.Leaves))
	}
	for _, l := range m.Leaves {
		if l.Panel != PanelTrackList {
			t.Errorf("leaf %s panel = %v, want track list", l.ID, l.Panel)
		}
	}
}

func TestSanitizeRepairsDuplicateAndBlankIDs(t *testing.T) {
	cfg := Config{
		Root: SplitNode("s1", AxisVertical, 0.5,
			LeafNode("l1", PanelTrackList),
			SplitNode("s1", AxisHorizontal, 0.5,
				LeafNode("l1", PanelStatusBar),
				LeafNode("", PanelSpacer),
			),
		),
	}

	out := Sanitize(cfg)
	assertUniqueIDs(t, out.Root)

	// First occurrence in traversal order keeps its id.
	if out.Root.ID != "s1" {
		t.Errorf("root split id = %q, want s1", out.Root.ID)
	}
	if out.Root.First.ID != "l1" {
		t.Errorf("first leaf id = %q, want l1", out.Root.First.ID)
	}
	if out.Root.Second.ID == "s1" {
		t.Error("duplicate split id was not repaired")
	}
	if got := out.Root.Second.First.ID; got == "l1" || got == "" {
		t.Errorf("duplicate leaf id was not repaired: %q", got)
	}
}

func TestSanitizeClampsRatios(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"too high", 0.99, 0.95},
		{"too low", 0.01, 0.05},
		{"nan", math.NaN(), 0.5},
		{"positive inf", math.Inf(1), 0.5},
		{"negative inf", math.Inf(-1), 0.5},
		{"in range", 0.42, 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Root: SplitNode("s1", AxisVertical, tt.ratio,
					LeafNode("l1", PanelTrackList),
					LeafNode("l2", PanelStatusBar),
				),
			}
			out := Sanitize(cfg)
			if out.Root.Ratio != tt.want {
				t.Errorf("ratio = %v, want %v", out.Root.Ratio, tt.want)
			}
		})
	}
}

func TestSanitizeCompactsEmptyBranches(t *testing.T) {
	t.Run("one empty side collapses to the other", func(t *testing.T) {
		cfg := Config{
			Root: SplitNode("s1", AxisVertical, 0.5,
				EmptyNode(),
				LeafNode("l1", PanelTrackList),
			),
		}
		out := Sanitize(cfg)
		if out.Root.Kind != NodeLeaf || out.Root.ID != "l1" {
			t.Errorf("root = %+v, want surviving leaf l1", out.Root)
		}
	})

	t.Run("both sides empty collapses to empty", func(t *testing.T) {
		cfg := Config{
			Root: SplitNode("s1", AxisVertical, 0.5, EmptyNode(), EmptyNode()),
		}
		out := Sanitize(cfg)
		if !out.Root.IsEmpty() {
			t.Errorf("root = %+v, want empty", out.Root)
		}
	})

	t.Run("none leaf becomes empty and collapses", func(t *testing.T) {
		cfg := Config{
			Root: SplitNode("s1", AxisVertical, 0.5,
				LeafNode("l1", PanelNone),
				LeafNode("l2", PanelSeekBar),
			),
		}
		out := Sanitize(cfg)
		if out.Root.Kind != NodeLeaf || out.Root.Panel != PanelSeekBar {
			t.Errorf("root = %+v, want seek bar leaf", out.Root)
		}
	})
}

func TestSanitizeExpandsControlBar(t *testing.T) {
	cfg := Config{Root: LeafNode("l1", PanelControlBar)}
	out := Sanitize(cfg)

	assertUniqueIDs(t, out.Root)

	want := []PanelKind{
		PanelButtonCluster,
		PanelButtonCluster,
		PanelButtonCluster,
		PanelVolumeSlider,
		PanelSeekBar,
	}
	if got := collectPanels(out.Root); !slices.Equal(got, want) {
		t.Fatalf("panels = %v, want %v", got, want)
	}

	// Fresh clusters with no prior configuration pick up the index
	// presets: import, transport, utility in traversal order.
	if len(out.ButtonClusters) != 3 {
		t.Fatalf("cluster instances = %d, want 3", len(out.ButtonClusters))
	}
	wantActions := [][]int{
		ImportClusterPreset,
		TransportClusterPreset,
		UtilityClusterPreset,
	}
	for i, inst := range out.ButtonClusters {
		if !slices.Equal(inst.Actions, wantActions[i]) {
			t.Errorf("cluster %d actions = %v, want %v", i, inst.Actions, wantActions[i])
		}
	}
}

func TestSanitizeExpandsAlbumArtPane(t *testing.T) {
	cfg := Config{Root: LeafNode("l1", PanelAlbumArtPane)}
	out := Sanitize(cfg)

	want := []PanelKind{PanelMetadataViewer, PanelAlbumArtViewer}
	if got := collectPanels(out.Root); !slices.Equal(got, want) {
		t.Fatalf("panels = %v, want %v", got, want)
	}
	if out.Root.Kind != NodeSplit || out.Root.Axis != AxisHorizontal {
		t.Errorf("root = %+v, want horizontal split", out.Root)
	}

	if len(out.MetadataViewers) != 1 {
		t.Fatalf("metadata viewers = %d, want 1", len(out.MetadataViewers))
	}
	if out.MetadataViewers[0].TextFormat != DefaultMetadataTemplate {
		t.Errorf("text format = %q, want default template", out.MetadataViewers[0].TextFormat)
	}
	if len(out.AlbumArtViewers) != 1 {
		t.Errorf("album art viewers = %d, want 1", len(out.AlbumArtViewers))
	}
}

func TestSanitizeNormalizesClusterVariants(t *testing.T) {
	cfg := Config{
		Root: SplitNode("s1", AxisVertical, 0.5,
			LeafNode("l1", PanelTransportButtonCluster),
			LeafNode("l2", PanelImportButtonCluster),
		),
	}
	out := Sanitize(cfg)
	for _, panel := range collectPanels(out.Root) {
		if panel != PanelButtonCluster {
			t.Errorf("panel = %v, want generic button cluster", panel)
		}
	}
}

func TestSanitizeSelection(t *testing.T) {
	base := Config{
		Root: SplitNode("s1", AxisVertical, 0.5,
			LeafNode("l1", PanelTrackList),
			LeafNode("l2", PanelStatusBar),
		),
	}

	kept := base.Clone()
	kept.SelectedLeafID = "l2"
	if got := Sanitize(kept).SelectedLeafID; got != "l2" {
		t.Errorf("selection = %q, want l2", got)
	}

	stale := base.Clone()
	stale.SelectedLeafID = "l9"
	if got := Sanitize(stale).SelectedLeafID; got != "" {
		t.Errorf("selection = %q, want cleared", got)
	}

	// A split id is not a valid selection.
	splitSel := base.Clone()
	splitSel.SelectedLeafID = "s1"
	if got := Sanitize(splitSel).SelectedLeafID; got != "" {
		t.Errorf("selection = %q, want cleared for split id", got)
	}
}

func TestSanitizeArtColumnBounds(t *testing.T) {
	tests := []struct {
		name             string
		minPx, maxPx     int
		wantMin, wantMax int
	}{
		{"zero values get defaults", 0, 0, 36, 240},
		{"negative values get defaults", -5, -5, 36, 240},
		{"max below min raises max", 100, 50, 100, 100},
		{"valid values kept", 40, 200, 40, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Root:                        LeafNode("l1", PanelTrackList),
				PlaylistArtColumnMinWidthPx: tt.minPx,
				PlaylistArtColumnMaxWidthPx: tt.maxPx,
			}
			out := Sanitize(cfg)
			if out.PlaylistArtColumnMinWidthPx != tt.wantMin || out.PlaylistArtColumnMaxWidthPx != tt.wantMax {
				t.Errorf("bounds = (%d, %d), want (%d, %d)",
					out.PlaylistArtColumnMinWidthPx, out.PlaylistArtColumnMaxWidthPx,
					tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestSanitizeRaisesSplitMinimums(t *testing.T) {
	cfg := Config{
		Root: SplitNode("s1", AxisVertical, 0.5,
			LeafNode("l1", PanelSpacer),
			LeafNode("l2", PanelSpacer),
		),
	}
	cfg.Root.MinFirstPx = 0
	cfg.Root.MinSecondPx = -10

	out := Sanitize(cfg)
	if out.Root.MinFirstPx < 16 || out.Root.MinSecondPx < 16 {
		t.Errorf("minimums = (%d, %d), want at least 16",
			out.Root.MinFirstPx, out.Root.MinSecondPx)
	}
}

func TestSanitizeClearedClusterStaysCleared(t *testing.T) {
	cfg := Config{
		Root: LeafNode("l1", PanelButtonCluster),
		ButtonClusters: []ButtonClusterInstance{
			{LeafID: "l1", Actions: nil},
		},
	}
	out := Sanitize(cfg)
	if len(out.ButtonClusters) != 1 {
		t.Fatalf("cluster instances = %d, want 1", len(out.ButtonClusters))
	}
	if len(out.ButtonClusters[0].Actions) != 0 {
		t.Errorf("actions = %v, want empty: explicit clears must survive", out.ButtonClusters[0].Actions)
	}
}

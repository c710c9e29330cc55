package layout

import "math"

const (
	minRatio       = 0.05
	maxRatio       = 0.95
	minSplitSizePx = 16
)

// Sanitize repairs a layout config so it satisfies every tree invariant:
// unique ids, finite clamped ratios, no deprecated panel kinds, no empty
// split branches. Any input, however corrupted, sanitizes to some valid
// tree. Sanitize is idempotent.
func Sanitize(cfg Config) Config {
	gen := newIDGenerator(cfg.Root)
	claimed := make(map[string]struct{})

	out := cfg.Clone()
	out.Version = SchemaVersion
	out.Root = sanitizeNode(cfg.Root, gen, claimed)

	if out.Root.FindLeaf(out.SelectedLeafID) == nil {
		out.SelectedLeafID = ""
	}

	out.PlaylistArtColumnMinWidthPx, out.PlaylistArtColumnMaxWidthPx =
		sanitizeArtColumnBounds(out.PlaylistArtColumnMinWidthPx, out.PlaylistArtColumnMaxWidthPx)

	out.ButtonClusters = syncButtonClusters(out.Root, cfg.ButtonClusters)
	out.MetadataViewers = syncMetadataViewers(out.Root, cfg.MetadataViewers)
	out.AlbumArtViewers = syncAlbumArtViewers(out.Root, cfg.AlbumArtViewers)
	return out
}

func sanitizeNode(n *Node, gen *idGenerator, claimed map[string]struct{}) *Node {
	if n.IsEmpty() {
		return EmptyNode()
	}

	switch n.Kind {
	case NodeLeaf:
		if n.Panel.Deprecated() {
			// One deprecated leaf explodes into a whole subtree; the
			// expansion is itself sanitized so its ids are claimed too.
			return sanitizeNode(expandDeprecated(n.Panel, gen), gen, claimed)
		}
		panel := n.Panel.normalized()
		if panel == PanelNone {
			return EmptyNode()
		}
		return LeafNode(claimID(n.ID, gen, claimed, gen.NextLeafID), panel)

	case NodeSplit:
		id := claimID(n.ID, gen, claimed, gen.NextSplitID)
		first := sanitizeNode(n.First, gen, claimed)
		second := sanitizeNode(n.Second, gen, claimed)

		// Compaction: a split never keeps an empty branch. The collapsed
		// split's id stays consumed, which is harmless.
		if first.IsEmpty() && second.IsEmpty() {
			return EmptyNode()
		}
		if first.IsEmpty() {
			return second
		}
		if second.IsEmpty() {
			return first
		}

		return &Node{
			Kind:        NodeSplit,
			ID:          id,
			Axis:        n.Axis,
			Ratio:       sanitizeRatio(n.Ratio),
			MinFirstPx:  max(n.MinFirstPx, minSplitSizePx),
			MinSecondPx: max(n.MinSecondPx, minSplitSizePx),
			First:       first,
			Second:      second,
		}

	default:
		return EmptyNode()
	}
}

func claimID(id string, gen *idGenerator, claimed map[string]struct{}, fresh func() string) string {
	if id != "" {
		if _, dup := claimed[id]; !dup {
			claimed[id] = struct{}{}
			return id
		}
	}
	next := fresh()
	claimed[next] = struct{}{}
	return next
}

func sanitizeRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0.5
	}
	return clampRatio(ratio)
}

func clampRatio(ratio float64) float64 {
	return math.Min(maxRatio, math.Max(minRatio, ratio))
}

// expandDeprecated builds the replacement subtree for a deprecated panel
// kind, with fresh ids drawn from gen.
func expandDeprecated(panel PanelKind, gen *idGenerator) *Node {
	switch panel {
	case PanelControlBar:
		// The old control bar becomes a row of button clusters plus a
		// volume slider, stacked above a seek bar. Cluster order matters:
		// action presets are assigned by cluster index (import, transport,
		// utility).
		utilityAndVolume := SplitNode(gen.NextSplitID(), AxisVertical, 0.6,
			LeafNode(gen.NextLeafID(), PanelButtonCluster),
			LeafNode(gen.NextLeafID(), PanelVolumeSlider),
		)
		transportRest := SplitNode(gen.NextSplitID(), AxisVertical, 0.55,
			LeafNode(gen.NextLeafID(), PanelButtonCluster),
			utilityAndVolume,
		)
		row := SplitNode(gen.NextSplitID(), AxisVertical, 0.25,
			LeafNode(gen.NextLeafID(), PanelButtonCluster),
			transportRest,
		)
		return SplitNode(gen.NextSplitID(), AxisHorizontal, 0.6,
			row,
			LeafNode(gen.NextLeafID(), PanelSeekBar),
		)

	case PanelAlbumArtPane:
		return SplitNode(gen.NextSplitID(), AxisHorizontal, 0.35,
			LeafNode(gen.NextLeafID(), PanelMetadataViewer),
			LeafNode(gen.NextLeafID(), PanelAlbumArtViewer),
		)

	default:
		return EmptyNode()
	}
}

func sanitizeArtColumnBounds(minPx, maxPx int) (int, int) {
	if minPx <= 0 {
		minPx = defaultArtColumnMinWidthPx
	}
	if maxPx <= 0 {
		maxPx = defaultArtColumnMaxWidthPx
	}
	if maxPx < minPx {
		maxPx = minPx
	}
	return minPx, maxPx
}

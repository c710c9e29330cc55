package layout

// Mutation operations. Each takes an already-sanitized config and returns
// a sanitized result plus ok=false when the target id does not exist.
// Rejection has no side effect; callers treat it as a silent no-op.

// ReplaceLeafPanel swaps the panel hosted by a leaf. Replacing with
// PanelNone is a delete, not a placeholder assignment. Replacing a leaf
// with its current panel returns the sanitized input unchanged. Duplicate
// panel kinds across the tree are allowed.
func ReplaceLeafPanel(cfg Config, leafID string, panel PanelKind) (Config, bool) {
	if panel == PanelNone {
		return DeleteLeaf(cfg, leafID)
	}

	out := cfg.Clone()
	leaf := out.Root.FindLeaf(leafID)
	if leaf == nil {
		return Config{}, false
	}
	if leaf.Panel == panel {
		return Sanitize(out), true
	}
	leaf.Panel = panel
	return Sanitize(out), true
}

// SplitLeaf replaces a leaf with a split whose first child is the original
// leaf (same id and panel) and whose second child is a fresh leaf hosting
// panel, or an empty branch for PanelNone. The new split starts balanced.
func SplitLeaf(cfg Config, leafID string, axis SplitAxis, panel PanelKind) (Config, bool) {
	out := cfg.Clone()
	gen := newIDGenerator(out.Root)

	replaced := replaceNode(&out.Root, leafID, NodeLeaf, func(leaf *Node) *Node {
		second := EmptyNode()
		if panel != PanelNone {
			second = LeafNode(gen.NextLeafID(), panel)
		}
		return SplitNode(gen.NextSplitID(), axis, 0.5, leaf, second)
	})
	if !replaced {
		return Config{}, false
	}
	return Sanitize(out), true
}

// DeleteLeaf removes a leaf; compaction collapses the orphaned split.
// Deleting the only leaf leaves an empty root.
func DeleteLeaf(cfg Config, leafID string) (Config, bool) {
	out := cfg.Clone()
	replaced := replaceNode(&out.Root, leafID, NodeLeaf, func(*Node) *Node {
		return EmptyNode()
	})
	if !replaced {
		return Config{}, false
	}
	return Sanitize(out), true
}

// SetSplitRatio overwrites a split's ratio, subject to sanitizer clamping.
// Whether the change is a live preview or a committed edit is caller
// policy.
func SetSplitRatio(cfg Config, splitID string, ratio float64) (Config, bool) {
	out := cfg.Clone()
	split := out.Root.FindSplit(splitID)
	if split == nil {
		return Config{}, false
	}
	split.Ratio = ratio
	return Sanitize(out), true
}

// AddRootLeafIfEmpty installs a single-leaf root when the tree is empty,
// and returns the sanitized input unchanged otherwise. PanelNone defaults
// to a track list so the result is never an empty leaf.
func AddRootLeafIfEmpty(cfg Config, panel PanelKind) Config {
	out := cfg.Clone()
	if !out.Root.IsEmpty() {
		return Sanitize(out)
	}
	if panel == PanelNone {
		panel = PanelTrackList
	}
	gen := newIDGenerator(out.Root)
	out.Root = LeafNode(gen.NextLeafID(), panel)
	return Sanitize(out)
}

// replaceNode swaps the node with the given id and kind using build, which
// receives the detached original node. Returns false when no node matched.
func replaceNode(slot **Node, id string, kind NodeKind, build func(*Node) *Node) bool {
	node := *slot
	if node == nil || id == "" {
		return false
	}
	if node.Kind == kind && node.ID == id {
		*slot = build(node)
		return true
	}
	if node.Kind == NodeSplit {
		if replaceNode(&node.First, id, kind, build) {
			return true
		}
		return replaceNode(&node.Second, id, kind, build)
	}
	return false
}

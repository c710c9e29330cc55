package layout

// SchemaVersion is the current persisted layout schema version.
const SchemaVersion = 2

// SplitAxis is the orientation of a splitter handle. A horizontal splitter
// stacks its children vertically (divides height); a vertical splitter
// divides width.
type SplitAxis int

const (
	AxisHorizontal SplitAxis = iota
	AxisVertical
)

// String returns the stable name used in persisted layouts.
func (a SplitAxis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseSplitAxis maps a persisted axis name back to its value.
func ParseSplitAxis(name string) SplitAxis {
	if name == "vertical" {
		return AxisVertical
	}
	return AxisHorizontal
}

// Code returns the stable integer code used at the rendering boundary.
func (a SplitAxis) Code() int {
	return int(a)
}

// SplitAxisFromCode maps a rendering-boundary code back to an axis.
func SplitAxisFromCode(code int) SplitAxis {
	if code == int(AxisVertical) {
		return AxisVertical
	}
	return AxisHorizontal
}

// NodeKind discriminates the three layout node shapes.
type NodeKind int

const (
	NodeEmpty NodeKind = iota
	NodeLeaf
	NodeSplit
)

// Node is one node of the binary layout tree. A nil *Node is treated as
// empty everywhere. Leaf and Split nodes carry a tree-unique ID; empty
// nodes carry nothing.
type Node struct {
	Kind NodeKind
	ID   string

	// Leaf fields.
	Panel PanelKind

	// Split fields. Ratio is the fraction of available space given to
	// First. First and Second are exclusively owned; the tree is acyclic
	// by construction.
	Axis        SplitAxis
	Ratio       float64
	MinFirstPx  int
	MinSecondPx int
	First       *Node
	Second      *Node
}

// EmptyNode returns a placeholder node.
func EmptyNode() *Node {
	return &Node{Kind: NodeEmpty}
}

// LeafNode returns a terminal node hosting one panel.
func LeafNode(id string, panel PanelKind) *Node {
	return &Node{Kind: NodeLeaf, ID: id, Panel: panel}
}

// SplitNode returns an internal node dividing space between two children.
func SplitNode(id string, axis SplitAxis, ratio float64, first, second *Node) *Node {
	return &Node{
		Kind:        NodeSplit,
		ID:          id,
		Axis:        axis,
		Ratio:       ratio,
		MinFirstPx:  24,
		MinSecondPx: 24,
		First:       first,
		Second:      second,
	}
}

// IsEmpty reports whether the node is nil or an empty placeholder.
func (n *Node) IsEmpty() bool {
	return n == nil || n.Kind == NodeEmpty
}

// Clone returns a deep copy of the subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := *n
	clone.First = n.First.Clone()
	clone.Second = n.Second.Clone()
	return &clone
}

// Walk visits every node of the subtree in pre-order, first child before
// second.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	if n.Kind == NodeSplit {
		n.First.Walk(visit)
		n.Second.Walk(visit)
	}
}

// LeafIDs returns the ids of every leaf in traversal order.
func (n *Node) LeafIDs() []string {
	var ids []string
	n.Walk(func(node *Node) {
		if node.Kind == NodeLeaf {
			ids = append(ids, node.ID)
		}
	})
	return ids
}

// FirstLeafID returns the id of the first leaf in traversal order, or ""
// when the tree holds no leaves.
func (n *Node) FirstLeafID() string {
	ids := n.LeafIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// FindLeaf returns the leaf with the given id, or nil.
func (n *Node) FindLeaf(id string) *Node {
	return n.findNode(id, NodeLeaf)
}

// FindSplit returns the split with the given id, or nil.
func (n *Node) FindSplit(id string) *Node {
	return n.findNode(id, NodeSplit)
}

func (n *Node) findNode(id string, kind NodeKind) *Node {
	if n == nil || id == "" {
		return nil
	}
	var found *Node
	n.Walk(func(node *Node) {
		if found == nil && node.Kind == kind && node.ID == id {
			found = node
		}
	})
	return found
}

// PanelForLeaf returns the panel hosted by the leaf with the given id.
func (n *Node) PanelForLeaf(id string) (PanelKind, bool) {
	leaf := n.FindLeaf(id)
	if leaf == nil {
		return PanelNone, false
	}
	return leaf.Panel, true
}

// Config is the top-level persisted layout unit: the schema version, the
// tree root, and two playlist-column width bounds co-located here for
// legacy compatibility. SelectedLeafID is editor-session state and is never
// persisted.
type Config struct {
	Version int
	Root    *Node

	PlaylistArtColumnMinWidthPx int
	PlaylistArtColumnMaxWidthPx int

	ButtonClusters  []ButtonClusterInstance
	MetadataViewers []MetadataViewerInstance
	AlbumArtViewers []AlbumArtViewerInstance

	SelectedLeafID string
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	clone := c
	clone.Root = c.Root.Clone()
	clone.ButtonClusters = cloneButtonClusters(c.ButtonClusters)
	clone.MetadataViewers = append([]MetadataViewerInstance(nil), c.MetadataViewers...)
	clone.AlbumArtViewers = append([]AlbumArtViewerInstance(nil), c.AlbumArtViewers...)
	return clone
}

// NewlyAddedLeafIDs returns leaf ids present in next but not in previous.
func NewlyAddedLeafIDs(previous, next Config) []string {
	seen := make(map[string]struct{})
	for _, id := range previous.Root.LeafIDs() {
		seen[id] = struct{}{}
	}
	var added []string
	for _, id := range next.Root.LeafIDs() {
		if _, ok := seen[id]; !ok {
			added = append(added, id)
		}
	}
	return added
}

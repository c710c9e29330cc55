package layout

// Button-cluster action presets assigned by cluster index when a layout has
// no cluster configuration at all. Action ids 1..12 map to player commands
// at the rendering boundary.
var (
	ImportClusterPreset    = []int{1}
	TransportClusterPreset = []int{2, 3, 4, 5, 6}
	UtilityClusterPreset   = []int{7, 8, 11, 10}
)

const (
	minButtonActionID = 1
	maxButtonActionID = 12

	defaultArtColumnMinWidthPx = 36
	defaultArtColumnMaxWidthPx = 240
)

// DefaultMetadataTemplate is the fallback text template for metadata
// viewer panels.
const DefaultMetadataTemplate = "{title}\n{artist} — {album}"

// DisplayPriority selects which track a viewer panel follows.
type DisplayPriority int

const (
	PriorityDefault DisplayPriority = iota
	PriorityPreferSelection
	PriorityPreferNowPlaying
	PrioritySelectionOnly
	PriorityNowPlayingOnly
)

// MetadataSource selects what a metadata viewer renders.
type MetadataSource int

const (
	MetadataSourceTrack MetadataSource = iota
	MetadataSourceAlbumDescription
	MetadataSourceArtistBio
	MetadataSourceCustomText
)

// ImageSource selects what an album-art viewer renders.
type ImageSource int

const (
	ImageSourceAlbumArt ImageSource = iota
	ImageSourceArtistImage
)

// ButtonClusterInstance binds an action preset to one button-cluster leaf.
type ButtonClusterInstance struct {
	LeafID  string
	Actions []int
}

// MetadataViewerInstance holds per-leaf metadata viewer settings.
type MetadataViewerInstance struct {
	LeafID     string
	Priority   DisplayPriority
	Source     MetadataSource
	TextFormat string
}

// AlbumArtViewerInstance holds per-leaf album-art viewer settings.
type AlbumArtViewerInstance struct {
	LeafID   string
	Priority DisplayPriority
	Source   ImageSource
}

func cloneButtonClusters(instances []ButtonClusterInstance) []ButtonClusterInstance {
	clones := make([]ButtonClusterInstance, len(instances))
	for i, inst := range instances {
		clones[i] = inst
		clones[i].Actions = append([]int(nil), inst.Actions...)
	}
	return clones
}

// SanitizeButtonActions drops action ids outside the valid range.
func SanitizeButtonActions(actions []int) []int {
	var valid []int
	for _, action := range actions {
		if action >= minButtonActionID && action <= maxButtonActionID {
			valid = append(valid, action)
		}
	}
	return valid
}

// DefaultClusterActionsByIndex returns the preset for a cluster slot index.
func DefaultClusterActionsByIndex(index int) []int {
	switch index {
	case 0:
		return append([]int(nil), ImportClusterPreset...)
	case 1:
		return append([]int(nil), TransportClusterPreset...)
	case 2:
		return append([]int(nil), UtilityClusterPreset...)
	default:
		return nil
	}
}

func leafIDsWithPanel(root *Node, panel PanelKind) []string {
	var ids []string
	root.Walk(func(node *Node) {
		if node.Kind == NodeLeaf && node.Panel == panel {
			ids = append(ids, node.ID)
		}
	})
	return ids
}

// syncButtonClusters rebuilds the cluster instance list against the current
// leaf set: one instance per cluster leaf in traversal order, settings
// preserved by leaf id. Index-based presets only apply when the layout had
// no cluster configuration at all, so a user who cleared a cluster keeps it
// cleared.
func syncButtonClusters(root *Node, instances []ButtonClusterInstance) []ButtonClusterInstance {
	leafIDs := leafIDsWithPanel(root, PanelButtonCluster)
	if leafIDs == nil {
		return nil
	}
	hadInstances := len(instances) > 0
	actionsByLeaf := make(map[string][]int)
	for _, inst := range instances {
		if inst.LeafID == "" {
			continue
		}
		actionsByLeaf[inst.LeafID] = SanitizeButtonActions(inst.Actions)
	}

	synced := make([]ButtonClusterInstance, 0, len(leafIDs))
	for index, leafID := range leafIDs {
		actions, ok := actionsByLeaf[leafID]
		if !ok && !hadInstances {
			actions = DefaultClusterActionsByIndex(index)
		}
		synced = append(synced, ButtonClusterInstance{LeafID: leafID, Actions: actions})
	}
	return synced
}

func syncMetadataViewers(root *Node, instances []MetadataViewerInstance) []MetadataViewerInstance {
	leafIDs := leafIDsWithPanel(root, PanelMetadataViewer)
	if leafIDs == nil {
		return nil
	}
	byLeaf := make(map[string]MetadataViewerInstance)
	for _, inst := range instances {
		if inst.LeafID == "" {
			continue
		}
		byLeaf[inst.LeafID] = inst
	}

	synced := make([]MetadataViewerInstance, 0, len(leafIDs))
	for _, leafID := range leafIDs {
		inst, ok := byLeaf[leafID]
		if !ok {
			inst = MetadataViewerInstance{LeafID: leafID, TextFormat: DefaultMetadataTemplate}
		}
		if inst.TextFormat == "" {
			inst.TextFormat = DefaultMetadataTemplate
		}
		inst.LeafID = leafID
		synced = append(synced, inst)
	}
	return synced
}

func syncAlbumArtViewers(root *Node, instances []AlbumArtViewerInstance) []AlbumArtViewerInstance {
	leafIDs := leafIDsWithPanel(root, PanelAlbumArtViewer)
	if leafIDs == nil {
		return nil
	}
	byLeaf := make(map[string]AlbumArtViewerInstance)
	for _, inst := range instances {
		if inst.LeafID == "" {
			continue
		}
		byLeaf[inst.LeafID] = inst
	}

	synced := make([]AlbumArtViewerInstance, 0, len(leafIDs))
	for _, leafID := range leafIDs {
		inst := byLeaf[leafID]
		inst.LeafID = leafID
		synced = append(synced, inst)
	}
	return synced
}

// ClusterActionsForLeaf returns the actions configured for a cluster leaf.
func ClusterActionsForLeaf(instances []ButtonClusterInstance, leafID string) []int {
	for _, inst := range instances {
		if inst.LeafID == leafID {
			return append([]int(nil), inst.Actions...)
		}
	}
	return nil
}

// UpsertClusterActions installs an action list for a cluster leaf,
// creating the instance when missing.
func UpsertClusterActions(instances []ButtonClusterInstance, leafID string, actions []int) []ButtonClusterInstance {
	sanitized := SanitizeButtonActions(actions)
	for i := range instances {
		if instances[i].LeafID == leafID {
			instances[i].Actions = sanitized
			return instances
		}
	}
	return append(instances, ButtonClusterInstance{LeafID: leafID, Actions: sanitized})
}

package layout

// Schema migration. Persisted layouts come in two shapes: the current
// tree form (a "root" node table) and the legacy fixed five-region form.
// Detection is structural; both normalize into the current Config. The
// result still needs a Sanitize pass before use.

// Reference canvas dimensions used to approximate ratios from the legacy
// format's absolute band sizes. They do not match any particular historical
// window size; the migration contract is an approximately equivalent
// layout, not pixel parity.
const (
	legacyRefWidthPx  = 900
	legacyRefHeightPx = 650
)

// Legacy region slots, in persisted order.
const (
	legacyRegionTop = iota
	legacyRegionLeft
	legacyRegionCenter
	legacyRegionRight
	legacyRegionBottom
	legacyRegionCount
)

// Legacy per-field defaults.
const (
	legacyDefaultTopPx    = 74
	legacyDefaultLeftPx   = 220
	legacyDefaultRightPx  = 230
	legacyDefaultBottomPx = 24
)

func legacyDefaultRegionPanels() [legacyRegionCount]PanelKind {
	return [legacyRegionCount]PanelKind{
		PanelControlBar,
		PanelPlaylistSwitcher,
		PanelTrackList,
		PanelAlbumArtPane,
		PanelStatusBar,
	}
}

// Migrate normalizes raw deserialized layout data of either schema into a
// current-schema config. Missing fields fall back to their documented
// defaults; a nil or empty document yields the default legacy layout
// converted to a tree.
func Migrate(raw map[string]any) Config {
	if isCurrentSchema(raw) {
		return migrateCurrent(raw)
	}
	return migrateLegacy(raw)
}

func isCurrentSchema(raw map[string]any) bool {
	if raw == nil {
		return false
	}
	if _, ok := raw["root"]; ok {
		return true
	}
	_, ok := raw["version"]
	return ok
}

func migrateCurrent(raw map[string]any) Config {
	return Config{
		Version:                     SchemaVersion,
		Root:                        decodeNode(asMap(raw["root"])),
		PlaylistArtColumnMinWidthPx: asInt(raw["playlist_album_art_column_min_width_px"], defaultArtColumnMinWidthPx),
		PlaylistArtColumnMaxWidthPx: asInt(raw["playlist_album_art_column_max_width_px"], defaultArtColumnMaxWidthPx),
		ButtonClusters:              decodeButtonClusters(raw["button_cluster"]),
		MetadataViewers:             decodeMetadataViewers(raw["metadata_viewer_panel"]),
		AlbumArtViewers:             decodeAlbumArtViewers(raw["album_art_viewer_panel"]),
	}
}

func migrateLegacy(raw map[string]any) Config {
	panels := legacyDefaultRegionPanels()
	if entries := asSlice(raw["region_panels"]); entries != nil {
		for i := 0; i < legacyRegionCount && i < len(entries); i++ {
			panels[i] = ParsePanelKind(asString(entries[i]))
		}
	}
	topPx := asInt(raw["top_size_px"], legacyDefaultTopPx)
	leftPx := asInt(raw["left_size_px"], legacyDefaultLeftPx)
	rightPx := asInt(raw["right_size_px"], legacyDefaultRightPx)
	bottomPx := asInt(raw["bottom_size_px"], legacyDefaultBottomPx)

	gen := &idGenerator{taken: make(map[string]struct{}), next: 1}
	regionLeaf := func(region int) *Node {
		if panels[region] == PanelNone {
			return nil
		}
		return LeafNode(gen.NextLeafID(), panels[region])
	}

	// Rebuild the five-region geometry as a chain of binary splits,
	// approximating each band ratio against the reference canvas. A None
	// region drops out entirely: its side of the split collapses to the
	// opposite side rather than leaving an empty branch.
	centerRight := joinLegacySplit(gen, AxisVertical,
		1-float64(rightPx)/legacyRefWidthPx,
		regionLeaf(legacyRegionCenter), regionLeaf(legacyRegionRight))
	middle := joinLegacySplit(gen, AxisVertical,
		float64(leftPx)/legacyRefWidthPx,
		regionLeaf(legacyRegionLeft), centerRight)
	middleBottom := joinLegacySplit(gen, AxisHorizontal,
		1-float64(bottomPx)/legacyRefHeightPx,
		middle, regionLeaf(legacyRegionBottom))
	root := joinLegacySplit(gen, AxisHorizontal,
		float64(topPx)/legacyRefHeightPx,
		regionLeaf(legacyRegionTop), middleBottom)

	if root == nil {
		root = EmptyNode()
	}
	return Config{
		Version:                     SchemaVersion,
		Root:                        root,
		PlaylistArtColumnMinWidthPx: asInt(raw["playlist_album_art_column_min_width_px"], defaultArtColumnMinWidthPx),
		PlaylistArtColumnMaxWidthPx: asInt(raw["playlist_album_art_column_max_width_px"], defaultArtColumnMaxWidthPx),
	}
}

func joinLegacySplit(gen *idGenerator, axis SplitAxis, ratio float64, first, second *Node) *Node {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return SplitNode(gen.NextSplitID(), axis, clampRatio(ratio), first, second)
}

// Package layout implements the split-tree docking layout used for the
// customizable panel arrangement: the node model, sanitization, mutation
// operations, geometry solving, schema migration from the old five-region
// format, and bounded undo/redo history.
package layout

// PanelKind identifies the panel hosted by a layout leaf.
type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelButtonCluster
	PanelTransportButtonCluster
	PanelUtilityButtonCluster
	PanelVolumeSlider
	PanelSeekBar
	PanelPlaylistSwitcher
	PanelTrackList
	PanelMetadataViewer
	PanelAlbumArtViewer
	PanelSpacer
	PanelStatusBar
	PanelImportButtonCluster

	// Deprecated kinds only appear in persisted layouts from older versions.
	// The sanitizer expands them into concrete subtrees.
	PanelControlBar
	PanelAlbumArtPane
)

// SplitterThicknessPx is the pixel thickness of interactive splitter handles.
const SplitterThicknessPx = 6

var panelNames = map[PanelKind]string{
	PanelNone:                   "none",
	PanelButtonCluster:          "button_cluster",
	PanelTransportButtonCluster: "transport_button_cluster",
	PanelUtilityButtonCluster:   "utility_button_cluster",
	PanelVolumeSlider:           "volume_slider",
	PanelSeekBar:                "seek_bar",
	PanelPlaylistSwitcher:       "playlist_switcher",
	PanelTrackList:              "track_list",
	PanelMetadataViewer:         "metadata_viewer",
	PanelAlbumArtViewer:         "album_art_viewer",
	PanelSpacer:                 "spacer",
	PanelStatusBar:              "status_bar",
	PanelControlBar:             "control_bar",
	PanelAlbumArtPane:           "album_art_pane",
}

var panelByName = func() map[string]PanelKind {
	m := make(map[string]PanelKind, len(panelNames))
	for kind, name := range panelNames {
		m[name] = kind
	}
	return m
}()

// String returns the stable snake_case name used in persisted layouts.
func (p PanelKind) String() string {
	if name, ok := panelNames[p]; ok {
		return name
	}
	return "none"
}

// ParsePanelKind maps a persisted panel name back to its kind.
// Unknown names decode as PanelNone so layouts from newer versions degrade
// instead of failing.
func ParsePanelKind(name string) PanelKind {
	if kind, ok := panelByName[name]; ok {
		return kind
	}
	return PanelNone
}

// Code returns the stable integer code used at the rendering boundary.
func (p PanelKind) Code() int {
	switch p {
	case PanelNone, PanelControlBar, PanelAlbumArtPane:
		return 0
	default:
		return int(p)
	}
}

// PanelKindFromCode maps a rendering-boundary code back to a panel kind.
func PanelKindFromCode(code int) PanelKind {
	if code > int(PanelNone) && code <= int(PanelImportButtonCluster) {
		return PanelKind(code)
	}
	return PanelNone
}

// Deprecated reports whether the kind is a legacy alias that must be
// expanded during sanitization and never persisted.
func (p PanelKind) Deprecated() bool {
	return p == PanelControlBar || p == PanelAlbumArtPane
}

// MinSizePx returns the minimum pixel footprint a panel of this kind needs.
// PanelNone occupies no space and is never drawn.
func (p PanelKind) MinSizePx() (width, height int) {
	switch p {
	case PanelNone:
		return 0, 0
	case PanelButtonCluster, PanelTransportButtonCluster,
		PanelUtilityButtonCluster, PanelImportButtonCluster:
		return 120, 40
	case PanelVolumeSlider:
		return 96, 28
	case PanelSeekBar:
		return 120, 24
	case PanelPlaylistSwitcher:
		return 140, 72
	case PanelTrackList:
		return 220, 140
	case PanelMetadataViewer:
		return 140, 72
	case PanelAlbumArtViewer:
		return 140, 96
	case PanelSpacer:
		return 16, 16
	case PanelStatusBar:
		return 80, 20
	case PanelControlBar:
		return 220, 56
	case PanelAlbumArtPane:
		return 140, 96
	default:
		return 72, 72
	}
}

// normalized collapses the button-cluster preset variants onto the generic
// cluster kind. The variant only selects which action preset the editor
// assigns; the tree itself stores the generic kind.
func (p PanelKind) normalized() PanelKind {
	switch p {
	case PanelTransportButtonCluster, PanelUtilityButtonCluster, PanelImportButtonCluster:
		return PanelButtonCluster
	default:
		return p
	}
}

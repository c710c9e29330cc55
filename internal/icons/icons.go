// Package icons maps panel kinds to display glyphs for the editor preview.
package icons

import "github.com/llehouerou/tides/internal/layout"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	TrackList   string
	Cluster     string
	Volume      string
	Seek        string
	Playlist    string
	Metadata    string
	AlbumArt    string
	Spacer      string
	StatusBar   string
	EmptySlot   string
	UnknownPane string
}

var (
	nerdIcons = Icons{
		TrackList:   " ", // nf-fa-music
		Cluster:     " ", // nf-fa-bars
		Volume:      " ", // nf-fa-volume_up
		Seek:        " ", // nf-fa-play
		Playlist:    "󰲸 ", // nf-md-playlist_music
		Metadata:    " ", // nf-fa-info_circle
		AlbumArt:    "󰀥 ", // nf-md-album
		Spacer:      " ", // nf-fa-square
		StatusBar:   " ", // nf-fa-tasks
		EmptySlot:   " ", // nf-fa-square_o
		UnknownPane: "? ",
	}

	unicodeIcons = Icons{
		TrackList:   "🎵 ",
		Cluster:     "🔘 ",
		Volume:      "🔊 ",
		Seek:        "⏩ ",
		Playlist:    "📋 ",
		Metadata:    "ℹ ",
		AlbumArt:    "💿 ",
		Spacer:      "▫ ",
		StatusBar:   "📊 ",
		EmptySlot:   "▢ ",
		UnknownPane: "? ",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// ForPanel returns the glyph for a panel kind, empty for the "none" style.
func ForPanel(panel layout.PanelKind) string {
	switch panel {
	case layout.PanelTrackList:
		return current.TrackList
	case layout.PanelButtonCluster,
		layout.PanelTransportButtonCluster,
		layout.PanelUtilityButtonCluster,
		layout.PanelImportButtonCluster:
		return current.Cluster
	case layout.PanelVolumeSlider:
		return current.Volume
	case layout.PanelSeekBar:
		return current.Seek
	case layout.PanelPlaylistSwitcher:
		return current.Playlist
	case layout.PanelMetadataViewer:
		return current.Metadata
	case layout.PanelAlbumArtViewer:
		return current.AlbumArt
	case layout.PanelSpacer:
		return current.Spacer
	case layout.PanelStatusBar:
		return current.StatusBar
	case layout.PanelNone:
		return current.EmptySlot
	default:
		return current.UnknownPane
	}
}

// FormatPanel prefixes a panel label with its glyph.
func FormatPanel(panel layout.PanelKind) string {
	return ForPanel(panel) + panel.String()
}

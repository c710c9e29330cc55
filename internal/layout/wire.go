package layout

import "reflect"

// Wire-format field names are load-bearing: persisted layouts from earlier
// releases must keep decoding, so the node tag values and legacy region
// field names here cannot change.

const (
	nodeTagEmpty = "empty"
	nodeTagLeaf  = "leaf"
	nodeTagSplit = "split"
)

// EncodeWire flattens a config into the generic map shape the TOML layer
// marshals. Transient editor state is not included.
func EncodeWire(cfg Config) map[string]any {
	wire := map[string]any{
		"version":                                cfg.Version,
		"playlist_album_art_column_min_width_px": cfg.PlaylistArtColumnMinWidthPx,
		"playlist_album_art_column_max_width_px": cfg.PlaylistArtColumnMaxWidthPx,
		"root":                                   encodeNode(cfg.Root),
	}
	if len(cfg.ButtonClusters) > 0 {
		clusters := make([]map[string]any, len(cfg.ButtonClusters))
		for i, inst := range cfg.ButtonClusters {
			clusters[i] = map[string]any{
				"leaf_id": inst.LeafID,
				"actions": append([]int(nil), inst.Actions...),
			}
		}
		wire["button_cluster"] = clusters
	}
	if len(cfg.MetadataViewers) > 0 {
		viewers := make([]map[string]any, len(cfg.MetadataViewers))
		for i, inst := range cfg.MetadataViewers {
			viewers[i] = map[string]any{
				"leaf_id":              inst.LeafID,
				"display_priority":     int(inst.Priority),
				"metadata_source":      int(inst.Source),
				"metadata_text_format": inst.TextFormat,
			}
		}
		wire["metadata_viewer_panel"] = viewers
	}
	if len(cfg.AlbumArtViewers) > 0 {
		viewers := make([]map[string]any, len(cfg.AlbumArtViewers))
		for i, inst := range cfg.AlbumArtViewers {
			viewers[i] = map[string]any{
				"leaf_id":          inst.LeafID,
				"display_priority": int(inst.Priority),
				"image_source":     int(inst.Source),
			}
		}
		wire["album_art_viewer_panel"] = viewers
	}
	return wire
}

func encodeNode(n *Node) map[string]any {
	if n.IsEmpty() {
		return map[string]any{"type": nodeTagEmpty}
	}
	if n.Kind == NodeLeaf {
		return map[string]any{
			"type":  nodeTagLeaf,
			"id":    n.ID,
			"panel": n.Panel.String(),
		}
	}
	return map[string]any{
		"type":          nodeTagSplit,
		"id":            n.ID,
		"axis":          n.Axis.String(),
		"ratio":         n.Ratio,
		"min_first_px":  n.MinFirstPx,
		"min_second_px": n.MinSecondPx,
		"first":         encodeNode(n.First),
		"second":        encodeNode(n.Second),
	}
}

func decodeNode(raw map[string]any) *Node {
	switch asString(raw["type"]) {
	case nodeTagLeaf:
		return LeafNode(asString(raw["id"]), ParsePanelKind(asString(raw["panel"])))
	case nodeTagSplit:
		node := SplitNode(
			asString(raw["id"]),
			ParseSplitAxis(asString(raw["axis"])),
			asFloat(raw["ratio"], 0.5),
			decodeNode(asMap(raw["first"])),
			decodeNode(asMap(raw["second"])),
		)
		node.MinFirstPx = asInt(raw["min_first_px"], 24)
		node.MinSecondPx = asInt(raw["min_second_px"], 24)
		return node
	default:
		return EmptyNode()
	}
}

func decodeButtonClusters(raw any) []ButtonClusterInstance {
	var instances []ButtonClusterInstance
	for _, entry := range asSlice(raw) {
		m := asMap(entry)
		if m == nil {
			continue
		}
		instances = append(instances, ButtonClusterInstance{
			LeafID:  asString(m["leaf_id"]),
			Actions: asIntSlice(m["actions"]),
		})
	}
	return instances
}

func decodeMetadataViewers(raw any) []MetadataViewerInstance {
	var instances []MetadataViewerInstance
	for _, entry := range asSlice(raw) {
		m := asMap(entry)
		if m == nil {
			continue
		}
		instances = append(instances, MetadataViewerInstance{
			LeafID:     asString(m["leaf_id"]),
			Priority:   DisplayPriority(asInt(m["display_priority"], 0)),
			Source:     MetadataSource(asInt(m["metadata_source"], 0)),
			TextFormat: asString(m["metadata_text_format"]),
		})
	}
	return instances
}

func decodeAlbumArtViewers(raw any) []AlbumArtViewerInstance {
	var instances []AlbumArtViewerInstance
	for _, entry := range asSlice(raw) {
		m := asMap(entry)
		if m == nil {
			continue
		}
		instances = append(instances, AlbumArtViewerInstance{
			LeafID:   asString(m["leaf_id"]),
			Priority: DisplayPriority(asInt(m["display_priority"], 0)),
			Source:   ImageSource(asInt(m["image_source"], 0)),
		})
	}
	return instances
}

// Loose value coercion: TOML decoding hands back int64/float64/strings
// depending on how the document was written.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice coerces any slice shape to []any; TOML decoding can produce
// []any, []map[string]any or []string depending on the document.
func asSlice(v any) []any {
	if v == nil {
		return nil
	}
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}

func asFloat(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return fallback
	}
}

func asIntSlice(v any) []int {
	var out []int
	for _, entry := range asSlice(v) {
		out = append(out, asInt(entry, 0))
	}
	return out
}

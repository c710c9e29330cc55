package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding for dispatch and help generation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "selection", "tree", "splitter", "history"
}

// All contains all key bindings for the editor.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},

	// Selection
	{ActionNextPane, []string{"tab"}, "next pane", "selection"},
	{ActionPrevPane, []string{"shift+tab"}, "prev pane", "selection"},

	// Tree editing
	{ActionSplitVertical, []string{"v"}, "split left/right", "tree"},
	{ActionSplitHorizontal, []string{"h"}, "split top/bottom", "tree"},
	{ActionDeletePane, []string{"d", "delete"}, "delete pane", "tree"},
	{ActionCyclePanel, []string{"p"}, "cycle panel", "tree"},

	// Splitter adjustment
	{ActionGrowPane, []string{"]"}, "grow", "splitter"},
	{ActionShrinkPane, []string{"["}, "shrink", "splitter"},

	// History
	{ActionUndo, []string{"u", "ctrl+z"}, "undo", "history"},
	{ActionRedo, []string{"r", "ctrl+y"}, "redo", "history"},

	// Layout management
	{ActionResetLayout, []string{"0"}, "reset layout", "global"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts a binding to a bubbles key binding for help rendering.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Keys[0], b.Description),
	)
}

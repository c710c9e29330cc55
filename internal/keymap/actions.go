// Package keymap defines key bindings and action dispatch for the layout
// editor.
package keymap

// Action represents a user-triggerable editor action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Selection
	ActionNextPane Action = "next_pane"
	ActionPrevPane Action = "prev_pane"

	// Tree editing
	ActionSplitVertical   Action = "split_vertical"
	ActionSplitHorizontal Action = "split_horizontal"
	ActionDeletePane      Action = "delete_pane"
	ActionCyclePanel      Action = "cycle_panel"

	// Splitter adjustment
	ActionGrowPane   Action = "grow_pane"
	ActionShrinkPane Action = "shrink_pane"

	// History
	ActionUndo Action = "undo"
	ActionRedo Action = "redo"

	// Layout management
	ActionResetLayout Action = "reset_layout"
)

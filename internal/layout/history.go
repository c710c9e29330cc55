package layout

// historyCap bounds both snapshot stacks; the oldest snapshots are trimmed
// from the front on overflow.
const historyCap = 128

// History holds bounded undo/redo snapshot stacks for an editing session.
// Linear-history semantics: any committed edit invalidates the redo chain.
// Preview-only changes never touch the stacks.
type History struct {
	undo []Config
	redo []Config
}

// RecordCommit pushes the pre-mutation config onto the undo stack and
// clears redo.
func (h *History) RecordCommit(before Config) {
	h.undo = pushSnapshot(h.undo, before)
	h.redo = nil
}

// Undo pops the most recent undo snapshot, pushing current onto redo.
// Returns ok=false when there is nothing to undo.
func (h *History) Undo(current Config) (Config, bool) {
	snapshot, rest, ok := popSnapshot(h.undo)
	if !ok {
		return Config{}, false
	}
	h.undo = rest
	h.redo = pushSnapshot(h.redo, current)
	return snapshot, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current Config) (Config, bool) {
	snapshot, rest, ok := popSnapshot(h.redo)
	if !ok {
		return Config{}, false
	}
	h.redo = rest
	h.undo = pushSnapshot(h.undo, current)
	return snapshot, true
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

func pushSnapshot(stack []Config, snapshot Config) []Config {
	stack = append(stack, snapshot.Clone())
	if overflow := len(stack) - historyCap; overflow > 0 {
		stack = append(stack[:0:0], stack[overflow:]...)
	}
	return stack
}

func popSnapshot(stack []Config) (Config, []Config, bool) {
	if len(stack) == 0 {
		return Config{}, nil, false
	}
	last := len(stack) - 1
	return stack[last], stack[:last], true
}

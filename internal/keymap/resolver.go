package keymap

// Resolver turns raw key strings from the input loop into editor actions.
// Unknown keys resolve to the zero Action, which callers treat as
// "not handled".
type Resolver struct {
	byKey map[string]Action
}

// NewResolver indexes a binding table by key. When two bindings claim the
// same key the earlier entry wins, so ordering in the table is
// authoritative.
func NewResolver(bindings []Binding) *Resolver {
	byKey := make(map[string]Action, len(bindings))
	for _, b := range bindings {
		for _, k := range b.Keys {
			if _, taken := byKey[k]; !taken {
				byKey[k] = b.Action
			}
		}
	}
	return &Resolver{byKey: byKey}
}

// Resolve returns the action bound to key.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

package layout

// DefaultConfig returns the bundled default layout: the classic five-region
// arrangement (control strip on top, playlist switcher left, track list
// center, viewers right, status bar bottom) expressed as a sanitized tree.
// It is built by migrating the legacy defaults so the default layout and a
// migrated legacy config stay structurally identical.
func DefaultConfig() Config {
	return Sanitize(Migrate(nil))
}

package state

import "database/sql"

// SessionState is the editor context restored on startup.
type SessionState struct {
	SelectedLeafID  string
	WorkspaceWidth  int
	WorkspaceHeight int
	EditMode        bool
}

func getSession(db *sql.DB) (*SessionState, error) {
	var s SessionState
	var editMode int
	err := db.QueryRow(`
		SELECT selected_leaf_id, workspace_width, workspace_height, edit_mode
		FROM session_state
		WHERE id = 1
	`).Scan(&s.SelectedLeafID, &s.WorkspaceWidth, &s.WorkspaceHeight, &editMode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.EditMode = editMode != 0
	return &s, nil
}

func saveSession(db *sql.DB, s SessionState) error {
	editMode := 0
	if s.EditMode {
		editMode = 1
	}
	_, err := db.Exec(`
		INSERT INTO session_state (id, selected_leaf_id, workspace_width, workspace_height, edit_mode)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			selected_leaf_id = excluded.selected_leaf_id,
			workspace_width = excluded.workspace_width,
			workspace_height = excluded.workspace_height,
			edit_mode = excluded.edit_mode
	`, s.SelectedLeafID, s.WorkspaceWidth, s.WorkspaceHeight, editMode)
	return err
}

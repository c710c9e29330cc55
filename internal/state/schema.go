package state

import "database/sql"

const schemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			selected_leaf_id TEXT NOT NULL DEFAULT '',
			workspace_width INTEGER NOT NULL DEFAULT 0,
			workspace_height INTEGER NOT NULL DEFAULT 0,
			edit_mode INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		_, err = db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, schemaVersion)
	}
	return err
}

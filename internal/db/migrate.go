package db

import (
	"database/sql"
	"fmt"
)

// The archive schema collapses the three-level hierarchy into two relational
// levels: a sub-module is a modules row whose parent_module_id points at
// another module. Gateway facts for projects and modules share one generic
// attribute table keyed by (entity_type, entity_id, gateway).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS modules (
		id               INTEGER PRIMARY KEY,
		project_id       INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		parent_module_id INTEGER REFERENCES modules(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS gateways (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		entity_type TEXT NOT NULL CHECK(entity_type IN ('project','module')),
		entity_id   INTEGER NOT NULL,
		gateway     TEXT NOT NULL CHECK(gateway IN ('D0','D1','D2','D3','D4')),
		plan_date   TEXT NOT NULL DEFAULT '',
		actual_date TEXT NOT NULL DEFAULT '',
		ecn         TEXT NOT NULL DEFAULT '',
		UNIQUE(entity_type, entity_id, gateway)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_modules_project ON modules(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_modules_parent ON modules(parent_module_id)`,
	`CREATE INDEX IF NOT EXISTS idx_gateways_entity ON gateways(entity_type, entity_id)`,
}

// Migrate runs all schema migrations. Statements are idempotent; re-running
// against an existing archive is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

package modlog

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"medieval-moderator/model"
)

// Init ensures the moderation_logs table exists.
func Init(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS moderation_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id TEXT NOT NULL,
		moderator_id TEXT NOT NULL,
		target_id TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL,
		reason TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create moderation_logs table: %w", err)
	}
	return nil
}

// Add appends one audit record. The table is write-only from the core's
// perspective.
func Add(db *sqlx.DB, entry model.ModLogEntry) error {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO moderation_logs (guild_id, moderator_id, target_id, action, reason, timestamp)
		VALUES (:guild_id, :moderator_id, :target_id, :action, :reason, :timestamp)`
	if _, err := db.NamedExec(query, entry); err != nil {
		return fmt.Errorf("failed to insert moderation log entry: %w", err)
	}
	return nil
}

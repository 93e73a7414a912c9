package warnings

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"medieval-moderator/model"
)

// Init ensures the warnings table exists.
func Init(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS warnings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		moderator_id TEXT NOT NULL,
		reason TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create warnings table: %w", err)
	}
	return nil
}

// Add records a warning against a user.
func Add(db *sqlx.DB, w model.Warning) error {
	if w.Timestamp == "" {
		w.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO warnings (guild_id, user_id, moderator_id, reason, timestamp)
		VALUES (:guild_id, :user_id, :moderator_id, :reason, :timestamp)`
	if _, err := db.NamedExec(query, w); err != nil {
		return fmt.Errorf("failed to insert warning: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's warnings, newest first.
func ListByUser(db *sqlx.DB, guildID, userID string) ([]model.Warning, error) {
	var rows []model.Warning
	query := "SELECT * FROM warnings WHERE guild_id = ? AND user_id = ? ORDER BY timestamp DESC"
	if err := db.Select(&rows, query, guildID, userID); err != nil {
		return nil, fmt.Errorf("failed to list warnings for user %s in guild %s: %w", userID, guildID, err)
	}
	return rows, nil
}

// ClearByUser deletes all warnings for a user and returns how many were
// removed.
func ClearByUser(db *sqlx.DB, guildID, userID string) (int64, error) {
	result, err := db.Exec("DELETE FROM warnings WHERE guild_id = ? AND user_id = ?", guildID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear warnings for user %s in guild %s: %w", userID, guildID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected clearing warnings: %w", err)
	}
	return affected, nil
}

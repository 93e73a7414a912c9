package messages

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"medieval-moderator/model"
)

// Init ensures the message_history table exists.
func Init(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS message_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id TEXT NOT NULL,
		channel_id TEXT NOT NULL,
		message_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		content TEXT NOT NULL,
		attachments TEXT NOT NULL DEFAULT '',
		timestamp TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create message_history table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_message_history_message_id ON message_history (message_id)`); err != nil {
		return fmt.Errorf("failed to create message_history index: %w", err)
	}
	return nil
}

// Save stores one message snapshot.
func Save(db *sqlx.DB, m model.StoredMessage) error {
	if m.Timestamp == "" {
		m.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO message_history (guild_id, channel_id, message_id, user_id, content, attachments, timestamp)
		VALUES (:guild_id, :channel_id, :message_id, :user_id, :content, :attachments, :timestamp)`
	if _, err := db.NamedExec(query, m); err != nil {
		return fmt.Errorf("failed to store message %s: %w", m.MessageID, err)
	}
	return nil
}

// Latest retrieves the most recent snapshot of a message, or nil.
func Latest(db *sqlx.DB, messageID string) (*model.StoredMessage, error) {
	var m model.StoredMessage
	query := "SELECT * FROM message_history WHERE message_id = ? ORDER BY timestamp DESC LIMIT 1"
	if err := db.Get(&m, query, messageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get message history for %s: %w", messageID, err)
	}
	return &m, nil
}

// PruneOlderThan deletes snapshots older than the cutoff and returns how
// many rows were removed.
func PruneOlderThan(db *sqlx.DB, cutoff time.Time) (int64, error) {
	result, err := db.Exec("DELETE FROM message_history WHERE timestamp < ?", cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to prune message history: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected pruning message history: %w", err)
	}
	return affected, nil
}

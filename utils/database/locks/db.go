package locks

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"medieval-moderator/model"
)

// Init ensures the channel_locks table exists.
func Init(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS channel_locks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id TEXT NOT NULL,
		channel_id TEXT NOT NULL,
		moderator_id TEXT NOT NULL,
		reason TEXT NOT NULL,
		unlock_reason TEXT NOT NULL DEFAULT '',
		timestamp TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create channel_locks table: %w", err)
	}
	return nil
}

// Add inserts a new active lock row and returns its id.
func Add(db *sqlx.DB, lock model.ChannelLock) (int64, error) {
	if lock.Timestamp == "" {
		lock.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO channel_locks (guild_id, channel_id, moderator_id, reason, unlock_reason, timestamp, active)
		VALUES (:guild_id, :channel_id, :moderator_id, :reason, '', :timestamp, 1)`
	result, err := db.NamedExec(query, lock)
	if err != nil {
		return 0, fmt.Errorf("failed to insert channel lock: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// GetByID retrieves one lock row, or nil when it does not exist.
func GetByID(db *sqlx.DB, id int64) (*model.ChannelLock, error) {
	var lock model.ChannelLock
	if err := db.Get(&lock, "SELECT * FROM channel_locks WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get channel lock %d: %w", id, err)
	}
	return &lock, nil
}

// ActiveByChannel retrieves the active lock for a channel, or nil.
func ActiveByChannel(db *sqlx.DB, guildID, channelID string) (*model.ChannelLock, error) {
	var lock model.ChannelLock
	query := "SELECT * FROM channel_locks WHERE guild_id = ? AND channel_id = ? AND active = 1 LIMIT 1"
	if err := db.Get(&lock, query, guildID, channelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active lock for channel %s in guild %s: %w", channelID, guildID, err)
	}
	return &lock, nil
}

// ListActive retrieves all active locks in a guild, newest first.
func ListActive(db *sqlx.DB, guildID string) ([]model.ChannelLock, error) {
	var rows []model.ChannelLock
	query := "SELECT * FROM channel_locks WHERE guild_id = ? AND active = 1 ORDER BY timestamp DESC"
	if err := db.Select(&rows, query, guildID); err != nil {
		return nil, fmt.Errorf("failed to list active locks for guild %s: %w", guildID, err)
	}
	return rows, nil
}

// Release sets a lock inactive and records the unlock reason. Guards on
// active = 1 so an already-released lock is reported, not silently updated.
func Release(db *sqlx.DB, id int64, unlockReason string) (bool, error) {
	query := "UPDATE channel_locks SET active = 0, unlock_reason = ? WHERE id = ? AND active = 1"
	result, err := db.Exec(query, unlockReason, id)
	if err != nil {
		return false, fmt.Errorf("failed to release channel lock %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected for lock %d: %w", id, err)
	}
	return affected > 0, nil
}

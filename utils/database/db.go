package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"medieval-moderator/utils/database/guildconfig"
	"medieval-moderator/utils/database/locks"
	"medieval-moderator/utils/database/messages"
	"medieval-moderator/utils/database/modlog"
	"medieval-moderator/utils/database/sanctions"
	"medieval-moderator/utils/database/warnings"
)

// Open connects to the sqlite store with write-ahead logging enabled and a
// busy timeout, so the bot's goroutines serialize through the storage engine
// rather than failing on lock contention.
func Open(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// InitAll ensures every table the bot uses exists.
func InitAll(db *sqlx.DB) error {
	inits := []func(*sqlx.DB) error{
		sanctions.Init,
		locks.Init,
		guildconfig.Init,
		modlog.Init,
		warnings.Init,
		messages.Init,
	}
	for _, init := range inits {
		if err := init(db); err != nil {
			return err
		}
	}
	return nil
}

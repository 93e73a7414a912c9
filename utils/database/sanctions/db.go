package sanctions

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"medieval-moderator/model"
)

// Each sanction kind gets its own table with an identical schema.
var kindTables = map[model.SanctionKind]string{
	model.SanctionPillory: "pillories",
	model.SanctionMute:    "mutes",
}

func tableFor(kind model.SanctionKind) (string, error) {
	table, ok := kindTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown sanction kind %q", kind)
	}
	return table, nil
}

// Init ensures the sanction tables exist.
func Init(db *sqlx.DB) error {
	for kind, table := range kindTables {
		schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			guild_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			reason TEXT NOT NULL,
			active INTEGER NOT NULL DEFAULT 1
		);`, table)
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to create %s table for kind %s: %w", table, kind, err)
		}
	}
	return nil
}

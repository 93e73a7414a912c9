package guildconfig

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"medieval-moderator/model"
)

// Init ensures the guild_configs table exists.
func Init(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS guild_configs (
		guild_id TEXT NOT NULL PRIMARY KEY,
		pillory_channel TEXT NOT NULL DEFAULT '',
		pillory_role TEXT NOT NULL DEFAULT '',
		bypass_roles TEXT NOT NULL DEFAULT '[]',
		allowed_roles TEXT NOT NULL DEFAULT '[]',
		log_channel TEXT NOT NULL DEFAULT ''
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create guild_configs table: %w", err)
	}
	return nil
}

// Get retrieves the configuration row for a guild, or nil when the guild has
// never been configured.
func Get(db *sqlx.DB, guildID string) (*model.GuildConfig, error) {
	var cfg model.GuildConfig
	if err := db.Get(&cfg, "SELECT * FROM guild_configs WHERE guild_id = ?", guildID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get config for guild %s: %w", guildID, err)
	}
	return &cfg, nil
}

// valid columns for setColumn; field names never come from user input.
var settableColumns = map[string]bool{
	"pillory_channel": true,
	"pillory_role":    true,
	"log_channel":     true,
	"bypass_roles":    true,
	"allowed_roles":   true,
}

// setColumn upserts one column of a guild's config row, creating the row
// lazily on the first write.
func setColumn(db *sqlx.DB, guildID, column string, value interface{}) error {
	if !settableColumns[column] {
		return fmt.Errorf("unknown guild config column %q", column)
	}
	query := fmt.Sprintf(`INSERT INTO guild_configs (guild_id, %s) VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET %s = excluded.%s`, column, column, column)
	if _, err := db.Exec(query, guildID, value); err != nil {
		return fmt.Errorf("failed to set %s for guild %s: %w", column, guildID, err)
	}
	return nil
}

// SetPilloryChannel records the channel where shame decrees are posted.
func SetPilloryChannel(db *sqlx.DB, guildID, channelID string) error {
	return setColumn(db, guildID, "pillory_channel", channelID)
}

// SetPilloryRole records the marker role granted while a pillory is active.
func SetPilloryRole(db *sqlx.DB, guildID, roleID string) error {
	return setColumn(db, guildID, "pillory_role", roleID)
}

// SetLogChannel records the audit-log channel.
func SetLogChannel(db *sqlx.DB, guildID, channelID string) error {
	return setColumn(db, guildID, "log_channel", channelID)
}

// SetBypassRoles records the roles immune to sanctions.
func SetBypassRoles(db *sqlx.DB, guildID string, roles model.RoleIDSet) error {
	value, err := roles.Value()
	if err != nil {
		return err
	}
	return setColumn(db, guildID, "bypass_roles", value)
}

// SetAllowedRoles records the roles permitted to issue sanctions.
func SetAllowedRoles(db *sqlx.DB, guildID string, roles model.RoleIDSet) error {
	value, err := roles.Value()
	if err != nil {
		return err
	}
	return setColumn(db, guildID, "allowed_roles", value)
}

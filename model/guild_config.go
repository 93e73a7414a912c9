package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RoleIDSet is an ordered set of role identifiers stored as a JSON array
// column. It replaces delimiter-joined text so role ids round-trip without
// string splitting.
type RoleIDSet []string

// Value implements driver.Valuer.
func (s RoleIDSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal role id set: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (s *RoleIDSet) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into RoleIDSet", src)
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("failed to unmarshal role id set: %w", err)
	}
	*s = ids
	return nil
}

// Contains reports whether the set holds the given role id.
func (s RoleIDSet) Contains(id string) bool {
	for _, r := range s {
		if r == id {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the set holds any of the given role ids.
func (s RoleIDSet) ContainsAny(ids []string) bool {
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

// GuildConfig is the per-guild settings row. It is created lazily on the
// first configuration write; unset text fields stay empty and role sets stay
// nil until a moderator configures them. There is no deletion path.
type GuildConfig struct {
	GuildID          string    `db:"guild_id"`
	PilloryChannelID string    `db:"pillory_channel"`
	PilloryRoleID    string    `db:"pillory_role"`
	BypassRoleIDs    RoleIDSet `db:"bypass_roles"`
	AllowedRoleIDs   RoleIDSet `db:"allowed_roles"`
	LogChannelID     string    `db:"log_channel"`
}

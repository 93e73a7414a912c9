package model

// ModLogEntry is one append-only audit record. The lifecycle logic never
// reads these back; they exist for humans.
type ModLogEntry struct {
	ID          int64  `db:"id"`
	GuildID     string `db:"guild_id"`
	ModeratorID string `db:"moderator_id"`
	TargetID    string `db:"target_id"`
	Action      string `db:"action"`
	Reason      string `db:"reason"`
	Timestamp   string `db:"timestamp"`
}

// Warning is one warning issued against a guild member.
type Warning struct {
	ID          int64  `db:"id"`
	GuildID     string `db:"guild_id"`
	UserID      string `db:"user_id"`
	ModeratorID string `db:"moderator_id"`
	Reason      string `db:"reason"`
	Timestamp   string `db:"timestamp"`
}

package model

// ChannelLock represents one sealed channel. Locks carry no end time and are
// never touched by the sweeper; unsealing is always a moderator action.
type ChannelLock struct {
	ID           int64  `db:"id"`
	GuildID      string `db:"guild_id"`
	ChannelID    string `db:"channel_id"`
	ModeratorID  string `db:"moderator_id"`
	Reason       string `db:"reason"`
	UnlockReason string `db:"unlock_reason"`
	Timestamp    string `db:"timestamp"`
	Active       bool   `db:"active"`
}

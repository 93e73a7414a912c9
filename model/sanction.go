package model

import "time"

// SanctionKind selects the policy and the backing table for a timed sanction.
type SanctionKind string

const (
	SanctionPillory SanctionKind = "pillory"
	SanctionMute    SanctionKind = "mute"
)

// Duration bounds in minutes, per sanction kind.
const (
	PilloryMaxMinutes = 1440  // 24 hours
	MuteMaxMinutes    = 40320 // 28 days
)

// MaxDurationMinutes returns the upper duration bound for the given kind.
// The lower bound is always 1 minute.
func (k SanctionKind) MaxDurationMinutes() int {
	if k == SanctionMute {
		return MuteMaxMinutes
	}
	return PilloryMaxMinutes
}

// Sanction represents one active or historical timed punishment record.
// Start and end times are stored as RFC3339 text; the sweeper parses them
// row by row so a single malformed row cannot poison a sweep.
type Sanction struct {
	ID        int64        `db:"id"`
	GuildID   string       `db:"guild_id"`
	UserID    string       `db:"user_id"`
	StartTime string       `db:"start_time"`
	EndTime   string       `db:"end_time"`
	Reason    string       `db:"reason"`
	Active    bool         `db:"active"`
	Kind      SanctionKind `db:"-"`
}

// Start parses the sanction's start timestamp.
func (s *Sanction) Start() (time.Time, error) {
	return time.Parse(time.RFC3339, s.StartTime)
}

// End parses the sanction's end timestamp.
func (s *Sanction) End() (time.Time, error) {
	return time.Parse(time.RFC3339, s.EndTime)
}

package model

// CommandRequest is the normalized form of a moderator command. Both the
// slash-interaction adapter and the text-prefix adapter translate into this
// before any domain handler runs, so command logic exists exactly once.
type CommandRequest struct {
	Command    string
	GuildID    string
	ChannelID  string
	ActorID    string
	ActorRoles []string

	TargetUserID    string
	TargetChannelID string
	SanctionID      int64
	DurationMinutes int
	Amount          int
	Reason          string
	RoleIDs         []string
}

package model

// StoredMessage keeps message content around so edits and deletions can be
// chronicled with the original text and attachments.
type StoredMessage struct {
	ID          int64  `db:"id"`
	GuildID     string `db:"guild_id"`
	ChannelID   string `db:"channel_id"`
	MessageID   string `db:"message_id"`
	UserID      string `db:"user_id"`
	Content     string `db:"content"`
	Attachments string `db:"attachments"` // JSON array of StoredAttachment
	Timestamp   string `db:"timestamp"`
}

// StoredAttachment is one attachment captured alongside a stored message.
type StoredAttachment struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

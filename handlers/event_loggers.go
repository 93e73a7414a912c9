package handlers

import (
	"encoding/json"
	"log"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/model"
	messages_db "medieval-moderator/utils/database/messages"
)

func snapshotMessage(b *bot.Bot, m *discordgo.Message) {
	attachments := ""
	if len(m.Attachments) > 0 {
		stored := make([]model.StoredAttachment, 0, len(m.Attachments))
		for _, a := range m.Attachments {
			stored = append(stored, model.StoredAttachment{
				URL:         a.URL,
				Filename:    a.Filename,
				Size:        a.Size,
				ContentType: a.ContentType,
			})
		}
		if data, err := json.Marshal(stored); err == nil {
			attachments = string(data)
		}
	}
	err := messages_db.Save(b.DB, model.StoredMessage{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
		UserID:      m.Author.ID,
		Content:     m.Content,
		Attachments: attachments,
	})
	if err != nil {
		log.Printf("Failed to snapshot message %s: %v", m.ID, err)
	}
}

// HandleMessageEdit chronicles an edit with the before text from the message
// store, then snapshots the new content.
func HandleMessageEdit(s *discordgo.Session, m *discordgo.MessageUpdate, b *bot.Bot) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	before := "*unknown*"
	if prev, err := messages_db.Latest(b.DB, m.ID); err == nil && prev != nil {
		before = prev.Content
		if before == m.Content {
			// Embed unfurls fire MessageUpdate without a content change.
			return
		}
	}

	snapshotMessage(b, m.Message)
	b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("message_edit", map[string]string{
		"user":   m.Author.Mention(),
		"before": truncate(before, 900),
		"after":  truncate(m.Content, 900),
	}))
}

// HandleMessageDelete chronicles a deletion with the last stored content.
func HandleMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete, b *bot.Bot) {
	if m.GuildID == "" {
		return
	}
	prev, err := messages_db.Latest(b.DB, m.ID)
	if err != nil || prev == nil {
		return
	}
	b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("message_delete", map[string]string{
		"user":    "<@" + prev.UserID + ">",
		"content": truncate(prev.Content, 900),
	}))
}

func HandleMemberJoin(s *discordgo.Session, m *discordgo.GuildMemberAdd, b *bot.Bot) {
	created, err := discordgo.SnowflakeTimestamp(m.User.ID)
	createdStr := "*unknown*"
	if err == nil {
		createdStr = created.UTC().Format(time.RFC1123)
	}
	b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("member_join", map[string]string{
		"user":    m.User.Mention(),
		"created": createdStr,
	}))
}

func HandleMemberLeave(s *discordgo.Session, m *discordgo.GuildMemberRemove, b *bot.Bot) {
	b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("member_leave", map[string]string{
		"user": m.User.Mention(),
	}))
}

// HandleMemberUpdate chronicles nickname, username, avatar, and role changes.
// The gateway only reports user profile edits for the bot's own account, so
// member updates are where other users' profile changes surface.
func HandleMemberUpdate(s *discordgo.Session, m *discordgo.GuildMemberUpdate, b *bot.Bot) {
	if m.BeforeUpdate == nil {
		return
	}
	if m.Nick != m.BeforeUpdate.Nick && m.Nick != "" {
		b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("nickname_change", map[string]string{
			"user":  m.User.Mention(),
			"after": m.Nick,
		}))
	}
	if before := m.BeforeUpdate.User; before != nil {
		if m.User.Username != before.Username {
			b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("username_change", map[string]string{
				"user":  m.User.Mention(),
				"after": m.User.Username,
			}))
		}
		if m.User.Avatar != before.Avatar {
			b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("avatar_change", map[string]string{
				"user": m.User.Mention(),
			}))
		}
	}

	before := make(map[string]bool, len(m.BeforeUpdate.Roles))
	for _, r := range m.BeforeUpdate.Roles {
		before[r] = true
	}
	after := make(map[string]bool, len(m.Roles))
	for _, r := range m.Roles {
		after[r] = true
	}
	for r := range after {
		if !before[r] {
			b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("role_add", map[string]string{
				"user": m.User.Mention(),
				"role": "<@&" + r + ">",
			}))
		}
	}
	for r := range before {
		if !after[r] {
			b.Auditor.ProclaimText(m.GuildID, flavor.LogLine("role_remove", map[string]string{
				"user": m.User.Mention(),
				"role": "<@&" + r + ">",
			}))
		}
	}
}

func HandleChannelCreate(s *discordgo.Session, c *discordgo.ChannelCreate, b *bot.Bot) {
	if c.GuildID == "" {
		return
	}
	b.Auditor.ProclaimText(c.GuildID, flavor.LogLine("channel_create", map[string]string{
		"channel": c.Name,
	}))
}

func HandleChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete, b *bot.Bot) {
	if c.GuildID == "" {
		return
	}
	b.Auditor.ProclaimText(c.GuildID, flavor.LogLine("channel_delete", map[string]string{
		"channel": c.Name,
	}))
}

func HandleRoleCreate(s *discordgo.Session, r *discordgo.GuildRoleCreate, b *bot.Bot) {
	b.Auditor.ProclaimText(r.GuildID, flavor.LogLine("role_create", map[string]string{
		"role": r.Role.Name,
	}))
}

func HandleRoleDelete(s *discordgo.Session, r *discordgo.GuildRoleDelete, b *bot.Bot) {
	b.Auditor.ProclaimText(r.GuildID, flavor.LogLine("role_delete", map[string]string{
		"role": r.RoleID,
	}))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Never cut mid-rune.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

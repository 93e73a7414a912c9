package platform

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"medieval-moderator/flavor"
	"medieval-moderator/model"
	guildconfig_db "medieval-moderator/utils/database/guildconfig"
	modlog_db "medieval-moderator/utils/database/modlog"
)

// Auditor records moderation actions to the audit table and, when the realm
// has a log channel, proclaims them there. Neither failure blocks the action
// being audited.
type Auditor struct {
	session *discordgo.Session
	db      *sqlx.DB
}

func NewAuditor(session *discordgo.Session, db *sqlx.DB) *Auditor {
	return &Auditor{session: session, db: db}
}

// Record persists one moderation action and announces it in the log channel.
func (a *Auditor) Record(guildID, moderatorID, targetID, action, reason string) {
	if err := modlog_db.Add(a.db, model.ModLogEntry{
		GuildID:     guildID,
		ModeratorID: moderatorID,
		TargetID:    targetID,
		Action:      action,
		Reason:      reason,
	}); err != nil {
		log.Printf("Failed to record %s audit entry in guild %s: %v", action, guildID, err)
	}

	a.Proclaim(guildID, flavor.Embed(
		"⚖️ "+action,
		userMention(moderatorID)+" took action against "+userMention(targetID)+"\n**Reason:** "+reason,
		"blue",
	))
}

// Proclaim sends an embed to the realm's log channel if one is configured.
func (a *Auditor) Proclaim(guildID string, embed *discordgo.MessageEmbed) {
	cfg, err := guildconfig_db.Get(a.db, guildID)
	if err != nil {
		log.Printf("Failed to load config for guild %s: %v", guildID, err)
		return
	}
	if cfg == nil || cfg.LogChannelID == "" {
		return
	}
	if _, err := a.session.ChannelMessageSendEmbed(cfg.LogChannelID, embed); err != nil {
		log.Printf("Failed to send log message in guild %s: %v", guildID, err)
	}
}

// ProclaimText sends a rendered herald line to the realm's log channel.
func (a *Auditor) ProclaimText(guildID, content string) {
	cfg, err := guildconfig_db.Get(a.db, guildID)
	if err != nil {
		log.Printf("Failed to load config for guild %s: %v", guildID, err)
		return
	}
	if cfg == nil || cfg.LogChannelID == "" {
		return
	}
	if _, err := a.session.ChannelMessageSend(cfg.LogChannelID, content); err != nil {
		log.Printf("Failed to send log message in guild %s: %v", guildID, err)
	}
}

package platform

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"medieval-moderator/flavor"
	"medieval-moderator/model"
	"medieval-moderator/sanction"
	guildconfig_db "medieval-moderator/utils/database/guildconfig"
)

// Announcer turns sanction lifecycle events into Discord messages and keeps
// the platform-side marker in step: the pillory role for pillories, the
// native member timeout for mutes. Pillory decrees go to the configured
// pillory channel, mute announcements to the log channel.
type Announcer struct {
	session *discordgo.Session
	db      *sqlx.DB
}

func NewAnnouncer(session *discordgo.Session, db *sqlx.DB) *Announcer {
	return &Announcer{session: session, db: db}
}

// Publish implements sanction.EventSink.
func (a *Announcer) Publish(ev sanction.Event) error {
	cfg, err := guildconfig_db.Get(a.db, ev.GuildID)
	if err != nil {
		return sanction.WrapError(sanction.KindStorage, err, "could not load the realm configuration")
	}
	if cfg == nil {
		return sanction.NewError(sanction.KindDelivery, "realm %s has no configuration", ev.GuildID)
	}

	// Marker changes are logged but never block the announcement. A missing
	// permission should not silence the town crier.
	if err := a.applyMarker(ev, cfg); err != nil {
		log.Printf("Failed to update %s marker for user %s in guild %s: %v", ev.SanctionKind, ev.TargetID, ev.GuildID, err)
	}

	switch ev.SanctionKind {
	case model.SanctionPillory:
		return a.announcePillory(ev, cfg)
	case model.SanctionMute:
		return a.announceMute(ev, cfg)
	default:
		return sanction.NewError(sanction.KindDelivery, "no announcement defined for sanction kind %q", ev.SanctionKind)
	}
}

func (a *Announcer) applyMarker(ev sanction.Event, cfg *model.GuildConfig) error {
	switch ev.SanctionKind {
	case model.SanctionPillory:
		if cfg.PilloryRoleID == "" {
			return nil
		}
		switch ev.Kind {
		case sanction.EventCreated:
			return a.session.GuildMemberRoleAdd(ev.GuildID, ev.TargetID, cfg.PilloryRoleID)
		case sanction.EventReleased, sanction.EventPardoned:
			return a.session.GuildMemberRoleRemove(ev.GuildID, ev.TargetID, cfg.PilloryRoleID)
		}
	case model.SanctionMute:
		switch ev.Kind {
		case sanction.EventCreated:
			until := time.Now().UTC().Add(time.Duration(ev.DurationMinutes) * time.Minute)
			return a.session.GuildMemberTimeout(ev.GuildID, ev.TargetID, &until)
		case sanction.EventPardoned:
			// A served-in-full timeout lapses on its own.
			return a.session.GuildMemberTimeout(ev.GuildID, ev.TargetID, nil)
		}
	}
	return nil
}

func (a *Announcer) announcePillory(ev sanction.Event, cfg *model.GuildConfig) error {
	if cfg.PilloryChannelID == "" {
		return sanction.NewError(sanction.KindDelivery, "realm %s has no pillory channel", ev.GuildID)
	}
	mention := userMention(ev.TargetID)

	var content string
	switch ev.Kind {
	case sanction.EventCreated:
		content = flavor.ShameDecree(mention, ev.Reason, ev.DurationMinutes)
	case sanction.EventProgress:
		content = flavor.UpdateBulletin(mention, ev.ElapsedMinutes, ev.RemainingMinutes)
	case sanction.EventReleased:
		content = flavor.ReleaseCeremony(mention)
	case sanction.EventPardoned:
		content = flavor.PardonCeremony(userMention(ev.ActorID), mention)
	default:
		return nil
	}

	if _, err := a.session.ChannelMessageSend(cfg.PilloryChannelID, content); err != nil {
		return sanction.WrapError(sanction.KindDelivery, err, "could not proclaim in the pillory channel")
	}
	return nil
}

func (a *Announcer) announceMute(ev sanction.Event, cfg *model.GuildConfig) error {
	if cfg.LogChannelID == "" {
		return sanction.NewError(sanction.KindDelivery, "realm %s has no log channel", ev.GuildID)
	}
	mention := userMention(ev.TargetID)

	var embed *discordgo.MessageEmbed
	switch ev.Kind {
	case sanction.EventCreated:
		embed = flavor.Embed("🔇 Silenced", fmt.Sprintf("%s hath been silenced for %d minutes!", mention, ev.DurationMinutes), "orange")
		if ev.Reason != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Reason", Value: ev.Reason})
		}
	case sanction.EventProgress:
		embed = flavor.Embed("⏳ Still Silenced", fmt.Sprintf("%s remains silenced: %d minutes served, %d remaining.", mention, ev.ElapsedMinutes, ev.RemainingMinutes), "orange")
	case sanction.EventReleased:
		embed = flavor.Embed("🔊 Voice Restored", fmt.Sprintf("%s may speak once more!", mention), "green")
	case sanction.EventPardoned:
		embed = flavor.Embed("🔊 Voice Restored", fmt.Sprintf("%s may speak once more, by the mercy of %s!", mention, userMention(ev.ActorID)), "green")
	default:
		return nil
	}

	if _, err := a.session.ChannelMessageSendEmbed(cfg.LogChannelID, embed); err != nil {
		return sanction.WrapError(sanction.KindDelivery, err, "could not proclaim in the log channel")
	}
	return nil
}

func userMention(id string) string {
	return "<@" + id + ">"
}

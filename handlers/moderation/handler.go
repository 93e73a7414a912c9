package moderation

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/model"
	"medieval-moderator/sanction"
	warnings_db "medieval-moderator/utils/database/warnings"
)

func checkPrivilege(b *bot.Bot, req model.CommandRequest, action, denial string) *bot.Reply {
	allowed, err := b.Authorizer.HasPrivilege(req.GuildID, req.ActorID, action)
	if err != nil {
		log.Printf("Privilege check failed for %s in guild %s: %v", req.ActorID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if !allowed {
		return &bot.Reply{Embed: flavor.Response(denial, false), Ephemeral: true}
	}
	return nil
}

func checkHierarchy(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	outranks, err := b.Authorizer.TargetOutranks(req.GuildID, req.ActorID, req.TargetUserID)
	if err != nil {
		log.Printf("Hierarchy check failed for %s vs %s in guild %s: %v", req.ActorID, req.TargetUserID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if outranks {
		return &bot.Reply{Embed: flavor.Response("Thou cannot act against one of equal or higher station!", false), Ephemeral: true}
	}
	return nil
}

// HandleWarn records a warning against a subject and sends them a notice,
// best effort.
func HandleWarn(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "warn", "Thou hast not the authority to issue warnings!"); r != nil {
		return r
	}
	if err := warnings_db.Add(b.DB, model.Warning{
		GuildID:     req.GuildID,
		UserID:      req.TargetUserID,
		ModeratorID: req.ActorID,
		Reason:      req.Reason,
	}); err != nil {
		log.Printf("Failed to record warning in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The warning could not be inscribed!", false), Ephemeral: true}
	}
	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "warn", req.Reason)

	if dm, err := b.Session.UserChannelCreate(req.TargetUserID); err == nil {
		notice := flavor.Embed("⚠️ Royal Warning", fmt.Sprintf("Thou hast been warned in the realm!\n**Reason:** %s", req.Reason), "yellow")
		if _, err := b.Session.ChannelMessageSendEmbed(dm.ID, notice); err != nil {
			log.Printf("Could not deliver warning notice to %s: %v", req.TargetUserID, err)
		}
	}

	embed := flavor.Embed("⚠️ Royal Warning", fmt.Sprintf("<@%s> hath been warned!", req.TargetUserID), "yellow")
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Reason", Value: req.Reason})
	return &bot.Reply{Embed: embed}
}

// HandleWarnings lists a subject's warnings, newest first.
func HandleWarnings(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	rows, err := warnings_db.ListByUser(b.DB, req.GuildID, req.TargetUserID)
	if err != nil {
		log.Printf("Failed to list warnings in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The warning records could not be read!", false), Ephemeral: true}
	}
	if len(rows) == 0 {
		return &bot.Reply{Embed: flavor.Response("This subject's record is unblemished!", true)}
	}

	shown := rows
	if len(shown) > 5 {
		shown = shown[:5]
	}
	var sb strings.Builder
	for _, w := range shown {
		fmt.Fprintf(&sb, "**#%d** %s\n📜 %s (by <@%s>)\n\n", w.ID, w.Timestamp, w.Reason, w.ModeratorID)
	}
	return &bot.Reply{Embed: flavor.Embed("⚠️ Warnings", fmt.Sprintf("<@%s> bears %d warnings (latest %d shown):\n\n%s", req.TargetUserID, len(rows), len(shown), sb.String()), "orange")}
}

// HandleClearWarn wipes a subject's warning record.
func HandleClearWarn(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "clearwarn", "Thou hast not the authority to clear warnings!"); r != nil {
		return r
	}
	removed, err := warnings_db.ClearByUser(b.DB, req.GuildID, req.TargetUserID)
	if err != nil {
		log.Printf("Failed to clear warnings in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The warning records could not be cleansed!", false), Ephemeral: true}
	}
	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "clearwarn", fmt.Sprintf("%d warnings cleared", removed))
	return &bot.Reply{Embed: flavor.Response(fmt.Sprintf("%d warnings have been wiped from the record!", removed), true)}
}

// HandleKick banishes a subject from the realm.
func HandleKick(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "kick", "Thou hast not the authority to banish subjects!"); r != nil {
		return r
	}
	if r := checkHierarchy(b, req); r != nil {
		return r
	}
	if err := b.Session.GuildMemberDeleteWithReason(req.GuildID, req.TargetUserID, req.Reason); err != nil {
		log.Printf("Failed to kick %s from guild %s: %v", req.TargetUserID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("I lack the power to banish this soul!", false), Ephemeral: true}
	}
	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "kick", req.Reason)
	return &bot.Reply{Embed: flavor.Embed("🥾 Banished", fmt.Sprintf("<@%s> hath been cast out of the realm!", req.TargetUserID), "orange")}
}

// HandleBan exiles a subject permanently.
func HandleBan(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "ban", "Thou hast not the authority to exile subjects!"); r != nil {
		return r
	}
	if r := checkHierarchy(b, req); r != nil {
		return r
	}
	if err := b.Session.GuildBanCreateWithReason(req.GuildID, req.TargetUserID, req.Reason, 0); err != nil {
		log.Printf("Failed to ban %s from guild %s: %v", req.TargetUserID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("I lack the power to exile this soul!", false), Ephemeral: true}
	}
	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "ban", req.Reason)
	return &bot.Reply{Embed: flavor.Embed("⚔️ Exiled", fmt.Sprintf("<@%s> hath been exiled from the realm forever!", req.TargetUserID), "red")}
}

// HandleUnban grants royal pardon to an exile.
func HandleUnban(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "unban", "Thou hast not the authority to grant pardons!"); r != nil {
		return r
	}
	if err := b.Session.GuildBanDelete(req.GuildID, req.TargetUserID); err != nil {
		log.Printf("Failed to unban %s in guild %s: %v", req.TargetUserID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("No such exile exists, or I lack the power to pardon them!", false), Ephemeral: true}
	}
	reason := req.Reason
	if reason == "" {
		reason = "Royal pardon"
	}
	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "unban", reason)
	return &bot.Reply{Embed: flavor.Embed("⚖️ Royal Pardon", fmt.Sprintf("<@%s> hath been granted pardon and may return to the realm!", req.TargetUserID), "green")}
}

// HandleMute silences a chatterer through the sanction lifecycle, so mutes
// get the same sweep and progress machinery as pillories.
func HandleMute(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "mute", "Thou hast not the authority to silence souls!"); r != nil {
		return r
	}
	if req.TargetUserID == req.ActorID {
		return &bot.Reply{Embed: flavor.Response("Thou cannot silence thyself!", false), Ephemeral: true}
	}
	if r := checkHierarchy(b, req); r != nil {
		return r
	}
	s, err := b.Manager.Create(req.GuildID, req.TargetUserID, req.DurationMinutes, req.Reason, model.SanctionMute)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}
	reason := req.Reason
	if reason == "" {
		reason = fmt.Sprintf("Muted for %d minutes", req.DurationMinutes)
	}
	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "mute", reason)
	return &bot.Reply{Embed: flavor.Response(
		fmt.Sprintf("The chatterer hath been silenced for %d minutes! (mute #%d)", req.DurationMinutes, s.ID),
		true,
	)}
}

// HandleUnmute ends a subject's active mute early.
func HandleUnmute(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "unmute", "Thou hast not the authority to restore voices!"); r != nil {
		return r
	}
	id, active, err := b.Manager.IsActive(req.GuildID, req.TargetUserID, model.SanctionMute)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}
	if !active {
		return &bot.Reply{Embed: flavor.Response("This soul is not silenced!", false), Ephemeral: true}
	}
	if err := b.Manager.EndEarly(model.SanctionMute, id, req.GuildID, req.ActorID); err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}
	reason := req.Reason
	if reason == "" {
		reason = "Mute lifted"
	}
	b.Auditor.Record(req.GuildID, req.ActorID, req.TargetUserID, "unmute", reason)
	return &bot.Reply{Embed: flavor.Response("The silenced may speak once more!", true)}
}

// HandlePurge bulk-deletes recent messages in the invoking channel.
func HandlePurge(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkPrivilege(b, req, "purge", "Thou hast not the authority to cleanse the chat!"); r != nil {
		return r
	}
	if req.Amount < 1 || req.Amount > 100 {
		return &bot.Reply{Embed: flavor.Response("Amount must be between 1 and 100!", false), Ephemeral: true}
	}
	msgs, err := b.Session.ChannelMessages(req.ChannelID, req.Amount, "", "", "")
	if err != nil {
		log.Printf("Failed to fetch messages in channel %s: %v", req.ChannelID, err)
		return &bot.Reply{Embed: flavor.Response("I lack the power to cleanse these messages!", false), Ephemeral: true}
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if err := b.Session.ChannelMessagesBulkDelete(req.ChannelID, ids); err != nil {
		log.Printf("Failed to bulk delete in channel %s: %v", req.ChannelID, err)
		return &bot.Reply{Embed: flavor.Response("I lack the power to cleanse these messages!", false), Ephemeral: true}
	}
	b.Auditor.Record(req.GuildID, req.ActorID, "", "purge", fmt.Sprintf("%d messages cleansed", len(ids)))
	return &bot.Reply{Embed: flavor.Response(fmt.Sprintf("%d messages have been consumed by royal flame!", len(ids)), true), Ephemeral: true}
}

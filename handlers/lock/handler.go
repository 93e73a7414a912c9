package lock

import (
	"fmt"
	"log"
	"strings"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/model"
	"medieval-moderator/sanction"
)

// HandleSeal locks the invoking channel: an overwrite denying Send Messages
// plus a lock record. The record is written only after the overwrite lands,
// so a permission failure never leaves a phantom lock.
func HandleSeal(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	allowed, err := b.Authorizer.HasPrivilege(req.GuildID, req.ActorID, "seal")
	if err != nil {
		log.Printf("Privilege check failed for %s in guild %s: %v", req.ActorID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if !allowed {
		return &bot.Reply{Embed: flavor.Response("Thou hast not the authority to seal chambers!", false), Ephemeral: true}
	}

	reason := req.Reason
	if reason == "" {
		reason = "By royal decree"
	}

	existing, err := b.Locks.ActiveLock(req.GuildID, req.TargetChannelID)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}
	if existing != nil {
		return &bot.Reply{Embed: flavor.Response("This chamber is already sealed by royal decree!", false), Ephemeral: true}
	}

	if err := b.Sealer.Seal(req.GuildID, req.TargetChannelID); err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}

	lk, err := b.Locks.Lock(req.GuildID, req.TargetChannelID, req.ActorID, reason)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}

	b.Auditor.Record(req.GuildID, req.ActorID, "", "channel_lock", reason)

	decree := flavor.LockDecree(channelMention(req.TargetChannelID), "<@"+req.ActorID+">", reason)
	embed := flavor.Embed("🔒 Chamber Sealed", fmt.Sprintf("%s hath been sealed by royal authority! (seal #%d)", channelMention(req.TargetChannelID), lk.ID), "red")
	return &bot.Reply{Content: decree, Embed: embed}
}

// HandleUnseal releases the active lock on the invoking channel.
func HandleUnseal(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	allowed, err := b.Authorizer.HasPrivilege(req.GuildID, req.ActorID, "unseal")
	if err != nil {
		log.Printf("Privilege check failed for %s in guild %s: %v", req.ActorID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if !allowed {
		return &bot.Reply{Embed: flavor.Response("Thou hast not the authority to unseal chambers!", false), Ephemeral: true}
	}

	reason := req.Reason
	if reason == "" {
		reason = "By royal mercy"
	}

	existing, err := b.Locks.ActiveLock(req.GuildID, req.TargetChannelID)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}
	if existing == nil {
		return &bot.Reply{Embed: flavor.Response("This chamber is not sealed!", false), Ephemeral: true}
	}

	if err := b.Sealer.Unseal(req.GuildID, req.TargetChannelID); err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}

	if _, err := b.Locks.Unlock(existing.ID, reason); err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}

	b.Auditor.Record(req.GuildID, req.ActorID, "", "channel_unlock", reason)

	decree := flavor.UnlockDecree(channelMention(req.TargetChannelID), "<@"+req.ActorID+">", reason)
	embed := flavor.Embed("🔓 Chamber Unsealed", fmt.Sprintf("%s is once more open to discourse!", channelMention(req.TargetChannelID)), "green")
	return &bot.Reply{Content: decree, Embed: embed}
}

// HandleSealed lists the realm's sealed chambers.
func HandleSealed(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	rows, err := b.Locks.ListActive(req.GuildID)
	if err != nil {
		return &bot.Reply{Embed: flavor.Response(sanction.Reason(err), false), Ephemeral: true}
	}
	if len(rows) == 0 {
		return &bot.Reply{Embed: flavor.Response("No chambers are sealed! Discourse flows freely through the realm.", true)}
	}

	var sb strings.Builder
	for _, lk := range rows {
		fmt.Fprintf(&sb, "**#%d** %s\n👑 Sealed by: <@%s>\n📜 Cause: %s\n🕰️ Since: %s\n\n",
			lk.ID, channelMention(lk.ChannelID), lk.ModeratorID, lk.Reason, lk.Timestamp)
	}
	return &bot.Reply{Embed: flavor.Embed("🔒 Sealed Chambers", sb.String(), "orange")}
}

func channelMention(id string) string {
	return "<#" + id + ">"
}

package commands

import (
	"github.com/bwmarrin/discordgo"

	"medieval-moderator/commands/defs"
)

// All returns every slash command the bot registers on startup.
func All() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Help,
		defs.Pillory,
		defs.Pardon,
		defs.Pillories,
		defs.Seal,
		defs.Unseal,
		defs.Sealed,
		defs.Warn,
		defs.Warnings,
		defs.ClearWarn,
		defs.Kick,
		defs.Ban,
		defs.Unban,
		defs.Mute,
		defs.Unmute,
		defs.Purge,
		defs.SetLogChannel,
		defs.PSetChannel,
		defs.PSetRole,
		defs.PBypass,
		defs.PBypassList,
		defs.PAllow,
		defs.PAllowList,
		defs.RealmInfo,
	}
}

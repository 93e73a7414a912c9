package handlers

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/model"
)

type helpSection struct {
	title   string
	entries [][2]string
}

var helpSections = []helpSection{
	{"🏰 Royal Administration", [][2]string{
		{"help", "Display this royal charter of commands"},
		{"setlogchannel <channel>", "Set the royal chronicle channel for all logs"},
		{"psetchannel <channel>", "Set the pillory channel for public shaming"},
		{"psetrole <role>", "Set the role borne by the publicly shamed"},
	}},
	{"⚔️ Pillory System", [][2]string{
		{"pillory <member> <duration> <reason>", "Place a knave in public shame"},
		{"pillories", "View all active pillories in the realm"},
		{"pardon <pillory_id>", "Show mercy and end a pillory early"},
		{"pbypass <role1> [role2]...", "Set roles immune to pillory punishment"},
		{"pbypasslist", "List roles with pillory immunity"},
		{"pallow <role1> [role2]...", "Set roles allowed to use pillory commands"},
		{"pallowlist", "List roles with pillory command privileges"},
	}},
	{"🔒 Chamber Management", [][2]string{
		{"seal [reason]", "Seal a chamber to silence all discourse"},
		{"unseal [reason]", "Unseal a chamber and restore discourse"},
		{"sealed", "View all sealed chambers in the realm"},
	}},
	{"⚠️ Warning System", [][2]string{
		{"warn <member> <reason>", "Issue a warning to a miscreant"},
		{"warnings [member]", "Check warnings for a subject"},
		{"clearwarn <member>", "Clear warnings from a repentant soul"},
	}},
	{"🔨 Punishment & Justice", [][2]string{
		{"kick <member> [reason]", "Banish a knave from the realm"},
		{"ban <member> [reason]", "Permanently exile a criminal"},
		{"unban <user_id> [reason]", "Grant royal pardon to an exile"},
		{"mute <member> <duration> [reason]", "Silence a chatterer for a time"},
		{"unmute <member> [reason]", "Restore voice to the silenced"},
		{"purge <amount>", "Cleanse the chat of messages (1-100)"},
	}},
	{"📊 Realm Lore", [][2]string{
		{"realm-info", "Survey the realm and the scribe's vitals"},
	}},
}

// HandleHelp renders the full command charter as one sectioned embed.
func HandleHelp(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	embed := flavor.Embed("📜 The Complete Royal Charter", flavor.Greeting(), "purple")
	for _, section := range helpSections {
		lines := make([]string, 0, len(section.entries))
		for _, e := range section.entries {
			lines = append(lines, fmt.Sprintf("**%s** · %s", e[0], e[1]))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  section.title,
			Value: strings.Join(lines, "\n"),
		})
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Every command answers to both %s and / prefixes", b.GetConfig().Prefix),
	}
	return &bot.Reply{Embed: embed}
}

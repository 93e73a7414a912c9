package defs

import "github.com/bwmarrin/discordgo"

var Help = &discordgo.ApplicationCommand{
	Name:        "help",
	Description: "Display the royal charter of commands",
}

package defs

import "github.com/bwmarrin/discordgo"

var Seal = &discordgo.ApplicationCommand{
	Name:        "seal",
	Description: "Seal this chamber against all discourse",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Why the chamber is sealed",
			Required:    false,
		},
	},
}

var Unseal = &discordgo.ApplicationCommand{
	Name:        "unseal",
	Description: "Restore discourse to this chamber",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Why mercy is shown",
			Required:    false,
		},
	},
}

var Sealed = &discordgo.ApplicationCommand{
	Name:        "sealed",
	Description: "List all sealed chambers in the realm",
}

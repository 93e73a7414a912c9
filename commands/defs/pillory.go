package defs

import "github.com/bwmarrin/discordgo"

var pilloryMin float64 = 1

var Pillory = &discordgo.ApplicationCommand{
	Name:        "pillory",
	Description: "Condemn a subject to public shame",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The subject to be shamed",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "duration",
			Description: "Duration in minutes (1-1440)",
			Required:    true,
			MinValue:    &pilloryMin,
			MaxValue:    1440,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "The crime committed against the realm",
			Required:    true,
		},
	},
}

var Pardon = &discordgo.ApplicationCommand{
	Name:        "pardon",
	Description: "Show mercy and end a pillory early",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "pillory_id",
			Description: "The id of the pillory to end",
			Required:    true,
			MinValue:    &pilloryMin,
		},
	},
}

var Pillories = &discordgo.ApplicationCommand{
	Name:        "pillories",
	Description: "List all souls currently in the stocks",
}

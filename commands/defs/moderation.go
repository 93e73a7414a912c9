package defs

import "github.com/bwmarrin/discordgo"

var durationMin float64 = 1
var purgeMin float64 = 1

var Warn = &discordgo.ApplicationCommand{
	Name:        "warn",
	Description: "Issue a royal warning to a subject",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The subject to warn",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "The transgression",
			Required:    true,
		},
	},
}

var Warnings = &discordgo.ApplicationCommand{
	Name:        "warnings",
	Description: "Read the warnings issued against a subject",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The subject whose record to read",
			Required:    true,
		},
	},
}

var ClearWarn = &discordgo.ApplicationCommand{
	Name:        "clearwarn",
	Description: "Wipe a subject's warning record clean",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The subject to forgive",
			Required:    true,
		},
	},
}

var Kick = &discordgo.ApplicationCommand{
	Name:        "kick",
	Description: "Banish a subject from the realm",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The subject to banish",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "The reason for banishment",
			Required:    false,
		},
	},
}

var Ban = &discordgo.ApplicationCommand{
	Name:        "ban",
	Description: "Exile a subject from the realm forever",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The subject to exile",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "The reason for exile",
			Required:    false,
		},
	},
}

var Unban = &discordgo.ApplicationCommand{
	Name:        "unban",
	Description: "Grant royal pardon to an exile",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "user_id",
			Description: "The id of the exile to pardon",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "The reason for pardon",
			Required:    false,
		},
	},
}

var Mute = &discordgo.ApplicationCommand{
	Name:        "mute",
	Description: "Silence a chatterer for a time",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The member to silence",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "duration",
			Description: "Duration in minutes (1-40320)",
			Required:    true,
			MinValue:    &durationMin,
			MaxValue:    40320,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "The reason for silence",
			Required:    false,
		},
	},
}

var Unmute = &discordgo.ApplicationCommand{
	Name:        "unmute",
	Description: "Restore voice to the silenced",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The member to restore",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "The reason for mercy",
			Required:    false,
		},
	},
}

var Purge = &discordgo.ApplicationCommand{
	Name:        "purge",
	Description: "Cleanse the chamber of recent messages",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "How many messages to cleanse (1-100)",
			Required:    true,
			MinValue:    &purgeMin,
			MaxValue:    100,
		},
	},
}

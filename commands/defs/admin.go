package defs

import "github.com/bwmarrin/discordgo"

var SetLogChannel = &discordgo.ApplicationCommand{
	Name:        "setlogchannel",
	Description: "Set the royal chronicle channel for all server logs",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Where the chronicles shall be recorded",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	},
}

var PSetChannel = &discordgo.ApplicationCommand{
	Name:        "psetchannel",
	Description: "Set the channel where the pillory is erected",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Where public shame shall be proclaimed",
			Required:     true,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	},
}

var PSetRole = &discordgo.ApplicationCommand{
	Name:        "psetrole",
	Description: "Set the role borne by the publicly shamed",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The mark of shame",
			Required:    true,
		},
	},
}

var PBypass = &discordgo.ApplicationCommand{
	Name:        "pbypass",
	Description: "Set roles immune to pillory punishment",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "roles",
			Description: "The roles to grant immunity (mention them)",
			Required:    true,
		},
	},
}

var PBypassList = &discordgo.ApplicationCommand{
	Name:        "pbypasslist",
	Description: "List roles with pillory bypass privilege",
}

var PAllow = &discordgo.ApplicationCommand{
	Name:        "pallow",
	Description: "Set roles allowed to use pillory commands",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "roles",
			Description: "The roles to bestow authority upon (mention them)",
			Required:    true,
		},
	},
}

var PAllowList = &discordgo.ApplicationCommand{
	Name:        "pallowlist",
	Description: "List roles allowed to use pillory commands",
}

var RealmInfo = &discordgo.ApplicationCommand{
	Name:        "realm-info",
	Description: "View the health of the realm's machinery",
}

package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/handlers/admin"
	"medieval-moderator/handlers/lock"
	"medieval-moderator/handlers/moderation"
	"medieval-moderator/handlers/pillory"
	"medieval-moderator/model"
	"medieval-moderator/utils"
)

// domainHandlers maps command names to the domain logic. Both the slash
// adapter and the text-prefix adapter dispatch through this table, so each
// command is implemented exactly once.
func domainHandlers() map[string]func(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	return map[string]func(b *bot.Bot, req model.CommandRequest) *bot.Reply{
		"help":          HandleHelp,
		"pillory":       pillory.HandlePillory,
		"pardon":        pillory.HandlePardon,
		"pillories":     pillory.HandlePillories,
		"seal":          lock.HandleSeal,
		"unseal":        lock.HandleUnseal,
		"sealed":        lock.HandleSealed,
		"warn":          moderation.HandleWarn,
		"warnings":      moderation.HandleWarnings,
		"clearwarn":     moderation.HandleClearWarn,
		"kick":          moderation.HandleKick,
		"ban":           moderation.HandleBan,
		"unban":         moderation.HandleUnban,
		"mute":          moderation.HandleMute,
		"unmute":        moderation.HandleUnmute,
		"purge":         moderation.HandlePurge,
		"setlogchannel": admin.HandleSetLogChannel,
		"psetchannel":   admin.HandlePSetChannel,
		"psetrole":      admin.HandlePSetRole,
		"pbypass":       admin.HandlePBypass,
		"pbypasslist":   admin.HandlePBypassList,
		"pallow":        admin.HandlePAllow,
		"pallowlist":    admin.HandlePAllowList,
	}
}

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	handlers := make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate))
	for name, handle := range domainHandlers() {
		handlers[name] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if i.GuildID == "" {
				utils.SendErrorResponse(s, i, "This command belongs within a realm!")
				return
			}
			req := requestFromInteraction(name, i)
			deliverInteractionReply(s, i, handle(b, req))
		}
	}
	handlers["realm-info"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		HandleRealmInfo(s, i, b)
	}
	return handlers
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		HandleMessageCreate(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageUpdate) {
		HandleMessageEdit(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageDelete) {
		HandleMessageDelete(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		HandleMemberJoin(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
		HandleMemberLeave(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
		HandleMemberUpdate(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, c *discordgo.ChannelCreate) {
		HandleChannelCreate(s, c, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, c *discordgo.ChannelDelete) {
		HandleChannelDelete(s, c, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.GuildRoleCreate) {
		HandleRoleCreate(s, r, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.GuildRoleDelete) {
		HandleRoleDelete(s, r, b)
	})
}

func deliverInteractionReply(s *discordgo.Session, i *discordgo.InteractionCreate, reply *bot.Reply) {
	if reply == nil {
		return
	}
	data := &discordgo.InteractionResponseData{}
	if reply.Content != "" {
		data.Content = reply.Content
	}
	if reply.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("Error responding to %s interaction: %v", i.ApplicationCommandData().Name, err)
	}
}

func deliverMessageReply(s *discordgo.Session, channelID string, reply *bot.Reply) {
	if reply == nil {
		return
	}
	if reply.Content != "" {
		if _, err := s.ChannelMessageSend(channelID, reply.Content); err != nil {
			log.Printf("Error sending reply in channel %s: %v", channelID, err)
		}
	}
	if reply.Embed != nil {
		if _, err := s.ChannelMessageSendEmbed(channelID, reply.Embed); err != nil {
			log.Printf("Error sending reply embed in channel %s: %v", channelID, err)
		}
	}
	if reply.Content == "" && reply.Embed == nil {
		if _, err := s.ChannelMessageSendEmbed(channelID, flavor.Response("It is done.", true)); err != nil {
			log.Printf("Error sending reply embed in channel %s: %v", channelID, err)
		}
	}
}

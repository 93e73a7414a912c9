package admin

import (
	"fmt"
	"log"
	"strings"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/model"
	guildconfig_db "medieval-moderator/utils/database/guildconfig"
)

func checkAdmin(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	allowed, err := b.Authorizer.HasAdmin(req.GuildID, req.ActorID)
	if err != nil {
		log.Printf("Admin check failed for %s in guild %s: %v", req.ActorID, req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if !allowed {
		return &bot.Reply{Embed: flavor.Response("Only the Crown's chosen may alter the realm's decrees!", false), Ephemeral: true}
	}
	return nil
}

// HandleSetLogChannel points the royal chronicle at a channel.
func HandleSetLogChannel(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkAdmin(b, req); r != nil {
		return r
	}
	if err := guildconfig_db.SetLogChannel(b.DB, req.GuildID, req.TargetChannelID); err != nil {
		log.Printf("Failed to set log channel in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The chronicle channel could not be recorded!", false), Ephemeral: true}
	}

	// Announce in the new chronicle so a misconfigured channel is obvious.
	b.Auditor.Proclaim(req.GuildID, flavor.Embed(
		"📜 Royal Chronicle Initialized",
		fmt.Sprintf("Chronicle system activated by <@%s>! All server activities will be recorded henceforth.", req.ActorID),
		"green",
	))
	return &bot.Reply{Embed: flavor.Response(
		fmt.Sprintf("The royal chronicles shall now be recorded in <#%s>!", req.TargetChannelID),
		true,
	)}
}

// HandlePSetChannel sets where the pillory is erected.
func HandlePSetChannel(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkAdmin(b, req); r != nil {
		return r
	}
	if err := guildconfig_db.SetPilloryChannel(b.DB, req.GuildID, req.TargetChannelID); err != nil {
		log.Printf("Failed to set pillory channel in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The pillory channel could not be recorded!", false), Ephemeral: true}
	}
	return &bot.Reply{Embed: flavor.Response(
		fmt.Sprintf("The pillory shall now be erected in <#%s>!", req.TargetChannelID),
		true,
	)}
}

// HandlePSetRole sets the mark of shame role.
func HandlePSetRole(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkAdmin(b, req); r != nil {
		return r
	}
	if len(req.RoleIDs) == 0 {
		return &bot.Reply{Embed: flavor.Response("Thou must name the mark of shame!", false), Ephemeral: true}
	}
	if err := guildconfig_db.SetPilloryRole(b.DB, req.GuildID, req.RoleIDs[0]); err != nil {
		log.Printf("Failed to set pillory role in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The mark of shame could not be recorded!", false), Ephemeral: true}
	}
	return &bot.Reply{Embed: flavor.Response(
		fmt.Sprintf("The shamed shall henceforth bear <@&%s>!", req.RoleIDs[0]),
		true,
	)}
}

// HandlePBypass replaces the set of roles immune to sanctions.
func HandlePBypass(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkAdmin(b, req); r != nil {
		return r
	}
	if len(req.RoleIDs) == 0 {
		return &bot.Reply{Embed: flavor.Response("Thou must specify at least one role for bypass!", false), Ephemeral: true}
	}
	if err := guildconfig_db.SetBypassRoles(b.DB, req.GuildID, model.RoleIDSet(req.RoleIDs)); err != nil {
		log.Printf("Failed to set bypass roles in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The bypass roles could not be recorded!", false), Ephemeral: true}
	}
	return &bot.Reply{Embed: flavor.Embed(
		"👑 Royal Bypass Privilege",
		fmt.Sprintf("The following roles now possess royal immunity: %s", roleMentions(req.RoleIDs)),
		"purple",
	)}
}

// HandlePBypassList shows the immune roles.
func HandlePBypassList(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	cfg, err := guildconfig_db.Get(b.DB, req.GuildID)
	if err != nil {
		log.Printf("Failed to load config for guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if cfg == nil || len(cfg.BypassRoleIDs) == 0 {
		return &bot.Reply{Embed: flavor.Response("No roles possess royal bypass privileges!", true)}
	}
	return &bot.Reply{Embed: flavor.Embed(
		"👑 Royal Bypass Privileges",
		fmt.Sprintf("These noble roles possess immunity: %s", roleMentions(cfg.BypassRoleIDs)),
		"gold",
	)}
}

// HandlePAllow replaces the set of roles allowed to command the pillory.
func HandlePAllow(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	if r := checkAdmin(b, req); r != nil {
		return r
	}
	if len(req.RoleIDs) == 0 {
		return &bot.Reply{Embed: flavor.Response("Thou must specify at least one role for pillory privileges!", false), Ephemeral: true}
	}
	if err := guildconfig_db.SetAllowedRoles(b.DB, req.GuildID, model.RoleIDSet(req.RoleIDs)); err != nil {
		log.Printf("Failed to set allowed roles in guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The privileged roles could not be recorded!", false), Ephemeral: true}
	}
	return &bot.Reply{Embed: flavor.Embed(
		"⚔️ Royal Pillory Privileges",
		fmt.Sprintf("The following roles now command the power of the pillory: %s", roleMentions(req.RoleIDs)),
		"purple",
	)}
}

// HandlePAllowList shows the roles allowed to command the pillory.
func HandlePAllowList(b *bot.Bot, req model.CommandRequest) *bot.Reply {
	cfg, err := guildconfig_db.Get(b.DB, req.GuildID)
	if err != nil {
		log.Printf("Failed to load config for guild %s: %v", req.GuildID, err)
		return &bot.Reply{Embed: flavor.Response("The royal records could not be consulted!", false), Ephemeral: true}
	}
	if cfg == nil || len(cfg.AllowedRoleIDs) == 0 {
		return &bot.Reply{Embed: flavor.Response("All moderators may use the pillory - no restrictions set!", true)}
	}
	return &bot.Reply{Embed: flavor.Embed(
		"⚔️ Pillory Command Privileges",
		fmt.Sprintf("These chosen roles command the pillory: %s", roleMentions(cfg.AllowedRoleIDs)),
		"gold",
	)}
}

func roleMentions(ids []string) string {
	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, "<@&"+id+">")
	}
	return strings.Join(mentions, " ")
}

package handlers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"medieval-moderator/bot"
	"medieval-moderator/model"
	"medieval-moderator/utils"
)

var (
	userMentionRe    = regexp.MustCompile(`^<@!?(\d+)>$`)
	roleMentionRe    = regexp.MustCompile(`<@&(\d+)>`)
	channelMentionRe = regexp.MustCompile(`^<#(\d+)>$`)
)

// HandleMessageCreate snapshots the message for the chronicle and, when it
// starts with the command prefix, dispatches it as a moderator command.
func HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate, b *bot.Bot) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	snapshotMessage(b, m.Message)

	prefix := b.GetConfig().Prefix
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}
	fields := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(fields) == 0 {
		return
	}
	command := strings.ToLower(fields[0])
	handle, ok := domainHandlers()[command]
	if !ok {
		return
	}

	req := requestFromMessage(command, fields[1:], m)
	deliverMessageReply(s, m.ChannelID, handle(b, req))
}

// requestFromMessage normalizes a prefix command. Argument order follows the
// slash definitions: target first, then duration or amount, then a trailing
// free-form reason.
func requestFromMessage(command string, args []string, m *discordgo.MessageCreate) model.CommandRequest {
	req := model.CommandRequest{
		Command:         command,
		GuildID:         m.GuildID,
		ChannelID:       m.ChannelID,
		ActorID:         m.Author.ID,
		TargetChannelID: m.ChannelID,
	}
	if m.Member != nil {
		req.ActorRoles = m.Member.Roles
	}

	switch command {
	case "pillory", "mute":
		if len(args) >= 1 {
			req.TargetUserID = parseUserArg(args[0])
		}
		if len(args) >= 2 {
			req.DurationMinutes = parseMinutes(args[1])
		}
		if len(args) >= 3 {
			req.Reason = strings.Join(args[2:], " ")
		}
	case "warn", "kick", "ban", "unmute":
		if len(args) >= 1 {
			req.TargetUserID = parseUserArg(args[0])
		}
		if len(args) >= 2 {
			req.Reason = strings.Join(args[1:], " ")
		}
	case "unban":
		if len(args) >= 1 {
			req.TargetUserID = args[0]
		}
		if len(args) >= 2 {
			req.Reason = strings.Join(args[1:], " ")
		}
	case "warnings", "clearwarn":
		if len(args) >= 1 {
			req.TargetUserID = parseUserArg(args[0])
		}
	case "pardon":
		if len(args) >= 1 {
			req.SanctionID, _ = strconv.ParseInt(args[0], 10, 64)
		}
	case "purge":
		if len(args) >= 1 {
			req.Amount, _ = strconv.Atoi(args[0])
		}
	case "seal", "unseal":
		req.Reason = strings.Join(args, " ")
	case "setlogchannel", "psetchannel":
		if len(args) >= 1 {
			req.TargetChannelID = parseChannelArg(args[0])
		}
	case "psetrole", "pbypass", "pallow":
		req.RoleIDs = parseRoleMentions(strings.Join(args, " "))
	}
	return req
}

func parseUserArg(arg string) string {
	if m := userMentionRe.FindStringSubmatch(arg); m != nil {
		return m[1]
	}
	return arg
}

func parseChannelArg(arg string) string {
	if m := channelMentionRe.FindStringSubmatch(arg); m != nil {
		return m[1]
	}
	return arg
}

func parseRoleMentions(input string) []string {
	var ids []string
	for _, m := range roleMentionRe.FindAllStringSubmatch(input, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

// parseMinutes accepts a bare minute count or a duration with units, so both
// "90" and "1h30m" and "1d" work.
func parseMinutes(arg string) int {
	if n, err := strconv.Atoi(arg); err == nil {
		return n
	}
	if d, err := utils.ParseDuration(arg); err == nil {
		return int(d.Minutes())
	}
	return 0
}

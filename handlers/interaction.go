package handlers

import (
	"github.com/bwmarrin/discordgo"

	"medieval-moderator/model"
)

// requestFromInteraction normalizes a slash command invocation. Option names
// are shared across commands (member, duration, reason, amount) so one
// extraction loop covers the whole command set.
func requestFromInteraction(command string, i *discordgo.InteractionCreate) model.CommandRequest {
	req := model.CommandRequest{
		Command:         command,
		GuildID:         i.GuildID,
		ChannelID:       i.ChannelID,
		TargetChannelID: i.ChannelID,
	}
	if i.Member != nil {
		req.ActorID = i.Member.User.ID
		req.ActorRoles = i.Member.Roles
	}

	data := i.ApplicationCommandData()
	for _, opt := range data.Options {
		switch opt.Name {
		case "member":
			req.TargetUserID = opt.UserValue(nil).ID
		case "user_id":
			req.TargetUserID = opt.StringValue()
		case "duration":
			req.DurationMinutes = int(opt.IntValue())
		case "amount":
			req.Amount = int(opt.IntValue())
		case "reason":
			req.Reason = opt.StringValue()
		case "pillory_id":
			req.SanctionID = opt.IntValue()
		case "channel":
			req.TargetChannelID = opt.ChannelValue(nil).ID
		case "role":
			req.RoleIDs = []string{opt.RoleValue(nil, "").ID}
		case "roles":
			req.RoleIDs = parseRoleMentions(opt.StringValue())
		}
	}
	return req
}

package handlers

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func newMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			GuildID:   "g1",
			ChannelID: "c1",
			Content:   content,
			Author:    &discordgo.User{ID: "actor"},
		},
	}
}

func TestRequestFromMessagePillory(t *testing.T) {
	m := newMessage("!pillory <@42> 30 public jaywalking")
	req := requestFromMessage("pillory", []string{"<@42>", "30", "public", "jaywalking"}, m)

	assert.Equal(t, "g1", req.GuildID)
	assert.Equal(t, "actor", req.ActorID)
	assert.Equal(t, "42", req.TargetUserID)
	assert.Equal(t, 30, req.DurationMinutes)
	assert.Equal(t, "public jaywalking", req.Reason)
}

func TestRequestFromMessageDurationUnits(t *testing.T) {
	m := newMessage("")
	req := requestFromMessage("mute", []string{"<@42>", "2h", "chatter"}, m)
	assert.Equal(t, 120, req.DurationMinutes)

	req = requestFromMessage("mute", []string{"<@42>", "1d"}, m)
	assert.Equal(t, 1440, req.DurationMinutes)

	req = requestFromMessage("mute", []string{"<@42>", "gibberish"}, m)
	assert.Zero(t, req.DurationMinutes)
}

func TestRequestFromMessagePardon(t *testing.T) {
	req := requestFromMessage("pardon", []string{"17"}, newMessage(""))
	assert.Equal(t, int64(17), req.SanctionID)
}

func TestRequestFromMessageSealDefaultsToInvokingChannel(t *testing.T) {
	req := requestFromMessage("seal", []string{"royal", "silence"}, newMessage(""))
	assert.Equal(t, "c1", req.TargetChannelID)
	assert.Equal(t, "royal silence", req.Reason)
}

func TestRequestFromMessageChannelAndRoles(t *testing.T) {
	req := requestFromMessage("setlogchannel", []string{"<#555>"}, newMessage(""))
	assert.Equal(t, "555", req.TargetChannelID)

	req = requestFromMessage("pbypass", []string{"<@&1>", "<@&2>"}, newMessage(""))
	assert.Equal(t, []string{"1", "2"}, req.RoleIDs)

	// Non-mention noise is ignored rather than misparsed.
	req = requestFromMessage("pallow", []string{"mods", "<@&3>"}, newMessage(""))
	assert.Equal(t, []string{"3"}, req.RoleIDs)
}

func TestRequestFromMessageUnbanTakesRawID(t *testing.T) {
	req := requestFromMessage("unban", []string{"987", "royal", "mercy"}, newMessage(""))
	assert.Equal(t, "987", req.TargetUserID)
	assert.Equal(t, "royal mercy", req.Reason)
}

func TestParseUserArgAcceptsNicknameMentions(t *testing.T) {
	assert.Equal(t, "42", parseUserArg("<@!42>"))
	assert.Equal(t, "42", parseUserArg("<@42>"))
	assert.Equal(t, "42", parseUserArg("42"))
}

package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medieval-moderator/bot"
	"medieval-moderator/flavor"
	"medieval-moderator/model"
)

func TestHelpChartersEveryCommand(t *testing.T) {
	b := &bot.Bot{}
	b.SetConfig(&model.Config{Prefix: "!"})

	reply := HandleHelp(b, model.CommandRequest{Command: "help", GuildID: "g1"})
	require.NotNil(t, reply)
	require.NotNil(t, reply.Embed)

	var charter strings.Builder
	for _, f := range reply.Embed.Fields {
		charter.WriteString(f.Name)
		charter.WriteString("\n")
		charter.WriteString(f.Value)
		charter.WriteString("\n")
	}
	text := charter.String()
	for name := range domainHandlers() {
		assert.Contains(t, text, name, "command %s missing from the charter", name)
	}
	assert.Contains(t, text, "realm-info")

	assert.Equal(t, flavor.Colors["purple"], reply.Embed.Color)
	require.NotNil(t, reply.Embed.Footer)
	assert.Contains(t, reply.Embed.Footer.Text, "!")
}

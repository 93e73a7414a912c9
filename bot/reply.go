package bot

import "github.com/bwmarrin/discordgo"

// Reply is what a domain handler wants said back to the invoker. The command
// adapters own delivery; Ephemeral only matters for interactions.
type Reply struct {
	Content   string
	Embed     *discordgo.MessageEmbed
	Ephemeral bool
}

package flavor

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Colors maps flavor names to Discord embed colors.
var Colors = map[string]int{
	"gold":    0xF1C40F,
	"red":     0x992D22,
	"green":   0x1F8B4C,
	"blue":    0x206694,
	"purple":  0x9B59B6,
	"orange":  0xA84300,
	"teal":    0x1ABC9C,
	"blurple": 0x5865F2,
	"yellow":  0xFEE75C,
}

// Embed builds a royal decree embed. Unknown color names fall back to gold,
// and titles get the castle marker unless they already carry one.
func Embed(title, description, colorName string) *discordgo.MessageEmbed {
	color, ok := Colors[colorName]
	if !ok {
		color = Colors["gold"]
	}
	if title != "" && !strings.Contains(title, "🏰") {
		title = "🏰 " + title
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: RoyalSealURL},
		Footer:      &discordgo.MessageEmbedFooter{Text: "By royal decree of the realm"},
	}
}

// Response wraps a short reply in medieval dressing, green for success and
// red for failure.
func Response(message string, success bool) *discordgo.MessageEmbed {
	full := strings.TrimSpace(Prefix() + " " + message + " " + Suffix())
	color := "green"
	if !success {
		color = "red"
	}
	return Embed("", full, color)
}

package flavor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	out := Render("{user} did {deed}", map[string]string{"user": "<@1>", "deed": "heresy"})
	assert.Equal(t, "<@1> did heresy", out)

	// Unknown placeholders are left alone rather than erased.
	out = Render("{user} and {other}", map[string]string{"user": "<@1>"})
	assert.Equal(t, "<@1> and {other}", out)
}

func TestShameDecreeCarriesSentenceDetails(t *testing.T) {
	out := ShameDecree("<@42>", "jaywalking", 10)
	assert.Contains(t, out, "<@42>")
	assert.Contains(t, out, "jaywalking")
	assert.Contains(t, out, "10 minutes")
	assert.Contains(t, out, "@here")
}

func TestUpdateBulletinCarriesProgress(t *testing.T) {
	out := UpdateBulletin("<@42>", 15, 45)
	assert.Contains(t, out, "<@42>")
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "45")
}

func TestLockDecreesCarryAllFields(t *testing.T) {
	out := LockDecree("<#7>", "<@9>", "rowdiness")
	assert.Contains(t, out, "<#7>")
	assert.Contains(t, out, "<@9>")
	assert.Contains(t, out, "rowdiness")

	out = UnlockDecree("<#7>", "<@9>", "peace restored")
	assert.Contains(t, out, "<#7>")
	assert.Contains(t, out, "peace restored")
}

func TestLogLineCoversProfileChanges(t *testing.T) {
	out := LogLine("username_change", map[string]string{"user": "<@1>", "after": "Aldric"})
	assert.Contains(t, out, "<@1>")
	assert.Contains(t, out, "Aldric")

	out = LogLine("avatar_change", map[string]string{"user": "<@1>"})
	assert.Contains(t, out, "<@1>")
}

func TestLogLineFallsBackForUnknownEvents(t *testing.T) {
	out := LogLine("comet_sighted", map[string]string{"user": "<@1>"})
	assert.Contains(t, out, "<@1>")
	assert.Contains(t, out, "comet_sighted")
}

func TestEmbedDefaults(t *testing.T) {
	e := Embed("Royal Notice", "hear ye", "no-such-color")
	assert.Equal(t, Colors["gold"], e.Color)
	assert.True(t, strings.HasPrefix(e.Title, "🏰"))
	require.NotNil(t, e.Thumbnail)
	assert.Equal(t, RoyalSealURL, e.Thumbnail.URL)

	// Titles that already carry the marker are not doubled.
	e = Embed("🏰 Castle News", "", "gold")
	assert.Equal(t, "🏰 Castle News", e.Title)
}

func TestResponseColors(t *testing.T) {
	assert.Equal(t, Colors["green"], Response("well done", true).Color)
	assert.Equal(t, Colors["red"], Response("for shame", false).Color)
}

package handlers

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc…", truncate("abcdef", 3))

	// Cutting inside the two-byte é must back up to the rune start.
	got := truncate("héllo", 2)
	assert.Equal(t, "h…", got)
	assert.True(t, utf8.ValidString(got))

	long := "⚔️ the knights rode forth ⚔️"
	for max := 1; max < len(long); max++ {
		assert.True(t, utf8.ValidString(truncate(long, max)), "max=%d", max)
	}
}

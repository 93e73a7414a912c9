package warnings

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medieval-moderator/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, Init(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWarningsPerUser(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Add(db, model.Warning{GuildID: "g1", UserID: "u1", ModeratorID: "m1", Reason: "rabble-rousing", Timestamp: "2026-01-01T10:00:00Z"}))
	require.NoError(t, Add(db, model.Warning{GuildID: "g1", UserID: "u1", ModeratorID: "m1", Reason: "heresy", Timestamp: "2026-01-02T10:00:00Z"}))
	require.NoError(t, Add(db, model.Warning{GuildID: "g1", UserID: "u2", ModeratorID: "m1", Reason: "jaywalking"}))
	require.NoError(t, Add(db, model.Warning{GuildID: "g2", UserID: "u1", ModeratorID: "m1", Reason: "other realm"}))

	rows, err := ListByUser(db, "g1", "u1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "heresy", rows[0].Reason, "newest first")
	assert.Equal(t, "rabble-rousing", rows[1].Reason)

	removed, err := ClearByUser(db, "g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	rows, err = ListByUser(db, "g1", "u1")
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Other users and guilds are untouched.
	rows, err = ListByUser(db, "g1", "u2")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	rows, err = ListByUser(db, "g2", "u1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestClearWithNoWarnings(t *testing.T) {
	db := newTestDB(t)
	removed, err := ClearByUser(db, "g1", "nobody")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

package messages

import (
	"testing"
	"time"

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

func TestLatestReturnsNewestSnapshot(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Save(db, model.StoredMessage{GuildID: "g1", ChannelID: "c1", MessageID: "m1", UserID: "u1", Content: "first draft", Timestamp: "2026-01-01T10:00:00Z"}))
	require.NoError(t, Save(db, model.StoredMessage{GuildID: "g1", ChannelID: "c1", MessageID: "m1", UserID: "u1", Content: "edited", Timestamp: "2026-01-01T11:00:00Z"}))

	m, err := Latest(db, "m1")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "edited", m.Content)

	m, err = Latest(db, "unknown")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestPruneOlderThan(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Save(db, model.StoredMessage{GuildID: "g1", ChannelID: "c1", MessageID: "old", UserID: "u1", Content: "stale", Timestamp: "2026-01-01T10:00:00Z"}))
	require.NoError(t, Save(db, model.StoredMessage{GuildID: "g1", ChannelID: "c1", MessageID: "new", UserID: "u1", Content: "fresh", Timestamp: "2026-02-01T10:00:00Z"}))

	cutoff := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	removed, err := PruneOlderThan(db, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	m, err := Latest(db, "old")
	require.NoError(t, err)
	assert.Nil(t, m)
	m, err = Latest(db, "new")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "fresh", m.Content)
}

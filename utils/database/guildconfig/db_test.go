package guildconfig

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

func TestGetUnconfiguredGuild(t *testing.T) {
	db := newTestDB(t)
	cfg, err := Get(db, "g1")
	require.NoError(t, err)
	assert.Nil(t, cfg, "a never-configured guild has no row")
}

func TestLazyCreationAndIndependentFields(t *testing.T) {
	db := newTestDB(t)

	// First write creates the row with everything else unset.
	require.NoError(t, SetLogChannel(db, "g1", "log-chan"))
	cfg, err := Get(db, "g1")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "log-chan", cfg.LogChannelID)
	assert.Empty(t, cfg.PilloryChannelID)
	assert.Empty(t, cfg.BypassRoleIDs)

	// Later writes fill fields without clobbering earlier ones.
	require.NoError(t, SetPilloryChannel(db, "g1", "shame-chan"))
	require.NoError(t, SetPilloryRole(db, "g1", "shamed-role"))
	cfg, err = Get(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, "log-chan", cfg.LogChannelID)
	assert.Equal(t, "shame-chan", cfg.PilloryChannelID)
	assert.Equal(t, "shamed-role", cfg.PilloryRoleID)
}

func TestRoleSetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SetBypassRoles(db, "g1", model.RoleIDSet{"r1", "r2"}))
	require.NoError(t, SetAllowedRoles(db, "g1", model.RoleIDSet{"mods"}))

	cfg, err := Get(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, model.RoleIDSet{"r1", "r2"}, cfg.BypassRoleIDs)
	assert.Equal(t, model.RoleIDSet{"mods"}, cfg.AllowedRoleIDs)
	assert.True(t, cfg.BypassRoleIDs.Contains("r2"))
	assert.False(t, cfg.BypassRoleIDs.Contains("r3"))
	assert.True(t, cfg.BypassRoleIDs.ContainsAny([]string{"x", "r1"}))

	// Overwriting replaces the whole set.
	require.NoError(t, SetBypassRoles(db, "g1", model.RoleIDSet{"r9"}))
	cfg, err = Get(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, model.RoleIDSet{"r9"}, cfg.BypassRoleIDs)

	// Clearing leaves an empty set, not a parse error.
	require.NoError(t, SetBypassRoles(db, "g1", nil))
	cfg, err = Get(db, "g1")
	require.NoError(t, err)
	assert.Empty(t, cfg.BypassRoleIDs)
}

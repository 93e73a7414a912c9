package sanction

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medieval-moderator/model"
	sanctions_db "medieval-moderator/utils/database/sanctions"
)

func insertSanction(t *testing.T, db *sqlx.DB, kind model.SanctionKind, guildID, userID string, start, end time.Time) int64 {
	t.Helper()
	id, err := sanctions_db.Add(db, model.Sanction{
		GuildID:   guildID,
		UserID:    userID,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Reason:    "test",
		Active:    true,
		Kind:      kind,
	})
	require.NoError(t, err)
	return id
}

func TestSweepExpiresPastDeadline(t *testing.T) {
	db := newTestDB(t)
	sink := &recordingSink{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	expiredID := insertSanction(t, db, model.SanctionPillory, "g1", "u1", now.Add(-20*time.Minute), now.Add(-10*time.Minute))
	atDeadlineID := insertSanction(t, db, model.SanctionPillory, "g1", "u2", now.Add(-10*time.Minute), now)
	futureID := insertSanction(t, db, model.SanctionPillory, "g1", "u3", now.Add(-5*time.Minute), now.Add(5*time.Minute))

	sw := NewSweeper(db, sink, time.Minute)
	sw.now = fixedNow(now)
	require.NoError(t, sw.Sweep())

	released := sink.ofKind(EventReleased)
	require.Len(t, released, 2)
	ids := []int64{released[0].SanctionID, released[1].SanctionID}
	assert.ElementsMatch(t, []int64{expiredID, atDeadlineID}, ids)

	for _, tc := range []struct {
		id   int64
		want bool
	}{
		{expiredID, false},
		{atDeadlineID, false},
		{futureID, true},
	} {
		active, err := sanctions_db.IsActive(db, model.SanctionPillory, tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, active, "sanction %d", tc.id)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	sink := &recordingSink{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	insertSanction(t, db, model.SanctionMute, "g1", "u1", now.Add(-time.Hour), now.Add(-time.Minute))

	sw := NewSweeper(db, sink, time.Minute)
	sw.now = fixedNow(now)
	require.NoError(t, sw.Sweep())
	require.NoError(t, sw.Sweep())

	assert.Len(t, sink.ofKind(EventReleased), 1, "a second sweep over an inactive row must emit nothing")
}

func TestSweepSkipsMalformedRows(t *testing.T) {
	db := newTestDB(t)
	sink := &recordingSink{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := db.Exec(`INSERT INTO pillories (guild_id, user_id, start_time, end_time, reason, active)
		VALUES ('g1', 'broken', 'not-a-time', 'also-not-a-time', 'corrupt row', 1)`)
	require.NoError(t, err)
	goodID := insertSanction(t, db, model.SanctionPillory, "g1", "u2", now.Add(-time.Hour), now.Add(-time.Minute))

	sw := NewSweeper(db, sink, time.Minute)
	sw.now = fixedNow(now)
	require.NoError(t, sw.Sweep())

	released := sink.ofKind(EventReleased)
	require.Len(t, released, 1, "the malformed row must not abort the sweep")
	assert.Equal(t, goodID, released[0].SanctionID)
}

func TestSweepCoversAllGuildsAndKinds(t *testing.T) {
	db := newTestDB(t)
	sink := &recordingSink{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	insertSanction(t, db, model.SanctionPillory, "g1", "u1", now.Add(-time.Hour), now.Add(-time.Minute))
	insertSanction(t, db, model.SanctionMute, "g2", "u2", now.Add(-time.Hour), now.Add(-time.Minute))

	sw := NewSweeper(db, sink, time.Minute)
	sw.now = fixedNow(now)
	require.NoError(t, sw.Sweep())

	released := sink.ofKind(EventReleased)
	require.Len(t, released, 2)
	kinds := []model.SanctionKind{released[0].SanctionKind, released[1].SanctionKind}
	assert.ElementsMatch(t, []model.SanctionKind{model.SanctionPillory, model.SanctionMute}, kinds)
}

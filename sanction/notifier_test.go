package sanction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medieval-moderator/model"
	sanctions_db "medieval-moderator/utils/database/sanctions"
)

func TestNotifierEmitsProgressWhileActive(t *testing.T) {
	db := newTestDB(t)
	sink := &recordingSink{}
	now := time.Now().UTC()
	id := insertSanction(t, db, model.SanctionPillory, "g1", "u1", now, now.Add(time.Hour))

	n := NewNotifier(db, sink, 20*time.Millisecond)
	defer n.Stop()
	n.Schedule(model.Sanction{
		ID: id, GuildID: "g1", UserID: "u1", Kind: model.SanctionPillory,
		StartTime: now.Format(time.RFC3339), EndTime: now.Add(time.Hour).Format(time.RFC3339),
	})

	require.Eventually(t, func() bool {
		return len(sink.ofKind(EventProgress)) >= 2
	}, 2*time.Second, 10*time.Millisecond)

	for _, ev := range sink.ofKind(EventProgress) {
		assert.Equal(t, id, ev.SanctionID)
		assert.Greater(t, ev.RemainingMinutes, 0)
		assert.Equal(t, 60, ev.DurationMinutes)
		assert.Equal(t, 60, ev.ElapsedMinutes+ev.RemainingMinutes)
	}
}

func TestNotifierTerminatesWhenSanctionEnds(t *testing.T) {
	db := newTestDB(t)
	sink := &recordingSink{}
	now := time.Now().UTC()
	id := insertSanction(t, db, model.SanctionPillory, "g1", "u1", now, now.Add(time.Hour))

	// The sanction is already inactive by the first wake: terminate silently.
	_, err := sanctions_db.Deactivate(db, model.SanctionPillory, id)
	require.NoError(t, err)

	n := NewNotifier(db, sink, 20*time.Millisecond)
	defer n.Stop()
	n.Schedule(model.Sanction{
		ID: id, GuildID: "g1", UserID: "u1", Kind: model.SanctionPillory,
		StartTime: now.Format(time.RFC3339), EndTime: now.Add(time.Hour).Format(time.RFC3339),
	})

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, sink.ofKind(EventProgress))
	n.mu.Lock()
	running := len(n.tasks)
	n.mu.Unlock()
	assert.Zero(t, running, "the task must have self-terminated")
}

func TestNotifierCancelStopsTask(t *testing.T) {
	db := newTestDB(t)
	sink := &recordingSink{}
	now := time.Now().UTC()
	id := insertSanction(t, db, model.SanctionPillory, "g1", "u1", now, now.Add(2*time.Hour))

	// The sanction must outlast the interval or no task is scheduled at all.
	n := NewNotifier(db, sink, time.Hour) // never wakes on its own in this test
	defer n.Stop()
	n.Schedule(model.Sanction{
		ID: id, GuildID: "g1", UserID: "u1", Kind: model.SanctionPillory,
		StartTime: now.Format(time.RFC3339), EndTime: now.Add(2 * time.Hour).Format(time.RFC3339),
	})

	n.mu.Lock()
	_, scheduled := n.tasks[id]
	n.mu.Unlock()
	require.True(t, scheduled)

	n.Cancel(id)
	require.Eventually(t, func() bool {
		n.mu.Lock()
		defer n.mu.Unlock()
		return len(n.tasks) == 0
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, sink.all())

	// Cancelling again, or for an unknown id, is harmless.
	n.Cancel(id)
	n.Cancel(424242)
}

func TestNotifierSkipsShortSanctions(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()
	id := insertSanction(t, db, model.SanctionPillory, "g1", "u1", now, now.Add(3*time.Minute))

	n := NewNotifier(db, nil, 5*time.Minute)
	defer n.Stop()
	n.Schedule(model.Sanction{
		ID: id, GuildID: "g1", UserID: "u1", Kind: model.SanctionPillory,
		StartTime: now.Format(time.RFC3339), EndTime: now.Add(3 * time.Minute).Format(time.RFC3339),
	})

	n.mu.Lock()
	defer n.mu.Unlock()
	assert.Empty(t, n.tasks, "sanctions shorter than the interval get no task")
}

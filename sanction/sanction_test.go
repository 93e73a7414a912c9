package sanction

import (
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"medieval-moderator/model"
	locks_db "medieval-moderator/utils/database/locks"
	sanctions_db "medieval-moderator/utils/database/sanctions"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	// One connection, or each pooled conn would see its own empty memory db.
	db.SetMaxOpenConns(1)
	require.NoError(t, sanctions_db.Init(db))
	require.NoError(t, locks_db.Init(db))
	t.Cleanup(func() { db.Close() })
	return db
}

// recordingSink captures published events for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *recordingSink) Publish(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func (r *recordingSink) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingSink) ofKind(kind EventKind) []Event {
	var out []Event
	for _, ev := range r.all() {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// stubAuth marks a fixed set of targets as bypassed.
type stubAuth struct {
	bypassed map[string]bool
}

func (a *stubAuth) HasPrivilege(guildID, actorID, action string) (bool, error) { return true, nil }
func (a *stubAuth) HasBypass(guildID, targetID string) (bool, error) {
	return a.bypassed[targetID], nil
}

// stubDest reports one fixed answer for every guild and kind.
type stubDest struct {
	configured bool
}

func (d *stubDest) HasDestination(guildID string, kind model.SanctionKind) bool {
	return d.configured
}

func newTestManager(t *testing.T, db *sqlx.DB, sink EventSink) *Manager {
	t.Helper()
	m := NewManager(db, sink, &stubAuth{bypassed: map[string]bool{}}, &stubDest{configured: true}, nil)
	return m
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

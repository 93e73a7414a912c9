package sanction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medieval-moderator/model"
)

func TestCreateDurationBounds(t *testing.T) {
	cases := []struct {
		name    string
		kind    model.SanctionKind
		minutes int
		wantErr bool
	}{
		{"pillory zero", model.SanctionPillory, 0, true},
		{"pillory minimum", model.SanctionPillory, 1, false},
		{"pillory maximum", model.SanctionPillory, 1440, false},
		{"pillory over maximum", model.SanctionPillory, 1441, true},
		{"mute maximum", model.SanctionMute, 40320, false},
		{"mute over maximum", model.SanctionMute, 40321, true},
		{"negative", model.SanctionMute, -5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestManager(t, newTestDB(t), nil)
			_, err := m.Create("g1", "u-"+tc.name, tc.minutes, "testing bounds", tc.kind)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err), "expected validation error, got %v", err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreateEndTimeMatchesDuration(t *testing.T) {
	m := newTestManager(t, newTestDB(t), nil)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = fixedNow(start)

	s, err := m.Create("g1", "u1", 90, "loitering", model.SanctionPillory)
	require.NoError(t, err)

	gotStart, err := s.Start()
	require.NoError(t, err)
	gotEnd, err := s.End()
	require.NoError(t, err)
	assert.Equal(t, start, gotStart)
	assert.Equal(t, start.Add(90*time.Minute), gotEnd)
	assert.True(t, gotEnd.After(gotStart))
}

func TestCreateDuplicateConflicts(t *testing.T) {
	m := newTestManager(t, newTestDB(t), nil)
	_, err := m.Create("g1", "u1", 10, "first offense", model.SanctionPillory)
	require.NoError(t, err)

	// A different duration and reason change nothing.
	_, err = m.Create("g1", "u1", 200, "second offense", model.SanctionPillory)
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// A different kind, guild, or target is unaffected.
	_, err = m.Create("g1", "u1", 10, "parallel mute", model.SanctionMute)
	require.NoError(t, err)
	_, err = m.Create("g2", "u1", 10, "other realm", model.SanctionPillory)
	require.NoError(t, err)
	_, err = m.Create("g1", "u2", 10, "other target", model.SanctionPillory)
	require.NoError(t, err)
}

func TestCreateBypassedTarget(t *testing.T) {
	db := newTestDB(t)
	m := NewManager(db, nil, &stubAuth{bypassed: map[string]bool{"noble": true}}, &stubDest{configured: true}, nil)
	_, err := m.Create("g1", "noble", 10, "lese-majeste", model.SanctionPillory)
	require.Error(t, err)
	assert.True(t, IsAuthorization(err))
}

func TestCreateWithoutDestination(t *testing.T) {
	db := newTestDB(t)
	m := NewManager(db, nil, &stubAuth{bypassed: map[string]bool{}}, &stubDest{configured: false}, nil)
	_, err := m.Create("g1", "u1", 10, "no channel yet", model.SanctionPillory)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateEmitsCreatedEvent(t *testing.T) {
	sink := &recordingSink{}
	m := newTestManager(t, newTestDB(t), sink)
	s, err := m.Create("g1", "u1", 15, "heresy", model.SanctionPillory)
	require.NoError(t, err)

	created := sink.ofKind(EventCreated)
	require.Len(t, created, 1)
	assert.Equal(t, s.ID, created[0].SanctionID)
	assert.Equal(t, "u1", created[0].TargetID)
	assert.Equal(t, 15, created[0].DurationMinutes)
	assert.Equal(t, "heresy", created[0].Reason)
}

func TestEndEarly(t *testing.T) {
	sink := &recordingSink{}
	m := newTestManager(t, newTestDB(t), sink)
	s, err := m.Create("g1", "u1", 30, "mockery of the crown", model.SanctionPillory)
	require.NoError(t, err)

	require.NoError(t, m.EndEarly(model.SanctionPillory, s.ID, "g1", "mod-1"))
	require.Len(t, sink.ofKind(EventPardoned), 1)

	// Ending twice is a conflict, not a silent no-op.
	err = m.EndEarly(model.SanctionPillory, s.ID, "g1", "mod-1")
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// Unknown id and wrong guild are not found.
	err = m.EndEarly(model.SanctionPillory, 9999, "g1", "mod-1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	s2, err := m.Create("g1", "u2", 30, "smuggling", model.SanctionPillory)
	require.NoError(t, err)
	err = m.EndEarly(model.SanctionPillory, s2.ID, "other-guild", "mod-1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreatePardonRecreateScenario(t *testing.T) {
	m := newTestManager(t, newTestDB(t), nil)

	s, err := m.Create("1", "42", 10, "jaywalking", model.SanctionPillory)
	require.NoError(t, err)

	id, active, err := m.IsActive("1", "42", model.SanctionPillory)
	require.NoError(t, err)
	require.True(t, active)
	assert.Equal(t, s.ID, id)

	_, err = m.Create("1", "42", 10, "jaywalking", model.SanctionPillory)
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	require.NoError(t, m.EndEarly(model.SanctionPillory, s.ID, "1", "mod-1"))

	_, active, err = m.IsActive("1", "42", model.SanctionPillory)
	require.NoError(t, err)
	assert.False(t, active)

	s2, err := m.Create("1", "42", 10, "jaywalking again", model.SanctionPillory)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, s2.ID)
}

func TestListActiveCreationOrder(t *testing.T) {
	m := newTestManager(t, newTestDB(t), nil)
	first, err := m.Create("g1", "u1", 10, "one", model.SanctionPillory)
	require.NoError(t, err)
	second, err := m.Create("g1", "u2", 10, "two", model.SanctionPillory)
	require.NoError(t, err)
	ended, err := m.Create("g1", "u3", 10, "three", model.SanctionPillory)
	require.NoError(t, err)
	require.NoError(t, m.EndEarly(model.SanctionPillory, ended.ID, "g1", "mod-1"))

	rows, err := m.ListActive("g1", model.SanctionPillory)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)
}

func TestDeliveryFailureDoesNotRollBack(t *testing.T) {
	sink := &recordingSink{err: newError(KindDelivery, "herald unreachable")}
	m := newTestManager(t, newTestDB(t), sink)
	s, err := m.Create("g1", "u1", 10, "slander", model.SanctionPillory)
	require.NoError(t, err)

	_, active, err := m.IsActive("g1", "u1", model.SanctionPillory)
	require.NoError(t, err)
	assert.True(t, active, "sanction must stand even when the announcement failed")
	assert.NotZero(t, s.ID)
}

package sanction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlockRelockScenario(t *testing.T) {
	m := NewLockManager(newTestDB(t))

	lock, err := m.Lock("1", "7", "mod", "too much discourse")
	require.NoError(t, err)
	require.NotZero(t, lock.ID)

	active, err := m.ActiveLock("1", "7")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, lock.ID, active.ID)

	_, err = m.Lock("1", "7", "other-mod", "again")
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// Other channels and guilds are independent.
	_, err = m.Lock("1", "8", "mod", "different chamber")
	require.NoError(t, err)
	_, err = m.Lock("2", "7", "mod", "different realm")
	require.NoError(t, err)

	released, err := m.Unlock(lock.ID, "calm restored")
	require.NoError(t, err)
	assert.False(t, released.Active)
	assert.Equal(t, "calm restored", released.UnlockReason)

	active, err = m.ActiveLock("1", "7")
	require.NoError(t, err)
	assert.Nil(t, active)

	relock, err := m.Lock("1", "7", "mod", "discourse resumed")
	require.NoError(t, err)
	assert.NotEqual(t, lock.ID, relock.ID)
}

func TestUnlockErrors(t *testing.T) {
	m := NewLockManager(newTestDB(t))

	_, err := m.Unlock(1234, "nothing to break")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	lock, err := m.Lock("1", "7", "mod", "sealed")
	require.NoError(t, err)
	_, err = m.Unlock(lock.ID, "first break")
	require.NoError(t, err)

	_, err = m.Unlock(lock.ID, "second break")
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestListActiveLocks(t *testing.T) {
	m := NewLockManager(newTestDB(t))
	a, err := m.Lock("1", "7", "mod", "one")
	require.NoError(t, err)
	_, err = m.Lock("1", "8", "mod", "two")
	require.NoError(t, err)
	_, err = m.Unlock(a.ID, "done")
	require.NoError(t, err)

	rows, err := m.ListActive("1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "8", rows[0].ChannelID)
}

package sanction

import (
	"sync"

	"github.com/jmoiron/sqlx"

	"medieval-moderator/model"
	locks_db "medieval-moderator/utils/database/locks"
)

// LockManager is the channel-lock instance of the sanction pattern: no end
// time, no sweeper, unlock is always a moderator action.
type LockManager struct {
	db *sqlx.DB
	mu sync.Mutex
}

// NewLockManager wires a channel-lock manager.
func NewLockManager(db *sqlx.DB) *LockManager {
	return &LockManager{db: db}
}

// Lock seals a channel. At most one active lock per (guild, channel).
func (m *LockManager) Lock(guildID, channelID, moderatorID, reason string) (*model.ChannelLock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := locks_db.ActiveByChannel(m.db, guildID, channelID)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not check for an existing seal")
	}
	if existing != nil {
		return nil, newError(KindConflict, "this chamber is already sealed")
	}

	lock := model.ChannelLock{
		GuildID:     guildID,
		ChannelID:   channelID,
		ModeratorID: moderatorID,
		Reason:      reason,
		Active:      true,
	}
	id, err := locks_db.Add(m.db, lock)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not record the seal")
	}
	lock.ID = id
	return &lock, nil
}

// Unlock releases a seal and records the unlock reason.
func (m *LockManager) Unlock(lockID int64, reason string) (*model.ChannelLock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, err := locks_db.GetByID(m.db, lockID)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not look up the seal")
	}
	if lock == nil {
		return nil, newError(KindNotFound, "no seal with id %d exists", lockID)
	}
	if !lock.Active {
		return nil, newError(KindConflict, "seal %d has already been broken", lockID)
	}
	did, err := locks_db.Release(m.db, lockID, reason)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not break the seal")
	}
	if !did {
		return nil, newError(KindConflict, "seal %d has already been broken", lockID)
	}
	lock.Active = false
	lock.UnlockReason = reason
	return lock, nil
}

// ActiveLock reports the active lock on a channel, if any. Pure read.
func (m *LockManager) ActiveLock(guildID, channelID string) (*model.ChannelLock, error) {
	lock, err := locks_db.ActiveByChannel(m.db, guildID, channelID)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not check the chamber's seal")
	}
	return lock, nil
}

// ListActive returns all sealed channels in a guild.
func (m *LockManager) ListActive(guildID string) ([]model.ChannelLock, error) {
	rows, err := locks_db.ListActive(m.db, guildID)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not list sealed chambers")
	}
	return rows, nil
}

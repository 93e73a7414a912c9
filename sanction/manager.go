package sanction

import (
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"medieval-moderator/model"
	sanctions_db "medieval-moderator/utils/database/sanctions"
)

// Manager owns every sanction lifecycle transition except sweep expiry. The
// duplicate-check-then-insert in Create and the read-then-deactivate in
// EndEarly run under one mutex so no two writers can race a target into a
// double-active state.
type Manager struct {
	db       *sqlx.DB
	mu       sync.Mutex
	sink     EventSink
	auth     Authorizer
	dest     DestinationResolver
	notifier *Notifier
	now      func() time.Time
}

// NewManager wires a lifecycle manager. notifier may be nil when progress
// announcements are not wanted (tests, maintenance tools).
func NewManager(db *sqlx.DB, sink EventSink, auth Authorizer, dest DestinationResolver, notifier *Notifier) *Manager {
	return &Manager{
		db:       db,
		sink:     sink,
		auth:     auth,
		dest:     dest,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create validates and records a new timed sanction, announces it, and
// schedules its progress task. Privilege of the issuing moderator is the
// caller's concern; target bypass is checked here.
func (m *Manager) Create(guildID, targetID string, durationMinutes int, reason string, kind model.SanctionKind) (*model.Sanction, error) {
	if durationMinutes < 1 || durationMinutes > kind.MaxDurationMinutes() {
		return nil, newError(KindValidation, "duration must be between 1 and %d minutes", kind.MaxDurationMinutes())
	}

	bypassed, err := m.auth.HasBypass(guildID, targetID)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not check bypass privileges")
	}
	if bypassed {
		return nil, newError(KindAuthorization, "this subject holds royal immunity and cannot be sanctioned")
	}

	if !m.dest.HasDestination(guildID, kind) {
		return nil, newError(KindValidation, "no destination channel is configured for this realm")
	}

	m.mu.Lock()
	existing, err := sanctions_db.ActiveByTarget(m.db, kind, guildID, targetID)
	if err != nil {
		m.mu.Unlock()
		return nil, wrapError(KindStorage, err, "could not check for an existing sanction")
	}
	if existing != nil {
		m.mu.Unlock()
		return nil, newError(KindConflict, "this subject is already under an active %s sanction", kind)
	}

	start := m.now().UTC()
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	s := model.Sanction{
		GuildID:   guildID,
		UserID:    targetID,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Reason:    reason,
		Active:    true,
		Kind:      kind,
	}
	id, err := sanctions_db.Add(m.db, s)
	m.mu.Unlock()
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not record the sanction")
	}
	s.ID = id

	m.publish(Event{
		Kind:             EventCreated,
		SanctionKind:     kind,
		SanctionID:       id,
		GuildID:          guildID,
		TargetID:         targetID,
		Reason:           reason,
		DurationMinutes:  durationMinutes,
		RemainingMinutes: durationMinutes,
	})

	if m.notifier != nil {
		m.notifier.Schedule(s)
	}
	return &s, nil
}

// EndEarly pardons an active sanction. Ending an already-ended sanction is a
// conflict, not a no-op; an unknown id is not found.
func (m *Manager) EndEarly(kind model.SanctionKind, sanctionID int64, guildID, actorID string) error {
	m.mu.Lock()
	s, err := sanctions_db.GetByID(m.db, kind, sanctionID, guildID)
	if err != nil {
		m.mu.Unlock()
		return wrapError(KindStorage, err, "could not look up the sanction")
	}
	if s == nil {
		m.mu.Unlock()
		return newError(KindNotFound, "no %s sanction with id %d exists in this realm", kind, sanctionID)
	}
	if !s.Active {
		m.mu.Unlock()
		return newError(KindConflict, "%s sanction %d has already ended", kind, sanctionID)
	}
	did, err := sanctions_db.Deactivate(m.db, kind, sanctionID)
	m.mu.Unlock()
	if err != nil {
		return wrapError(KindStorage, err, "could not end the sanction")
	}
	if !did {
		return newError(KindConflict, "%s sanction %d has already ended", kind, sanctionID)
	}

	if m.notifier != nil {
		m.notifier.Cancel(sanctionID)
	}

	m.publish(Event{
		Kind:         EventPardoned,
		SanctionKind: kind,
		SanctionID:   sanctionID,
		GuildID:      guildID,
		TargetID:     s.UserID,
		ActorID:      actorID,
		Reason:       s.Reason,
	})
	return nil
}

// IsActive reports the active sanction id for a target, if any. Pure read.
func (m *Manager) IsActive(guildID, targetID string, kind model.SanctionKind) (int64, bool, error) {
	s, err := sanctions_db.ActiveByTarget(m.db, kind, guildID, targetID)
	if err != nil {
		return 0, false, wrapError(KindStorage, err, "could not check for an active sanction")
	}
	if s == nil {
		return 0, false, nil
	}
	return s.ID, true, nil
}

// ListActive returns the active sanctions of one kind in creation order.
func (m *Manager) ListActive(guildID string, kind model.SanctionKind) ([]model.Sanction, error) {
	rows, err := sanctions_db.ListActive(m.db, kind, guildID)
	if err != nil {
		return nil, wrapError(KindStorage, err, "could not list active sanctions")
	}
	return rows, nil
}

func (m *Manager) publish(ev Event) {
	if m.sink == nil {
		return
	}
	if err := m.sink.Publish(ev); err != nil {
		log.Printf("Failed to deliver %s event for %s sanction %d: %v", ev.Kind, ev.SanctionKind, ev.SanctionID, err)
	}
}

package sanction

import (
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"medieval-moderator/model"
	sanctions_db "medieval-moderator/utils/database/sanctions"
)

// Notifier runs one cancellable background task per long sanction, emitting
// periodic elapsed/remaining announcements while the sanction stays active.
// Tasks are keyed by sanction id so a pardon can cancel its task instead of
// leaving it asleep; the active re-check on wake remains the backstop for
// tasks that were never cancelled.
type Notifier struct {
	db       *sqlx.DB
	sink     EventSink
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	tasks map[int64]chan struct{}
	done  chan struct{}
}

// NewNotifier creates a notifier that wakes each task once per interval.
// Sanctions no longer than one interval get no task at all.
func NewNotifier(db *sqlx.DB, sink EventSink, interval time.Duration) *Notifier {
	return &Notifier{
		db:       db,
		sink:     sink,
		interval: interval,
		now:      time.Now,
		tasks:    make(map[int64]chan struct{}),
		done:     make(chan struct{}),
	}
}

// Schedule starts the progress task for a freshly created sanction.
func (n *Notifier) Schedule(s model.Sanction) {
	end, err := s.End()
	if err != nil {
		log.Printf("Not scheduling progress task for %s sanction %d: malformed end_time: %v", s.Kind, s.ID, err)
		return
	}
	start, err := s.Start()
	if err != nil {
		log.Printf("Not scheduling progress task for %s sanction %d: malformed start_time: %v", s.Kind, s.ID, err)
		return
	}
	if end.Sub(start) <= n.interval {
		return
	}

	cancel := make(chan struct{})
	n.mu.Lock()
	if _, exists := n.tasks[s.ID]; exists {
		n.mu.Unlock()
		return
	}
	n.tasks[s.ID] = cancel
	n.mu.Unlock()

	go n.run(s, start, end, cancel)
}

// Cancel stops the task for a sanction, if one is running. Safe to call for
// sanctions that never had a task.
func (n *Notifier) Cancel(sanctionID int64) {
	n.mu.Lock()
	cancel, ok := n.tasks[sanctionID]
	if ok {
		delete(n.tasks, sanctionID)
	}
	n.mu.Unlock()
	if ok {
		close(cancel)
	}
}

// Stop terminates every running task.
func (n *Notifier) Stop() {
	close(n.done)
}

func (n *Notifier) run(s model.Sanction, start, end time.Time, cancel <-chan struct{}) {
	defer n.forget(s.ID)
	timer := time.NewTimer(n.interval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
		case <-cancel:
			return
		case <-n.done:
			return
		}

		active, err := sanctions_db.IsActive(n.db, s.Kind, s.ID)
		if err != nil {
			log.Printf("Progress task for %s sanction %d could not check state: %v", s.Kind, s.ID, err)
			timer.Reset(n.interval)
			continue
		}
		if !active {
			// Expired or pardoned; the sweeper or the pardon announced it.
			return
		}

		now := n.now()
		duration := int(end.Sub(start).Minutes())
		elapsed := int(now.Sub(start).Minutes())
		// Derive remaining from elapsed so the pair always sums to the
		// full duration regardless of where in a minute the wake lands.
		remaining := duration - elapsed
		if remaining <= 0 {
			// The sweeper owns the expiry transition and its announcement.
			return
		}
		n.publish(Event{
			Kind:             EventProgress,
			SanctionKind:     s.Kind,
			SanctionID:       s.ID,
			GuildID:          s.GuildID,
			TargetID:         s.UserID,
			Reason:           s.Reason,
			DurationMinutes:  duration,
			ElapsedMinutes:   elapsed,
			RemainingMinutes: remaining,
		})
		timer.Reset(n.interval)
	}
}

func (n *Notifier) forget(sanctionID int64) {
	n.mu.Lock()
	delete(n.tasks, sanctionID)
	n.mu.Unlock()
}

func (n *Notifier) publish(ev Event) {
	if n.sink == nil {
		return
	}
	if err := n.sink.Publish(ev); err != nil {
		log.Printf("Failed to deliver %s event for %s sanction %d: %v", ev.Kind, ev.SanctionKind, ev.SanctionID, err)
	}
}

package sanction

import (
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	sanctions_db "medieval-moderator/utils/database/sanctions"
)

// Sweeper is the authoritative backstop for expiry: even if a sanction's
// progress task was never scheduled (process restart) or died, the sweeper
// ends it within one interval. It is the only writer of sweep expiries; the
// progress notifier never flips a sanction inactive.
type Sweeper struct {
	db       *sqlx.DB
	sink     EventSink
	interval time.Duration
	now      func() time.Time
}

// NewSweeper creates a sweeper that scans once per interval.
func NewSweeper(db *sqlx.DB, sink EventSink, interval time.Duration) *Sweeper {
	return &Sweeper{
		db:       db,
		sink:     sink,
		interval: interval,
		now:      time.Now,
	}
}

// Run ticks until done closes.
func (s *Sweeper) Run(done <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.Sweep(); err != nil {
				log.Printf("Sanction sweep failed: %v", err)
			}
		case <-done:
			return
		}
	}
}

// Sweep reads every active sanction across all guilds in one batch and ends
// the ones whose deadline has passed, announcing exactly one release per
// transition. A malformed row is logged and skipped, never aborting the
// rest of the sweep.
func (s *Sweeper) Sweep() error {
	rows, err := sanctions_db.ListAllActive(s.db)
	if err != nil {
		return wrapError(KindStorage, err, "could not read active sanctions")
	}

	now := s.now()
	for _, row := range rows {
		end, err := row.End()
		if err != nil {
			log.Printf("Skipping %s sanction %d: malformed end_time %q: %v", row.Kind, row.ID, row.EndTime, err)
			continue
		}
		if now.Before(end) {
			continue
		}

		did, err := sanctions_db.Deactivate(s.db, row.Kind, row.ID)
		if err != nil {
			log.Printf("Failed to expire %s sanction %d: %v", row.Kind, row.ID, err)
			continue
		}
		if !did {
			// Lost the transition to a pardon between read and write.
			continue
		}

		elapsed := 0
		if start, err := row.Start(); err == nil {
			elapsed = int(end.Sub(start).Minutes())
		}
		s.publish(Event{
			Kind:            EventReleased,
			SanctionKind:    row.Kind,
			SanctionID:      row.ID,
			GuildID:         row.GuildID,
			TargetID:        row.UserID,
			Reason:          row.Reason,
			DurationMinutes: elapsed,
			ElapsedMinutes:  elapsed,
		})
	}
	return nil
}

func (s *Sweeper) publish(ev Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Publish(ev); err != nil {
		log.Printf("Failed to deliver %s event for %s sanction %d: %v", ev.Kind, ev.SanctionKind, ev.SanctionID, err)
	}
}

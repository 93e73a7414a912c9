package bot

import (
	"log"
	"time"

	messages_db "medieval-moderator/utils/database/messages"
	sanctions_db "medieval-moderator/utils/database/sanctions"
)

// startScheduler launches the background loops: the expiry sweeper, progress
// task recovery for sanctions that outlived a restart, and hourly pruning of
// stored message history.
func (b *Bot) startScheduler() {
	b.wg.Add(1)
	go b.Sweeper.Run(b.done, &b.wg)

	b.rescheduleProgressTasks()

	b.wg.Add(1)
	go b.pruneLoop()
}

// rescheduleProgressTasks restarts progress tasks for sanctions that were
// active when the process last stopped. The sweeper already covers their
// expiry; this only restores the periodic bulletins.
func (b *Bot) rescheduleProgressTasks() {
	rows, err := sanctions_db.ListAllActive(b.DB)
	if err != nil {
		log.Printf("Could not restore progress tasks: %v", err)
		return
	}
	for _, s := range rows {
		b.Notifier.Schedule(s)
	}
	if len(rows) > 0 {
		log.Printf("Restored progress tasks for %d active sanctions", len(rows))
	}
}

func (b *Bot) pruneLoop() {
	defer b.wg.Done()
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-b.GetConfig().MessageRetention)
			removed, err := messages_db.PruneOlderThan(b.DB, cutoff)
			if err != nil {
				log.Printf("Message history prune failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("Pruned %d stored message snapshots", removed)
			}
		case <-b.done:
			return
		}
	}
}

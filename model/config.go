package model

import "time"

// Config holds the application configuration loaded from the environment and
// the optional config file.
type Config struct {
	BotToken string
	Prefix   string
	DBPath   string

	// SweepInterval is how often the expiry sweeper scans active sanctions.
	SweepInterval time.Duration
	// ProgressInterval is the sleep between progress announcements for one
	// sanction, and also the minimum duration that gets a progress task.
	ProgressInterval time.Duration
	// MessageRetention bounds how long stored message history is kept.
	MessageRetention time.Duration
}

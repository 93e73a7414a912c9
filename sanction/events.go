package sanction

import "medieval-moderator/model"

// EventKind names a lifecycle transition worth announcing.
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventProgress EventKind = "progress"
	EventReleased EventKind = "released"
	EventPardoned EventKind = "pardoned"
)

// Event is handed to the announcement layer whenever a sanction changes
// state or a progress update is due. Delivery failures never roll back the
// state change that produced the event.
type Event struct {
	Kind             EventKind
	SanctionKind     model.SanctionKind
	SanctionID       int64
	GuildID          string
	TargetID         string
	ActorID          string
	Reason           string
	DurationMinutes  int
	ElapsedMinutes   int
	RemainingMinutes int
}

// EventSink consumes lifecycle events. Implementations own all user-facing
// rendering and the platform-side marker (role grant on created, removal on
// released/pardoned). Errors are logged and suppressed by the caller.
type EventSink interface {
	Publish(ev Event) error
}

// Authorizer answers privilege questions for the lifecycle. The core never
// inspects roles or permissions itself.
type Authorizer interface {
	HasPrivilege(guildID, actorID, action string) (bool, error)
	HasBypass(guildID, targetID string) (bool, error)
}

// DestinationResolver reports whether a guild has a destination channel
// configured for announcements of the given sanction kind.
type DestinationResolver interface {
	HasDestination(guildID string, kind model.SanctionKind) bool
}

package events

import "time"

var SyncCompletedTopic = "SyncCompletedEvent"
var SyncFailedTopic = "SyncFailedEvent"

// SyncCompleted is published after a full sync pass finishes with no
// phase-level error. Per-record push failures do not prevent it.
type SyncCompleted struct {
	FinishedAt time.Time
	Pushed     int
	Pulled     int
	Deleted    int
}

// SyncFailed is published when a phase-level error aborts a sync pass.
type SyncFailed struct {
	Err error
}

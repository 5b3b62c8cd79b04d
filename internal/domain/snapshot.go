package domain

import "time"

// Snapshot is one fetch of the three backend payloads.
type Snapshot struct {
	Self       Agent
	Cases      []Case
	Peers      []Agent
	CapturedAt time.Time
}

package model

import "time"

// ActivityEntry is one append-only log record. Streams are stored newest-first;
// the shipping stream is capped at 200 entries, the others are unbounded.
type ActivityEntry struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// internal/model/generation_event.go
package model

import "time"

// GenerationEvent is one completed generation, published to the queue by the
// API server and recorded by the worker for the analytics feed.
type GenerationEvent struct {
	ID         int       `db:"id" json:"id"`
	EventID    string    `db:"event_id" json:"event_id"`
	Kind       string    `db:"kind" json:"kind"` // campaign, pitch, lead, chat
	RecordID   int       `db:"record_id" json:"record_id"`
	DurationMS int64     `db:"duration_ms" json:"duration_ms"`
	Cached     bool      `db:"cached" json:"cached"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// internal/repository/event_repository.go
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/marketmind/marketmind-backend/internal/model"
)

type EventRepositoryInterface interface {
	Record(ctx context.Context, e *model.GenerationEvent) error
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// EventRepository persists generation events consumed from the queue.
type EventRepository struct {
	DB *sql.DB
}

func (r *EventRepository) Record(ctx context.Context, e *model.GenerationEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO generation_events (event_id, kind, record_id, duration_ms, cached, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.EventID, e.Kind, e.RecordID, e.DurationMS, e.Cached, e.CreatedAt,
	).Scan(&e.ID)
	if err == sql.ErrNoRows {
		// Duplicate delivery; already recorded.
		return nil
	}
	return err
}

func (r *EventRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM generation_events WHERE created_at >= $1`, since,
	).Scan(&total)
	return total, err
}

var _ EventRepositoryInterface = (*EventRepository)(nil)

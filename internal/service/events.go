// internal/service/events.go
package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/queue"
)

// publishEvent sends a generation-completed event to the analytics feed. A
// broken queue is logged and swallowed; the caller already has their result.
func publishEvent(pub queue.Publisher, logger *zap.Logger, kind string, recordID int, completion *llm.Completion) {
	if pub == nil {
		return
	}
	e := queue.Event{
		EventID:    uuid.NewString(),
		Kind:       kind,
		RecordID:   recordID,
		DurationMS: completion.Duration.Milliseconds(),
		Cached:     completion.Cached,
		CreatedAt:  time.Now(),
	}
	if err := pub.Publish(e); err != nil {
		logger.Warn("failed to publish generation event",
			zap.String("kind", kind),
			zap.Int("recordId", recordID),
			zap.Error(err),
		)
	}
}

// Pagination echoes the page window and totals back to list callers.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// normalizePage applies the shared paging defaults: page >= 1, page_size in
// [1,100] with a default of 20.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func paginate(page, pageSize, total int) Pagination {
	totalPages := (total + pageSize - 1) / pageSize
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}
}

// internal/repository/lead_repository.go
package repository

import (
	"context"
	"database/sql"
	"time"

	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
	"github.com/marketmind/marketmind-backend/internal/model"
)

// LeadStats aggregates the scored leads for the analytics summary.
type LeadStats struct {
	Total          int     `json:"total"`
	AvgScore       float64 `json:"avg_score"`
	AvgProbability float64 `json:"avg_probability"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *model.Lead) error
	GetByID(ctx context.Context, id int) (*model.Lead, error)
	List(ctx context.Context, offset, limit int) ([]*model.Lead, int, error)
	Stats(ctx context.Context) (*LeadStats, error)
}

type LeadRepository struct {
	DB *sql.DB
}

func (r *LeadRepository) Create(ctx context.Context, l *model.Lead) error {
	l.CreatedAt = time.Now()
	query := `
		INSERT INTO leads (name, budget, need, urgency, score, probability, analysis, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		l.Name, l.Budget, l.Need, l.Urgency, l.Score, l.Probability, l.Analysis, l.UserID, l.CreatedAt,
	).Scan(&l.ID)
}

func (r *LeadRepository) GetByID(ctx context.Context, id int) (*model.Lead, error) {
	query := `
		SELECT id, name, budget, need, urgency, score, probability, analysis, user_id, created_at
		FROM leads WHERE id=$1
	`
	var l model.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Budget, &l.Need, &l.Urgency, &l.Score, &l.Probability, &l.Analysis, &l.UserID, &l.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewLeadNotFound(id)
		}
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) List(ctx context.Context, offset, limit int) ([]*model.Lead, int, error) {
	leads := []*model.Lead{}
	query := `
		SELECT id, name, budget, need, urgency, score, probability, analysis, user_id, created_at
		FROM leads ORDER BY id DESC LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		l := &model.Lead{}
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Budget, &l.Need, &l.Urgency, &l.Score, &l.Probability, &l.Analysis, &l.UserID, &l.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// Stats returns lead count and average score/probability. COALESCE keeps the
// averages at zero for an empty table instead of NULL.
func (r *LeadRepository) Stats(ctx context.Context) (*LeadStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(AVG(probability), 0)
		FROM leads
	`
	var s LeadStats
	if err := r.DB.QueryRowContext(ctx, query).Scan(&s.Total, &s.AvgScore, &s.AvgProbability); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)

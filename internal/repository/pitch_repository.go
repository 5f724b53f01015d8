// internal/repository/pitch_repository.go
package repository

import (
	"context"
	"database/sql"
	"time"

	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
	"github.com/marketmind/marketmind-backend/internal/model"
)

type PitchRepositoryInterface interface {
	Create(ctx context.Context, p *model.Pitch) error
	GetByID(ctx context.Context, id int) (*model.Pitch, error)
	List(ctx context.Context, offset, limit int) ([]*model.Pitch, int, error)
	Count(ctx context.Context) (int, error)
}

type PitchRepository struct {
	DB *sql.DB
}

func (r *PitchRepository) Create(ctx context.Context, p *model.Pitch) error {
	p.CreatedAt = time.Now()
	query := `
		INSERT INTO pitches (product, customer, success_probability, target_audience, content, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.Product, p.Customer, p.SuccessProbability, p.TargetAudience, p.Content, p.UserID, p.CreatedAt,
	).Scan(&p.ID)
}

func (r *PitchRepository) GetByID(ctx context.Context, id int) (*model.Pitch, error) {
	query := `
		SELECT id, product, customer, success_probability, target_audience, content, user_id, created_at
		FROM pitches WHERE id=$1
	`
	var p model.Pitch
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Product, &p.Customer, &p.SuccessProbability, &p.TargetAudience, &p.Content, &p.UserID, &p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewPitchNotFound(id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PitchRepository) List(ctx context.Context, offset, limit int) ([]*model.Pitch, int, error) {
	pitches := []*model.Pitch{}
	query := `
		SELECT id, product, customer, success_probability, target_audience, content, user_id, created_at
		FROM pitches ORDER BY id DESC LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		p := &model.Pitch{}
		if err := rows.Scan(
			&p.ID, &p.Product, &p.Customer, &p.SuccessProbability, &p.TargetAudience, &p.Content, &p.UserID, &p.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		pitches = append(pitches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return pitches, total, nil
}

func (r *PitchRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM pitches`).Scan(&total)
	return total, err
}

var _ PitchRepositoryInterface = (*PitchRepository)(nil)

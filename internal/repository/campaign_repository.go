// internal/repository/campaign_repository.go
package repository

import (
	"context"
	"database/sql"
	"time"

	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
	"github.com/marketmind/marketmind-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *model.Campaign) error
	GetByID(ctx context.Context, id int) (*model.Campaign, error)
	List(ctx context.Context, offset, limit int) ([]*model.Campaign, int, error)
	Count(ctx context.Context) (int, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	c.CreatedAt = time.Now()
	query := `
		INSERT INTO campaigns (product, industry, cost, audience, platform,
							   success_probability, target_audience, content, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Product, c.Industry, c.Cost, c.Audience, c.Platform,
		c.SuccessProbability, c.TargetAudience, c.Content, c.UserID, c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(ctx context.Context, id int) (*model.Campaign, error) {
	query := `
		SELECT id, product, industry, cost, audience, platform,
			   success_probability, target_audience, content, user_id, created_at
		FROM campaigns WHERE id=$1
	`
	var c model.Campaign
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Product, &c.Industry, &c.Cost, &c.Audience, &c.Platform,
		&c.SuccessProbability, &c.TargetAudience, &c.Content, &c.UserID, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// List returns campaigns newest first plus the total row count.
func (r *CampaignRepository) List(ctx context.Context, offset, limit int) ([]*model.Campaign, int, error) {
	campaigns := []*model.Campaign{}
	query := `
		SELECT id, product, industry, cost, audience, platform,
			   success_probability, target_audience, content, user_id, created_at
		FROM campaigns ORDER BY id DESC LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(
			&c.ID, &c.Product, &c.Industry, &c.Cost, &c.Audience, &c.Platform,
			&c.SuccessProbability, &c.TargetAudience, &c.Content, &c.UserID, &c.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

func (r *CampaignRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&total)
	return total, err
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)

// internal/model/campaign.go
package model

import "time"

// Campaign is a stored marketing campaign generation: the brief the user
// submitted plus the structured result returned by the model.
type Campaign struct {
	ID                 int       `db:"id" json:"id"`
	Product            string    `db:"product" json:"product"`
	Industry           string    `db:"industry" json:"industry"`
	Cost               string    `db:"cost" json:"cost"`
	Audience           string    `db:"audience" json:"audience"`
	Platform           string    `db:"platform" json:"platform"`
	SuccessProbability int       `db:"success_probability" json:"success_probability"`
	TargetAudience     string    `db:"target_audience" json:"target_audience"`
	Content            string    `db:"content" json:"content"`
	UserID             *int      `db:"user_id" json:"user_id,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

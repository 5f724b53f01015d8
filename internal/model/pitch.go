// internal/model/pitch.go
package model

import "time"

type Pitch struct {
	ID                 int       `db:"id" json:"id"`
	Product            string    `db:"product" json:"product"`
	Customer           string    `db:"customer" json:"customer"`
	SuccessProbability int       `db:"success_probability" json:"success_probability"`
	TargetAudience     string    `db:"target_audience" json:"target_audience"`
	Content            string    `db:"content" json:"content"`
	UserID             *int      `db:"user_id" json:"user_id,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

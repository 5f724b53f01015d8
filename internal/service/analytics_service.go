// internal/service/analytics_service.go
package service

import (
	"context"
	"time"

	"github.com/marketmind/marketmind-backend/internal/repository"
)

// Summary feeds the dashboard KPI cards.
type Summary struct {
	Campaigns      int     `json:"campaigns"`
	Pitches        int     `json:"pitches"`
	Leads          int     `json:"leads"`
	AvgLeadScore   float64 `json:"avg_lead_score"`
	AvgProbability float64 `json:"avg_probability"`
	Generations24h int     `json:"generations_24h"`
}

type AnalyticsService struct {
	Campaigns repository.CampaignRepositoryInterface
	Pitches   repository.PitchRepositoryInterface
	Leads     repository.LeadRepositoryInterface
	Events    repository.EventRepositoryInterface
}

func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	campaigns, err := s.Campaigns.Count(ctx)
	if err != nil {
		return nil, err
	}
	pitches, err := s.Pitches.Count(ctx)
	if err != nil {
		return nil, err
	}
	leadStats, err := s.Leads.Stats(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Campaigns:      campaigns,
		Pitches:        pitches,
		Leads:          leadStats.Total,
		AvgLeadScore:   leadStats.AvgScore,
		AvgProbability: leadStats.AvgProbability,
	}

	// The events table only exists once the worker has run; a missing feed
	// leaves the 24h counter at zero rather than failing the summary.
	if s.Events != nil {
		recent, err := s.Events.CountSince(ctx, time.Now().Add(-24*time.Hour))
		if err == nil {
			summary.Generations24h = recent
		}
	}
	return summary, nil
}

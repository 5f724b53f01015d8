package service_test

import (
	"context"
	"time"

	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/model"
	"github.com/marketmind/marketmind-backend/internal/queue"
	"github.com/marketmind/marketmind-backend/internal/repository"
)

// stubLLM returns a fixed completion text, recording the last request.
type stubLLM struct {
	text    string
	err     error
	lastReq llm.Request
	calls   int
}

func (s *stubLLM) Complete(_ context.Context, req llm.Request) (*llm.Completion, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Completion{Text: s.text, Duration: 120 * time.Millisecond}, nil
}

type capturingPublisher struct {
	events []queue.Event
	err    error
}

func (p *capturingPublisher) Publish(e queue.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

type mockCampaignRepo struct {
	created   []*model.Campaign
	createErr error
	list      []*model.Campaign
	total     int
}

func (m *mockCampaignRepo) Create(_ context.Context, c *model.Campaign) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = len(m.created) + 1
	m.created = append(m.created, c)
	return nil
}

func (m *mockCampaignRepo) GetByID(_ context.Context, id int) (*model.Campaign, error) {
	for _, c := range m.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCampaignRepo) List(_ context.Context, offset, limit int) ([]*model.Campaign, int, error) {
	return m.list, m.total, nil
}

func (m *mockCampaignRepo) Count(_ context.Context) (int, error) {
	return m.total, nil
}

type mockPitchRepo struct {
	created []*model.Pitch
	list    []*model.Pitch
	total   int
}

func (m *mockPitchRepo) Create(_ context.Context, p *model.Pitch) error {
	p.ID = len(m.created) + 1
	m.created = append(m.created, p)
	return nil
}

func (m *mockPitchRepo) GetByID(_ context.Context, id int) (*model.Pitch, error) {
	return nil, nil
}

func (m *mockPitchRepo) List(_ context.Context, offset, limit int) ([]*model.Pitch, int, error) {
	return m.list, m.total, nil
}

func (m *mockPitchRepo) Count(_ context.Context) (int, error) {
	return m.total, nil
}

type mockLeadRepo struct {
	created []*model.Lead
	list    []*model.Lead
	total   int
	stats   repository.LeadStats
}

func (m *mockLeadRepo) Create(_ context.Context, l *model.Lead) error {
	l.ID = len(m.created) + 1
	m.created = append(m.created, l)
	return nil
}

func (m *mockLeadRepo) GetByID(_ context.Context, id int) (*model.Lead, error) {
	return nil, nil
}

func (m *mockLeadRepo) List(_ context.Context, offset, limit int) ([]*model.Lead, int, error) {
	return m.list, m.total, nil
}

func (m *mockLeadRepo) Stats(_ context.Context) (*repository.LeadStats, error) {
	return &m.stats, nil
}

type mockUserRepo struct {
	users     []*model.User
	createErr error
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	u.ID = len(m.users) + 1
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type mockEventRepo struct {
	recorded []*model.GenerationEvent
	recent   int
	err      error
}

func (m *mockEventRepo) Record(_ context.Context, e *model.GenerationEvent) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, e)
	return nil
}

func (m *mockEventRepo) CountSince(_ context.Context, _ time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.recent, nil
}

var (
	_ repository.CampaignRepositoryInterface = (*mockCampaignRepo)(nil)
	_ repository.PitchRepositoryInterface    = (*mockPitchRepo)(nil)
	_ repository.LeadRepositoryInterface     = (*mockLeadRepo)(nil)
	_ repository.UserRepositoryInterface     = (*mockUserRepo)(nil)
	_ repository.EventRepositoryInterface    = (*mockEventRepo)(nil)
	_ llm.Client                             = (*stubLLM)(nil)
	_ queue.Publisher                        = (*capturingPublisher)(nil)
)

package services

import (
	"context"
	"sort"
	"sync"

	"github.com/creative-copilot/backend/internal/events"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/google/uuid"
)

type memCampaignStore struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]models.Campaign
	order     []uuid.UUID
}

func newMemCampaignStore() *memCampaignStore {
	return &memCampaignStore{campaigns: map[uuid.UUID]models.Campaign{}}
}

func (m *memCampaignStore) Create(_ context.Context, c *models.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.campaigns[c.ID] = *c
	m.order = append(m.order, c.ID)
	return nil
}

func (m *memCampaignStore) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, repositories.ErrCampaignNotFound
	}
	return &c, nil
}

func (m *memCampaignStore) UpdateArtifacts(_ context.Context, c *models.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[c.ID]; !ok {
		return repositories.ErrCampaignNotFound
	}
	m.campaigns[c.ID] = *c
	return nil
}

func (m *memCampaignStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[id]; !ok {
		return repositories.ErrCampaignNotFound
	}
	delete(m.campaigns, id)
	return nil
}

func (m *memCampaignStore) List(_ context.Context, f repositories.CampaignFilter) ([]models.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Campaign
	for i := len(m.order) - 1; i >= 0; i-- {
		c, ok := m.campaigns[m.order[i]]
		if !ok {
			continue
		}
		if f.UserID != nil && c.UserID != *f.UserID {
			continue
		}
		if f.Goal != nil && c.Brief.Goal != *f.Goal {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type auditQuery struct {
	entityType    string
	entityID      uuid.UUID
	limit, offset int
}

type memAuditStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
	queries []auditQuery
}

func (m *memAuditStore) Log(_ context.Context, entry models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memAuditStore) GetByEntity(_ context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, auditQuery{entityType, entityID, limit, offset})

	var out []models.AuditLog
	for _, e := range m.entries {
		if e.EntityType == entityType && e.EntityID != nil && *e.EntityID == entityID {
			out = append(out, e)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memAuditStore) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Action)
	}
	return out
}

type recordingPublisher struct {
	mu     sync.Mutex
	events map[string][]events.Event
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: map[string][]events.Event{}}
}

func (p *recordingPublisher) Publish(_ context.Context, stream string, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[stream] = append(p.events[stream], ev)
	return nil
}

func (p *recordingPublisher) types(stream string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, ev := range p.events[stream] {
		out = append(out, ev.Type)
	}
	return out
}

type memChatStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID][]models.ChatMessage
}

func newMemChatStore() *memChatStore {
	return &memChatStore{sessions: map[uuid.UUID][]models.ChatMessage{}}
}

func (m *memChatStore) Append(_ context.Context, sessionID uuid.UUID, msgs ...models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = append(m.sessions[sessionID], msgs...)
	return nil
}

func (m *memChatStore) History(_ context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := append([]models.ChatMessage(nil), m.sessions[sessionID]...)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	return msgs, nil
}

package services

import (
	"context"
	"errors"

	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/events"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CampaignStore is satisfied by the postgres and sqlite campaign repos.
type CampaignStore interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	UpdateArtifacts(ctx context.Context, c *models.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repositories.CampaignFilter) ([]models.Campaign, error)
}

type AuditStore interface {
	Log(ctx context.Context, entry models.AuditLog) error
	GetByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error)
}

var ErrAuditUnavailable = errors.New("audit log not configured")

type CampaignService struct {
	generator *engine.Generator
	store     CampaignStore
	audit     AuditStore // nil in the CLI
	publisher events.Publisher
	log       *zap.Logger
}

func NewCampaignService(
	generator *engine.Generator,
	store CampaignStore,
	audit AuditStore,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CampaignService{
		generator: generator,
		store:     store,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

// Generate runs the engine without persisting anything.
func (s *CampaignService) Generate(ctx context.Context, brief models.CampaignBrief, opts engine.Options) (*engine.Result, error) {
	return s.generator.Generate(ctx, brief, opts)
}

// Create generates artifacts for brief and saves them under userID.
func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, brief models.CampaignBrief, opts engine.Options) (*models.Campaign, error) {
	res, err := s.generator.Generate(ctx, brief, opts)
	if err != nil {
		return nil, err
	}

	c := &models.Campaign{
		UserID:    userID,
		Brief:     brief,
		Seed:      res.Seed,
		Artifacts: res.Artifacts,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}

	s.record(ctx, userID, models.AuditCampaignGenerated, c, map[string]any{
		"goal": string(brief.Goal), "tone": string(brief.Tone), "templates": len(c.Artifacts),
	})
	s.publish(ctx, events.EventCampaignGenerated, userID, c)
	return c, nil
}

// Regenerate re-populates the same templates with a new seed. A nil seed draws one.
func (s *CampaignService) Regenerate(ctx context.Context, id, userID uuid.UUID, seed *uint64) (*models.Campaign, error) {
	c, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(c.Artifacts))
	for _, a := range c.Artifacts {
		ids = append(ids, a.Template.ID)
	}
	res, err := s.generator.Generate(ctx, c.Brief, engine.Options{Seed: seed, TemplateIDs: ids})
	if err != nil {
		return nil, err
	}

	previous := c.Seed
	c.Seed = res.Seed
	c.Artifacts = res.Artifacts
	if err := s.store.UpdateArtifacts(ctx, c); err != nil {
		return nil, err
	}

	s.record(ctx, userID, models.AuditCampaignRegenerated, c, map[string]any{
		"previous_seed": previous, "seed": c.Seed,
	})
	s.publish(ctx, events.EventCampaignRegenerated, userID, c)
	return c, nil
}

// Get hides campaigns owned by someone else behind ErrCampaignNotFound.
func (s *CampaignService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, repositories.ErrCampaignNotFound
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, userID uuid.UUID, f repositories.CampaignFilter) ([]models.Campaign, error) {
	f.UserID = &userID
	return s.store.List(ctx, f)
}

func (s *CampaignService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	c, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, userID, models.AuditCampaignDeleted, c, nil)
	s.publish(ctx, events.EventCampaignDeleted, userID, c)
	return nil
}

// AuditTrail lists the audit entries of a campaign the user owns.
func (s *CampaignService) AuditTrail(ctx context.Context, id, userID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	if s.audit == nil {
		return nil, ErrAuditUnavailable
	}
	if _, err := s.Get(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.audit.GetByEntity(ctx, "campaign", id, limit, offset)
}

func (s *CampaignService) record(ctx context.Context, userID uuid.UUID, action string, c *models.Campaign, meta map[string]any) {
	if s.audit == nil {
		return
	}
	err := s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      action,
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        meta,
	})
	if err != nil {
		s.log.Warn("audit log write failed", zap.String("action", action), zap.Error(err))
	}
}

func (s *CampaignService) publish(ctx context.Context, eventType string, userID uuid.UUID, c *models.Campaign) {
	err := s.publisher.Publish(ctx, events.StreamCampaigns, events.Event{
		Type:   eventType,
		UserID: userID.String(),
		Payload: map[string]any{
			"campaign_id":  c.ID.String(),
			"product_name": c.Brief.ProductName,
			"seed":         c.Seed,
			"artifacts":    len(c.Artifacts),
		},
	})
	if err != nil {
		s.log.Warn("event publish failed", zap.String("type", eventType), zap.Error(err))
	}
}

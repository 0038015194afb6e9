package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditCampaignGenerated   = "campaign_generated"
	AuditCampaignRegenerated = "campaign_regenerated"
	AuditCampaignDeleted     = "campaign_deleted"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"`
	ActorUserID *uuid.UUID `json:"actor_user_id,omitempty"`
	ActorType   string     `json:"actor_type"` // user/system
	Action      string     `json:"action"`
	EntityType  string     `json:"entity_type"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty"`
	Meta        any        `json:"meta,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

package events

import "context"

// Event types
const (
	EventCampaignGenerated   = "campaign_generated"
	EventCampaignRegenerated = "campaign_regenerated"
	EventCampaignDeleted     = "campaign_deleted"
	EventChatReplied         = "chat_replied"
)

// Streams
const (
	StreamCampaigns = "events:campaigns"
	StreamChat      = "events:chat"
)

type Event struct {
	Type    string         `json:"type"`
	UserID  string         `json:"user_id,omitempty"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}

// NopPublisher drops every event. Used by the CLI, which has no subscribers.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, Event) error { return nil }

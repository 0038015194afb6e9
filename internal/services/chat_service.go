package services

import (
	"context"
	"time"

	"github.com/creative-copilot/backend/internal/events"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/creative-copilot/backend/internal/responder"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatStore interface {
	Append(ctx context.Context, sessionID uuid.UUID, msgs ...models.ChatMessage) error
	History(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error)
}

type ChatReply struct {
	SessionID uuid.UUID          `json:"session_id"`
	Bucket    responder.Bucket   `json:"bucket"`
	Message   models.ChatMessage `json:"message"`
}

type ChatService struct {
	store     ChatStore
	publisher events.Publisher
	now       func() time.Time
	log       *zap.Logger
}

func NewChatService(store ChatStore, publisher events.Publisher, log *zap.Logger) *ChatService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ChatService{
		store:     store,
		publisher: publisher,
		now:       time.Now,
		log:       log,
	}
}

// Reply answers utterance within sessionID. A nil session id starts a new
// session, which opens with the greeting.
func (s *ChatService) Reply(ctx context.Context, userID, sessionID uuid.UUID, utterance string) (*ChatReply, error) {
	var pending []models.ChatMessage
	if sessionID == uuid.Nil {
		sessionID = uuid.New()
		pending = append(pending, s.message(sessionID, models.ChatRoleAgent, responder.Greeting))
	}

	bucket := responder.Classify(utterance)
	reply := s.message(sessionID, models.ChatRoleAgent, responder.Respond(utterance))
	pending = append(pending,
		s.message(sessionID, models.ChatRoleUser, utterance),
		reply,
	)

	if err := s.store.Append(ctx, sessionID, pending...); err != nil {
		return nil, err
	}

	s.log.Debug("chat reply",
		zap.String("session_id", sessionID.String()),
		zap.String("bucket", string(bucket)),
	)

	ev := events.Event{
		Type: events.EventChatReplied,
		Payload: map[string]any{
			"session_id": sessionID.String(),
			"bucket":     string(bucket),
			"message_id": reply.ID.String(),
		},
	}
	if userID != uuid.Nil {
		ev.UserID = userID.String()
	}
	if err := s.publisher.Publish(ctx, events.StreamChat, ev); err != nil {
		s.log.Warn("event publish failed", zap.String("type", ev.Type), zap.Error(err))
	}

	return &ChatReply{SessionID: sessionID, Bucket: bucket, Message: reply}, nil
}

// History returns the transcript. Unknown or expired sessions show only the greeting.
func (s *ChatService) History(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	msgs, err := s.store.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return []models.ChatMessage{s.message(sessionID, models.ChatRoleAgent, responder.Greeting)}, nil
	}
	return msgs, nil
}

func (s *ChatService) message(sessionID uuid.UUID, role, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/creative-copilot/backend/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ChatRepo stores chat transcripts as capped redis lists that expire after ttl.
type ChatRepo struct {
	client *redis.Client
	limit  int
	ttl    time.Duration
}

func NewChatRepo(client *redis.Client, limit int, ttl time.Duration) *ChatRepo {
	if limit <= 0 {
		limit = 50
	}
	return &ChatRepo{client: client, limit: limit, ttl: ttl}
}

func chatKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("chat:%s", sessionID)
}

// Append adds messages to the end of the session transcript.
func (r *ChatRepo) Append(ctx context.Context, sessionID uuid.UUID, msgs ...models.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	values := make([]any, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, data)
	}

	key := chatKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-r.limit), -1)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// History returns the transcript oldest first. Unknown sessions yield an empty slice.
func (r *ChatRepo) History(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	raw, err := r.client.LRange(ctx, chatKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]models.ChatMessage, 0, len(raw))
	for _, s := range raw {
		var m models.ChatMessage
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

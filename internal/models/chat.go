package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat message roles
const (
	ChatRoleUser  = "user"
	ChatRoleAgent = "agent"
)

type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

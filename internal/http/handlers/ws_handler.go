package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/creative-copilot/backend/internal/auth"
	"github.com/creative-copilot/backend/internal/events"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Frames sent by clients.
const wsTypeChat = "chat"

// Frames sent by the server besides relayed events.
const (
	wsTypeChatReply = "chat_reply"
	wsTypeError     = "error"
)

type wsInbound struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Content   string `json:"content"`
}

type wsOutbound struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// wsClient serialises writes; the event relay and the read loop both write.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

type WSHub struct {
	secret      string
	subscriber  events.Subscriber
	chatService *services.ChatService
	log         *zap.Logger
	mu          sync.RWMutex
	clients     map[uuid.UUID][]*wsClient
}

func NewWSHub(secret string, subscriber events.Subscriber, chatService *services.ChatService, log *zap.Logger) *WSHub {
	return &WSHub{
		secret:      secret,
		subscriber:  subscriber,
		chatService: chatService,
		log:         log,
		clients:     make(map[uuid.UUID][]*wsClient),
	}
}

// Start relays campaign events to the sockets of the owning user.
func (h *WSHub) Start(ctx context.Context) error {
	return h.subscriber.Subscribe(ctx, events.StreamCampaigns, h.relay)
}

func (h *WSHub) relay(event events.Event) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		h.log.Debug("dropping event without user", zap.String("type", event.Type))
		return
	}
	h.SendToUser(userID, event)
}

func (h *WSHub) SendToUser(userID uuid.UUID, event events.Event) {
	h.mu.RLock()
	clients := append([]*wsClient(nil), h.clients[userID]...)
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(event); err != nil {
			h.log.Debug("ws send failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
}

// Connections reports how many sockets userID has open.
func (h *WSHub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// WSUpgradeMiddleware checks for websocket upgrade
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *WSHub) register(userID uuid.UUID, c *wsClient) {
	h.mu.Lock()
	h.clients[userID] = append(h.clients[userID], c)
	h.mu.Unlock()
}

func (h *WSHub) unregister(userID uuid.UUID, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.clients[userID]
	for i, existing := range clients {
		if existing == c {
			h.clients[userID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

func (h *WSHub) HandleWS(conn *websocket.Conn) {
	client := &wsClient{conn: conn}

	tokenStr := conn.Query("token")
	if tokenStr == "" {
		_ = client.send(wsOutbound{Type: wsTypeError, Error: "missing token"})
		conn.Close()
		return
	}
	claims, err := auth.ParseJWT(h.secret, tokenStr)
	if err != nil {
		_ = client.send(wsOutbound{Type: wsTypeError, Error: "invalid token"})
		conn.Close()
		return
	}
	userID := claims.UserID

	h.register(userID, client)
	defer func() {
		h.unregister(userID, client)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var in wsInbound
		if err := json.Unmarshal(data, &in); err != nil {
			_ = client.send(wsOutbound{Type: wsTypeError, Error: "invalid frame"})
			continue
		}
		if in.Type != wsTypeChat {
			// anything else is a keep-alive
			continue
		}
		h.handleChat(userID, client, in)
	}
}

func (h *WSHub) handleChat(userID uuid.UUID, client *wsClient, in wsInbound) {
	sessionID := uuid.Nil
	if in.SessionID != "" {
		id, err := uuid.Parse(in.SessionID)
		if err != nil {
			_ = client.send(wsOutbound{Type: wsTypeError, Error: "invalid session id"})
			return
		}
		sessionID = id
	}

	reply, err := h.chatService.Reply(context.Background(), userID, sessionID, in.Content)
	if err != nil {
		h.log.Error("ws chat reply failed", zap.String("user_id", userID.String()), zap.Error(err))
		_ = client.send(wsOutbound{Type: wsTypeError, Error: "internal error"})
		return
	}
	_ = client.send(wsOutbound{Type: wsTypeChatReply, Payload: reply})
}

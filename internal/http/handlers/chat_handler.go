package handlers

import (
	"github.com/creative-copilot/backend/internal/http/dto"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *services.ChatService
	log         *zap.Logger
}

func NewChatHandler(chatService *services.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, log: log}
}

func (h *ChatHandler) PostMessage(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	sessionID := uuid.Nil
	if req.SessionID != "" {
		id, err := uuid.Parse(req.SessionID)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid session id")
		}
		sessionID = id
	}

	reply, err := h.chatService.Reply(c.Context(), uuid.Nil, sessionID, req.Content)
	if err != nil {
		return failWith(c, h.log, "chat reply", err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: reply})
}

func (h *ChatHandler) GetTranscript(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid session id")
	}

	msgs, err := h.chatService.History(c.Context(), sessionID)
	if err != nil {
		return failWith(c, h.log, "chat history", err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.TranscriptResponse{
		SessionID: sessionID.String(),
		Messages:  msgs,
	}})
}

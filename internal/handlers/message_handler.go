package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/frosty-coder/red-society/internal/middleware"
	"github.com/frosty-coder/red-society/internal/service"
)

type MessageHandler struct {
	svc *service.MessageService
	log *zap.Logger
}

func NewMessageHandler(svc *service.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: log}
}

type sendMessageReq struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
	IsGroup   bool   `json:"isGroup"`
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	username := middleware.Username(c)
	var req sendMessageReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	timestamp, err := h.svc.Send(c.Context(), username, req.Message, req.Recipient, req.IsGroup)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"status": "Message saved", "timestamp": timestamp})
	case errors.Is(err, service.ErrEmptyMessage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Error("send message failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	username := middleware.Username(c)
	recipient := c.Query("recipient")
	isGroup := c.QueryBool("isGroup")

	messages, err := h.svc.History(c.Context(), username, recipient, isGroup)
	if err != nil {
		h.log.Error("get messages failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"messages": messages})
}

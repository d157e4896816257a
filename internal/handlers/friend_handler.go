package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/frosty-coder/red-society/internal/middleware"
	"github.com/frosty-coder/red-society/internal/repository"
	"github.com/frosty-coder/red-society/internal/service"
)

type FriendHandler struct {
	svc *service.SocialService
	log *zap.Logger
}

func NewFriendHandler(svc *service.SocialService, log *zap.Logger) *FriendHandler {
	return &FriendHandler{svc: svc, log: log}
}

type addFriendReq struct {
	Friend string `json:"friend"`
}

func (h *FriendHandler) AddFriend(c *fiber.Ctx) error {
	username := middleware.Username(c)
	var req addFriendReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	err := h.svc.AddFriend(c.Context(), username, req.Friend)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"status": "Friend added successfully"})
	case errors.Is(err, service.ErrNoFriendName),
		errors.Is(err, service.ErrSelfFriend),
		errors.Is(err, repository.ErrAlreadyFriends):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Error("add friend failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func (h *FriendHandler) GetFriends(c *fiber.Ctx) error {
	username := middleware.Username(c)
	friends, err := h.svc.Friends(c.Context(), username)
	if err != nil {
		h.log.Error("get friends failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"friends": friends})
}

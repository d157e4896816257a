package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/frosty-coder/red-society/internal/middleware"
	"github.com/frosty-coder/red-society/internal/repository"
	"github.com/frosty-coder/red-society/internal/service"
)

type GroupHandler struct {
	svc *service.SocialService
	log *zap.Logger
}

func NewGroupHandler(svc *service.SocialService, log *zap.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: log}
}

type createGroupReq struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	username := middleware.Username(c)
	var req createGroupReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	err := h.svc.CreateGroup(c.Context(), username, req.Name, req.Members)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"status": "Group created successfully"})
	case errors.Is(err, service.ErrNoGroupName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrGroupExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Error("create group failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func (h *GroupHandler) GetGroups(c *fiber.Ctx) error {
	username := middleware.Username(c)
	groups, err := h.svc.GroupsFor(c.Context(), username)
	if err != nil {
		h.log.Error("get groups failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"groups": groups})
}

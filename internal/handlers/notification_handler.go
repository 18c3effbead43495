package handlers

import (
	"github.com/codehubhq/codehub-backend/internal/auth"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	list, err := h.service.List(userID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return c.JSON(list)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.service.MarkAllRead(userID); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return c.JSON(fiber.Map{"success": true})
}

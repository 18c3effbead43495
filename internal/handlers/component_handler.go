package handlers

import (
	"github.com/codehubhq/codehub-backend/internal/auth"
	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ComponentHandler struct {
	service *services.ComponentService
}

func NewComponentHandler(service *services.ComponentService) *ComponentHandler {
	return &ComponentHandler{service: service}
}

func (h *ComponentHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c, 10)

	components, hasMore, err := h.service.List(page, limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch components")
	}
	return c.JSON(fiber.Map{"components": components, "hasMore": hasMore})
}

func (h *ComponentHandler) GetBySlug(c *fiber.Ctx) error {
	component, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(component)
}

func (h *ComponentHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateComponentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	component, err := h.service.Create(userID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(component)
}

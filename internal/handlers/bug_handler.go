package handlers

import (
	"github.com/codehubhq/codehub-backend/internal/auth"
	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BugHandler struct {
	service *services.BugService
}

func NewBugHandler(service *services.BugService) *BugHandler {
	return &BugHandler{service: service}
}

func (h *BugHandler) List(c *fiber.Ctx) error {
	bugs, err := h.service.List(auth.OptionalUserID(c))
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch bugs")
	}
	return c.JSON(fiber.Map{"bugs": bugs})
}

func (h *BugHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateBugRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bug, err := h.service.Create(userID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bug)
}

func (h *BugHandler) ToggleUpvote(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	bugID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid bug ID")
	}

	upvoted, err := h.service.ToggleUpvote(userID, bugID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "isUpvoted": upvoted})
}

func (h *BugHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	bugID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid bug ID")
	}

	var req dto.UpdateBugStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bug, err := h.service.UpdateStatus(userID, bugID, req.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bug)
}

package handlers

import (
	"github.com/codehubhq/codehub-backend/internal/auth"
	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List is the community page: all users matching an optional name query,
// excluding the viewer.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(auth.OptionalUserID(c), c.Query("q"))
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	profile, err := h.service.GetProfile(auth.OptionalUserID(c), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.service.UpdateProfile(userID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) ToggleFollow(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	following, err := h.service.ToggleFollow(userID, targetID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "isFollowing": following})
}

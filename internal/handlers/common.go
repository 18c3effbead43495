package handlers

import (
	"errors"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps service-layer errors to HTTP responses. Unknown
// errors are treated as validation failures so their message reaches the
// client; handlers use explicit 500s for infrastructure failures.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotAuthorized), errors.Is(err, services.ErrSelfFollow):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrProviderFailure):
		return fail(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, "Unauthorized")
}

func badRequest(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusBadRequest, message)
}

// pageParams reads and clamps the offset-pagination query params. Pages
// are zero-based.
func pageParams(c *fiber.Ctx, defaultLimit int) (int, int) {
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", defaultLimit)
	if page < 0 {
		page = 0
	}
	if limit < 1 || limit > 50 {
		limit = defaultLimit
	}
	return page, limit
}

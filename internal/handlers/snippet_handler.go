package handlers

import (
	"github.com/codehubhq/codehub-backend/internal/auth"
	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SnippetHandler struct {
	service *services.SnippetService
}

func NewSnippetHandler(service *services.SnippetService) *SnippetHandler {
	return &SnippetHandler{service: service}
}

// GetFeed is public; a bearer token, when present, selects the viewer for
// overlay flags.
func (h *SnippetHandler) GetFeed(c *fiber.Ctx) error {
	viewer := auth.OptionalUserID(c)
	page, limit := pageParams(c, 10)

	var authorID *uuid.UUID
	if raw := c.Query("author_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid author ID")
		}
		authorID = &id
	}

	snippets, hasMore, err := h.service.GetFeed(viewer, authorID, page, limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch snippets")
	}

	return c.JSON(fiber.Map{
		"snippets": snippets,
		"hasMore":  hasMore,
	})
}

func (h *SnippetHandler) GetSaved(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	page, limit := pageParams(c, 10)

	snippets, hasMore, err := h.service.GetSaved(userID, page, limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch saved snippets")
	}

	return c.JSON(fiber.Map{
		"snippets": snippets,
		"hasMore":  hasMore,
	})
}

func (h *SnippetHandler) GetByID(c *fiber.Ctx) error {
	snippetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid snippet ID")
	}

	snippet, err := h.service.GetByID(auth.OptionalUserID(c), snippetID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(snippet)
}

func (h *SnippetHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSnippetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	snippet, err := h.service.Create(userID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snippet)
}

func (h *SnippetHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	snippetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid snippet ID")
	}

	var req dto.UpdateSnippetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	snippet, err := h.service.Update(userID, snippetID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(snippet)
}

func (h *SnippetHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	snippetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid snippet ID")
	}

	if err := h.service.Delete(userID, snippetID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Snippet deleted"})
}

func (h *SnippetHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	snippetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid snippet ID")
	}

	liked, err := h.service.ToggleLike(userID, snippetID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "isLiked": liked})
}

func (h *SnippetHandler) ToggleSave(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	snippetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid snippet ID")
	}

	saved, err := h.service.ToggleSave(userID, snippetID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "isBookmarked": saved})
}

func (h *SnippetHandler) AddComment(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	snippetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid snippet ID")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.service.AddComment(userID, snippetID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *SnippetHandler) GetComments(c *fiber.Ctx) error {
	snippetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid snippet ID")
	}

	comments, err := h.service.GetComments(snippetID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}
	return c.JSON(fiber.Map{"comments": comments})
}

package handlers

import (
	"github.com/codehubhq/codehub-backend/internal/auth"
	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	service *services.DocumentService
}

func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	viewer := auth.OptionalUserID(c)
	page, limit := pageParams(c, 10)
	query := c.Query("q")

	var authorID *uuid.UUID
	if raw := c.Query("author_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid author ID")
		}
		authorID = &id
	}

	documents, hasMore, err := h.service.List(viewer, query, authorID, page, limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch documents")
	}

	return c.JSON(fiber.Map{
		"documents": documents,
		"hasMore":   hasMore,
	})
}

func (h *DocumentHandler) GetSaved(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	page, limit := pageParams(c, 10)

	documents, hasMore, err := h.service.GetSaved(userID, page, limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch saved documents")
	}

	return c.JSON(fiber.Map{
		"documents": documents,
		"hasMore":   hasMore,
	})
}

func (h *DocumentHandler) GetBySlug(c *fiber.Ctx) error {
	document, err := h.service.GetBySlug(auth.OptionalUserID(c), c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(document)
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	document, err := h.service.Create(userID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(document)
}

func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	var req dto.UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	document, err := h.service.Update(userID, docID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(document)
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	if err := h.service.Delete(userID, docID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Document deleted"})
}

func (h *DocumentHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	liked, err := h.service.ToggleLike(userID, docID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "isLiked": liked})
}

func (h *DocumentHandler) ToggleSave(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	saved, err := h.service.ToggleSave(userID, docID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "isSaved": saved})
}

func (h *DocumentHandler) AddComment(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.service.AddComment(userID, docID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *DocumentHandler) GetComments(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid document ID")
	}

	comments, err := h.service.GetComments(docID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}
	return c.JSON(fiber.Map{"comments": comments})
}

package handlers

import (
	"strings"

	"github.com/codehubhq/codehub-backend/internal/dto"
	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	service *services.AIService
}

func NewAIHandler(service *services.AIService) *AIHandler {
	return &AIHandler{service: service}
}

func (h *AIHandler) GenerateSnippet(c *fiber.Ctx) error {
	var req dto.GenerateSnippetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return badRequest(c, "Description is required")
	}

	code, err := h.service.GenerateSnippet(req.Description, req.Language)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.GenerateSnippetResponse{Code: code})
}

func (h *AIHandler) ConvertCode(c *fiber.Ctx) error {
	var req dto.ConvertCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Code) == "" || req.ToLanguage == "" {
		return badRequest(c, "Code and target language are required")
	}

	code, err := h.service.ConvertCode(req.Code, req.FromLanguage, req.ToLanguage)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.ConvertCodeResponse{Code: code})
}

func (h *AIHandler) ExplainCode(c *fiber.Ctx) error {
	var req dto.ExplainCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Code) == "" {
		return badRequest(c, "Code is required")
	}

	explanation, err := h.service.ExplainCode(req.Code, req.Language)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.ExplainCodeResponse{Explanation: explanation})
}

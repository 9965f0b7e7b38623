package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/storage"
	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/pkg/logger"
)

type WorkspaceHandler struct {
	repo     storage.Repository
	insights *insights.Service
}

func NewWorkspaceHandler(repo storage.Repository, insightsService *insights.Service) *WorkspaceHandler {
	return &WorkspaceHandler{repo: repo, insights: insightsService}
}

func (h *WorkspaceHandler) GetSources(c *fiber.Ctx) error {
	sources, err := h.repo.GetAllSources()
	if err != nil {
		logger.Error("Failed to load sources", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load sources",
		})
	}

	if sources == nil {
		sources = []models.Source{}
	}
	return c.JSON(fiber.Map{
		"sources": sources,
	})
}

// Reset wipes sources, records and chat history in one step and drops the
// cached summaries. There is no partial delete; reset is all or nothing.
func (h *WorkspaceHandler) Reset(c *fiber.Ctx) error {
	if err := h.repo.Clear(); err != nil {
		logger.Error("Failed to reset workspace", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset workspace",
		})
	}

	h.insights.Invalidate()
	logger.Info("Workspace reset")

	return c.JSON(fiber.Map{
		"message": "Workspace reset",
	})
}

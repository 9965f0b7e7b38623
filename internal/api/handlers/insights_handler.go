package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/storage"
	"github.com/lifeboard/backend/pkg/logger"
)

type InsightsHandler struct {
	insights *insights.Service
	repo     storage.Repository
}

func NewInsightsHandler(insightsService *insights.Service, repo storage.Repository) *InsightsHandler {
	return &InsightsHandler{insights: insightsService, repo: repo}
}

// GetSummary serves the insight summary for ?timeframe=week|month|all.
func (h *InsightsHandler) GetSummary(c *fiber.Ctx) error {
	timeframe, err := insights.ParseTimeframe(c.Query("timeframe"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "timeframe must be one of week, month, all",
		})
	}

	summary, err := h.insights.Summary(timeframe)
	if err != nil {
		logger.Error("Failed to build summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build summary",
		})
	}

	return c.JSON(summary)
}

// GetReport serves the export payload consumed by the report collaborator:
// the summary plus per-source record counts.
func (h *InsightsHandler) GetReport(c *fiber.Ctx) error {
	timeframe, err := insights.ParseTimeframe(c.Query("timeframe"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "timeframe must be one of week, month, all",
		})
	}

	summary, err := h.insights.Summary(timeframe)
	if err != nil {
		logger.Error("Failed to build summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	sources, err := h.repo.GetAllSources()
	if err != nil {
		logger.Error("Failed to load sources", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	records, err := h.repo.GetAllRecords()
	if err != nil {
		logger.Error("Failed to load records", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	countsBySource := map[string]int{}
	for _, record := range records {
		countsBySource[record.SourceID]++
	}

	type sourceReport struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Type    string `json:"type"`
		Records int    `json:"records"`
	}

	sourceReports := make([]sourceReport, 0, len(sources))
	for _, source := range sources {
		sourceReports = append(sourceReports, sourceReport{
			ID:      source.ID,
			Name:    source.Name,
			Type:    string(source.Type),
			Records: countsBySource[source.ID],
		})
	}

	return c.JSON(fiber.Map{
		"timeframe": string(timeframe),
		"summary":   summary,
		"sources":   sourceReports,
	})
}

package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/ingestion"
	"github.com/lifeboard/backend/pkg/logger"
)

type UploadHandler struct {
	processor *ingestion.Processor
}

func NewUploadHandler(processor *ingestion.Processor) *UploadHandler {
	return &UploadHandler{processor: processor}
}

// UploadFiles accepts a multipart batch under the "files" field and
// returns one status per file. A file that fails only affects itself.
func (h *UploadHandler) UploadFiles(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		logger.Error("Failed to parse multipart form", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid multipart request",
		})
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least one file is required",
		})
	}

	uploads := make([]ingestion.FileUpload, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			logger.Error("Failed to open upload", zap.String("file", header.Filename), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not read uploaded file",
			})
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not read uploaded file",
			})
		}
		uploads = append(uploads, ingestion.FileUpload{Name: header.Filename, Content: content})
	}

	statuses := h.processor.ProcessFiles(c.Context(), uploads)

	return c.JSON(fiber.Map{
		"files": statuses,
	})
}

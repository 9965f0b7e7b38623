// Package ingestion runs uploaded files through the extractors and commits
// the resulting records. Files are independent units: one bad file reports
// a status and the batch moves on, and a cancelled context stops the batch
// between files without corrupting anything already committed.
package ingestion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/extract"
	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/metrics"
	"github.com/lifeboard/backend/internal/storage"
	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/pkg/logger"
)

const (
	StatusProcessed   = "processed"
	StatusUnsupported = "unsupported"
	StatusFailed      = "failed"
	StatusTooLarge    = "too_large"
)

// FileUpload is one file's name and content, already read into memory by
// the upload collaborator.
type FileUpload struct {
	Name    string
	Content []byte
}

// FileStatus reports the per-file outcome of a batch.
type FileStatus struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	SourceID string `json:"sourceId,omitempty"`
	Records  int    `json:"records"`
	Message  string `json:"message,omitempty"`
}

type Processor struct {
	repo        storage.Repository
	extractor   *extract.Extractor
	insights    *insights.Service
	maxFileSize int
}

func NewProcessor(repo storage.Repository, extractor *extract.Extractor, insightsService *insights.Service, maxFileSizeMB int) *Processor {
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = 20
	}
	return &Processor{
		repo:        repo,
		extractor:   extractor,
		insights:    insightsService,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// ProcessFiles ingests a batch. Every file gets a status; failures never
// abort the batch or roll back earlier files. The cached summaries are
// invalidated once if anything was committed.
func (p *Processor) ProcessFiles(ctx context.Context, files []FileUpload) []FileStatus {
	statuses := make([]FileStatus, 0, len(files))
	committed := false

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("Ingestion cancelled", zap.Int("remaining", len(files)-len(statuses)))
			break
		}

		status := p.processFile(file)
		statuses = append(statuses, status)
		metrics.FilesIngested.WithLabelValues(status.Status).Inc()
		if status.Status == StatusProcessed {
			committed = true
			metrics.RecordsIngested.Add(float64(status.Records))
		}
	}

	if committed {
		p.insights.Invalidate()
	}
	return statuses
}

func (p *Processor) processFile(file FileUpload) FileStatus {
	start := time.Now()

	if len(file.Content) > p.maxFileSize {
		return FileStatus{Name: file.Name, Status: StatusTooLarge,
			Message: "file exceeds the upload size limit"}
	}

	sourceType, ok := extract.TypeForFile(file.Name)
	if !ok {
		logger.Warn("Unsupported file type", zap.String("file", file.Name))
		return FileStatus{Name: file.Name, Status: StatusUnsupported,
			Message: "no extractor for this file type"}
	}

	source := models.Source{
		ID:        uuid.New().String(),
		Name:      file.Name,
		Type:      sourceType,
		CreatedAt: time.Now().UnixMilli(),
	}

	records, err := p.extractor.Extract(source, file.Content)
	if err != nil {
		logger.Error("Extraction failed", zap.String("file", file.Name), zap.Error(err))
		return FileStatus{Name: file.Name, Status: StatusFailed,
			Message: "could not parse file content"}
	}

	// The records go in first; a source without records is harmless, a
	// record without its source is not.
	if err := p.repo.PutRecords(records); err != nil {
		logger.Error("Record insert failed", zap.String("file", file.Name), zap.Error(err))
		return FileStatus{Name: file.Name, Status: StatusFailed,
			Message: "could not store records"}
	}
	if err := p.repo.PutSource(source); err != nil {
		logger.Error("Source insert failed", zap.String("file", file.Name), zap.Error(err))
		return FileStatus{Name: file.Name, Status: StatusFailed,
			Message: "could not store source"}
	}

	metrics.IngestDuration.WithLabelValues(string(sourceType)).Observe(time.Since(start).Seconds())
	logger.Info("File ingested",
		zap.String("file", file.Name),
		zap.String("source_id", source.ID),
		zap.Int("records", len(records)),
	)

	return FileStatus{
		Name:     file.Name,
		Status:   StatusProcessed,
		SourceID: source.ID,
		Records:  len(records),
	}
}

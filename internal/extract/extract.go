// Package extract converts raw uploaded file content into normalized
// records. One extractor exists per source type: tabular (CSV/TSV/XLSX
// rows), structured (JSON entries) and freeform (text paragraphs). Records
// with no numeric or categorical content are still valid; text is enough.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/lifeboard/backend/internal/embedding"
	"github.com/lifeboard/backend/internal/storage/models"
)

const summaryLimit = 150

var collapseNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Extractor turns one file's bytes into records using an injected
// embedding model.
type Extractor struct {
	model *embedding.Model
}

func New(model *embedding.Model) *Extractor {
	return &Extractor{model: model}
}

// Extract dispatches on the source's declared type. The file name is only
// consulted for tabular sources, where it separates spreadsheet from
// delimited-text encodings and serves as the summary fallback.
func (e *Extractor) Extract(source models.Source, content []byte) ([]models.Record, error) {
	switch source.Type {
	case models.SourceTabular:
		return e.Tabular(source, content)
	case models.SourceStructured:
		return e.Structured(source, content)
	case models.SourceFreeform:
		return e.Freeform(source, content)
	default:
		return nil, fmt.Errorf("extract: unknown source type %q", source.Type)
	}
}

// TypeForFile maps a file name to the extractor that handles it. The
// second return is false for unsupported extensions.
func TypeForFile(name string) (models.SourceType, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv", ".xlsx":
		return models.SourceTabular, true
	case ".json":
		return models.SourceStructured, true
	case ".txt", ".md":
		return models.SourceFreeform, true
	default:
		return "", false
	}
}

// normalizeCategory lowercases a value and collapses runs of
// non-alphanumeric characters to single spaces.
func normalizeCategory(value string) string {
	return strings.TrimSpace(collapseNonAlnum.ReplaceAllString(strings.ToLower(value), " "))
}

// truncateSummary caps a summary at 150 runes, falling back to the given
// name when the text is empty.
func truncateSummary(text, fallback string) string {
	if text == "" {
		return fallback
	}
	runes := []rune(text)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit])
	}
	return text
}

func newRecordID() string {
	return uuid.New().String()
}

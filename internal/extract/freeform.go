package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/internal/timestamp"
)

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Freeform splits text content on blank-line boundaries. Each non-empty
// trimmed paragraph becomes one record whose sole text field is the
// paragraph itself. The paragraph is offered to timestamp inference under
// a synthetic key, which is not a date candidate, so freeform records are
// stamped with the ingestion time.
func (e *Extractor) Freeform(source models.Source, content []byte) ([]models.Record, error) {
	var records []models.Record

	for _, paragraph := range paragraphBreak.Split(string(content), -1) {
		text := strings.TrimSpace(paragraph)
		if text == "" {
			continue
		}

		rawJSON, _ := json.Marshal(map[string]string{"text": text})
		records = append(records, models.Record{
			ID:                newRecordID(),
			SourceID:          source.ID,
			Timestamp:         timestamp.Infer([]timestamp.Field{{Key: "paragraph", Value: text}}),
			Summary:           truncateSummary(text, source.Name),
			NumericFields:     map[string]float64{},
			CategoricalFields: map[string]string{},
			TextFields:        []string{text},
			Keywords:          e.model.Keywords(text),
			Embedding:         e.model.Embed(text),
			Raw:               rawJSON,
		})
	}
	return records, nil
}

package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/internal/timestamp"
)

// Structured parses JSON content: a top-level array maps to one record per
// element, anything else to a single record. Object properties are
// classified by runtime type; nested objects are stringified into a text
// fragment without recursion, which is a deliberate scope limit rather
// than an omission.
func (e *Extractor) Structured(source models.Source, content []byte) ([]models.Record, error) {
	var payload any
	if err := json.Unmarshal(content, &payload); err != nil {
		return nil, fmt.Errorf("parse json content: %w", err)
	}

	if list, ok := payload.([]any); ok {
		records := make([]models.Record, 0, len(list))
		for _, entry := range list {
			records = append(records, e.structuredEntry(source, entry))
		}
		return records, nil
	}

	return []models.Record{e.structuredEntry(source, payload)}, nil
}

func (e *Extractor) structuredEntry(source models.Source, entry any) models.Record {
	object, ok := entry.(map[string]any)
	if !ok {
		return e.scalarEntry(source, entry)
	}

	numericFields := map[string]float64{}
	categoricalFields := map[string]string{}
	var textFields []string
	var keywords []string
	var dateFields []timestamp.Field

	// Property iteration is key-sorted so keyword order and the
	// first-match timestamp heuristic stay deterministic.
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch value := object[key].(type) {
		case float64:
			numericFields[key] = value
		case string:
			categoricalFields[key] = value
			textFields = append(textFields, fmt.Sprintf("%s: %s", key, value))
			keywords = append(keywords, e.model.Keywords(value)...)
			dateFields = append(dateFields, timestamp.Field{Key: key, Value: value})
		case []any:
			joined := joinScalars(value)
			textFields = append(textFields, fmt.Sprintf("%s: %s", key, joined))
			keywords = append(keywords, e.model.Keywords(joined)...)
		case map[string]any:
			nested, _ := json.Marshal(value)
			textFields = append(textFields, fmt.Sprintf("%s: %s", key, nested))
		}
	}

	combined := strings.Join(textFields, " | ")
	rawJSON, _ := json.Marshal(object)

	return models.Record{
		ID:                newRecordID(),
		SourceID:          source.ID,
		Timestamp:         timestamp.Infer(dateFields),
		Summary:           truncateSummary(combined, source.Name),
		NumericFields:     numericFields,
		CategoricalFields: categoricalFields,
		TextFields:        textFields,
		Keywords:          dedupe(keywords),
		Embedding:         e.model.Embed(combined),
		Raw:               rawJSON,
	}
}

// scalarEntry wraps a non-object JSON value as a text-only record.
func (e *Extractor) scalarEntry(source models.Source, entry any) models.Record {
	value := formatScalar(entry)
	rawJSON, _ := json.Marshal(map[string]any{"value": entry})

	return models.Record{
		ID:                newRecordID(),
		SourceID:          source.ID,
		Timestamp:         timestamp.Infer([]timestamp.Field{{Key: "value", Value: entry}}),
		Summary:           truncateSummary(value, source.Name),
		NumericFields:     map[string]float64{},
		CategoricalFields: map[string]string{},
		TextFields:        []string{value},
		Keywords:          e.model.Keywords(value),
		Embedding:         e.model.Embed(value),
		Raw:               rawJSON,
	}
}

func joinScalars(values []any) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, formatScalar(value))
	}
	return strings.Join(parts, ", ")
}

func formatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	}
}

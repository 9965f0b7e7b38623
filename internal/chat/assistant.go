// Package chat answers free-text questions by ranking records against the
// question's embedding and composing a grounded answer from the matches
// and the precomputed summary. There is no language model involved; every
// clause is templated from aggregates.
package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lifeboard/backend/internal/embedding"
	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/storage/models"
)

const (
	// NoRecordsMessage is returned verbatim when nothing is indexed,
	// regardless of the question.
	NoRecordsMessage = "No records are indexed yet. Upload your data to start the conversation."

	defaultThreshold = 0.3
	defaultTopK      = 5
)

// Assistant ranks records by cosine similarity and synthesizes answers.
type Assistant struct {
	model     *embedding.Model
	threshold float64
	topK      int
}

func NewAssistant(model *embedding.Model, threshold float64, topK int) *Assistant {
	if threshold == 0 {
		threshold = defaultThreshold
	}
	if topK == 0 {
		topK = defaultTopK
	}
	return &Assistant{model: model, threshold: threshold, topK: topK}
}

type scoredRecord struct {
	record models.Record
	score  float64
}

// Answer produces the assistant's reply. Absence of matches is a normal
// outcome with its own message, distinct from the zero-records case.
func (a *Assistant) Answer(question string, records []models.Record, summary insights.Summary) string {
	if len(records) == 0 {
		return NoRecordsMessage
	}

	relevant := a.rankRecords(question, records)
	if len(relevant) == 0 {
		return a.noMatchReply(question, records)
	}

	clauses := []string{
		fmt.Sprintf("Matched %d of %d records across %d sources.",
			len(relevant), len(records), countSources(records)),
	}

	if field, total, ok := bestNumericTotal(relevant); ok {
		clauses = append(clauses, fmt.Sprintf("Approximate total for %s: %.2f.", field, total))
	}

	if category, ok := topCategory(relevant); ok {
		clauses = append(clauses, fmt.Sprintf("Most referenced category: %s.", category))
	}

	if clause := forecastClause(question, summary.Forecasts); clause != "" {
		clauses = append(clauses, clause)
	}

	samples := make([]string, 0, len(relevant))
	for _, item := range relevant {
		samples = append(samples, item.record.Summary)
	}
	clauses = append(clauses, fmt.Sprintf("Context sample: %s", strings.Join(samples, " | ")))

	if summary.Narrative != "" {
		clauses = append(clauses, fmt.Sprintf("Global summary: %s", summary.Narrative))
	}

	return strings.Join(clauses, " ")
}

// rankRecords scores every record against the question embedding, keeps
// the topK best and drops those under the relevance threshold.
func (a *Assistant) rankRecords(question string, records []models.Record) []scoredRecord {
	queryEmbedding := a.model.Embed(question)

	scored := make([]scoredRecord, 0, len(records))
	for _, record := range records {
		scored = append(scored, scoredRecord{
			record: record,
			score:  embedding.CosineSimilarity(queryEmbedding, record.Embedding),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if len(scored) > a.topK {
		scored = scored[:a.topK]
	}

	relevant := scored[:0]
	for _, item := range scored {
		if item.score > a.threshold {
			relevant = append(relevant, item)
		}
	}
	return relevant
}

func (a *Assistant) noMatchReply(question string, records []models.Record) string {
	keywords := a.model.Keywords(question)
	return fmt.Sprintf(
		"No direct matches across %d records from %d sources yet. Keywords detected: %s. Try rephrasing or uploading more detail.",
		len(records), countSources(records), strings.Join(keywords, ", "),
	)
}

// bestNumericTotal sums each numeric field across the relevant records and
// reports the field with the largest running total.
func bestNumericTotal(relevant []scoredRecord) (string, float64, bool) {
	totals := map[string]float64{}
	var order []string

	for _, item := range relevant {
		for _, field := range sortedKeys(item.record.NumericFields) {
			if _, seen := totals[field]; !seen {
				order = append(order, field)
			}
			totals[field] += item.record.NumericFields[field]
		}
	}
	if len(order) == 0 {
		return "", 0, false
	}

	best := order[0]
	for _, field := range order[1:] {
		if totals[field] > totals[best] {
			best = field
		}
	}
	return best, totals[best], true
}

func topCategory(relevant []scoredRecord) (string, bool) {
	counts := map[string]int{}
	var order []string

	for _, item := range relevant {
		for _, field := range sortedKeys(item.record.CategoricalFields) {
			value := item.record.CategoricalFields[field]
			if value == "" {
				continue
			}
			if _, seen := counts[value]; !seen {
				order = append(order, value)
			}
			counts[value]++
		}
	}
	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, value := range order[1:] {
		if counts[value] > counts[best] {
			best = value
		}
	}
	return best, true
}

// forecastClause reports forecasts whose field name appears in the
// question, falling back to all available forecasts.
func forecastClause(question string, forecasts []insights.Forecast) string {
	if len(forecasts) == 0 {
		return ""
	}

	lowerQuestion := strings.ToLower(question)
	var matched []insights.Forecast
	for _, forecast := range forecasts {
		if strings.Contains(lowerQuestion, strings.ToLower(forecast.Field)) {
			matched = append(matched, forecast)
		}
	}

	if len(matched) > 0 {
		return fmt.Sprintf("Projected next value: %s.", joinForecasts(matched))
	}
	return fmt.Sprintf("General projections: %s.", joinForecasts(forecasts))
}

func joinForecasts(forecasts []insights.Forecast) string {
	parts := make([]string, 0, len(forecasts))
	for _, forecast := range forecasts {
		parts = append(parts, fmt.Sprintf("%s ≈ %.2f", forecast.Field, forecast.Forecast))
	}
	return strings.Join(parts, " · ")
}

func countSources(records []models.Record) int {
	seen := map[string]struct{}{}
	for _, record := range records {
		seen[record.SourceID] = struct{}{}
	}
	return len(seen)
}

func sortedKeys[V any](fields map[string]V) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package insights

import (
	"fmt"
	"strings"
)

// narrative assembles the templated sentence sequence from the computed
// aggregates. Clauses whose underlying data is empty are omitted; the rest
// are joined with single spaces.
func narrative(summary Summary) string {
	clauses := []string{
		fmt.Sprintf("We analysed %d records across %d sources.",
			summary.TotalRecords, summary.ActiveSources),
	}

	if len(summary.NumericHighlights) > 0 {
		parts := make([]string, 0, len(summary.NumericHighlights))
		for _, highlight := range summary.NumericHighlights {
			parts = append(parts, fmt.Sprintf("%s (%.2f)", highlight.Field, highlight.Average))
		}
		clauses = append(clauses, fmt.Sprintf("Key averages: %s.", strings.Join(parts, ", ")))
	}

	if len(summary.CategoryBreakdown) > 0 {
		top := summary.CategoryBreakdown
		if len(top) > 3 {
			top = top[:3]
		}
		parts := make([]string, 0, len(top))
		for _, category := range top {
			parts = append(parts, fmt.Sprintf("%s (%d)", category.Label, category.Value))
		}
		clauses = append(clauses, fmt.Sprintf("Dominant categories: %s.", strings.Join(parts, ", ")))
	}

	if len(summary.Forecasts) > 0 {
		clauses = append(clauses, fmt.Sprintf("Projected next values: %s.", formatForecasts(summary.Forecasts, ", ")))
	}

	if len(summary.MoodWords) > 0 {
		clauses = append(clauses, fmt.Sprintf("Mood signals detected: %s.", strings.Join(summary.MoodWords, ", ")))
	}

	return strings.Join(clauses, " ")
}

func formatForecasts(forecasts []Forecast, sep string) string {
	parts := make([]string, 0, len(forecasts))
	for _, forecast := range forecasts {
		parts = append(parts, fmt.Sprintf("%s ≈ %.2f", forecast.Field, forecast.Forecast))
	}
	return strings.Join(parts, sep)
}

// Package insights derives an aggregate summary from a record collection:
// keyword and category frequencies, numeric totals, mood signals, bucketed
// activity counts, linear forecasts and a templated narrative. A summary
// is a recomputable projection, never a source of truth.
package insights

import "fmt"

// Timeframe is a rolling filter window applied before aggregation.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

// ParseTimeframe validates a timeframe selection coming from a UI
// collaborator, defaulting the empty string to "all".
func ParseTimeframe(value string) (Timeframe, error) {
	switch Timeframe(value) {
	case TimeframeWeek, TimeframeMonth, TimeframeAll:
		return Timeframe(value), nil
	case "":
		return TimeframeAll, nil
	default:
		return "", fmt.Errorf("insights: unknown timeframe %q", value)
	}
}

// NumericHighlight is the total and mean of one numeric field across the
// records that define it.
type NumericHighlight struct {
	Field   string  `json:"field"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

// CategoryCount is one categorical value and how often it occurred.
type CategoryCount struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// TimeSeriesPoint is a record count for one time bucket. Labels are
// YYYY-MM-DD, YYYY-MM or YYYY depending on the timeframe.
type TimeSeriesPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Forecast is the next projected value of a numeric field under ordinary
// least squares over the field's chronological series.
type Forecast struct {
	Field    string  `json:"field"`
	Forecast float64 `json:"forecast"`
}

// Summary is the derived projection consumed by the dashboard, report
// exporter and chat assistant.
type Summary struct {
	TotalRecords      int                `json:"totalRecords"`
	ActiveSources     int                `json:"activeSources"`
	Keywords          []string           `json:"keywords"`
	MoodWords         []string           `json:"moodWords"`
	NumericHighlights []NumericHighlight `json:"numericHighlights"`
	CategoryBreakdown []CategoryCount    `json:"categoryBreakdown"`
	TimeSeries        []TimeSeriesPoint  `json:"timeSeries"`
	Forecasts         []Forecast         `json:"forecasts"`
	Narrative         string             `json:"narrative"`
}

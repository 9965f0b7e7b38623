package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/lifeboard/backend/internal/storage/models"
)

const (
	topKeywords   = 8
	topCategories = 8

	emptyNarrative = "Upload your first dataset to unlock a living narrative of your routines."
)

var moodIndicators = []string{
	"happy", "sad", "excited", "tired", "motivated",
	"anxious", "calm", "productive", "focused",
}

// Summarize filters records by the rolling timeframe window and computes
// the full summary in one pass. Empty input is a valid state: it yields a
// zero summary with a fixed placeholder narrative, never an error.
func Summarize(records []models.Record, timeframe Timeframe) Summary {
	if len(records) == 0 {
		return Summary{
			Keywords:          []string{},
			MoodWords:         []string{},
			NumericHighlights: []NumericHighlight{},
			CategoryBreakdown: []CategoryCount{},
			TimeSeries:        []TimeSeriesPoint{},
			Forecasts:         []Forecast{},
			Narrative:         emptyNarrative,
		}
	}

	filtered := filterByTimeframe(records, timeframe, time.Now())

	summary := Summary{
		TotalRecords:      len(filtered),
		ActiveSources:     countSources(filtered),
		Keywords:          aggregateKeywords(filtered),
		MoodWords:         detectMoodWords(filtered),
		NumericHighlights: aggregateNumeric(filtered),
		CategoryBreakdown: aggregateCategories(filtered),
		TimeSeries:        aggregateTimeSeries(filtered, timeframe),
		Forecasts:         buildForecasts(filtered),
	}
	summary.Narrative = narrative(summary)
	return summary
}

// filterByTimeframe keeps records no older than the rolling window
// measured from now. The window is not calendar-aligned.
func filterByTimeframe(records []models.Record, timeframe Timeframe, now time.Time) []models.Record {
	var days int64
	switch timeframe {
	case TimeframeWeek:
		days = 7
	case TimeframeMonth:
		days = 30
	default:
		return records
	}

	threshold := now.UnixMilli() - days*24*60*60*1000
	filtered := make([]models.Record, 0, len(records))
	for _, record := range records {
		if record.Timestamp >= threshold {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func countSources(records []models.Record) int {
	seen := map[string]struct{}{}
	for _, record := range records {
		seen[record.SourceID] = struct{}{}
	}
	return len(seen)
}

// counter tallies string keys while remembering first-insertion order, so
// ties sort stably instead of at the mercy of map iteration.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// sortedDesc returns keys by descending count; first-seen order breaks
// ties.
func (c *counter) sortedDesc() []string {
	keys := append([]string(nil), c.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

func aggregateKeywords(records []models.Record) []string {
	freq := newCounter()
	for _, record := range records {
		for _, keyword := range record.Keywords {
			freq.add(keyword, 1)
		}
	}

	keys := freq.sortedDesc()
	if len(keys) > topKeywords {
		keys = keys[:topKeywords]
	}
	return keys
}

// detectMoodWords counts substring hits of each mood indicator across all
// text fields and returns every matched word by descending count, uncapped.
func detectMoodWords(records []models.Record) []string {
	freq := newCounter()
	for _, record := range records {
		for _, text := range record.TextFields {
			lower := strings.ToLower(text)
			for _, word := range moodIndicators {
				if strings.Contains(lower, word) {
					freq.add(word, 1)
				}
			}
		}
	}
	return freq.sortedDesc()
}

func aggregateNumeric(records []models.Record) []NumericHighlight {
	totals := map[string]float64{}
	counts := map[string]int{}
	var order []string

	for _, record := range records {
		for _, field := range sortedFieldNames(record.NumericFields) {
			if _, seen := counts[field]; !seen {
				order = append(order, field)
			}
			totals[field] += record.NumericFields[field]
			counts[field]++
		}
	}

	highlights := make([]NumericHighlight, 0, len(order))
	for _, field := range order {
		highlights = append(highlights, NumericHighlight{
			Field:   field,
			Total:   totals[field],
			Average: totals[field] / float64(counts[field]),
		})
	}
	return highlights
}

func aggregateCategories(records []models.Record) []CategoryCount {
	freq := newCounter()
	for _, record := range records {
		for _, field := range sortedFieldNames(record.CategoricalFields) {
			if value := record.CategoricalFields[field]; value != "" {
				freq.add(value, 1)
			}
		}
	}

	keys := freq.sortedDesc()
	if len(keys) > topCategories {
		keys = keys[:topCategories]
	}

	breakdown := make([]CategoryCount, 0, len(keys))
	for _, key := range keys {
		breakdown = append(breakdown, CategoryCount{Label: key, Value: freq.counts[key]})
	}
	return breakdown
}

func aggregateTimeSeries(records []models.Record, timeframe Timeframe) []TimeSeriesPoint {
	var layout string
	switch timeframe {
	case TimeframeWeek:
		layout = "2006-01-02"
	case TimeframeMonth:
		layout = "2006-01"
	default:
		layout = "2006"
	}

	buckets := newCounter()
	for _, record := range records {
		label := time.UnixMilli(record.Timestamp).UTC().Format(layout)
		buckets.add(label, 1)
	}

	points := make([]TimeSeriesPoint, 0, len(buckets.order))
	for _, label := range buckets.order {
		points = append(points, TimeSeriesPoint{Label: label, Value: buckets.counts[label]})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points
}

func sortedFieldNames[V any](fields map[string]V) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

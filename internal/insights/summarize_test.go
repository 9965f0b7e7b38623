package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/internal/storage/models"
)

func record(sourceID string, timestamp int64, modify func(*models.Record)) models.Record {
	r := models.Record{
		ID:                fmt.Sprintf("r-%d", timestamp),
		SourceID:          sourceID,
		Timestamp:         timestamp,
		NumericFields:     map[string]float64{},
		CategoricalFields: map[string]string{},
	}
	if modify != nil {
		modify(&r)
	}
	return r
}

func daysAgo(days int) int64 {
	return time.Now().AddDate(0, 0, -days).UnixMilli()
}

func TestSummarize_EmptyInput(t *testing.T) {
	for _, timeframe := range []Timeframe{TimeframeWeek, TimeframeMonth, TimeframeAll} {
		summary := Summarize(nil, timeframe)

		assert.Zero(t, summary.TotalRecords)
		assert.Zero(t, summary.ActiveSources)
		assert.Empty(t, summary.Keywords)
		assert.Empty(t, summary.Forecasts)
		assert.Equal(t, emptyNarrative, summary.Narrative)
	}
}

func TestSummarize_AllTimeframeFiltersNothing(t *testing.T) {
	records := []models.Record{
		record("a", daysAgo(400), nil),
		record("a", daysAgo(100), nil),
		record("b", daysAgo(1), nil),
	}

	summary := Summarize(records, TimeframeAll)
	assert.Equal(t, len(records), summary.TotalRecords)
	assert.Equal(t, 2, summary.ActiveSources)
}

func TestSummarize_RollingWindows(t *testing.T) {
	records := []models.Record{
		record("a", daysAgo(1), nil),
		record("a", daysAgo(10), nil),
		record("a", daysAgo(60), nil),
	}

	assert.Equal(t, 1, Summarize(records, TimeframeWeek).TotalRecords)
	assert.Equal(t, 2, Summarize(records, TimeframeMonth).TotalRecords)
	assert.Equal(t, 3, Summarize(records, TimeframeAll).TotalRecords)
}

func TestSummarize_KeywordsCappedAndSorted(t *testing.T) {
	var records []models.Record
	// "popular" appears in every record; nine fillers compete for the rest.
	for i := 0; i < 9; i++ {
		keyword := fmt.Sprintf("filler%d", i)
		records = append(records, record("a", daysAgo(i), func(r *models.Record) {
			r.Keywords = []string{"popular", keyword}
		}))
	}

	summary := Summarize(records, TimeframeAll)
	require.Len(t, summary.Keywords, 8)
	assert.Equal(t, "popular", summary.Keywords[0])
}

func TestSummarize_NumericHighlights(t *testing.T) {
	records := []models.Record{
		record("a", daysAgo(3), func(r *models.Record) {
			r.NumericFields["amount"] = 10
		}),
		record("a", daysAgo(2), func(r *models.Record) {
			r.NumericFields["amount"] = 20
		}),
		record("a", daysAgo(1), nil),
	}

	summary := Summarize(records, TimeframeAll)
	require.Len(t, summary.NumericHighlights, 1)

	highlight := summary.NumericHighlights[0]
	assert.Equal(t, "amount", highlight.Field)
	assert.Equal(t, float64(30), highlight.Total)
	// The mean runs over defining records only, not the whole collection.
	assert.Equal(t, float64(15), highlight.Average)
}

func TestSummarize_CategoryBreakdown(t *testing.T) {
	records := []models.Record{
		record("a", daysAgo(3), func(r *models.Record) {
			r.CategoricalFields["category"] = "food"
		}),
		record("a", daysAgo(2), func(r *models.Record) {
			r.CategoricalFields["category"] = "food"
			r.CategoricalFields["place"] = ""
		}),
		record("a", daysAgo(1), func(r *models.Record) {
			r.CategoricalFields["category"] = "travel"
		}),
	}

	summary := Summarize(records, TimeframeAll)
	require.Len(t, summary.CategoryBreakdown, 2)
	assert.Equal(t, CategoryCount{Label: "food", Value: 2}, summary.CategoryBreakdown[0])
	assert.Equal(t, CategoryCount{Label: "travel", Value: 1}, summary.CategoryBreakdown[1])
}

func TestSummarize_MoodWords(t *testing.T) {
	records := []models.Record{
		record("a", daysAgo(3), func(r *models.Record) {
			r.TextFields = []string{"Feeling HAPPY after the gym"}
		}),
		record("a", daysAgo(2), func(r *models.Record) {
			r.TextFields = []string{"happy but tired"}
		}),
	}

	summary := Summarize(records, TimeframeAll)
	assert.Equal(t, []string{"happy", "tired"}, summary.MoodWords)
}

func TestSummarize_TimeSeriesYearBuckets(t *testing.T) {
	ts2023 := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	ts2024 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	records := []models.Record{
		record("a", ts2024, nil),
		record("a", ts2023, nil),
		record("a", ts2023, nil),
	}

	summary := Summarize(records, TimeframeAll)
	assert.Equal(t, []TimeSeriesPoint{
		{Label: "2023", Value: 2},
		{Label: "2024", Value: 1},
	}, summary.TimeSeries)
}

func TestSummarize_Narrative(t *testing.T) {
	records := []models.Record{
		record("a", daysAgo(1), func(r *models.Record) {
			r.NumericFields["amount"] = 12
			r.CategoricalFields["category"] = "food"
		}),
	}

	summary := Summarize(records, TimeframeAll)
	assert.Contains(t, summary.Narrative, "We analysed 1 records across 1 sources.")
	assert.Contains(t, summary.Narrative, "Key averages: amount (12.00).")
	assert.Contains(t, summary.Narrative, "Dominant categories: food (1).")
	// No forecasts and no mood words, so those clauses are absent.
	assert.NotContains(t, summary.Narrative, "Projected next values")
	assert.NotContains(t, summary.Narrative, "Mood signals")
}

func TestParseTimeframe(t *testing.T) {
	for value, want := range map[string]Timeframe{
		"week":  TimeframeWeek,
		"month": TimeframeMonth,
		"all":   TimeframeAll,
		"":      TimeframeAll,
	} {
		got, err := ParseTimeframe(value)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTimeframe("fortnight")
	assert.Error(t, err)
}

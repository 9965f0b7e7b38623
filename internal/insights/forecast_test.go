package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/internal/storage/models"
)

func numericRecord(timestamp int64, fields map[string]float64) models.Record {
	return models.Record{Timestamp: timestamp, NumericFields: fields}
}

func TestBuildForecasts_LinearSeries(t *testing.T) {
	records := []models.Record{
		numericRecord(1000, map[string]float64{"amount": 1}),
		numericRecord(2000, map[string]float64{"amount": 2}),
		numericRecord(3000, map[string]float64{"amount": 3}),
	}

	forecasts := buildForecasts(records)
	require.Len(t, forecasts, 1)
	assert.Equal(t, "amount", forecasts[0].Field)
	assert.InDelta(t, 4.0, forecasts[0].Forecast, 1e-9)
}

func TestBuildForecasts_UnsortedInput(t *testing.T) {
	records := []models.Record{
		numericRecord(3000, map[string]float64{"amount": 3}),
		numericRecord(1000, map[string]float64{"amount": 1}),
		numericRecord(2000, map[string]float64{"amount": 2}),
	}

	forecasts := buildForecasts(records)
	require.Len(t, forecasts, 1)
	assert.InDelta(t, 4.0, forecasts[0].Forecast, 1e-9)
}

func TestBuildForecasts_TooFewObservations(t *testing.T) {
	records := []models.Record{
		numericRecord(1000, map[string]float64{"amount": 1}),
		numericRecord(2000, map[string]float64{"amount": 2}),
	}

	assert.Empty(t, buildForecasts(records))
}

func TestBuildForecasts_TopThreeByProjectedValue(t *testing.T) {
	var records []models.Record
	// Constant series project their own value, giving four known
	// forecasts competing for three slots.
	for i := int64(0); i < 3; i++ {
		records = append(records, numericRecord(i*1000, map[string]float64{
			"a": 1, "b": 2, "c": 3, "d": 4,
		}))
	}

	forecasts := buildForecasts(records)
	require.Len(t, forecasts, 3)
	assert.Equal(t, "d", forecasts[0].Field)
	assert.InDelta(t, 4.0, forecasts[0].Forecast, 1e-9)
	assert.Equal(t, "c", forecasts[1].Field)
	assert.Equal(t, "b", forecasts[2].Field)
}

func TestBuildForecasts_SparseFieldExcluded(t *testing.T) {
	records := []models.Record{
		numericRecord(1000, map[string]float64{"amount": 1, "steps": 100}),
		numericRecord(2000, map[string]float64{"amount": 2}),
		numericRecord(3000, map[string]float64{"amount": 3, "steps": 300}),
	}

	forecasts := buildForecasts(records)
	require.Len(t, forecasts, 1)
	assert.Equal(t, "amount", forecasts[0].Field)
}

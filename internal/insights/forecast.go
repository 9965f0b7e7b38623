package insights

import (
	"sort"

	"github.com/lifeboard/backend/internal/storage/models"
)

const (
	minObservations = 3
	topForecasts    = 3
)

type observation struct {
	x float64
	y float64
}

// buildForecasts fits one least-squares line per numeric field over the
// field's values in timestamp-sorted record order, indexed 0..n-1, and
// projects index n. Fields with fewer than three observations or a
// degenerate regression denominator have no defined forecast and are
// excluded rather than reported as zero.
func buildForecasts(records []models.Record) []Forecast {
	ordered := append([]models.Record(nil), records...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	series := map[string][]observation{}
	var order []string
	for index, record := range ordered {
		for _, field := range sortedFieldNames(record.NumericFields) {
			if _, seen := series[field]; !seen {
				order = append(order, field)
			}
			series[field] = append(series[field], observation{
				x: float64(index),
				y: record.NumericFields[field],
			})
		}
	}

	forecasts := make([]Forecast, 0, len(order))
	for _, field := range order {
		if predicted, ok := regressNext(series[field]); ok {
			forecasts = append(forecasts, Forecast{Field: field, Forecast: predicted})
		}
	}

	sort.SliceStable(forecasts, func(i, j int) bool {
		return forecasts[i].Forecast > forecasts[j].Forecast
	})
	if len(forecasts) > topForecasts {
		forecasts = forecasts[:topForecasts]
	}
	return forecasts
}

// regressNext fits y = slope*x + intercept by ordinary least squares and
// evaluates the line one step past the last observation.
func regressNext(points []observation) (float64, bool) {
	n := float64(len(points))
	if len(points) < minObservations {
		return 0, false
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.x
		sumY += p.y
		sumXY += p.x * p.y
		sumX2 += p.x * p.x
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0, false
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n
	nextX := points[len(points)-1].x + 1
	return intercept + slope*nextX, true
}

package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	IngestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lifeboard_ingest_duration_seconds",
			Help:    "Per-file ingestion duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		},
		[]string{"source_type"},
	)

	FilesIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_files_ingested_total",
			Help: "Uploaded files by ingestion outcome",
		},
		[]string{"status"},
	)

	RecordsIngested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lifeboard_records_ingested_total",
			Help: "Total normalized records committed",
		},
	)

	QuestionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lifeboard_question_duration_seconds",
			Help:    "Chat question processing duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
	)

	QuestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_questions_total",
			Help: "Chat questions by outcome",
		},
		[]string{"outcome"},
	)

	SummaryBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_summary_builds_total",
			Help: "Insight summary computations by timeframe",
		},
		[]string{"timeframe"},
	)
)

func Init() {
	prometheus.MustRegister(IngestDuration)
	prometheus.MustRegister(FilesIngested)
	prometheus.MustRegister(RecordsIngested)
	prometheus.MustRegister(QuestionDuration)
	prometheus.MustRegister(QuestionsTotal)
	prometheus.MustRegister(SummaryBuilds)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

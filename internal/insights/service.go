package insights

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/metrics"
	"github.com/lifeboard/backend/internal/storage"
	"github.com/lifeboard/backend/pkg/logger"
)

// Service regenerates summaries from the record collection on demand and
// caches them per timeframe. A summary is a cache entry, never a source of
// truth: any record mutation must call Invalidate and the next read
// recomputes from storage in one step.
type Service struct {
	repo  storage.Repository
	cache *gocache.Cache
}

// summaryTTL bounds staleness of the rolling week/month windows, which
// drift with wall-clock time even when no records change.
const summaryTTL = 5 * time.Minute

func NewService(repo storage.Repository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(summaryTTL, 2*summaryTTL),
	}
}

// Summary returns the cached summary for the timeframe, computing it from
// the full record collection on a miss.
func (s *Service) Summary(timeframe Timeframe) (Summary, error) {
	if cached, ok := s.cache.Get(string(timeframe)); ok {
		return cached.(Summary), nil
	}

	records, err := s.repo.GetAllRecords()
	if err != nil {
		return Summary{}, fmt.Errorf("load records: %w", err)
	}

	summary := Summarize(records, timeframe)
	s.cache.Set(string(timeframe), summary, gocache.DefaultExpiration)
	metrics.SummaryBuilds.WithLabelValues(string(timeframe)).Inc()

	logger.Debug("Summary computed",
		zap.String("timeframe", string(timeframe)),
		zap.Int("records", summary.TotalRecords),
	)
	return summary, nil
}

// Invalidate drops every cached timeframe. Called after ingestion and
// after a workspace reset.
func (s *Service) Invalidate() {
	s.cache.Flush()
}

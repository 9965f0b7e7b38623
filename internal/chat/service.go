package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/metrics"
	"github.com/lifeboard/backend/internal/storage"
	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/pkg/logger"
)

// Service persists the conversation around the assistant: each question
// appends a user message, computes an answer over the current records and
// summary, and appends the assistant's reply.
type Service struct {
	repo      storage.Repository
	assistant *Assistant
	insights  *insights.Service
}

func NewService(repo storage.Repository, assistant *Assistant, insightsService *insights.Service) *Service {
	return &Service{
		repo:      repo,
		assistant: assistant,
		insights:  insightsService,
	}
}

// Ask answers a question grounded in the given timeframe's summary and
// returns the appended assistant message.
func (s *Service) Ask(question string, timeframe insights.Timeframe) (models.ChatMessage, error) {
	start := time.Now()

	userMessage := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Content:   question,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.repo.AppendChatMessage(userMessage); err != nil {
		return models.ChatMessage{}, fmt.Errorf("append user message: %w", err)
	}

	records, err := s.repo.GetAllRecords()
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("load records: %w", err)
	}

	summary, err := s.insights.Summary(timeframe)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("load summary: %w", err)
	}

	answer := s.assistant.Answer(question, records, summary)

	assistantMessage := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleAssistant,
		Content:   answer,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.repo.AppendChatMessage(assistantMessage); err != nil {
		return models.ChatMessage{}, fmt.Errorf("append assistant message: %w", err)
	}

	metrics.QuestionDuration.Observe(time.Since(start).Seconds())
	metrics.QuestionsTotal.WithLabelValues(answerOutcome(answer)).Inc()

	logger.Info("Question answered",
		zap.String("message_id", assistantMessage.ID),
		zap.Int("records", len(records)),
	)
	return assistantMessage, nil
}

func answerOutcome(answer string) string {
	switch {
	case answer == NoRecordsMessage:
		return "no_records"
	case strings.HasPrefix(answer, "No direct matches"):
		return "no_match"
	default:
		return "answered"
	}
}

func (s *Service) History() ([]models.ChatMessage, error) {
	return s.repo.GetChatHistory()
}

func (s *Service) ClearHistory() error {
	return s.repo.ClearChatHistory()
}

package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/storage/models"
)

type fakeRepository struct {
	records  []models.Record
	messages []models.ChatMessage
}

func (f *fakeRepository) PutSource(models.Source) error { return nil }

func (f *fakeRepository) PutRecords(records []models.Record) error {
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeRepository) GetAllSources() ([]models.Source, error) { return nil, nil }
func (f *fakeRepository) GetAllRecords() ([]models.Record, error) { return f.records, nil }

func (f *fakeRepository) AppendChatMessage(message models.ChatMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeRepository) GetChatHistory() ([]models.ChatMessage, error) { return f.messages, nil }
func (f *fakeRepository) ClearChatHistory() error                      { f.messages = nil; return nil }
func (f *fakeRepository) Clear() error                                 { return nil }

func newChatService(t *testing.T, repo *fakeRepository) *Service {
	t.Helper()
	assistant := NewAssistant(testModel(t), 0, 0)
	return NewService(repo, assistant, insights.NewService(repo))
}

func TestAsk_AppendsBothMessages(t *testing.T) {
	repo := &fakeRepository{}
	service := newChatService(t, repo)

	reply, err := service.Ask("apple", insights.TimeframeAll)
	require.NoError(t, err)

	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, NoRecordsMessage, reply.Content)
	assert.NotEmpty(t, reply.ID)

	require.Len(t, repo.messages, 2)
	assert.Equal(t, models.RoleUser, repo.messages[0].Role)
	assert.Equal(t, "apple", repo.messages[0].Content)
	assert.Equal(t, reply, repo.messages[1])
}

func TestAsk_AnswersOverStoredRecords(t *testing.T) {
	repo := &fakeRepository{records: []models.Record{matchingRecord("r1", "s1", "a")}}
	service := newChatService(t, repo)

	reply, err := service.Ask("apple", insights.TimeframeAll)
	require.NoError(t, err)
	assert.Contains(t, reply.Content, "Matched 1 of 1 records across 1 sources.")
}

func TestHistoryAndClear(t *testing.T) {
	repo := &fakeRepository{}
	service := newChatService(t, repo)

	_, err := service.Ask("apple", insights.TimeframeAll)
	require.NoError(t, err)

	history, err := service.History()
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, service.ClearHistory())
	history, err = service.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}

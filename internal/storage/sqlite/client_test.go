package sqlite

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/internal/storage/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.InitSchema())
	return client
}

func TestSourceRoundTrip(t *testing.T) {
	client := newTestClient(t)

	source := models.Source{ID: "s1", Name: "expenses.csv", Type: models.SourceTabular, CreatedAt: 1000}
	require.NoError(t, client.PutSource(source))

	sources, err := client.GetAllSources()
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, source, sources[0])

	// Idempotent re-insert keeps a single row.
	require.NoError(t, client.PutSource(source))
	sources, err = client.GetAllSources()
	require.NoError(t, err)
	assert.Len(t, sources, 1)
}

func TestRecordRoundTrip(t *testing.T) {
	client := newTestClient(t)

	record := models.Record{
		ID:                "r1",
		SourceID:          "s1",
		Timestamp:         1704067200000,
		Summary:           "date: 2024-01-01 | amount: 42",
		NumericFields:     map[string]float64{"amount": 42},
		CategoricalFields: map[string]string{"category": "food"},
		TextFields:        []string{"date: 2024-01-01", "amount: 42"},
		Keywords:          []string{"food", "amount"},
		Embedding:         []float64{0.5, 0.5, 0, 0, 0, 0, 0, 0.70710678},
		Raw:               json.RawMessage(`{"amount":"42"}`),
	}
	require.NoError(t, client.PutRecords([]models.Record{record}))

	records, err := client.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record, records[0])
}

func TestGetAllRecords_InsertionOrder(t *testing.T) {
	client := newTestClient(t)

	// IDs deliberately sort against insertion order.
	batch := []models.Record{
		{ID: "z", SourceID: "s1", Summary: "first"},
		{ID: "a", SourceID: "s1", Summary: "second"},
		{ID: "m", SourceID: "s1", Summary: "third"},
	}
	require.NoError(t, client.PutRecords(batch))

	records, err := client.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "z", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "m", records[2].ID)
}

func TestPutRecords_DuplicateIDRollsBackBatch(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.PutRecords([]models.Record{{ID: "r1", SourceID: "s1"}}))

	err := client.PutRecords([]models.Record{
		{ID: "r2", SourceID: "s1"},
		{ID: "r1", SourceID: "s1"},
	})
	require.Error(t, err)

	records, err := client.GetAllRecords()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPutRecords_EmptyBatch(t *testing.T) {
	client := newTestClient(t)
	assert.NoError(t, client.PutRecords(nil))
}

func TestChatHistory(t *testing.T) {
	client := newTestClient(t)

	messages := []models.ChatMessage{
		{ID: "m1", Role: models.RoleUser, Content: "How much on food?", CreatedAt: 100},
		{ID: "m2", Role: models.RoleAssistant, Content: "Matched 2 of 3 records.", CreatedAt: 200},
	}
	for _, message := range messages {
		require.NoError(t, client.AppendChatMessage(message))
	}

	history, err := client.GetChatHistory()
	require.NoError(t, err)
	assert.Equal(t, messages, history)

	require.NoError(t, client.ClearChatHistory())
	history, err = client.GetChatHistory()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestClear(t *testing.T) {
	client := newTestClient(t)

	require.NoError(t, client.PutSource(models.Source{ID: "s1", Name: "a.csv", Type: models.SourceTabular}))
	require.NoError(t, client.PutRecords([]models.Record{{ID: "r1", SourceID: "s1"}}))
	require.NoError(t, client.AppendChatMessage(models.ChatMessage{ID: "m1", Role: models.RoleUser, Content: "hi"}))

	require.NoError(t, client.Clear())

	sources, err := client.GetAllSources()
	require.NoError(t, err)
	assert.Empty(t, sources)

	records, err := client.GetAllRecords()
	require.NoError(t, err)
	assert.Empty(t, records)

	history, err := client.GetChatHistory()
	require.NoError(t, err)
	assert.Empty(t, history)
}

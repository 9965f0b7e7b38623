package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/pkg/logger"
)

// Client is the SQLite-backed repository for sources, records and chat
// history. Field maps, keywords, embeddings and raw payloads are stored as
// JSON columns; the workspace is single-user so no row-level locking is
// needed beyond WAL.
type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sources (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS records (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT UNIQUE NOT NULL,
		source_id TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		summary TEXT NOT NULL,
		numeric_fields TEXT NOT NULL,
		categorical_fields TEXT NOT NULL,
		text_fields TEXT NOT NULL,
		keywords TEXT NOT NULL,
		embedding TEXT NOT NULL,
		raw TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_records_source ON records(source_id);
	CREATE INDEX IF NOT EXISTS idx_records_timestamp ON records(timestamp);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chat_created ON chat_messages(created_at);
	`

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite schema initialized")
	return nil
}

func (c *Client) PutSource(source models.Source) error {
	query := `INSERT OR REPLACE INTO sources (id, name, type, created_at) VALUES (?, ?, ?, ?)`

	_, err := c.db.Exec(query, source.ID, source.Name, string(source.Type), source.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert source: %w", err)
	}

	logger.Debug("Source stored", zap.String("source_id", source.ID), zap.String("name", source.Name))
	return nil
}

// PutRecords inserts a file's records in one transaction so a failed file
// never commits a partial record set.
func (c *Client) PutRecords(records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO records (id, source_id, timestamp, summary, numeric_fields,
			categorical_fields, text_fields, keywords, embedding, raw)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		numericJSON, _ := json.Marshal(record.NumericFields)
		categoricalJSON, _ := json.Marshal(record.CategoricalFields)
		textJSON, _ := json.Marshal(record.TextFields)
		keywordsJSON, _ := json.Marshal(record.Keywords)
		embeddingJSON, _ := json.Marshal(record.Embedding)

		_, err := stmt.Exec(
			record.ID,
			record.SourceID,
			record.Timestamp,
			record.Summary,
			string(numericJSON),
			string(categoricalJSON),
			string(textJSON),
			string(keywordsJSON),
			string(embeddingJSON),
			string(record.Raw),
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %s: %w", record.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}

	logger.Debug("Records stored", zap.Int("count", len(records)))
	return nil
}

func (c *Client) GetAllSources() ([]models.Source, error) {
	rows, err := c.db.Query(`SELECT id, name, type, created_at FROM sources ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	defer rows.Close()

	var sources []models.Source
	for rows.Next() {
		var s models.Source
		var sourceType string
		if err := rows.Scan(&s.ID, &s.Name, &sourceType, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		s.Type = models.SourceType(sourceType)
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// GetAllRecords returns records in insertion order, which preserves each
// file's input order for deterministic aggregation.
func (c *Client) GetAllRecords() ([]models.Record, error) {
	rows, err := c.db.Query(`
		SELECT id, source_id, timestamp, summary, numeric_fields,
			categorical_fields, text_fields, keywords, embedding, raw
		FROM records ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		var numericJSON, categoricalJSON, textJSON, keywordsJSON, embeddingJSON string
		var raw sql.NullString

		err := rows.Scan(&r.ID, &r.SourceID, &r.Timestamp, &r.Summary,
			&numericJSON, &categoricalJSON, &textJSON, &keywordsJSON, &embeddingJSON, &raw)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		json.Unmarshal([]byte(numericJSON), &r.NumericFields)
		json.Unmarshal([]byte(categoricalJSON), &r.CategoricalFields)
		json.Unmarshal([]byte(textJSON), &r.TextFields)
		json.Unmarshal([]byte(keywordsJSON), &r.Keywords)
		json.Unmarshal([]byte(embeddingJSON), &r.Embedding)
		if raw.Valid {
			r.Raw = []byte(raw.String)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (c *Client) AppendChatMessage(message models.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, role, content, created_at) VALUES (?, ?, ?, ?)`

	_, err := c.db.Exec(query, message.ID, message.Role, message.Content, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

func (c *Client) GetChatHistory() ([]models.ChatMessage, error) {
	rows, err := c.db.Query(`SELECT id, role, content, created_at FROM chat_messages ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (c *Client) ClearChatHistory() error {
	if _, err := c.db.Exec(`DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	logger.Info("Chat history cleared")
	return nil
}

// Clear wipes the whole workspace in one transaction.
func (c *Client) Clear() error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"records", "sources", "chat_messages"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}

	logger.Info("Workspace cleared")
	return nil
}

package models

import "encoding/json"

// SourceType selects which extractor handles a file's content.
type SourceType string

const (
	SourceTabular    SourceType = "tabular"
	SourceStructured SourceType = "structured"
	SourceFreeform   SourceType = "freeform"
)

// Source is one uploaded file. Immutable once created.
type Source struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      SourceType `json:"type"`
	CreatedAt int64      `json:"createdAt"`
}

// Record is one normalized unit of ingested data: a tabular row, a JSON
// entry, or a text paragraph. Created once at ingestion, never mutated;
// only a workspace reset removes records.
type Record struct {
	ID                string             `json:"id"`
	SourceID          string             `json:"sourceId"`
	Timestamp         int64              `json:"timestamp"`
	Summary           string             `json:"summary"`
	NumericFields     map[string]float64 `json:"numericFields"`
	CategoricalFields map[string]string  `json:"categoricalFields"`
	TextFields        []string           `json:"textFields"`
	Keywords          []string           `json:"keywords"`
	Embedding         []float64          `json:"embedding"`
	Raw               json.RawMessage    `json:"raw,omitempty"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in the append-only conversation log.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

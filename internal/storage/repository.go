// Package storage defines the persistence contract for the workspace's
// three entity collections. The core depends on this interface rather than
// a concrete driver; internal/storage/sqlite provides the implementation.
package storage

import "github.com/lifeboard/backend/internal/storage/models"

// Repository is a simple put/get/clear surface keyed by id. Records are
// written in bulk since every file upload yields many rows at once. Clear
// wipes the whole workspace atomically; there is no per-source cascade
// delete.
type Repository interface {
	PutSource(source models.Source) error
	PutRecords(records []models.Record) error
	GetAllSources() ([]models.Source, error)
	GetAllRecords() ([]models.Record, error)

	AppendChatMessage(message models.ChatMessage) error
	GetChatHistory() ([]models.ChatMessage, error)
	ClearChatHistory() error

	Clear() error
}

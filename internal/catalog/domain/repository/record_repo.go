package repository

import (
	"context"

	"storefront-api/internal/catalog/domain/model"
)

// RecordRepository defines the persistence contract for collection records.
// Implementations hold the authoritative in-memory document and make every
// mutation durable before returning.
type RecordRepository interface {
	// ListRecords returns every record of a collection in insertion order.
	// An absent collection is an empty slice, never an error.
	ListRecords(ctx context.Context, collection string) ([]model.Record, error)

	// GetRecord looks a record up by string-coercive id equality and returns
	// errors.ErrRecordNotFound when no record matches.
	GetRecord(ctx context.Context, collection, id string) (model.Record, error)

	// CreateRecord assigns the next id, appends the record and persists the
	// document. The stored record, id included, is returned.
	CreateRecord(ctx context.Context, collection string, data model.Record) (model.Record, error)

	// UpdateRecord shallow-merges patch over the existing record, re-pins the
	// id to the given value, persists and returns the merged record.
	UpdateRecord(ctx context.Context, collection, id string, patch model.Record) (model.Record, error)

	// DeleteRecord removes the first id match, persists and returns the
	// removed record.
	DeleteRecord(ctx context.Context, collection, id string) (model.Record, error)
}

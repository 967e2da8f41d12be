package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"storefront-api/internal/catalog/domain/model"
	"storefront-api/internal/catalog/domain/repository"
	apperrors "storefront-api/internal/shared/errors"
	"storefront-api/internal/shared/logger"
)

// Store is the flat-file record store. The whole backing document is read
// once at construction, held in memory and rewritten in full after every
// mutation. External edits to the file are invisible until restart.
type Store struct {
	mu   sync.Mutex
	path string
	doc  map[string][]model.Record
	log  logger.Logger
}

var _ repository.RecordRepository = (*Store)(nil)

// New loads the backing document from path. A missing or unparsable file is
// an error; no default document is synthesized, callers treat this as fatal.
func New(path string, log logger.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backing document %s: %w", path, err)
	}

	doc := make(map[string][]model.Record)
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("backing document %s is not valid JSON: %w", path, err)
	}

	log.WithComponent("jsonfile").Infof("Loaded backing document %s with %d collections", path, len(doc))
	return &Store{
		path: path,
		doc:  doc,
		log:  log.WithComponent("jsonfile"),
	}, nil
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// ListRecords returns all records of a collection in insertion order.
func (s *Store) ListRecords(ctx context.Context, collection string) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.doc[collection]
	out := make([]model.Record, len(records))
	copy(out, records)
	return out, nil
}

// GetRecord finds a record by string-coercive id equality.
func (s *Store) GetRecord(ctx context.Context, collection, id string) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findIndexLocked(collection, id)
	if idx < 0 {
		return nil, apperrors.ErrRecordNotFound
	}
	return s.doc[collection][idx], nil
}

// CreateRecord assigns the next id, appends and persists.
func (s *Store) CreateRecord(ctx context.Context, collection string, data model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.doc[collection]
	rec := make(model.Record, len(data)+1)
	for k, v := range data {
		rec[k] = v
	}
	rec["id"] = model.NextID(records)

	// An absent collection is materialized by the first write.
	s.doc[collection] = append(records, rec)

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Infof("Created record %s in %s", rec.ID(), collection)
	return rec, nil
}

// UpdateRecord shallow-merges patch over the existing record, re-pins the id
// and persists.
func (s *Store) UpdateRecord(ctx context.Context, collection, id string, patch model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findIndexLocked(collection, id)
	if idx < 0 {
		return nil, apperrors.ErrRecordNotFound
	}

	merged := model.Merge(s.doc[collection][idx], patch, id)
	s.doc[collection][idx] = merged

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Infof("Updated record %s in %s", id, collection)
	return merged, nil
}

// DeleteRecord removes the first id match, persists and returns the removed
// record.
func (s *Store) DeleteRecord(ctx context.Context, collection, id string) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findIndexLocked(collection, id)
	if idx < 0 {
		return nil, apperrors.ErrRecordNotFound
	}

	records := s.doc[collection]
	removed := records[idx]
	s.doc[collection] = append(records[:idx], records[idx+1:]...)

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Infof("Deleted record %s from %s", id, collection)
	return removed, nil
}

// findIndexLocked returns the index of the first record whose coerced id
// equals id, or -1. Callers must hold s.mu.
func (s *Store) findIndexLocked(collection, id string) int {
	for i, rec := range s.doc[collection] {
		if rec.ID() == model.CoerceID(id) {
			return i
		}
	}
	return -1
}

// persistLocked rewrites the entire document to disk. The in-memory mutation
// has already happened when this runs; on failure memory and disk diverge
// until the next successful persist. Callers must hold s.mu.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backing document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to persist backing document: %w", err)
	}
	return nil
}

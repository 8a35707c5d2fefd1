// Package history persists finalized attendance records, partitioned by
// category, in a single JSON document rewritten wholesale on every change.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erickthegreen/crafttable/internal/domain"
	"go.uber.org/zap"
)

// Store is the append-only, category-partitioned attendance log. A corrupt or
// unreadable file degrades to the empty state instead of failing the caller;
// losing history on corruption is accepted.
type Store struct {
	path    string
	log     *zap.Logger
	records map[domain.Category][]domain.Record
}

func emptyRecords() map[domain.Category][]domain.Record {
	m := make(map[domain.Category][]domain.Record, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		m[c] = []domain.Record{}
	}
	return m
}

// Open loads the history document at path, creating the empty state when the
// file is missing or unreadable.
func Open(path string, log *zap.Logger) *Store {
	s := &Store{path: path, log: log, records: emptyRecords()}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("reading history file", zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	loaded := make(map[domain.Category][]domain.Record)
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.log.Error("decoding history file, starting empty", zap.String("path", s.path), zap.Error(err))
		s.records = emptyRecords()
		return
	}
	// Categories missing from older files still get a list.
	for _, c := range domain.AllCategories {
		if loaded[c] == nil {
			loaded[c] = []domain.Record{}
		}
	}
	s.records = loaded
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensuring history dir: %w", err)
	}
	data, err := json.MarshalIndent(s.records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Append adds rec to the category's list and rewrites the document. Unknown
// categories are rejected so the persisted document keeps its four fixed keys.
func (s *Store) Append(category domain.Category, rec domain.Record) error {
	if !category.Valid() {
		return fmt.Errorf("categoria desconhecida: %q", category)
	}
	s.records[category] = append(s.records[category], rec)
	return s.save()
}

// Reset replaces the document with four empty category lists.
func (s *Store) Reset() error {
	s.records = emptyRecords()
	return s.save()
}

// Records returns the category's records in insertion order.
func (s *Store) Records(category domain.Category) []domain.Record {
	return s.records[category]
}

// Len returns the number of records in one category.
func (s *Store) Len(category domain.Category) int {
	return len(s.records[category])
}

// Total returns the record count across all categories.
func (s *Store) Total() int {
	n := 0
	for _, c := range domain.AllCategories {
		n += len(s.records[c])
	}
	return n
}

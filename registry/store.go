package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Store is an append-only, file-backed record collection. It holds the
// records in memory between Open and Save; the on-disk form is an
// indented JSON array for human inspection.
type Store struct {
	path    string
	records []*Record
	byID    map[string]struct{}
}

// Open loads the store at path. A missing file yields an empty store;
// Save will create it.
//
// Errors: wrapped I/O and JSON decoding failures.
func Open(path string) (*Store, error) {
	s := &Store{path: path, byID: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", path, err)
	}

	if err = json.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("registry: decode %s: %w", path, err)
	}
	for _, rec := range s.records {
		s.byID[rec.ID] = struct{}{}
	}

	return s, nil
}

// Append adds a record to the in-memory collection. The store never
// overwrites: a second record with the same id is rejected.
//
// Errors: ErrNilRecord, ErrDuplicateID.
func (s *Store) Append(rec *Record) error {
	if rec == nil {
		return ErrNilRecord
	}
	if _, ok := s.byID[rec.ID]; ok {
		return ErrDuplicateID
	}

	s.records = append(s.records, rec)
	s.byID[rec.ID] = struct{}{}

	return nil
}

// Len returns the number of records held.
func (s *Store) Len() int { return len(s.records) }

// Records returns the records in append order. The slice is a copy; the
// pointed-to records are shared, so treat them as read-only.
func (s *Store) Records() []*Record {
	out := make([]*Record, len(s.records))
	copy(out, s.records)

	return out
}

// Save writes the collection back to its path as indented JSON.
//
// Errors: wrapped encoding and file-write failures.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("registry: encode store: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("registry: write %s: %w", s.path, err)
	}

	return nil
}

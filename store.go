package inkwell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// RecordStore persists uploaded posts keyed by slug. Upsert replaces any
// existing record with the same slug (last write wins, no versioning).
type RecordStore interface {
	LoadAll() ([]PostRecord, error)
	Upsert(record PostRecord) error
	Close() error
}

// JSONStore is the default RecordStore: a single JSON array on disk, read
// fully and rewritten fully on every upsert. A mutex serializes writers in
// this process; concurrent processes still race last-write-wins.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a JSONStore at path and ensures the containing
// directory exists. The backing file itself is created lazily on first upsert.
func NewJSONStore(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONStore{path: path}, nil
}

// LoadAll reads every record from the backing file. A missing file is an
// empty store; an unparsable file is a CorruptStoreError.
func (s *JSONStore) LoadAll() ([]PostRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *JSONStore) loadLocked() ([]PostRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read record store: %w", err)
	}
	var records []PostRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	return records, nil
}

// Upsert loads all records, drops any with the same slug, appends record,
// and rewrites the whole file.
func (s *JSONStore) Upsert(record PostRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, r := range records {
		if r.Slug != record.Slug {
			kept = append(kept, r)
		}
	}
	kept = append(kept, record)

	data, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write record store: %w", err)
	}
	return nil
}

// Close is a no-op for the file-backed store.
func (s *JSONStore) Close() error { return nil }

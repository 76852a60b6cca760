package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// MemoryStore keeps the dataset in process memory. It exists for tests and
// ephemeral runs; data is copied through JSON on both sides so callers
// never share slices with the stored snapshot.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
	err error // when set, Save and Load fail with it
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Fail makes every subsequent Save and Load return err. Passing nil
// restores normal behavior.
func (s *MemoryStore) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Load returns a copy of the last saved dataset, or an empty dataset when
// nothing has been saved yet.
func (s *MemoryStore) Load(_ context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.raw == nil {
		return models.NewDataset(), nil
	}
	data := models.NewDataset()
	if err := json.Unmarshal(s.raw, data); err != nil {
		return nil, fmt.Errorf("decode stored snapshot: %w", err)
	}
	return data, nil
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(_ context.Context, data *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	s.raw = raw
	return nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// FileStore persists the dataset as one indented JSON document on disk.
// Writes go through a temp file and rename so a crash mid-save never
// leaves a truncated document behind.
type FileStore struct {
	Path string
}

// NewFileStore creates a file store writing to path, creating the parent
// directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &FileStore{Path: path}, nil
}

// Load reads the last saved dataset. A missing file yields an empty
// dataset so a first run starts clean.
func (s *FileStore) Load(_ context.Context) (*models.Dataset, error) {
	raw, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return models.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	data := models.NewDataset()
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return data, nil
}

// Save overwrites the stored document with the current dataset.
func (s *FileStore) Save(_ context.Context, data *models.Dataset) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replace %s: %w", s.Path, err)
	}
	return nil
}

package store

import (
	"context"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// Store persists the full dataset. Both operations are whole-document:
// Save overwrites the last stored state and Load retrieves it. Load must
// return an empty dataset, not an error, when nothing has been stored yet.
type Store interface {
	Load(ctx context.Context) (*models.Dataset, error)
	Save(ctx context.Context, data *models.Dataset) error
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// EquipmentInput carries the fields for registering equipment.
type EquipmentInput struct {
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serial_number"`
	Priority     models.Priority `json:"priority"`
}

// EquipmentUpdate carries a partial edit. Blank fields keep the previous
// value (merge semantics, not overwrite).
type EquipmentUpdate struct {
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serial_number"`
	Priority     models.Priority `json:"priority"`
	Status       string          `json:"status"`
}

// CreateEquipment registers a new piece of equipment with the next id and
// the default operational status.
func (s *Service) CreateEquipment(ctx context.Context, in EquipmentInput) (models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Equipment{}, fmt.Errorf("equipment name is required: %w", ErrValidation)
	}
	if !in.Priority.Valid() {
		return models.Equipment{}, fmt.Errorf("priority %q is not one of High, Medium, Low: %w", in.Priority, ErrValidation)
	}

	s.data.Counters.Equipment++
	eq := models.Equipment{
		ID:           s.data.Counters.Equipment,
		Name:         name,
		Location:     strings.TrimSpace(in.Location),
		Description:  strings.TrimSpace(in.Description),
		Brand:        strings.TrimSpace(in.Brand),
		Model:        strings.TrimSpace(in.Model),
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		Priority:     in.Priority,
		Status:       models.DefaultEquipmentStatus,
		RegisteredAt: time.Now(),
	}
	s.data.Equipment = append(s.data.Equipment, eq)
	return eq, s.commit(ctx, "equipment", "create", eq.ID)
}

// UpdateEquipment applies a partial edit to an existing record.
func (s *Service) UpdateEquipment(ctx context.Context, id int, upd EquipmentUpdate) (models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.equipmentIndex(id)
	if idx < 0 {
		return models.Equipment{}, fmt.Errorf("equipment #%d: %w", id, ErrNotFound)
	}
	if upd.Priority != "" && !upd.Priority.Valid() {
		return models.Equipment{}, fmt.Errorf("priority %q is not one of High, Medium, Low: %w", upd.Priority, ErrValidation)
	}

	eq := &s.data.Equipment[idx]
	if v := strings.TrimSpace(upd.Name); v != "" {
		eq.Name = v
	}
	if v := strings.TrimSpace(upd.Location); v != "" {
		eq.Location = v
	}
	if v := strings.TrimSpace(upd.Description); v != "" {
		eq.Description = v
	}
	if v := strings.TrimSpace(upd.Brand); v != "" {
		eq.Brand = v
	}
	if v := strings.TrimSpace(upd.Model); v != "" {
		eq.Model = v
	}
	if v := strings.TrimSpace(upd.SerialNumber); v != "" {
		eq.SerialNumber = v
	}
	if upd.Priority != "" {
		eq.Priority = upd.Priority
	}
	if v := strings.TrimSpace(upd.Status); v != "" {
		eq.Status = v
	}
	return *eq, s.commit(ctx, "equipment", "update", id)
}

// DeleteEquipment removes the record. Work orders keep the name snapshot
// taken at creation; nothing cascades.
func (s *Service) DeleteEquipment(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.equipmentIndex(id)
	if idx < 0 {
		return fmt.Errorf("equipment #%d: %w", id, ErrNotFound)
	}
	s.data.Equipment = append(s.data.Equipment[:idx], s.data.Equipment[idx+1:]...)
	return s.commit(ctx, "equipment", "delete", id)
}

// FindEquipment returns every record whose name or location contains the
// term, case-insensitively. An empty term returns the full registry in
// insertion order.
func (s *Service) FindEquipment(term string) []models.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	out := []models.Equipment{}
	for _, eq := range s.data.Equipment {
		if term == "" ||
			strings.Contains(strings.ToLower(eq.Name), term) ||
			strings.Contains(strings.ToLower(eq.Location), term) {
			out = append(out, eq)
		}
	}
	return out
}

// ListEquipment returns all equipment in insertion order.
func (s *Service) ListEquipment() []models.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Equipment{}, s.data.Equipment...)
}

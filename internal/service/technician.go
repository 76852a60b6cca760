package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// TechnicianInput carries the fields for registering a technician.
type TechnicianInput struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
}

// CreateTechnician registers a new technician, initially available.
func (s *Service) CreateTechnician(ctx context.Context, in TechnicianInput) (models.Technician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Technician{}, fmt.Errorf("technician name is required: %w", ErrValidation)
	}

	s.data.Counters.Technicians++
	t := models.Technician{
		ID:        s.data.Counters.Technicians,
		Name:      name,
		Specialty: strings.TrimSpace(in.Specialty),
		Phone:     strings.TrimSpace(in.Phone),
		Status:    models.TechnicianAvailable,
	}
	s.data.Technicians = append(s.data.Technicians, t)
	return t, s.commit(ctx, "technician", "create", t.ID)
}

// DeleteTechnician detaches the technician from every work order bound to
// them, whatever the order's state, and then removes the record.
func (s *Service) DeleteTechnician(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.technicianIndex(id)
	if idx < 0 {
		return fmt.Errorf("technician #%d: %w", id, ErrNotFound)
	}
	s.detachTechnician(id)
	s.data.Technicians = append(s.data.Technicians[:idx], s.data.Technicians[idx+1:]...)
	return s.commit(ctx, "technician", "delete", id)
}

// ListTechnicians returns all technicians in insertion order.
func (s *Service) ListTechnicians() []models.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Technician{}, s.data.Technicians...)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// PlanInput carries the fields for scheduling a maintenance plan.
type PlanInput struct {
	EquipmentID int                    `json:"equipment_id"`
	Type        models.MaintenanceType `json:"type"`
	Description string                 `json:"description"`
	Month       int                    `json:"month"`
	Year        int                    `json:"year"`
}

// CreatePlan schedules maintenance for a target month against existing
// equipment.
func (s *Service) CreatePlan(ctx context.Context, in PlanInput) (models.MaintenancePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Month < 1 || in.Month > 12 {
		return models.MaintenancePlan{}, fmt.Errorf("month %d is outside 1-12: %w", in.Month, ErrValidation)
	}
	if !in.Type.Valid() {
		return models.MaintenancePlan{}, fmt.Errorf("maintenance type %q is not one of Preventive, Corrective, Predictive: %w", in.Type, ErrValidation)
	}
	if len(s.data.Equipment) == 0 {
		return models.MaintenancePlan{}, fmt.Errorf("no equipment registered: %w", ErrPrecondition)
	}
	eqIdx := s.equipmentIndex(in.EquipmentID)
	if eqIdx < 0 {
		return models.MaintenancePlan{}, fmt.Errorf("equipment #%d not registered: %w", in.EquipmentID, ErrPrecondition)
	}

	s.data.Counters.Plans++
	p := models.MaintenancePlan{
		ID:            s.data.Counters.Plans,
		EquipmentID:   in.EquipmentID,
		EquipmentName: s.data.Equipment[eqIdx].Name,
		Type:          in.Type,
		Description:   strings.TrimSpace(in.Description),
		Month:         in.Month,
		Year:          in.Year,
		Status:        models.DefaultPlanStatus,
		CreatedAt:     time.Now(),
	}
	s.data.Plans = append(s.data.Plans, p)
	return p, s.commit(ctx, "plan", "create", p.ID)
}

// PlansByPeriod returns the plans targeting exactly the given month and
// year, empty when nothing matches.
func (s *Service) PlansByPeriod(month, year int) []models.MaintenancePlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.MaintenancePlan{}
	for _, p := range s.data.Plans {
		if p.Month == month && p.Year == year {
			out = append(out, p)
		}
	}
	return out
}

// DeletePlan removes the plan.
func (s *Service) DeletePlan(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.planIndex(id)
	if idx < 0 {
		return fmt.Errorf("plan #%d: %w", id, ErrNotFound)
	}
	s.data.Plans = append(s.data.Plans[:idx], s.data.Plans[idx+1:]...)
	return s.commit(ctx, "plan", "delete", id)
}

// ListPlans returns all plans in insertion order.
func (s *Service) ListPlans() []models.MaintenancePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MaintenancePlan{}, s.data.Plans...)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// WorkOrderInput carries the fields for creating a work order.
type WorkOrderInput struct {
	EquipmentID int                    `json:"equipment_id"`
	Description string                 `json:"description"`
	Type        models.MaintenanceType `json:"type"`
	Priority    models.Priority        `json:"priority"`
}

// CreateWorkOrder opens a new order in the Pending state against existing
// equipment, snapshotting the equipment name.
func (s *Service) CreateWorkOrder(ctx context.Context, in WorkOrderInput) (models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data.Equipment) == 0 {
		return models.WorkOrder{}, fmt.Errorf("no equipment registered: %w", ErrPrecondition)
	}
	eqIdx := s.equipmentIndex(in.EquipmentID)
	if eqIdx < 0 {
		return models.WorkOrder{}, fmt.Errorf("equipment #%d not registered: %w", in.EquipmentID, ErrPrecondition)
	}
	if strings.TrimSpace(in.Description) == "" {
		return models.WorkOrder{}, fmt.Errorf("work description is required: %w", ErrValidation)
	}
	if !in.Type.Valid() {
		return models.WorkOrder{}, fmt.Errorf("maintenance type %q is not one of Preventive, Corrective, Predictive: %w", in.Type, ErrValidation)
	}
	if !in.Priority.Valid() {
		return models.WorkOrder{}, fmt.Errorf("priority %q is not one of High, Medium, Low: %w", in.Priority, ErrValidation)
	}

	s.data.Counters.WorkOrders++
	o := models.WorkOrder{
		ID:            s.data.Counters.WorkOrders,
		EquipmentID:   in.EquipmentID,
		EquipmentName: s.data.Equipment[eqIdx].Name,
		Description:   strings.TrimSpace(in.Description),
		Type:          in.Type,
		Priority:      in.Priority,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
	}
	s.data.WorkOrders = append(s.data.WorkOrders, o)
	return o, s.commit(ctx, "work_order", "create", o.ID)
}

// Transition moves an order to another recognized state. Any move between
// the five states is allowed, including reopening a terminal order; that
// permissiveness is deliberate. The one exception is Completed, which is
// routed through the completion routine so the history write and the
// technician release can never be skipped. The first entry into In
// Progress stamps the start time.
func (s *Service) Transition(ctx context.Context, id int, status models.WorkOrderStatus) (models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndex(id)
	if idx < 0 {
		return models.WorkOrder{}, fmt.Errorf("work order #%d: %w", id, ErrNotFound)
	}
	if !status.Valid() {
		return models.WorkOrder{}, fmt.Errorf("state %q is not recognized: %w", status, ErrValidation)
	}
	if status == models.StatusCompleted {
		return s.completeLocked(ctx, idx, "")
	}

	o := &s.data.WorkOrders[idx]
	o.Status = status
	if status == models.StatusInProgress && o.StartedAt == nil {
		now := time.Now()
		o.StartedAt = &now
	}
	s.syncAvailability(o.TechnicianID)
	return *o, s.commit(ctx, "work_order", "transition", id)
}

// AssignTechnician binds a technician to the order and marks them busy.
// Rebinding releases the previously bound technician if no other open
// order holds them. Assigning an already busy technician to a second order
// is allowed; the source system works that way and the limitation is kept.
func (s *Service) AssignTechnician(ctx context.Context, orderID, technicianID int) (models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndex(orderID)
	if idx < 0 {
		return models.WorkOrder{}, fmt.Errorf("work order #%d: %w", orderID, ErrNotFound)
	}
	tIdx := s.technicianIndex(technicianID)
	if tIdx < 0 {
		return models.WorkOrder{}, fmt.Errorf("technician #%d: %w", technicianID, ErrNotFound)
	}

	o := &s.data.WorkOrders[idx]
	previous := o.TechnicianID
	o.TechnicianID = technicianID
	o.TechnicianName = s.data.Technicians[tIdx].Name
	s.syncAvailability(technicianID)
	if previous != 0 && previous != technicianID {
		s.syncAvailability(previous)
	}
	return *o, s.commit(ctx, "work_order", "assign", orderID)
}

// CompleteWorkOrder closes the order, records the closing notes, appends
// the history entry and releases the bound technician.
func (s *Service) CompleteWorkOrder(ctx context.Context, id int, notes string) (models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndex(id)
	if idx < 0 {
		return models.WorkOrder{}, fmt.Errorf("work order #%d: %w", id, ErrNotFound)
	}
	return s.completeLocked(ctx, idx, notes)
}

// completeLocked is the single completion routine. Completing an already
// completed order is rejected so the ledger never receives a duplicate
// entry. Called with the lock held.
func (s *Service) completeLocked(ctx context.Context, idx int, notes string) (models.WorkOrder, error) {
	o := &s.data.WorkOrders[idx]
	if o.Status == models.StatusCompleted {
		return models.WorkOrder{}, fmt.Errorf("work order #%d already completed: %w", o.ID, ErrConflict)
	}

	now := time.Now()
	o.Status = models.StatusCompleted
	o.CompletedAt = &now
	o.Notes = strings.TrimSpace(notes)

	s.data.History = append(s.data.History, models.HistoryEntry{
		OrderID:       o.ID,
		EquipmentName: o.EquipmentName,
		Type:          o.Type,
		CompletedAt:   now,
		Technician:    o.TechnicianName,
		Notes:         o.Notes,
	})
	s.syncAvailability(o.TechnicianID)
	return *o, s.commit(ctx, "work_order", "complete", o.ID)
}

// DeleteWorkOrder removes the order. A bound technician is released first,
// whatever the order's state. History entries are never touched.
func (s *Service) DeleteWorkOrder(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndex(id)
	if idx < 0 {
		return fmt.Errorf("work order #%d: %w", id, ErrNotFound)
	}
	techID := s.data.WorkOrders[idx].TechnicianID
	s.data.WorkOrders = append(s.data.WorkOrders[:idx], s.data.WorkOrders[idx+1:]...)
	s.syncAvailability(techID)
	return s.commit(ctx, "work_order", "delete", id)
}

// ListWorkOrders returns all orders in insertion order.
func (s *Service) ListWorkOrders() []models.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WorkOrder{}, s.data.WorkOrders...)
}

// WorkOrdersByStatus returns the orders currently in the given state.
func (s *Service) WorkOrdersByStatus(status models.WorkOrderStatus) ([]models.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.Valid() {
		return nil, fmt.Errorf("state %q is not recognized: %w", status, ErrValidation)
	}
	out := []models.WorkOrder{}
	for _, o := range s.data.WorkOrders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// History returns the maintenance ledger in completion order.
func (s *Service) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.HistoryEntry{}, s.data.History...)
}

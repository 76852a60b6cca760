package models

import "time"

// WorkOrderStatus is the lifecycle state of a work order.
//
// Pending is the initial state. Any state can move to any other through the
// engine except Completed, which is only reachable through the completion
// routine so the history write and technician release always happen together.
type WorkOrderStatus string

const (
	StatusPending    WorkOrderStatus = "Pending"
	StatusInProgress WorkOrderStatus = "In Progress"
	StatusPaused     WorkOrderStatus = "Paused"
	StatusCompleted  WorkOrderStatus = "Completed"
	StatusCancelled  WorkOrderStatus = "Cancelled"
)

// Valid reports whether s is one of the five recognized states.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s closes the order for availability purposes.
func (s WorkOrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// MaintenanceType classifies the kind of maintenance work.
type MaintenanceType string

const (
	TypePreventive MaintenanceType = "Preventive"
	TypeCorrective MaintenanceType = "Corrective"
	TypePredictive MaintenanceType = "Predictive"
)

// Valid reports whether t is one of the recognized maintenance types.
func (t MaintenanceType) Valid() bool {
	switch t {
	case TypePreventive, TypeCorrective, TypePredictive:
		return true
	}
	return false
}

// WorkOrder represents one unit of maintenance work against a piece of
// equipment. EquipmentName is a snapshot taken at creation; it survives
// deletion of the equipment record. TechnicianID is the binding and
// TechnicianName the display snapshot; zero/empty means unassigned.
type WorkOrder struct {
	ID             int             `json:"id" bson:"id"`
	EquipmentID    int             `json:"equipment_id" bson:"equipment_id"`
	EquipmentName  string          `json:"equipment_name" bson:"equipment_name"`
	Description    string          `json:"description" bson:"description"`
	Type           MaintenanceType `json:"type" bson:"type"`
	Priority       Priority        `json:"priority" bson:"priority"`
	Status         WorkOrderStatus `json:"status" bson:"status"`
	TechnicianID   int             `json:"technician_id,omitempty" bson:"technician_id,omitempty"`
	TechnicianName string          `json:"technician_name,omitempty" bson:"technician_name,omitempty"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	StartedAt      *time.Time      `json:"started_at,omitempty" bson:"started_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Notes          string          `json:"notes" bson:"notes"`
}

// Assigned reports whether a technician is currently bound to the order.
func (o *WorkOrder) Assigned() bool {
	return o.TechnicianID != 0
}

// Open reports whether the order still occupies its technician.
func (o *WorkOrder) Open() bool {
	return !o.Status.Terminal()
}

package models

import "time"

// HistoryEntry is the permanent record written when a work order completes.
// Entries are append-only: exactly one per completion event, never mutated
// or removed, and they outlive the work order that produced them.
type HistoryEntry struct {
	OrderID       int             `json:"order_id" bson:"order_id"`
	EquipmentName string          `json:"equipment_name" bson:"equipment_name"`
	Type          MaintenanceType `json:"type" bson:"type"`
	CompletedAt   time.Time       `json:"completed_at" bson:"completed_at"`
	Technician    string          `json:"technician,omitempty" bson:"technician,omitempty"`
	Notes         string          `json:"notes" bson:"notes"`
}

package models

import "time"

// Priority ranks how urgent a record is for equipment, work orders and plans.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the recognized priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DefaultEquipmentStatus is assigned to newly registered equipment. The
// status field itself is free text and can be edited afterwards.
const DefaultEquipmentStatus = "Operational"

// Equipment represents a registered piece of industrial equipment.
type Equipment struct {
	ID           int       `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Location     string    `json:"location" bson:"location"`
	Description  string    `json:"description" bson:"description"`
	Brand        string    `json:"brand" bson:"brand"`
	Model        string    `json:"model" bson:"model"`
	SerialNumber string    `json:"serial_number" bson:"serial_number"`
	Priority     Priority  `json:"priority" bson:"priority"`
	Status       string    `json:"status" bson:"status"`
	RegisteredAt time.Time `json:"registered_at" bson:"registered_at"`
}

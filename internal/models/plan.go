package models

import "time"

// DefaultPlanStatus is assigned to newly created maintenance plans.
const DefaultPlanStatus = "Scheduled"

// MaintenancePlan is a scheduled maintenance entry for a target month.
// Plans have an independent lifecycle; they never interact with work orders
// beyond sharing equipment.
type MaintenancePlan struct {
	ID            int             `json:"id" bson:"id"`
	EquipmentID   int             `json:"equipment_id" bson:"equipment_id"`
	EquipmentName string          `json:"equipment_name" bson:"equipment_name"`
	Type          MaintenanceType `json:"type" bson:"type"`
	Description   string          `json:"description" bson:"description"`
	Month         int             `json:"month" bson:"month"` // 1-12
	Year          int             `json:"year" bson:"year"`
	Status        string          `json:"status" bson:"status"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
}

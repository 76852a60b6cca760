package models

// TechnicianStatus is the availability flag of a technician. It is derived
// from the work orders currently bound to them, never set directly.
type TechnicianStatus string

const (
	TechnicianAvailable TechnicianStatus = "Available"
	TechnicianBusy      TechnicianStatus = "Busy"
)

// Technician represents a maintenance technician.
type Technician struct {
	ID        int              `json:"id" bson:"id"`
	Name      string           `json:"name" bson:"name"`
	Specialty string           `json:"specialty" bson:"specialty"`
	Phone     string           `json:"phone" bson:"phone"`
	Status    TechnicianStatus `json:"status" bson:"status"`
}

package models

// Counters holds the per-collection id sequences. They are persisted with
// the dataset so identifiers are never reused after a deletion.
type Counters struct {
	Equipment   int `json:"equipment" bson:"equipment"`
	WorkOrders  int `json:"work_orders" bson:"work_orders"`
	Technicians int `json:"technicians" bson:"technicians"`
	Plans       int `json:"plans" bson:"plans"`
}

// Dataset is the whole persisted state: five collections plus the id
// counters, written in full on every mutation.
type Dataset struct {
	Equipment   []Equipment       `json:"equipment" bson:"equipment"`
	WorkOrders  []WorkOrder       `json:"work_orders" bson:"work_orders"`
	Technicians []Technician      `json:"technicians" bson:"technicians"`
	History     []HistoryEntry    `json:"history" bson:"history"`
	Plans       []MaintenancePlan `json:"plans" bson:"plans"`
	Counters    Counters          `json:"counters" bson:"counters"`
}

// NewDataset returns an empty dataset with non-nil collections so the wire
// document always carries all five arrays.
func NewDataset() *Dataset {
	return &Dataset{
		Equipment:   []Equipment{},
		WorkOrders:  []WorkOrder{},
		Technicians: []Technician{},
		History:     []HistoryEntry{},
		Plans:       []MaintenancePlan{},
	}
}

// Normalize repairs a freshly loaded dataset: nil slices become empty and
// counters are raised to at least the highest id present, which migrates
// documents written before counters existed.
func (d *Dataset) Normalize() {
	if d.Equipment == nil {
		d.Equipment = []Equipment{}
	}
	if d.WorkOrders == nil {
		d.WorkOrders = []WorkOrder{}
	}
	if d.Technicians == nil {
		d.Technicians = []Technician{}
	}
	if d.History == nil {
		d.History = []HistoryEntry{}
	}
	if d.Plans == nil {
		d.Plans = []MaintenancePlan{}
	}
	for _, e := range d.Equipment {
		if e.ID > d.Counters.Equipment {
			d.Counters.Equipment = e.ID
		}
	}
	for _, o := range d.WorkOrders {
		if o.ID > d.Counters.WorkOrders {
			d.Counters.WorkOrders = o.ID
		}
	}
	for _, t := range d.Technicians {
		if t.ID > d.Counters.Technicians {
			d.Counters.Technicians = t.ID
		}
	}
	for _, p := range d.Plans {
		if p.ID > d.Counters.Plans {
			d.Counters.Plans = p.ID
		}
	}
}

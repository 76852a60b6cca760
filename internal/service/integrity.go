package service

import "github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"

// Referential-integrity helpers shared by the registries. All of them are
// called with the service lock held, before the owning collection removes
// its record, so detachments and releases are observable by the time the
// operation returns.

func (s *Service) equipmentIndex(id int) int {
	for i := range s.data.Equipment {
		if s.data.Equipment[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) technicianIndex(id int) int {
	for i := range s.data.Technicians {
		if s.data.Technicians[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) orderIndex(id int) int {
	for i := range s.data.WorkOrders {
		if s.data.WorkOrders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) planIndex(id int) int {
	for i := range s.data.Plans {
		if s.data.Plans[i].ID == id {
			return i
		}
	}
	return -1
}

// detachTechnician clears the binding on every work order referencing the
// technician, regardless of the order's state. Order state, order count and
// history are untouched.
func (s *Service) detachTechnician(techID int) {
	for i := range s.data.WorkOrders {
		if s.data.WorkOrders[i].TechnicianID == techID {
			s.data.WorkOrders[i].TechnicianID = 0
			s.data.WorkOrders[i].TechnicianName = ""
		}
	}
}

// syncAvailability recomputes the availability flag of the technician:
// Busy if and only if at least one open (non-terminal) work order is bound
// to them. A zero or unknown id is a no-op, which covers orders whose
// technician was deleted.
func (s *Service) syncAvailability(techID int) {
	if techID == 0 {
		return
	}
	idx := s.technicianIndex(techID)
	if idx < 0 {
		return
	}
	status := models.TechnicianAvailable
	for i := range s.data.WorkOrders {
		o := &s.data.WorkOrders[i]
		if o.TechnicianID == techID && o.Open() {
			status = models.TechnicianBusy
			break
		}
	}
	s.data.Technicians[idx].Status = status
}

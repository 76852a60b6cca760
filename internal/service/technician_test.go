package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

func TestCreateTechnician(t *testing.T) {
	s, _ := newTestService(t)

	tech, err := s.CreateTechnician(context.Background(), TechnicianInput{
		Name:      "Ana Gomez",
		Specialty: "Hydraulics",
		Phone:     "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tech.ID)
	assert.Equal(t, models.TechnicianAvailable, tech.Status)
}

func TestCreateTechnicianRequiresName(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.CreateTechnician(context.Background(), TechnicianInput{Name: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Empty(t, s.ListTechnicians())
}

func TestDeleteTechnicianDetachesAllBoundOrders(t *testing.T) {
	s, _ := newTestService(t)
	eq := addEquipment(t, s, "Pump")
	tech := addTechnician(t, s, "Ana")

	// three orders bound, one of them completed
	var ids []int
	for i := 0; i < 3; i++ {
		o := addOrder(t, s, eq.ID)
		_, err := s.AssignTechnician(context.Background(), o.ID, tech.ID)
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	_, err := s.CompleteWorkOrder(context.Background(), ids[2], "done")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTechnician(context.Background(), tech.ID))
	assert.Empty(t, s.ListTechnicians())

	orders := s.ListWorkOrders()
	require.Len(t, orders, 3)
	for _, o := range orders {
		assert.False(t, o.Assigned(), "order #%d should be detached", o.ID)
		assert.Empty(t, o.TechnicianName)
	}
	// order states are untouched by the detachment
	assert.Equal(t, models.StatusPending, orders[0].Status)
	assert.Equal(t, models.StatusCompleted, orders[2].Status)
}

func TestDeleteTechnicianNotFound(t *testing.T) {
	s, _ := newTestService(t)
	err := s.DeleteTechnician(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

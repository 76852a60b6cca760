package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

func TestCreateEquipment(t *testing.T) {
	s, _ := newTestService(t)

	eq, err := s.CreateEquipment(context.Background(), EquipmentInput{
		Name:         "  Hydraulic Press ",
		Location:     "Bay 3",
		Brand:        "Acme",
		Model:        "HP-200",
		SerialNumber: "SN-001",
		Priority:     models.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, eq.ID)
	assert.Equal(t, "Hydraulic Press", eq.Name)
	assert.Equal(t, models.DefaultEquipmentStatus, eq.Status)
	assert.WithinDuration(t, time.Now(), eq.RegisteredAt, time.Minute)
}

func TestCreateEquipmentValidation(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.CreateEquipment(context.Background(), EquipmentInput{Name: "   ", Priority: models.PriorityLow})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = s.CreateEquipment(context.Background(), EquipmentInput{Name: "Pump", Priority: "Critical"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	assert.Empty(t, s.ListEquipment())
}

func TestUpdateEquipmentMergesBlankFields(t *testing.T) {
	s, _ := newTestService(t)
	eq := addEquipment(t, s, "Pump")

	got, err := s.UpdateEquipment(context.Background(), eq.ID, EquipmentUpdate{
		Location: "Bay 7",
		Status:   "Under repair",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pump", got.Name)
	assert.Equal(t, "Bay 7", got.Location)
	assert.Equal(t, "Under repair", got.Status)
	assert.Equal(t, models.PriorityMedium, got.Priority)
}

func TestUpdateEquipmentErrors(t *testing.T) {
	s, _ := newTestService(t)
	eq := addEquipment(t, s, "Pump")

	_, err := s.UpdateEquipment(context.Background(), 42, EquipmentUpdate{Name: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.UpdateEquipment(context.Background(), eq.ID, EquipmentUpdate{Priority: "Critical"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDeleteEquipment(t *testing.T) {
	s, _ := newTestService(t)
	eq := addEquipment(t, s, "Pump")

	require.NoError(t, s.DeleteEquipment(context.Background(), eq.ID))
	assert.Empty(t, s.ListEquipment())

	err := s.DeleteEquipment(context.Background(), eq.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFindEquipment(t *testing.T) {
	s, _ := newTestService(t)
	addEquipment(t, s, "Hydraulic Press")
	pump, err := s.CreateEquipment(context.Background(), EquipmentInput{
		Name:     "Vacuum Pump",
		Location: "Boiler Room",
		Priority: models.PriorityLow,
	})
	require.NoError(t, err)

	byName := s.FindEquipment("pum")
	require.Len(t, byName, 1)
	assert.Equal(t, pump.ID, byName[0].ID)

	byLocation := s.FindEquipment("BOILER")
	require.Len(t, byLocation, 1)
	assert.Equal(t, pump.ID, byLocation[0].ID)

	assert.Empty(t, s.FindEquipment("turbine"))
}

func TestFindEquipmentEmptyTermReturnsAllInOrder(t *testing.T) {
	s, _ := newTestService(t)
	names := []string{"Alpha", "Beta", "Gamma"}
	for _, n := range names {
		addEquipment(t, s, n)
	}

	all := s.FindEquipment("")
	require.Len(t, all, len(names))
	for i, eq := range all {
		assert.Equal(t, names[i], eq.Name)
	}
}

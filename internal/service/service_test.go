package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/events"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/store"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	s := New(st, opts...)
	require.NoError(t, s.Load(context.Background()))
	return s, st
}

func addEquipment(t *testing.T, s *Service, name string) models.Equipment {
	t.Helper()
	eq, err := s.CreateEquipment(context.Background(), EquipmentInput{
		Name:     name,
		Location: "Plant A",
		Priority: models.PriorityMedium,
	})
	require.NoError(t, err)
	return eq
}

func addTechnician(t *testing.T, s *Service, name string) models.Technician {
	t.Helper()
	tech, err := s.CreateTechnician(context.Background(), TechnicianInput{
		Name:      name,
		Specialty: "Electrical",
		Phone:     "555-0100",
	})
	require.NoError(t, err)
	return tech
}

func addOrder(t *testing.T, s *Service, equipmentID int) models.WorkOrder {
	t.Helper()
	o, err := s.CreateWorkOrder(context.Background(), WorkOrderInput{
		EquipmentID: equipmentID,
		Description: "inspect bearings",
		Type:        models.TypePreventive,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)
	return o
}

// recordingNotifier captures published events for assertions.
type recordingNotifier struct {
	events []events.Event
}

func (n *recordingNotifier) Publish(_ context.Context, e events.Event) error {
	n.events = append(n.events, e)
	return nil
}

func TestPersistenceFailureKeepsInMemoryMutation(t *testing.T) {
	s, st := newTestService(t)
	addEquipment(t, s, "Press")

	st.Fail(errors.New("disk full"))
	eq, err := s.CreateEquipment(context.Background(), EquipmentInput{
		Name:     "Lathe",
		Priority: models.PriorityLow,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPersistence))
	// the mutation stays applied in memory
	assert.Equal(t, 2, eq.ID)
	assert.Len(t, s.ListEquipment(), 2)

	// the stored snapshot still has only the first record
	st.Fail(nil)
	stored, loadErr := st.Load(context.Background())
	require.NoError(t, loadErr)
	assert.Len(t, stored.Equipment, 1)
}

func TestIDsNotReusedAfterDeletion(t *testing.T) {
	s, _ := newTestService(t)
	first := addEquipment(t, s, "Pump")
	second := addEquipment(t, s, "Fan")

	require.NoError(t, s.DeleteEquipment(context.Background(), second.ID))
	third := addEquipment(t, s, "Compressor")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 3, third.ID)
}

func TestLoadNormalizesCountersFromLegacyDocument(t *testing.T) {
	st := store.NewMemoryStore()
	legacy := models.NewDataset()
	legacy.Equipment = append(legacy.Equipment, models.Equipment{ID: 7, Name: "Boiler", Priority: models.PriorityHigh})
	// counters intentionally zero, as written by the pre-counter format
	require.NoError(t, st.Save(context.Background(), legacy))

	s := New(st)
	require.NoError(t, s.Load(context.Background()))

	eq := addEquipment(t, s, "Chiller")
	assert.Equal(t, 8, eq.ID)
}

func TestStats(t *testing.T) {
	s, _ := newTestService(t)
	eq := addEquipment(t, s, "Pump")
	o1 := addOrder(t, s, eq.ID)
	o2 := addOrder(t, s, eq.ID)
	addOrder(t, s, eq.ID)

	_, err := s.Transition(context.Background(), o1.ID, models.StatusInProgress)
	require.NoError(t, err)
	_, err = s.CompleteWorkOrder(context.Background(), o2.ID, "done")
	require.NoError(t, err)

	st := s.Stats()
	assert.Equal(t, 1, st.Equipment)
	assert.Equal(t, 3, st.WorkOrders)
	assert.Equal(t, 1, st.CompletedInTotal)
	assert.Equal(t, 1, st.OrdersPending)
	assert.Equal(t, 1, st.OrdersInProgress)
	assert.Equal(t, 1, st.OrdersCompleted)
}

func TestNotifierReceivesPersistedMutations(t *testing.T) {
	rec := &recordingNotifier{}
	s, _ := newTestService(t, WithNotifier(rec))

	eq := addEquipment(t, s, "Pump")
	require.NoError(t, s.DeleteEquipment(context.Background(), eq.ID))

	require.Len(t, rec.events, 2)
	assert.Equal(t, "equipment", rec.events[0].Entity)
	assert.Equal(t, "create", rec.events[0].Action)
	assert.Equal(t, eq.ID, rec.events[0].ID)
	assert.Equal(t, "delete", rec.events[1].Action)
}

func TestNotifierSkippedWhenSaveFails(t *testing.T) {
	rec := &recordingNotifier{}
	s, st := newTestService(t, WithNotifier(rec))

	st.Fail(errors.New("disk full"))
	_, err := s.CreateEquipment(context.Background(), EquipmentInput{Name: "Pump", Priority: models.PriorityLow})
	require.Error(t, err)
	assert.Empty(t, rec.events)
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/service"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/store"
)

func newMenuService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(store.NewMemoryStore())
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestMenuRegisterEquipmentAndExit(t *testing.T) {
	svc := newMenuService(t)
	input := strings.Join([]string{
		"1",          // register equipment
		"Pump-1",     // name
		"Bay 2",      // location
		"main pump",  // description
		"Acme",       // brand
		"HP-200",     // model
		"SN-001",     // serial
		"High",       // priority
		"0",          // exit
	}, "\n") + "\n"

	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader(input), &out)
	require.NoError(t, menu.Run(context.Background()))

	list := svc.ListEquipment()
	require.Len(t, list, 1)
	assert.Equal(t, "Pump-1", list[0].Name)
	assert.Contains(t, out.String(), "registered with ID 1")
}

func TestMenuRejectsInvalidPriority(t *testing.T) {
	svc := newMenuService(t)
	input := "1\nPump\nBay\n\n\n\n\nCritical\n0\n"

	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader(input), &out)
	require.NoError(t, menu.Run(context.Background()))

	assert.Empty(t, svc.ListEquipment())
	assert.Contains(t, out.String(), "invalid input")
}

func TestMenuExitsOnEOF(t *testing.T) {
	svc := newMenuService(t)
	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader(""), &out)
	require.NoError(t, menu.Run(context.Background()))
}

func TestMenuUnknownOption(t *testing.T) {
	svc := newMenuService(t)
	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader("99\n0\n"), &out)
	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "unknown option")
}

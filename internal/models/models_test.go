package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/dice"
)

func TestNewGameInfoSaveLoad(t *testing.T) {
	SaveDir = t.TempDir()

	info := &NewGameInfo{
		ID:            "abc",
		PlayerNames:   []string{"Ezra", "Mary"},
		Profession:    Carpenter,
		StartingMonth: time.April,
		StartingFunds: 800,
	}
	require.NoError(t, info.Save())

	loaded, err := LoadNewGame("abc")
	require.NoError(t, err)
	assert.Equal(t, info, loaded)

	sessions, err := ListSessions()
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, sessions)
}

func TestNewGameInfoValidate(t *testing.T) {
	assert.ErrorIs(t, (&NewGameInfo{}).Validate(), ErrNoPlayers)
	assert.NoError(t, (&NewGameInfo{PlayerNames: []string{"a"}}).Validate())
}

func TestInventoryRemoveClamps(t *testing.T) {
	inv := Inventory{Food: 10}
	assert.Equal(t, 10, inv.Remove(Food, 25))
	assert.Equal(t, 0, inv.Quantity(Food))
	assert.Equal(t, 0, inv.Remove(Ammo, 3))

	inv.Add(Ammo, 20)
	inv.Add(Ammo, -5)
	assert.Equal(t, 15, inv.Quantity(Ammo))
	assert.Equal(t, []ItemKind{Ammo}, inv.Kinds())
}

func TestVehicleReduceMileageClampsAtZero(t *testing.T) {
	v := NewVehicle()
	v.Mileage = 10
	v.ReduceMileage(17)
	assert.Equal(t, 0, v.Mileage)
}

func TestVehicleUpdate(t *testing.T) {
	v := NewVehicle()
	v.Reset(100)
	v.AddPerson(NewPerson(Farmer, "Ann", true))
	v.Inventory.Add(Food, 100)
	v.Inventory.Add(Oxen, 2)
	v.Status = Moving

	v.Update(Steady)
	assert.Equal(t, int(Steady), v.Mileage)
	assert.Equal(t, 97, v.Inventory.Quantity(Food))

	v.Inventory.Remove(Oxen, 2)
	v.Update(Steady)
	assert.Equal(t, Disabled, v.Status)
	assert.Equal(t, 0, v.Mileage)
}

func TestVehicleStarvationHurts(t *testing.T) {
	v := NewVehicle()
	p := NewPerson(Farmer, "Ann", true)
	v.AddPerson(p)
	v.Update(Steady)
	assert.Equal(t, MaxHealth-5, p.Health)
}

func TestVehicleTryKill(t *testing.T) {
	v := NewVehicle()
	a := NewPerson(Banker, "A", true)
	b := NewPerson(Banker, "B", false)
	v.AddPerson(a)
	v.AddPerson(b)

	killed := v.TryKill(&dice.Sequence{Ints: []int{1, 0}}, 4)
	assert.Equal(t, []*Person{b}, killed)
	assert.True(t, a.Alive())
	assert.Equal(t, []*Person{a}, v.Living())
}

func TestPersonLevels(t *testing.T) {
	p := NewPerson(Farmer, "Ann", false)
	assert.Equal(t, Good, p.Level())
	p.Damage(30)
	assert.Equal(t, Fair, p.Level())
	p.Damage(100)
	assert.Equal(t, Dead, p.Level())
	p.Heal(50)
	assert.False(t, p.Alive())
}

func TestLocationValidate(t *testing.T) {
	river := &Location{Name: "Kansas River", Category: RiverCrossing}
	assert.Error(t, river.Validate())
	river.River = FloatAndFord
	assert.NoError(t, river.Validate())
}

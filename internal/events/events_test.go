package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/dice"
	"github.com/tatianab/trail-game/internal/director"
	"github.com/tatianab/trail-game/internal/models"
)

func loadedVehicle() *models.Vehicle {
	v := models.NewVehicle()
	v.Reset(100)
	v.AddPerson(models.NewPerson(models.Farmer, "Ann", true))
	v.AddPerson(models.NewPerson(models.Farmer, "Ben", false))
	v.Inventory.Add(models.Oxen, 4)
	v.Inventory.Add(models.Food, 200)
	v.Mileage = 12
	return v
}

func TestRegistry_BuiltinCatalog(t *testing.T) {
	r, err := Registry()
	require.NoError(t, err)

	for _, name := range []string{VehicleFloods, VehicleWashOut} {
		d, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, director.ManualOnly, d.Mode)
		assert.Equal(t, director.RiverCross, d.Category)
	}
	for _, c := range []director.Category{director.Person, director.Vehicle, director.RiverCross, director.Weather, director.Wild} {
		assert.NotEmpty(t, r.Automatic(c), c.String())
	}
	for _, d := range r.Automatic(director.RiverCross) {
		assert.NotEqual(t, VehicleFloods, d.Name)
		assert.NotEqual(t, VehicleWashOut, d.Name)
	}
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := Parse([]byte("events:\n  - name: x\n    kind: meteor\n    category: wild\n"))
	assert.Error(t, err)
}

func TestParse_OnlyManualInCategory(t *testing.T) {
	_, err := Parse([]byte("events:\n  - name: x\n    kind: mileage\n    category: wild\n    mode: manual_only\n"))
	assert.ErrorIs(t, err, director.ErrNoEligibleEvents)
}

func TestMileageLoss(t *testing.T) {
	v := loadedVehicle()
	e := &MileageLoss{name: "oxen_wander_off", text: "ox wanders off", miles: 17, damage: 2}

	text, err := e.Execute(&director.Env{Rand: dice.Constant{}}, v)
	require.NoError(t, err)
	assert.Equal(t, "ox wanders off", text)
	assert.Equal(t, 0, v.Mileage)
	assert.Equal(t, models.MaxHealth-2, v.Passengers[0].Health)
}

func TestMileageLoss_WrongTarget(t *testing.T) {
	e := &MileageLoss{name: "fog"}
	_, err := e.Execute(&director.Env{Rand: dice.Constant{}}, &models.Location{Name: "Fort Hall"})
	assert.ErrorIs(t, err, director.ErrEntityMismatch)
}

func TestItemDestroyer_NothingLost(t *testing.T) {
	v := loadedVehicle()
	e := &ItemDestroyer{name: "tipped", intro: "vehicle has tipped over resulting in", killVerb: "crushed", killOneIn: 1, maxPercent: 50}

	text, err := e.Execute(&director.Env{Rand: dice.Constant{Flip: false}}, v)
	require.NoError(t, err)
	assert.Equal(t, "vehicle has tipped over resulting in no loss of items.\n", text)
	assert.Len(t, v.Living(), 2, "no passengers die when nothing was destroyed")
}

func TestItemDestroyer_LossCascadesToPassengers(t *testing.T) {
	v := loadedVehicle()
	e := &ItemDestroyer{name: "floods", intro: "vehicle floods resulting in", miles: 20, killVerb: "drowned", killOneIn: 2, maxPercent: 50}

	// Oxen: chosen, remove 1+1. Food: skipped. Kill rolls: Ann lives, Ben dies.
	src := &dice.Sequence{
		Bools: []bool{true, false},
		Ints:  []int{1, 1, 0},
	}
	text, err := e.Execute(&director.Env{Rand: src}, v)
	require.NoError(t, err)
	assert.Equal(t, "vehicle floods resulting in the loss of:\n2 oxen\nBen (drowned)\n", text)
	assert.Equal(t, 2, v.Inventory.Quantity(models.Oxen))
	assert.Equal(t, 200, v.Inventory.Quantity(models.Food))
	assert.Equal(t, 100, v.Inventory.Quantity(models.Cash))
	assert.Equal(t, 0, v.Mileage)
}

func TestInjury_OnPerson(t *testing.T) {
	p := models.NewPerson(models.Banker, "Ann", true)
	e := &Injury{name: "broken_arm", text: "{name} has broken their arm.", injury: models.BrokenArm, damage: 10}

	text, err := e.Execute(&director.Env{Rand: dice.Constant{}}, p)
	require.NoError(t, err)
	assert.Equal(t, "Ann has broken their arm.", text)
	assert.Equal(t, models.BrokenArm, p.Injury)
	assert.Equal(t, 90, p.Health)
}

func TestInjury_OnVehiclePicksPassenger(t *testing.T) {
	v := loadedVehicle()
	e := &Injury{name: "dysentery", text: "{name} has dysentery.", injury: models.Dysentery, infected: true}

	text, err := e.Execute(&director.Env{Rand: &dice.Sequence{Ints: []int{1}}}, v)
	require.NoError(t, err)
	assert.Equal(t, "Ben has dysentery.", text)
	assert.True(t, v.Passengers[1].Infected)
}

func TestDerelict_Flags(t *testing.T) {
	cases := []struct {
		name       string
		food       bool
		disease    bool
		wantFood   int
		wantSick   bool
		wantSuffix string
	}{
		{name: "food only", food: true, wantFood: 225, wantSuffix: "you gather 25 pounds of food.\n"},
		{name: "disease only", disease: true, wantFood: 200, wantSick: true, wantSuffix: "Ann has caught dysentery.\n"},
		{name: "empty", wantFood: 200, wantSuffix: "there is nothing of use.\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := loadedVehicle()
			e := &Derelict{name: "abandoned", text: "you find a vehicle.", food: 50, containsFood: tc.food, containsDisease: tc.disease}

			text, err := e.Execute(&director.Env{Rand: dice.Constant{Int: 0}}, v)
			require.NoError(t, err)
			assert.Equal(t, "you find a vehicle.\n"+tc.wantSuffix, text)
			assert.Equal(t, tc.wantFood, v.Inventory.Quantity(models.Food))
			assert.Equal(t, tc.wantSick, v.Passengers[0].Infected)
		})
	}
}

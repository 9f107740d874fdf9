package models

import "github.com/tatianab/trail-game/internal/dice"

// VehicleStatus is whether the wagon is rolling.
type VehicleStatus int

const (
	Stopped VehicleStatus = iota
	Moving
	Disabled
)

func (s VehicleStatus) String() string {
	switch s {
	case Moving:
		return "moving"
	case Disabled:
		return "disabled"
	}
	return "stopped"
}

// Pace is the travel pace in miles per day.
type Pace int

const (
	Paused    Pace = 0
	Steady    Pace = 12
	Strenuous Pace = 16
	Grueling  Pace = 20
)

func (p Pace) String() string {
	switch p {
	case Steady:
		return "steady"
	case Strenuous:
		return "strenuous"
	case Grueling:
		return "grueling"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Ration is the pounds of food eaten per person per day.
type Ration int

const (
	BareBones Ration = 1
	Meager    Ration = 2
	Filling   Ration = 3
)

func (r Ration) String() string {
	switch r {
	case Filling:
		return "filling"
	case Meager:
		return "meager"
	case BareBones:
		return "bare bones"
	}
	return "unknown"
}

// Vehicle is the wagon carrying the party and its supplies.
type Vehicle struct {
	Inventory  Inventory
	Passengers []*Person
	Status     VehicleStatus
	Ration     Ration

	// Mileage is how far the vehicle can go today. Events lower it.
	Mileage int
	// DistanceTraveled is the total miles covered since leaving.
	DistanceTraveled int
}

// NewVehicle returns an empty, stopped vehicle.
func NewVehicle() *Vehicle {
	return &Vehicle{
		Inventory: Inventory{},
		Ration:    Filling,
	}
}

func (v *Vehicle) EntityKind() EntityKind { return KindVehicle }
func (v *Vehicle) EntityName() string     { return "vehicle" }

// Reset empties the vehicle and gives it funds in cash.
func (v *Vehicle) Reset(funds int) {
	v.Inventory.Clear()
	v.Inventory[Cash] = funds
	v.Passengers = nil
	v.Status = Stopped
	v.Ration = Filling
	v.Mileage = 0
	v.DistanceTraveled = 0
}

// AddPerson puts p in the passenger list.
func (v *Vehicle) AddPerson(p *Person) {
	v.Passengers = append(v.Passengers, p)
}

// Leader returns the party leader, or nil.
func (v *Vehicle) Leader() *Person {
	for _, p := range v.Passengers {
		if p.Leader {
			return p
		}
	}
	return nil
}

// Living returns the passengers that are still alive.
func (v *Vehicle) Living() []*Person {
	var alive []*Person
	for _, p := range v.Passengers {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}

// ReduceMileage lowers today's mileage by n, never below zero.
func (v *Vehicle) ReduceMileage(n int) {
	v.Mileage -= n
	if v.Mileage < 0 {
		v.Mileage = 0
	}
}

// PassengerHealth is the average health band of the living passengers.
func (v *Vehicle) PassengerHealth() HealthLevel {
	alive := v.Living()
	if len(alive) == 0 {
		return Dead
	}
	total := 0
	for _, p := range alive {
		total += p.Health
	}
	avg := &Person{Health: total / len(alive)}
	return avg.Level()
}

// TryKill gives every living passenger a one in oneIn chance of dying and
// returns the people who died.
func (v *Vehicle) TryKill(r dice.Source, oneIn int) []*Person {
	var killed []*Person
	for _, p := range v.Living() {
		if dice.OneIn(r, oneIn) {
			p.Kill()
			killed = append(killed, p)
		}
	}
	return killed
}

// Update recomputes today's mileage from pace and feeds the party. It does
// not move the vehicle; distance is accumulated separately at day end.
func (v *Vehicle) Update(pace Pace) {
	alive := v.Living()
	needed := int(v.Ration) * len(alive)
	eaten := v.Inventory.Remove(Food, needed)
	starving := eaten < needed

	for _, p := range alive {
		switch {
		case starving:
			p.Damage(5)
		case p.Infected:
			p.Damage(3)
		case p.Injury != NoInjury:
			p.Damage(1)
		case v.Ration == Filling && pace != Grueling:
			p.Heal(1)
		}
		if pace == Grueling {
			p.Damage(1)
		}
	}

	if v.Status != Moving {
		v.Mileage = 0
		return
	}
	if v.Inventory.Quantity(Oxen) == 0 {
		v.Status = Disabled
		v.Mileage = 0
		return
	}
	v.Mileage = int(pace)
}

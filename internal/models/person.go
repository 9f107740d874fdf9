package models

// HealthLevel is the coarse health band shown to the player.
type HealthLevel int

const (
	Dead HealthLevel = iota
	VeryPoor
	Poor
	Fair
	Good
)

func (h HealthLevel) String() string {
	switch h {
	case Good:
		return "good"
	case Fair:
		return "fair"
	case Poor:
		return "poor"
	case VeryPoor:
		return "very poor"
	}
	return "dead"
}

// MaxHealth is the health value of a fully healthy person.
const MaxHealth = 100

// Injury is a named ailment a person is suffering from.
type Injury string

const (
	NoInjury  Injury = ""
	BrokenArm Injury = "broken arm"
	BrokenLeg Injury = "broken leg"
	SnakeBite Injury = "snakebite"
	Exhausted Injury = "exhaustion"
	Dysentery Injury = "dysentery"
	Cholera   Injury = "cholera"
	Typhoid   Injury = "typhoid"
	Measles   Injury = "measles"
	Fever     Injury = "fever"
)

// Person is one member of the traveling party.
type Person struct {
	Name       string     `yaml:"name"`
	Profession Profession `yaml:"profession"`
	Leader     bool       `yaml:"leader"`
	Health     int        `yaml:"health"`
	Injury     Injury     `yaml:"injury,omitempty"`
	Infected   bool       `yaml:"infected,omitempty"`
}

// NewPerson returns a healthy party member.
func NewPerson(profession Profession, name string, leader bool) *Person {
	return &Person{
		Name:       name,
		Profession: profession,
		Leader:     leader,
		Health:     MaxHealth,
	}
}

func (p *Person) EntityKind() EntityKind { return KindPerson }
func (p *Person) EntityName() string     { return p.Name }

// Alive reports whether the person still has any health left.
func (p *Person) Alive() bool { return p.Health > 0 }

// Level maps the numeric health onto a HealthLevel band.
func (p *Person) Level() HealthLevel {
	switch {
	case p.Health <= 0:
		return Dead
	case p.Health < 25:
		return VeryPoor
	case p.Health < 50:
		return Poor
	case p.Health < 75:
		return Fair
	}
	return Good
}

// Damage lowers health by n, never below zero.
func (p *Person) Damage(n int) {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal raises health by n up to MaxHealth. The dead stay dead.
func (p *Person) Heal(n int) {
	if !p.Alive() {
		return
	}
	p.Health += n
	if p.Health > MaxHealth {
		p.Health = MaxHealth
	}
}

// Kill sets health to zero.
func (p *Person) Kill() { p.Health = 0 }

// Injure records an injury and, for diseases, the infection flag.
func (p *Person) Injure(injury Injury, infected bool) {
	p.Injury = injury
	if infected {
		p.Infected = true
	}
}

// Recover clears any injury or infection.
func (p *Person) Recover() {
	p.Injury = NoInjury
	p.Infected = false
}

package models

// EntityKind identifies the concrete type behind an Entity.
type EntityKind int

const (
	KindVehicle EntityKind = iota + 1
	KindPerson
	KindLocation
)

func (k EntityKind) String() string {
	switch k {
	case KindVehicle:
		return "vehicle"
	case KindPerson:
		return "person"
	case KindLocation:
		return "location"
	}
	return "unknown"
}

// Entity is anything the event director can target. Entities are shared by
// reference; mutations are visible to the next render.
type Entity interface {
	EntityKind() EntityKind
	EntityName() string
}

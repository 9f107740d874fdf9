package window

// Tag identifies a kind of window. The set is closed; every tag the game
// pushes must have a factory registered with the Manager.
type Tag int

const (
	Travel Tag = iota + 1
	ForkInRoad
	Hunt
	Landmark
	NewGame
	RandomEvent
	RiverCrossing
	Settlement
	Store
	Trade
	GameOver
)

var tagNames = map[Tag]string{
	Travel:        "Travel",
	ForkInRoad:    "ForkInRoad",
	Hunt:          "Hunt",
	Landmark:      "Landmark",
	NewGame:       "NewGame",
	RandomEvent:   "RandomEvent",
	RiverCrossing: "RiverCrossing",
	Settlement:    "Settlement",
	Store:         "Store",
	Trade:         "Trade",
	GameOver:      "GameOver",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "Unknown"
}

// Tags lists every window kind.
func Tags() []Tag {
	return []Tag{Travel, ForkInRoad, Hunt, Landmark, NewGame, RandomEvent, RiverCrossing, Settlement, Store, Trade, GameOver}
}

// FormTag names a form within one window kind.
type FormTag string

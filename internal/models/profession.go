package models

// Profession is the occupation chosen for the party leader.
type Profession string

const (
	Banker    Profession = "banker"
	Carpenter Profession = "carpenter"
	Farmer    Profession = "farmer"
)

// ProfessionInfo is the content row for a profession: its menu text, the
// money it starts with and the multiplier applied to the final score.
type ProfessionInfo struct {
	Profession  Profession
	Description string
	Funds       int
	Multiplier  int
}

// Professions is the profession table in menu order.
var Professions = []ProfessionInfo{
	{Profession: Banker, Description: "Be a banker from Boston", Funds: 1600, Multiplier: 1},
	{Profession: Carpenter, Description: "Be a carpenter from Ohio", Funds: 800, Multiplier: 2},
	{Profession: Farmer, Description: "Be a farmer from Illinois", Funds: 400, Multiplier: 3},
}

// LookupProfession returns the table row for p.
func LookupProfession(p Profession) (ProfessionInfo, bool) {
	for _, info := range Professions {
		if info.Profession == p {
			return info, true
		}
	}
	return ProfessionInfo{}, false
}

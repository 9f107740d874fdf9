package game

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
	"github.com/tatianab/trail-game/internal/window"
)

// New game forms.
const (
	SelectProfession window.FormTag = "SelectProfession"
	InputNames       window.FormTag = "InputNames"
	SelectMonth      window.FormTag = "SelectMonth"
	ConfirmParty     window.FormTag = "ConfirmParty"
)

// MaxPartySize is the leader plus three companions.
const MaxPartySize = 4

var startingMonths = []time.Month{time.March, time.April, time.May, time.June, time.July}

// NewGameData is the shared context of the new game window. It collects
// the bundle handed to the engine.
type NewGameData struct {
	Eng  *engine.Engine
	Info *models.NewGameInfo
	Save bool
}

func newGameWindow(eng *engine.Engine, save bool) window.Factory {
	return func() window.Spec {
		return window.Spec{
			Data: &NewGameData{Eng: eng, Info: &models.NewGameInfo{}, Save: save},
			Forms: map[window.FormTag]window.FormFunc{
				SelectProfession: newSelectProfession,
				InputNames:       newInputNames,
				SelectMonth:      newSelectMonth,
				ConfirmParty:     newConfirmParty,
			},
			Initial: SelectProfession,
		}
	}
}

type selectProfession struct {
	window.Base[NewGameData]
}

func newSelectProfession(w *window.Window) window.Form {
	return &selectProfession{Base: window.Bind[NewGameData](w)}
}

func (f *selectProfession) OnPostCreate() error {
	*f.Data.Info = models.NewGameInfo{}
	return nil
}

func (f *selectProfession) Render() string {
	labels := make([]string, len(models.Professions))
	for i, p := range models.Professions {
		labels[i] = p.Description
	}
	return menu("Many kinds of people made the trip west. You may:", labels)
}

func (f *selectProfession) OnInput(line string) error {
	c := choice(line, len(models.Professions))
	if c == 0 {
		return nil
	}
	p := models.Professions[c-1]
	f.Data.Info.Profession = p.Profession
	f.Data.Info.StartingFunds = p.Funds
	return f.SetForm(InputNames)
}

type inputNames struct {
	window.Base[NewGameData]
}

func newInputNames(w *window.Window) window.Form {
	return &inputNames{Base: window.Bind[NewGameData](w)}
}

func (f *inputNames) Render() string {
	names := f.Data.Info.PlayerNames
	if len(names) == 0 {
		return "What is the first name of the wagon leader?"
	}
	var b strings.Builder
	b.WriteString("Your party:\n")
	for i, n := range names {
		numbers.Fprintf(&b, "  %d. %s\n", i+1, n)
	}
	b.WriteString("\nWhat is the first name of the next member of your party? (ENTER when done)")
	return b.String()
}

func (f *inputNames) OnInput(line string) error {
	name := strings.TrimSpace(line)
	info := f.Data.Info
	if name == "" {
		if len(info.PlayerNames) == 0 {
			return nil
		}
		return f.SetForm(SelectMonth)
	}
	info.PlayerNames = append(info.PlayerNames, name)
	if len(info.PlayerNames) == MaxPartySize {
		return f.SetForm(SelectMonth)
	}
	return nil
}

type selectMonth struct {
	window.Base[NewGameData]
}

func newSelectMonth(w *window.Window) window.Form {
	return &selectMonth{Base: window.Bind[NewGameData](w)}
}

func (f *selectMonth) Render() string {
	labels := make([]string, len(startingMonths))
	for i, m := range startingMonths {
		labels[i] = m.String()
	}
	return menu("It is 1848. Your jumping off place is Independence, Missouri. You must decide which month to leave.", labels)
}

func (f *selectMonth) OnInput(line string) error {
	c := choice(line, len(startingMonths))
	if c == 0 {
		return nil
	}
	f.Data.Info.StartingMonth = startingMonths[c-1]
	return f.SetForm(ConfirmParty)
}

type confirmParty struct {
	window.Base[NewGameData]
}

func newConfirmParty(w *window.Window) window.Form {
	return &confirmParty{Base: window.Bind[NewGameData](w)}
}

func (f *confirmParty) Render() string {
	info := f.Data.Info
	var b strings.Builder
	b.WriteString("Profession: " + string(info.Profession) + "\n")
	b.WriteString("Party: " + strings.Join(info.PlayerNames, ", ") + "\n")
	b.WriteString("Leaving in: " + info.StartingMonth.String() + "\n")
	b.WriteString("Money: " + dollars(info.StartingFunds) + "\n\n")
	b.WriteString("Is this correct? Y/N")
	return b.String()
}

func (f *confirmParty) OnInput(line string) error {
	switch window.Normalize(line) {
	case "Y", "YES":
		return f.start()
	case "N", "NO":
		return f.SetForm(SelectProfession)
	}
	return nil
}

// start hands the bundle to the engine, replaces this window with the
// travel window and opens the store on top of it for the first purchases.
func (f *confirmParty) start() error {
	eng := f.Data.Eng
	info := f.Data.Info
	info.ID = uuid.NewString()
	if err := eng.StartGame(info); err != nil {
		return err
	}
	if f.Data.Save {
		if err := info.Save(); err != nil {
			return err
		}
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := eng.Windows.Push(window.Travel); err != nil {
		return err
	}
	return eng.Windows.Push(window.Store)
}

package models

import (
	"errors"
	"time"
)

// ErrNoPlayers is returned when a new game is started without anyone in
// the party.
var ErrNoPlayers = errors.New("new game has no player names")

// NewGameInfo is the bundle collected by the new game screens and consumed
// once when the game starts.
type NewGameInfo struct {
	ID            string     `yaml:"id"`
	PlayerNames   []string   `yaml:"player_names"`
	Profession    Profession `yaml:"profession"`
	StartingMonth time.Month `yaml:"starting_month"`
	StartingFunds int        `yaml:"starting_funds"`
}

// Validate checks the bundle can start a game.
func (n *NewGameInfo) Validate() error {
	if len(n.PlayerNames) == 0 {
		return ErrNoPlayers
	}
	return nil
}

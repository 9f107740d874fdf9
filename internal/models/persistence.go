package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveDir is where new-game bundles and journals are written, one
// directory per session id.
var SaveDir = ".saves"

// Save writes the new-game bundle to SaveDir/<id>/newgame.yaml.
func (n *NewGameInfo) Save() error {
	dir := filepath.Join(SaveDir, n.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(n)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "newgame.yaml"), data, 0644)
}

// Save writes the journal next to the session's new-game bundle.
func (j *Journal) Save(id string) error {
	dir := filepath.Join(SaveDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(j)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "journal.yaml"), data, 0644)
}

// LoadNewGame reads a previously saved bundle.
func LoadNewGame(id string) (*NewGameInfo, error) {
	data, err := os.ReadFile(filepath.Join(SaveDir, id, "newgame.yaml"))
	if err != nil {
		return nil, err
	}
	var info NewGameInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListSessions returns the ids of every saved bundle.
func ListSessions() ([]string, error) {
	if _, err := os.Stat(SaveDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(SaveDir)
	if err != nil {
		return nil, err
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() {
			// newgame.yaml marks a valid session
			path := filepath.Join(SaveDir, entry.Name(), "newgame.yaml")
			if _, err := os.Stat(path); err == nil {
				sessions = append(sessions, entry.Name())
			}
		}
	}
	return sessions, nil
}

package models

// JournalEntry is one thing that happened on the trail.
type JournalEntry struct {
	Date string `yaml:"date"`
	Text string `yaml:"text"`
}

// Journal is the running log of events for a single game.
type Journal struct {
	Entries []JournalEntry `yaml:"entries"`
}

// Add appends an entry.
func (j *Journal) Add(date, text string) {
	j.Entries = append(j.Entries, JournalEntry{Date: date, Text: text})
}

// Tail returns up to the last n entries.
func (j *Journal) Tail(n int) []JournalEntry {
	if n >= len(j.Entries) {
		return j.Entries
	}
	return j.Entries[len(j.Entries)-n:]
}

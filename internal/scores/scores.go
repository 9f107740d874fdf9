// Package scores keeps the table of finished games in a SQLite file.
package scores

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
)

// Entry is one row of the score table.
type Entry struct {
	ID         string
	RecordedAt time.Time
	Leader     string
	Profession models.Profession
	Win        bool
	Reason     string
	Points     int
	Days       int
	Survivors  int
	Location   string
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the score database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty scores db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, now: time.Now}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS scores (
			id TEXT PRIMARY KEY,
			recorded_at TEXT NOT NULL,
			leader TEXT NOT NULL,
			profession TEXT NOT NULL,
			win INTEGER NOT NULL,
			reason TEXT NOT NULL,
			points INTEGER NOT NULL,
			days INTEGER NOT NULL,
			survivors INTEGER NOT NULL,
			location TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS scores_points ON scores(points DESC);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores r under id, replacing an earlier result for the same
// game. An empty id gets a fresh one. It returns the id used.
func (s *Store) Record(ctx context.Context, id string, r engine.Result) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	win := 0
	if r.Win {
		win = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scores
			(id, recorded_at, leader, profession, win, reason, points, days, survivors, location)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.now().UTC().Format(time.RFC3339Nano), r.Leader, string(r.Profession),
		win, r.Reason, r.Points, r.Days, r.Survivors, r.Location,
	)
	if err != nil {
		return "", fmt.Errorf("record score: %w", err)
	}
	return id, nil
}

// Top returns the n best games, highest points first. Ties go to the
// earlier game.
func (s *Store) Top(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, recorded_at, leader, profession, win, reason, points, days, survivors, location
			FROM scores ORDER BY points DESC, recorded_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e          Entry
			recorded   string
			profession string
			win        int
		)
		if err := rows.Scan(&e.ID, &recorded, &e.Leader, &profession, &win,
			&e.Reason, &e.Points, &e.Days, &e.Survivors, &e.Location); err != nil {
			return nil, err
		}
		if e.RecordedAt, err = time.Parse(time.RFC3339Nano, recorded); err != nil {
			return nil, err
		}
		e.Profession = models.Profession(profession)
		e.Win = win == 1
		out = append(out, e)
	}
	return out, rows.Err()
}

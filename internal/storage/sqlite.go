// Package storage provides SQLite-based persistence for finished careers,
// race results, and mid-career saves. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// CareerEntry is one finished career record.
type CareerEntry struct {
	ID         int64
	ScenarioID string
	HorseName  string
	BreedID    string
	Grade      string
	RacesRun   int
	RacesWon   int
	Speed      int
	Stamina    int
	Power      int
	CreatedAt  time.Time
}

// RaceEntry is one race result within a career.
type RaceEntry struct {
	ID        int64
	CareerID  int64
	RaceID    string
	RaceName  string
	Rank      int
	FieldSize int
	TimeSecs  float64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS careers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			horse_name TEXT NOT NULL,
			breed_id TEXT NOT NULL,
			grade TEXT NOT NULL,
			races_run INTEGER NOT NULL DEFAULT 0,
			races_won INTEGER NOT NULL DEFAULT 0,
			speed INTEGER NOT NULL,
			stamina INTEGER NOT NULL,
			power INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_careers_scenario ON careers(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_careers_top ON careers(scenario_id, races_won DESC);

		CREATE TABLE IF NOT EXISTS race_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			career_id INTEGER NOT NULL,
			race_id TEXT NOT NULL,
			race_name TEXT NOT NULL,
			rank INTEGER NOT NULL,
			field_size INTEGER NOT NULL,
			time_secs REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (career_id) REFERENCES careers(id)
		);
		CREATE INDEX IF NOT EXISTS idx_race_results_career ON race_results(career_id);

		CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			snapshot BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_saves_scenario ON saves(scenario_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCareer records a finished career. Returns the inserted ID so race
// results can reference it.
func (s *Store) SaveCareer(e CareerEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO careers
		 (scenario_id, horse_name, breed_id, grade, races_run, races_won, speed, stamina, power)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ScenarioID, e.HorseName, e.BreedID, e.Grade,
		e.RacesRun, e.RacesWon, e.Speed, e.Stamina, e.Power,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save career: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveRaceResult records one race placing under a career.
func (s *Store) SaveRaceResult(e RaceEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO race_results
		 (career_id, race_id, race_name, rank, field_size, time_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.CareerID, e.RaceID, e.RaceName, e.Rank, e.FieldSize, e.TimeSecs,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save race result: %w", err)
	}
	return nil
}

// TopCareers retrieves the best careers for a scenario, ordered by wins
// then stat total.
func (s *Store) TopCareers(scenarioID string, limit int) ([]CareerEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scenario_id, horse_name, breed_id, grade,
		        races_run, races_won, speed, stamina, power, created_at
		 FROM careers
		 WHERE scenario_id = ?
		 ORDER BY races_won DESC, speed + stamina + power DESC
		 LIMIT ?`,
		scenarioID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query careers: %w", err)
	}
	defer rows.Close()

	return scanCareers(rows)
}

// RecentCareers retrieves the most recently finished careers across all
// scenarios.
func (s *Store) RecentCareers(limit int) ([]CareerEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario_id, horse_name, breed_id, grade,
		        races_run, races_won, speed, stamina, power, created_at
		 FROM careers
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query careers: %w", err)
	}
	defer rows.Close()

	return scanCareers(rows)
}

func scanCareers(rows *sql.Rows) ([]CareerEntry, error) {
	var entries []CareerEntry
	for rows.Next() {
		var e CareerEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.ScenarioID, &e.HorseName, &e.BreedID, &e.Grade,
			&e.RacesRun, &e.RacesWon, &e.Speed, &e.Stamina, &e.Power, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RaceResults retrieves the race placings of one career, oldest first.
func (s *Store) RaceResults(careerID int64) ([]RaceEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, career_id, race_id, race_name, rank, field_size, time_secs, created_at
		 FROM race_results
		 WHERE career_id = ?
		 ORDER BY id ASC`,
		careerID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query race results: %w", err)
	}
	defer rows.Close()

	var entries []RaceEntry
	for rows.Next() {
		var e RaceEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.CareerID, &e.RaceID, &e.RaceName,
			&e.Rank, &e.FieldSize, &e.TimeSecs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestGrade returns the best grade achieved for a scenario, or empty if no
// careers are recorded. Grade letters order S > A > B > C > D.
func (s *Store) BestGrade(scenarioID string) (string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT grade FROM careers WHERE scenario_id = ?",
		scenarioID,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query grades: %w", err)
	}
	defer rows.Close()

	order := map[string]int{"S": 5, "A": 4, "B": 3, "C": 2, "D": 1}
	best := ""
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return "", fmt.Errorf("storage: cannot scan grade: %w", err)
		}
		if order[g] > order[best] {
			best = g
		}
	}
	return best, rows.Err()
}

// PutSave stores a mid-career snapshot for a scenario, replacing any
// previous save for it.
func (s *Store) PutSave(scenarioID string, snapshot []byte) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE scenario_id = ?", scenarioID); err != nil {
		return fmt.Errorf("storage: cannot clear old save: %w", err)
	}
	_, err := s.db.Exec(
		"INSERT INTO saves (scenario_id, snapshot) VALUES (?, ?)",
		scenarioID, snapshot,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot store save: %w", err)
	}
	return nil
}

// LatestSave retrieves the stored snapshot for a scenario.
// Returns nil with no error when there is no save.
func (s *Store) LatestSave(scenarioID string) ([]byte, error) {
	var snapshot []byte
	err := s.db.QueryRow(
		`SELECT snapshot FROM saves
		 WHERE scenario_id = ?
		 ORDER BY created_at DESC LIMIT 1`,
		scenarioID,
	).Scan(&snapshot)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save: %w", err)
	}
	return snapshot, nil
}

// DeleteSave removes the stored snapshot for a scenario.
func (s *Store) DeleteSave(scenarioID string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE scenario_id = ?", scenarioID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

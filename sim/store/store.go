// Package store persists finished simulation runs in SQLite: one row per run
// plus its ordered layer configuration, so datasets of runs can be queried
// later for calibration or model training.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/shield-sim/shield-sim/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS simulations (
	id               TEXT PRIMARY KEY,
	created_at       TEXT NOT NULL,
	energy_mev       REAL NOT NULL,
	photons          INTEGER NOT NULL,
	seed             INTEGER NOT NULL,
	transmission     REAL,
	buildup_factor   REAL,
	dose_transmitted REAL,
	dose_absorbed    REAL,
	uncertainty      REAL,
	status           TEXT NOT NULL DEFAULT 'COMPLETED'
);

CREATE TABLE IF NOT EXISTS simulation_layers (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	simulation_id    TEXT NOT NULL,
	order_index      INTEGER NOT NULL,
	material         TEXT NOT NULL,
	thickness_cm     REAL NOT NULL,
	mu_total         REAL NOT NULL,
	mu_compton       REAL NOT NULL,
	mu_photoelectric REAL NOT NULL,
	density          REAL NOT NULL,
	FOREIGN KEY (simulation_id) REFERENCES simulations(id)
);
`

// RunRecord is one persisted simulation run.
type RunRecord struct {
	ID        string
	CreatedAt time.Time
	EnergyMeV float64
	Photons   int
	Seed      int64
	Status    string
	Result    sim.Result
	Layers    []sim.MaterialLayer
}

// Store manages simulation runs in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a finished run and its layers atomically, returning the
// new run's ID.
func (s *Store) SaveRun(energyMeV float64, seed int64, layers []sim.MaterialLayer, res *sim.Result) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO simulations (id, created_at, energy_mev, photons, seed,
		 transmission, buildup_factor, dose_transmitted, dose_absorbed, uncertainty, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, now.Format(time.RFC3339Nano), energyMeV, res.TotalPhotons, seed,
		res.TransmissionFactor, res.BuildupFactor, res.DoseTransmitted, res.DoseAbsorbed,
		res.Uncertainty, "COMPLETED",
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for i, l := range layers {
		_, err = tx.Exec(
			`INSERT INTO simulation_layers (simulation_id, order_index, material,
			 thickness_cm, mu_total, mu_compton, mu_photoelectric, density)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, l.Name, l.ThicknessCm, l.MuTotal, l.MuCompton, l.MuPhotoelectric, l.Density,
		)
		if err != nil {
			return "", fmt.Errorf("insert layer %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// GetRun retrieves a run and its ordered layers by ID.
func (s *Store) GetRun(id string) (RunRecord, error) {
	var rec RunRecord
	var createdStr string

	err := s.db.QueryRow(
		`SELECT id, created_at, energy_mev, photons, seed,
		 transmission, buildup_factor, dose_transmitted, dose_absorbed, uncertainty, status
		 FROM simulations WHERE id = ?`, id,
	).Scan(&rec.ID, &createdStr, &rec.EnergyMeV, &rec.Photons, &rec.Seed,
		&rec.Result.TransmissionFactor, &rec.Result.BuildupFactor,
		&rec.Result.DoseTransmitted, &rec.Result.DoseAbsorbed,
		&rec.Result.Uncertainty, &rec.Status)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	rec.Result.TotalPhotons = rec.Photons

	rows, err := s.db.Query(
		`SELECT material, thickness_cm, mu_total, mu_compton, mu_photoelectric, density
		 FROM simulation_layers WHERE simulation_id = ? ORDER BY order_index`, id,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get layers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l sim.MaterialLayer
		if err := rows.Scan(&l.Name, &l.ThicknessCm, &l.MuTotal, &l.MuCompton, &l.MuPhotoelectric, &l.Density); err != nil {
			return RunRecord{}, fmt.Errorf("scan layer: %w", err)
		}
		rec.Layers = append(rec.Layers, l)
	}
	return rec, rows.Err()
}

// ListRuns returns the most recent runs, without their layer details.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, energy_mev, photons, seed,
		 transmission, buildup_factor, dose_transmitted, dose_absorbed, uncertainty, status
		 FROM simulations ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdStr string
		if err := rows.Scan(&rec.ID, &createdStr, &rec.EnergyMeV, &rec.Photons, &rec.Seed,
			&rec.Result.TransmissionFactor, &rec.Result.BuildupFactor,
			&rec.Result.DoseTransmitted, &rec.Result.DoseAbsorbed,
			&rec.Result.Uncertainty, &rec.Status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		rec.Result.TotalPhotons = rec.Photons
		records = append(records, rec)
	}
	return records, rows.Err()
}

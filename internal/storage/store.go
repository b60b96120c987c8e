// Package storage persists computed trajectories as runs on disk, one
// directory per run with metadata.json and trajectory.csv. The engine
// itself never touches the filesystem; this layer exists for the CLI's
// plot and export commands.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/attractor/internal/ode"
	"github.com/san-kum/attractor/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Attractor string    `json:"attractor"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Steps     int       `json:"steps"`
	Method    string    `json:"method"`
	Init      []float64 `json:"init"`
	Params    []float64 `json:"params"`
}

func (s *Store) Save(cfg sim.Config, params []float64, traj sim.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Type, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Attractor: string(cfg.Type),
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Steps:     cfg.Steps,
		Method:    cfg.Method,
		Init:      cfg.Init[:],
		Params:    params,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	// Row i is the state after i steps; the step index stays implicit.
	if err := w.Write([]string{"x", "y", "z"}); err != nil {
		return "", err
	}
	row := make([]string, 3)
	for _, state := range traj {
		for j, val := range state {
			row[j] = strconv.FormatFloat(val, 'g', 17, 64)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (sim.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return sim.Trajectory{}, nil
	}

	traj := make(sim.Trajectory, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 3 {
			return nil, fmt.Errorf("storage: malformed row in %s: %v", runID, record)
		}

		var state ode.State
		for j, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad value %q in %s: %w", field, runID, err)
			}
			state[j] = val
		}
		traj = append(traj, state)
	}

	return traj, nil
}

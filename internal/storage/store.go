// Package storage persists completed runs under a data directory, one
// subdirectory per run holding metadata.json and profiles.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffuse"
	"github.com/san-kum/heatsim/internal/solver"
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
	ID        string             `json:"id"`
	Profile   string             `json:"profile"`
	Timestamp time.Time          `json:"timestamp"`
	Nx        int                `json:"nx"`
	Nt        int                `json:"nt"`
	Alpha     float64            `json:"alpha"`
	Length    float64            `json:"length"`
	Tmax      float64            `json:"tmax"`
	Ratio     float64            `json:"ratio"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg *config.Config, result *solver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Profile, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Profile:   cfg.Profile,
		Timestamp: time.Now(),
		Nx:        cfg.Nx,
		Nt:        cfg.Nt,
		Alpha:     cfg.Alpha,
		Length:    cfg.Length,
		Tmax:      cfg.Tmax,
		Ratio:     result.Ratio,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "profiles.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Profiles) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range result.Profiles[0] {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, profile := range result.Profiles {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, val := range profile {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadProfiles reads back the recorded profiles and their times.
func (s *Store) LoadProfiles(runID string) ([]diffuse.Profile, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "profiles.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []diffuse.Profile{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	profiles := make([]diffuse.Profile, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		profile := make(diffuse.Profile, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			profile = append(profile, val)
		}

		times = append(times, t)
		profiles = append(profiles, profile)
	}

	return profiles, times, nil
}

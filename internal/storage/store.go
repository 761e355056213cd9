package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/burgers2d/internal/burgers"
)

const (
	metadataFile = "metadata.json"
	fieldFile    = "field.csv"
	cornerHeader = `y\x`
)

var ErrEmptyField = errors.New("storage: field file has no samples")

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
	Timestamp time.Time          `json:"timestamp"`
	Params    burgers.Params     `json:"params"`
	Dx        float64            `json:"dx"`
	Dy        float64            `json:"dy"`
	Dt        float64            `json:"dt"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes the run's metadata and its u field under a fresh run id.
func (s *Store) Save(sol *burgers.Solution, metrics map[string]float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("burgers_%d", now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Params:    sol.Params,
		Dx:        sol.Params.Dx(),
		Dy:        sol.Params.Dy(),
		Dt:        sol.Params.Dt(),
		Metrics:   finiteOnly(metrics),
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := WriteFieldCSV(filepath.Join(runDir, fieldFile), sol); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteFieldCSV writes u as a table: the header row holds x, the first
// column holds y.
func WriteFieldCSV(path string, sol *burgers.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{cornerHeader}
	for _, x := range sol.X() {
		header = append(header, formatFloat(x))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	y := sol.Y()
	for i := 0; i < sol.U.Rows(); i++ {
		row := []string{formatFloat(y[i])}
		for _, val := range sol.U.Row(i) {
			row = append(row, formatFloat(val))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// finiteOnly drops values JSON cannot carry, such as the max of a blown-up run.
func finiteOnly(metrics map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for k, v := range metrics {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[k] = v
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns every readable run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadField reads back the grid and u field of a saved run.
func (s *Store) LoadField(runID string) (burgers.Grid, *burgers.Field, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, fieldFile))
	if err != nil {
		return burgers.Grid{}, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return burgers.Grid{}, nil, err
	}

	if len(records) < 2 || len(records[0]) < 2 {
		return burgers.Grid{}, nil, ErrEmptyField
	}

	xs, err := parseFloats(records[0][1:])
	if err != nil {
		return burgers.Grid{}, nil, fmt.Errorf("storage: header: %w", err)
	}

	grid := burgers.Grid{X: xs, Y: make([]float64, 0, len(records)-1)}
	rows := make([][]float64, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) != len(xs)+1 {
			return burgers.Grid{}, nil, fmt.Errorf("storage: row %d has %d columns, want %d", i, len(record), len(xs)+1)
		}

		vals, err := parseFloats(record)
		if err != nil {
			return burgers.Grid{}, nil, fmt.Errorf("storage: row %d: %w", i, err)
		}
		grid.Y = append(grid.Y, vals[0])
		rows = append(rows, vals[1:])
	}

	return grid, burgers.FieldFromRows(rows), nil
}

func parseFloats(record []string) ([]float64, error) {
	out := make([]float64, len(record))
	for i, s := range record {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

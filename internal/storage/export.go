package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"

	"github.com/san-kum/burgers2d/internal/burgers"
)

// Sample is one field value. Non-finite values encode as null and decode
// back as NaN, so blown-up fields still export.
type Sample float64

func (s Sample) MarshalJSON() ([]byte, error) {
	v := float64(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (s *Sample) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = Sample(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Sample(v)
	return nil
}

// Snapshot is the self-contained JSON form of one solved field.
type Snapshot struct {
	T       float64            `json:"t"`
	Nu      float64            `json:"nu"`
	Params  burgers.Params     `json:"params"`
	X       []float64          `json:"x"`
	Y       []float64          `json:"y"`
	U       [][]Sample         `json:"u"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func NewSnapshot(sol *burgers.Solution, metrics map[string]float64) Snapshot {
	return Snapshot{
		T:       sol.Params.T,
		Nu:      sol.Params.Nu,
		Params:  sol.Params,
		X:       sol.X(),
		Y:       sol.Y(),
		U:       samples(sol.U),
		Metrics: finiteOnly(metrics),
	}
}

func samples(f *burgers.Field) [][]Sample {
	rows := f.Slices()
	out := make([][]Sample, len(rows))
	for i, row := range rows {
		out[i] = make([]Sample, len(row))
		for j, v := range row {
			out[i][j] = Sample(v)
		}
	}
	return out
}

// ExportJSON writes snap to path. The file is only created once encoding
// has succeeded.
func ExportJSON(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Package export renders stored runs to interchange formats.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/heatsim/internal/diffuse"
	"github.com/san-kum/heatsim/internal/storage"
)

type RunData struct {
	Profile  string             `json:"profile"`
	Nx       int                `json:"nx"`
	Nt       int                `json:"nt"`
	Alpha    float64            `json:"alpha"`
	Length   float64            `json:"length"`
	Tmax     float64            `json:"tmax"`
	Ratio    float64            `json:"ratio"`
	Times    []float64          `json:"times"`
	Profiles [][]float64        `json:"profiles"`
	Metrics  map[string]float64 `json:"metrics"`
}

func buildRunData(meta *storage.RunMetadata, profiles []diffuse.Profile, times []float64) RunData {
	data := RunData{
		Profile:  meta.Profile,
		Nx:       meta.Nx,
		Nt:       meta.Nt,
		Alpha:    meta.Alpha,
		Length:   meta.Length,
		Tmax:     meta.Tmax,
		Ratio:    meta.Ratio,
		Times:    times,
		Profiles: make([][]float64, len(profiles)),
		Metrics:  meta.Metrics,
	}
	for i, p := range profiles {
		data.Profiles[i] = p
	}
	return data
}

func WriteJSON(w io.Writer, meta *storage.RunMetadata, profiles []diffuse.Profile, times []float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildRunData(meta, profiles, times))
}

func ExportJSON(path string, meta *storage.RunMetadata, profiles []diffuse.Profile, times []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, profiles, times)
}

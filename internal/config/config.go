// Package config loads and validates the JSON map-configuration document
// spec.md §6 describes, using the same plain encoding/json document style
// used elsewhere in this module for config and output documents.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	citygen "github.com/jonaszell97/CityGen"
	"github.com/jonaszell97/CityGen/internal/cgerr"
	"github.com/jonaszell97/CityGen/internal/streamline"
)

// document mirrors citygen.Config's JSON shape. A separate type keeps the
// wire format decoupled from in-memory field additions (e.g. Logger,
// which has no JSON representation).
type document struct {
	Seed int64   `json:"seed"`
	Size float64 `json:"size"`

	Smooth             bool `json:"smooth"`
	RandomRadialFields int  `json:"randomRadialFields"`

	ParkAreaPercentage      float64 `json:"parkAreaPercentage"`
	MinDistanceBetweenParks float64 `json:"minDistanceBetweenParks"`

	RoadParameters []streamline.RoadParams `json:"roadParameters"`
}

// Load reads and validates a Config from the JSON file at path.
func Load(path string) (citygen.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return citygen.Config{}, cgerr.NewFatal("config.Load", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and validates a Config from r.
func Decode(r io.Reader) (citygen.Config, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return citygen.Config{}, cgerr.NewFatal("config.Decode", err)
	}

	cfg := citygen.Config{
		Seed:                    doc.Seed,
		Size:                    doc.Size,
		Smooth:                  doc.Smooth,
		RandomRadialFields:      doc.RandomRadialFields,
		ParkAreaPercentage:      doc.ParkAreaPercentage,
		MinDistanceBetweenParks: doc.MinDistanceBetweenParks,
		RoadParameters:          doc.RoadParameters,
	}

	if err := validate(cfg); err != nil {
		return citygen.Config{}, err
	}
	return cfg, nil
}

// validate enforces spec.md §6's invariants at load time rather than
// silently repairing them: dstep < dsep is a precondition violation
// (spec.md §7.1), surfaced as a Fatal naming the offending tier. dtest is
// auto-clamped to dsep by streamline.RoadParams.Normalize and so isn't
// re-checked here.
func validate(cfg citygen.Config) error {
	if cfg.Size <= 0 {
		return cgerr.NewFatal("config.validate", fmt.Errorf("size must be positive, got %v", cfg.Size))
	}
	for _, rp := range cfg.RoadParameters {
		if rp.Dstep >= rp.Dsep {
			return cgerr.NewFatal("config.validate",
				fmt.Errorf("tier %q: dstep (%v) must be less than dsep (%v)", rp.Name, rp.Dstep, rp.Dsep))
		}
	}
	return nil
}

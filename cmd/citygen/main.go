// Command citygen generates a city map from a JSON configuration file and
// writes a PNG render plus a JSON summary beside it, a two-artifact output
// shape generalized from a district/building result document plus a raster
// export to roads/parks/coastline.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	citygen "github.com/jonaszell97/CityGen"
	"github.com/jonaszell97/CityGen/internal/config"
	"github.com/jonaszell97/CityGen/internal/debugviz"
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/logging"
	"github.com/jonaszell97/CityGen/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("citygen", flag.ContinueOnError)
	imageSize := fs.Int("image-size", 2048, "raster output width/height in pixels")
	debugSVG := fs.String("debug-svg", "", "optional path to write a debug SVG dump to")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: citygen [-image-size N] [-debug-svg path] <config.json>")
		return 1
	}
	configPath := fs.Arg(0)

	log := logging.Default()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		return 1
	}
	cfg.Logger = log

	m, err := citygen.Generate(cfg)
	if err != nil {
		log.Error("generation failed", "error", err)
		return 1
	}

	base := strings.TrimSuffix(configPath, filepath.Ext(configPath))

	pngPath := base + ".png"
	if err := render.PNG(m, cfg.Size, *imageSize, nil, pngPath); err != nil {
		log.Error("failed to write render", "error", err)
		return 1
	}
	log.Info("wrote render", "path", pngPath)

	jsonPath := base + ".out.json"
	if err := writeSummary(m, jsonPath); err != nil {
		log.Error("failed to write summary", "error", err)
		return 1
	}
	log.Info("wrote summary", "path", jsonPath)

	if *debugSVG != "" {
		f, err := os.Create(*debugSVG)
		if err != nil {
			log.Error("failed to create debug SVG", "error", err)
			return 1
		}
		defer f.Close()
		if err := debugviz.Write(f, m, cfg.Size); err != nil {
			log.Error("failed to write debug SVG", "error", err)
			return 1
		}
		log.Info("wrote debug SVG", "path", *debugSVG)
	}

	return 0
}

// summaryDoc is the JSON output shape: roads, parks, and the coastline,
// deliberately omitting the planar graph (internal wiring detail, not a
// deliverable) per SPEC_FULL.md §10.4.
type summaryDoc struct {
	CityShape [][2]float64   `json:"cityShape"`
	Parks     [][][2]float64 `json:"parks"`
	Roads     []summaryRoad  `json:"roads"`
}

type summaryRoad struct {
	Type     string       `json:"type"`
	Polyline [][2]float64 `json:"polyline"`
}

func writeSummary(m *citygen.Map, path string) error {
	doc := summaryDoc{}
	if m.CityShape != nil {
		doc.CityShape = pointsToPairs(m.CityShape.Points)
	}
	for _, park := range m.Parks {
		doc.Parks = append(doc.Parks, pointsToPairs(park.Points))
	}
	for _, road := range m.Roads {
		doc.Roads = append(doc.Roads, summaryRoad{
			Type:     string(road.Type),
			Polyline: pointsToPairs(road.Polyline),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func pointsToPairs(pts []geom.Vector) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

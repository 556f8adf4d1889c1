package citygen

import (
	"sort"

	"github.com/jonaszell97/CityGen/internal/field"
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/graph"
	"github.com/jonaszell97/CityGen/internal/rng"
	"github.com/jonaszell97/CityGen/internal/streamline"
)

// noiseParkSizeFrac, noiseParkAngle, noiseGlobalFrac, and
// noiseGlobalAngle set the rotational-noise parameters spec.md §3 lists
// on the tensor field (park size/angle, global size/angle) but leaves to
// the implementation to choose concrete values for, since spec.md §6's
// external config table doesn't expose them. Sizes are expressed as a
// fraction of the world's side length so they scale with map size;
// angles are in radians. Recorded as an Open Question decision.
const (
	noiseParkSizeFrac  = 0.02
	noiseParkAngle     = 0.5
	noiseGlobalFrac    = 0.05
	noiseGlobalAngle   = 0.25
)

// Generate runs one full city generation from cfg, per spec.md §2's
// control flow: draw a boundary, register basis fields, trace each road
// tier in descending priority (each registering its streamlines with the
// next tier's grids), build the planar graph, select park faces, trace
// park paths, and fold those paths back into the graph.
func Generate(cfg Config) (*Map, error) {
	log := cfg.logger()
	rng.Reseed(cfg.Seed)

	shape, err := drawBoundary(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("boundary drawn", "area", shape.Area())

	f := field.New(cfg.Seed, cfg.Smooth)
	f.Land = shape
	f.NoiseParkSize = cfg.Size * noiseParkSizeFrac
	f.NoiseParkAngle = noiseParkAngle
	f.NoiseGlobalSize = cfg.Size * noiseGlobalFrac
	f.NoiseGlobalAngle = noiseGlobalAngle
	f.NoiseGlobalOn = true

	registerCornerFields(f, cfg.Size)
	registerRandomRadialFields(f, cfg.Size, cfg.RandomRadialFields)

	world := geom.Rect{Min: geom.New(0, 0), Max: geom.New(cfg.Size, cfg.Size)}

	var roads []Road
	var roadPolylines [][]geom.Vector
	var lastRoadGen *streamline.Generator

	for _, rp := range roadParamsByType(cfg.RoadParameters, "road") {
		gen := streamline.NewGenerator(f, rp, world, nil)
		if lastRoadGen != nil {
			gen.AddExistingStreamlines(lastRoadGen)
		}
		gen.CreateAllStreamlines(maxStreamlinesPerTier)

		rtype := RoadType(rp.Name)
		for _, pl := range gen.Simplified {
			roads = append(roads, Road{Type: rtype, Polyline: pl})
			roadPolylines = append(roadPolylines, pl)
		}
		log.Info("road tier traced", "tier", rp.Name, "streamlines", len(gen.Simplified))
		lastRoadGen = gen
	}

	g := graph.New()
	if err := g.AddStreamlines(roadPolylines); err != nil {
		return nil, err
	}
	for i, pl := range g.ModifyStreamlines(roadPolylines) {
		roads[i].Polyline = pl
	}

	loops := g.FindClosedLoops(maxLoopSize)
	worldArea := cfg.Size * cfg.Size
	parks := selectParks(loops, worldArea, cfg.ParkAreaPercentage, cfg.MinDistanceBetweenParks)
	f.Parks = parks
	log.Info("parks selected", "loops", len(loops), "parks", len(parks))

	pathStart := len(roads)
	var pathPolylines [][]geom.Vector
	for _, rp := range roadParamsByType(cfg.RoadParameters, "path") {
		for _, park := range parks {
			gen := streamline.NewGenerator(f, rp, world, park)
			if lastRoadGen != nil {
				gen.AddExistingStreamlines(lastRoadGen)
			}
			gen.CreateAllStreamlines(maxStreamlinesPerTier)

			for _, pl := range gen.Simplified {
				roads = append(roads, Road{Type: Path, Polyline: pl})
				pathPolylines = append(pathPolylines, pl)
			}
		}
	}

	if len(pathPolylines) > 0 {
		if err := g.AddStreamlines(pathPolylines); err != nil {
			return nil, err
		}
		for i, pl := range g.ModifyStreamlines(pathPolylines) {
			roads[pathStart+i].Polyline = pl
		}
	}
	log.Info("generation complete", "roads", len(roads), "parks", len(parks))

	sort.SliceStable(roads, func(i, j int) bool {
		return roadTypeOrder(roads[i].Type) < roadTypeOrder(roads[j].Type)
	})

	return &Map{
		CityShape: shape,
		Graph:     g,
		Parks:     parks,
		Roads:     roads,
	}, nil
}

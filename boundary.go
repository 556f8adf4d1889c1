package citygen

import (
	"github.com/jonaszell97/CityGen/internal/cgerr"
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/island"
	"github.com/jonaszell97/CityGen/internal/rng"
	"github.com/jonaszell97/CityGen/internal/voronoi"
)

// maxVoronoiRetries bounds the algorithmic-restart retry loop spec.md
// §7.3 describes, matching SPEC_FULL.md §10.1's default of 8.
const maxVoronoiRetries = 8

// siteSpacing is the minimum distance between coastline Voronoi sites,
// as a fraction of the world's side length — dense enough that the
// resulting coastline has several cells of texture, sparse enough that
// the half-plane clip stays cheap. Not named by spec.md (which leaves
// site placement to the caller); recorded as an Open Question decision.
const siteSpacing = 0.08

// drawBoundary builds the city's coastline by generating a scatter of
// Voronoi sites over the world square, classifying them against a rough
// circular landmass, and asking internal/island to extract and refine the
// coastline polygon — spec.md §2's "K draws a boundary shape (J over I)".
//
// A failed attempt (too few land cells, an unclosable cell, a degenerate
// coastline) is treated as the algorithmic-restart case spec.md §7.3
// describes: retry with a freshly reseeded site scatter, bounded by
// maxVoronoiRetries, before surfacing a Fatal.
func drawBoundary(cfg Config) (shape *geom.Polygon, err error) {
	world := geom.Rect{Min: geom.New(0, 0), Max: geom.New(cfg.Size, cfg.Size)}
	centre := geom.New(cfg.Size/2, cfg.Size/2)
	landRadius := cfg.Size * 0.45
	boundary := island.Disk{Center: centre, Radius: landRadius}

	n := int(cfg.Size * siteSpacing / 40)
	if n < 12 {
		n = 12
	}
	minDist := cfg.Size * siteSpacing
	log := cfg.logger()

	for attempt := 0; attempt < maxVoronoiRetries; attempt++ {
		shape, err = tryDrawBoundary(world, boundary, n, minDist)
		if err == nil {
			return shape, nil
		}
		log.Warn("boundary restart", "attempt", attempt, "reason", err.Error())
		rng.Reseed(cfg.Seed + int64(attempt) + 1)
	}
	return nil, cgerr.NewFatal("citygen.drawBoundary", err)
}

func tryDrawBoundary(world geom.Rect, boundary island.Boundary, n int, minDist float64) (shape *geom.Polygon, err error) {
	defer func() {
		if r := recover(); r != nil {
			if restart, ok := r.(cgerr.Restart); ok {
				err = restart
				return
			}
			panic(r)
		}
	}()

	points := voronoi.GeneratePoints(world.Min, world.Max, n, minDist)
	v, buildErr := voronoi.Build(world.Min, world.Max, points)
	if buildErr != nil {
		return nil, buildErr
	}

	sites := island.Adapt(len(v.Sites),
		func(i int) *geom.Polygon { return v.Sites[i].Polygon },
		func(i int) [][2]geom.Vector { return v.Sites[i].Edges() },
	)

	shape, buildErr = island.Build(sites, boundary)
	if buildErr != nil {
		panic(cgerr.Restart{Reason: buildErr.Error()})
	}
	return shape, nil
}

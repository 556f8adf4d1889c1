package voronoi

import (
	"testing"

	"github.com/jonaszell97/CityGen/internal/geom"
)

func TestBuildProducesOneSitePerPoint(t *testing.T) {
	min, max := geom.New(0, 0), geom.New(100, 100)
	points := []geom.Vector{
		geom.New(20, 20), geom.New(80, 20), geom.New(50, 80),
	}

	v, err := Build(min, max, points)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(v.Sites) != len(points) {
		t.Fatalf("expected %d sites, got %d", len(points), len(v.Sites))
	}
	for _, s := range v.Sites {
		if s.Polygon == nil {
			t.Errorf("site %d has no polygon", s.ID)
		}
	}
}

func TestBuildRejectsDuplicateSites(t *testing.T) {
	min, max := geom.New(0, 0), geom.New(100, 100)
	points := []geom.Vector{geom.New(10, 10), geom.New(10, 10)}

	if _, err := Build(min, max, points); err == nil {
		t.Fatalf("expected an error for duplicate sites")
	}
}

func TestEachPointClosestToOwnSite(t *testing.T) {
	min, max := geom.New(0, 0), geom.New(100, 100)
	points := []geom.Vector{
		geom.New(20, 20), geom.New(80, 20), geom.New(50, 80), geom.New(50, 20),
	}
	v, err := Build(min, max, points)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, s := range v.Sites {
		// sample the site's own centroid; it must be at least as close to
		// s.Pos as to any other site's Pos, within a tolerance.
		p := s.Polygon.Centroid()
		for _, other := range v.Sites {
			if other.ID == s.ID {
				continue
			}
			if geom.DistSq(p, other.Pos) < geom.DistSq(p, s.Pos)-1e-3 {
				t.Errorf("site %d's centroid is closer to site %d", s.ID, other.ID)
			}
		}
	}
}

func TestRefineMovesSitesTowardCentroids(t *testing.T) {
	min, max := geom.New(0, 0), geom.New(100, 100)
	points := []geom.Vector{
		geom.New(1, 1), geom.New(99, 1), geom.New(50, 99),
	}
	v, err := Build(min, max, points)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	refined, err := v.Refine()
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(refined.Sites) != len(v.Sites) {
		t.Fatalf("expected refine to preserve site count")
	}
	for i, s := range refined.Sites {
		if want := v.Sites[i].Polygon.Centroid(); s.Pos != want {
			t.Errorf("refined site %d at %v, expected the original cell's centroid %v", i, s.Pos, want)
		}
	}
}

func TestGeneratePointsRespectsMinDistance(t *testing.T) {
	min, max := geom.New(0, 0), geom.New(500, 500)
	points := GeneratePoints(min, max, 10, 30)
	if len(points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(points))
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if geom.Dist(points[i], points[j]) < 30-1e-9 {
				t.Errorf("points %d and %d are closer than minDist", i, j)
			}
		}
	}
}

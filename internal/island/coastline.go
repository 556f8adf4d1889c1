package island

import "github.com/jonaszell97/CityGen/internal/geom"

// edgeTolerance is the endpoint-matching tolerance spec.md §4.G.2 names
// for pairing a Land cell's edge against a Sea cell's edge.
const edgeTolerance = 0.1

// Site is the minimal view of a Voronoi cell this package needs: a
// representative point to classify and the edges bounding it.
type Site interface {
	Centroid() geom.Vector
	Edges() [][2]geom.Vector
}

// classify splits sites into Land and Sea by boundary-containment of
// their centroid, per spec.md §4.G.1.
func classify(sites []Site, boundary Boundary) (land, sea []Site) {
	for _, s := range sites {
		if boundary.Contains(s.Centroid()) {
			land = append(land, s)
		} else {
			sea = append(sea, s)
		}
	}
	return land, sea
}

// coastlineEdges returns every Land-cell edge that also matches some
// Sea-cell edge (endpoints equal within edgeTolerance, either
// orientation) — spec.md §4.G.2's intersection step.
func coastlineEdges(land, sea []Site) [][2]geom.Vector {
	var seaEdges [][2]geom.Vector
	for _, s := range sea {
		seaEdges = append(seaEdges, s.Edges()...)
	}

	var out [][2]geom.Vector
	for _, s := range land {
		for _, e := range s.Edges() {
			if matchesAny(e, seaEdges) {
				out = append(out, e)
			}
		}
	}
	return out
}

func matchesAny(e [2]geom.Vector, edges [][2]geom.Vector) bool {
	for _, o := range edges {
		if edgeMatches(e, o) {
			return true
		}
	}
	return false
}

func edgeMatches(a, b [2]geom.Vector) bool {
	same := a[0].ApproxEqual(b[0], edgeTolerance) && a[1].ApproxEqual(b[1], edgeTolerance)
	swapped := a[0].ApproxEqual(b[1], edgeTolerance) && a[1].ApproxEqual(b[0], edgeTolerance)
	return same || swapped
}

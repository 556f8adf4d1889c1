package voronoi

import (
	"github.com/unixpickle/essentials"

	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/grid"
)

// repair merges nearly-identical coordinates across every cell (rounding
// errors from independently-computed bisector intersections can leave
// adjacent cells' shared vertex a few epsilon apart) and reorders each
// cell's edge set into a single walk starting from an arbitrary edge, so
// that consecutive edges share an endpoint.
//
// The merge step buckets coordinates through this engine's own grid.Grid
// rather than a k-nearest-neighbour tree: grid.Grid already gives every
// other spatial query in this codebase a bounded-radius answer, so an
// epsilon-radius lookup here composes with that idiom instead of pulling
// in a second, differently-shaped nearest-neighbour structure for one
// pass over the vertex set.
func repair(cells []*cell, epsilon float64) {
	seen := map[geom.Vector]bool{}
	var coords []geom.Vector
	g := grid.New(geom.New(0, 0), epsilon)
	for _, c := range cells {
		for _, e := range c.edges {
			for _, p := range e {
				if !seen[p] {
					seen[p] = true
					coords = append(coords, p)
					g.Insert(p)
				}
			}
		}
	}

	mapping := map[geom.Vector]geom.Vector{}
	consumed := map[geom.Vector]bool{}
	for _, c := range coords {
		if consumed[c] {
			continue
		}
		for _, n := range g.Nearby(c, epsilon) {
			if n == c || consumed[n] {
				continue
			}
			consumed[n] = true
			mapping[n] = c
		}
	}

	for _, c := range cells {
		starts := map[geom.Vector][2]geom.Vector{}

		for i := 0; i < len(c.edges); i++ {
			edge := c.edges[i]
			for j, p := range edge {
				if mapped, ok := mapping[p]; ok {
					edge[j] = mapped
				}
			}
			c.edges[i] = edge
			if edge[0] == edge[1] {
				essentials.UnorderedDelete(&c.edges, i)
				i--
				continue
			}
			starts[edge[0]] = edge
		}

		if len(c.edges) == 0 {
			continue
		}

		ordered := make([][2]geom.Vector, len(c.edges))
		ordered[0] = c.edges[0]
		for i := 0; i < len(c.edges)-1; i++ {
			next, ok := starts[ordered[i][1]]
			if !ok {
				break
			}
			ordered[i+1] = next
		}
		c.edges = ordered
	}
}

package render

import (
	"github.com/boljen/go-bitmap"

	citygen "github.com/jonaszell97/CityGen"
	"github.com/jonaszell97/CityGen/internal/geom"
)

const (
	bitLand = 0
	bitPark = 1
)

// OccupancyMask packs, one bit per pixel, whether a raster cell is land
// and whether it falls inside a park, via the same per-pixel bitmap idiom
// used elsewhere for fortification occupancy, generalized from five
// fortification bits to these two.
//
// Built once from the generated Map's polygons so repeated per-pixel
// lookups (debug overlays, downstream tooling) don't re-run point-in-
// polygon tests.
type OccupancyMask struct {
	size int
	rows []bitmap.Bitmap
}

// BuildOccupancyMask samples m's coastline and park polygons onto a
// size x size grid.
func BuildOccupancyMask(m *citygen.Map, size int) *OccupancyMask {
	mask := &OccupancyMask{size: size, rows: make([]bitmap.Bitmap, size)}
	for y := 0; y < size; y++ {
		row := bitmap.New(size * 2)
		for x := 0; x < size; x++ {
			p := pixelToWorld(x, y)
			if m.CityShape != nil && m.CityShape.Contains(p) {
				row.Set(x*2+bitLand, true)
			}
			for _, park := range m.Parks {
				if park.Contains(p) {
					row.Set(x*2+bitPark, true)
					break
				}
			}
		}
		mask.rows[y] = row
	}
	return mask
}

// IsLand reports whether pixel (x, y) falls on land.
func (m *OccupancyMask) IsLand(x, y int) bool {
	if y < 0 || y >= m.size || x < 0 || x >= m.size {
		return false
	}
	return m.rows[y].Get(x*2 + bitLand)
}

// IsPark reports whether pixel (x, y) falls inside a park.
func (m *OccupancyMask) IsPark(x, y int) bool {
	if y < 0 || y >= m.size || x < 0 || x >= m.size {
		return false
	}
	return m.rows[y].Get(x*2 + bitPark)
}

func pixelToWorld(x, y int) geom.Vector {
	return geom.New(float64(x), float64(y))
}

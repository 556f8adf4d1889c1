package geom

import "math/rand"

// Polygon is an array of at least 3 points, implicitly closed (the last
// point connects back to the first). Area and bounding box are cached on
// first use and invalidated on Scale.
//
// Containment uses the classical ray-cast/XOR test, generalized from an
// integer image.Point implementation to float vectors.
type Polygon struct {
	Points []Vector

	area    float64
	areaSet bool
	bbox    Rect
	bboxSet bool
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Vector
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// NewPolygon validates and wraps Points. Fewer than 3 points is a
// precondition violation per spec §7.1 and is reported via panic so the
// caller (always internal code with a bug, never user input at this layer)
// fails loudly; external-facing callers should validate point counts
// themselves before calling this.
func NewPolygon(points []Vector) *Polygon {
	if len(points) < 3 {
		panic("geom: polygon requires at least 3 points")
	}
	return &Polygon{Points: points}
}

// Area is the absolute value of the signed Shoelace sum, invariant under
// vertex winding order.
func (p *Polygon) Area() float64 {
	if p.areaSet {
		return p.area
	}
	sum := 0.0
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	p.area = sum / 2
	p.areaSet = true
	return p.area
}

// Bounds returns the axis-aligned bounding box of the polygon's vertices.
func (p *Polygon) Bounds() Rect {
	if p.bboxSet {
		return p.bbox
	}
	min, max := p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	p.bbox = Rect{Min: min, Max: max}
	p.bboxSet = true
	return p.bbox
}

// Centroid is the arithmetic mean of the vertices (not the area centroid —
// spec.md §3 defines it this way for speed, since faces here are small).
func (p *Polygon) Centroid() Vector {
	var sum Vector
	for _, pt := range p.Points {
		sum = sum.Add(pt)
	}
	return sum.Div(float64(len(p.Points)))
}

// Contains reports whether point is inside the polygon via ray-cast/XOR,
// generalized from an integer image.Point implementation to float Vector.
func (p *Polygon) Contains(point Vector) bool {
	contains := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[j], p.Points[i]
		if (a.Y > point.Y) != (b.Y > point.Y) {
			xIntersect := (b.X-a.X)*(point.Y-a.Y)/(b.Y-a.Y) + a.X
			if point.X < xIntersect {
				contains = !contains
			}
		}
	}
	return contains
}

// Scale scales the polygon's points about its centroid by factor s.
// Invalidates cached area/bbox.
func (p *Polygon) Scale(s float64) {
	c := p.Centroid()
	for i, pt := range p.Points {
		p.Points[i] = c.Add(pt.Sub(c).Scale(s))
	}
	p.areaSet = false
	p.bboxSet = false
}

// RandomPoint returns a uniformly-ish random interior point via rejection
// sampling over the bounding box, bounded to maxTries attempts. If every
// try lands outside the polygon (degenerate/sliver polygons, or extremely
// unlucky runs), the first vertex is returned instead of looping forever —
// spec §7.2's "bounded-retry exhaustion returns any vertex".
func (p *Polygon) RandomPoint(rng *rand.Rand, maxTries int) Vector {
	b := p.Bounds()
	for i := 0; i < maxTries; i++ {
		x := b.Min.X + rng.Float64()*b.Width()
		y := b.Min.Y + rng.Float64()*b.Height()
		candidate := Vector{X: x, Y: y}
		if p.Contains(candidate) {
			return candidate
		}
	}
	return p.Points[0]
}

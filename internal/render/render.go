// Package render rasterizes a generated Map to a PNG using a gg+colornames
// idiom (a gg.Context drawn into, then saved directly), generalized from a
// district/wall/building palette to road tiers, parks, and coastline.
package render

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	citygen "github.com/jonaszell97/CityGen"
	"github.com/jonaszell97/CityGen/internal/geom"
)

// Scheme assigns a colour to each road tier, to parks, and to the
// coastline/sea background.
type Scheme struct {
	Background color.Color
	Land       color.Color
	Coastline  color.Color
	Park       color.Color
	RoadWidth  map[citygen.RoadType]float64
	RoadColor  map[citygen.RoadType]color.Color
}

// DefaultScheme provides a reasonable palette a caller can override
// piecemeal.
func DefaultScheme() *Scheme {
	return &Scheme{
		Background: colornames.Steelblue,
		Land:       colornames.Beige,
		Coastline:  colornames.Saddlebrown,
		Park:       colornames.Lightgreen,
		RoadWidth: map[citygen.RoadType]float64{
			citygen.Main:  4,
			citygen.Major: 3,
			citygen.Minor: 2,
			citygen.Path:  1,
		},
		RoadColor: map[citygen.RoadType]color.Color{
			citygen.Main:  colornames.Dimgray,
			citygen.Major: colornames.Gray,
			citygen.Minor: colornames.Darkgray,
			citygen.Path:  colornames.Tan,
		},
	}
}

// PNG rasterizes m onto a pixelSize x pixelSize canvas using scheme
// (DefaultScheme if nil) and writes it to fpath. worldSize is the map's
// world-unit side length (citygen.Config.Size): every coordinate is
// scaled by pixelSize/worldSize before it reaches gg, the same world-to-
// canvas mapping internal/debugviz threads straight into its SVG
// viewBox, so a map doesn't render blank or clipped whenever the world
// size and the chosen image size differ (the common case).
func PNG(m *citygen.Map, worldSize float64, pixelSize int, scheme *Scheme, fpath string) error {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	scale := float64(pixelSize) / worldSize

	ctx := gg.NewContext(pixelSize, pixelSize)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	if m.CityShape != nil {
		drawPolygon(ctx, m.CityShape, scale)
		ctx.SetColor(scheme.Land)
		ctx.Fill()

		drawPolygon(ctx, m.CityShape, scale)
		ctx.SetColor(scheme.Coastline)
		ctx.SetLineWidth(2)
		ctx.Stroke()
	}

	for _, park := range m.Parks {
		drawPolygon(ctx, park, scale)
		ctx.SetColor(scheme.Park)
		ctx.Fill()
	}

	for _, road := range m.Roads {
		if len(road.Polyline) < 2 {
			continue
		}
		width, ok := scheme.RoadWidth[road.Type]
		if !ok {
			width = 1
		}
		col, ok := scheme.RoadColor[road.Type]
		if !ok {
			col = colornames.Black
		}

		ctx.SetColor(col)
		ctx.SetLineWidth(width)
		ctx.MoveTo(road.Polyline[0].X*scale, road.Polyline[0].Y*scale)
		for _, p := range road.Polyline[1:] {
			ctx.LineTo(p.X*scale, p.Y*scale)
		}
		ctx.Stroke()
	}

	return ctx.SavePNG(fpath)
}

// drawPolygon traces poly's closed outline onto ctx's current path
// without filling or stroking it — the caller sets colour and calls
// Fill/Stroke, separating path construction from paint. Every point is
// scaled from world units to pixels first.
func drawPolygon(ctx *gg.Context, poly *geom.Polygon, scale float64) {
	if len(poly.Points) == 0 {
		return
	}
	ctx.NewSubPath()
	ctx.MoveTo(poly.Points[0].X*scale, poly.Points[0].Y*scale)
	for _, p := range poly.Points[1:] {
		ctx.LineTo(p.X*scale, p.Y*scale)
	}
	ctx.ClosePath()
}

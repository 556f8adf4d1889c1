// Package debugviz writes a minimal SVG dump of a Map's streamlines,
// coastline, and parks — debug visualization spec.md keeps out of core
// scope entirely, so it lives here beside internal/render rather than in
// the engine, built on the standard library (encoding/xml) since no
// example repo in the retrieval pack offers an SVG writer to ground a
// third-party choice on.
package debugviz

import (
	"encoding/xml"
	"io"
	"strconv"

	citygen "github.com/jonaszell97/CityGen"
	"github.com/jonaszell97/CityGen/internal/geom"
)

type svgDoc struct {
	XMLName   xml.Name      `xml:"svg"`
	XMLNS     string        `xml:"xmlns,attr"`
	ViewBox   string        `xml:"viewBox,attr"`
	Polygons  []svgPolygon  `xml:"polygon"`
	Polylines []svgPolyline `xml:"polyline"`
}

type svgPolygon struct {
	Points string `xml:"points,attr"`
	Fill   string `xml:"fill,attr"`
	Stroke string `xml:"stroke,attr"`
}

type svgPolyline struct {
	Points      string `xml:"points,attr"`
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

// Write emits an SVG document covering [0,0]-[size,size] to w, drawing
// m's coastline, parks, and roads. Colour is fixed (not configurable,
// unlike internal/render's Scheme) since this is a debug dump, not a
// deliverable.
func Write(w io.Writer, m *citygen.Map, size float64) error {
	doc := svgDoc{
		XMLNS:   "http://www.w3.org/2000/svg",
		ViewBox: fmtViewBox(size),
	}

	if m.CityShape != nil && len(m.CityShape.Points) > 0 {
		doc.Polygons = append(doc.Polygons, svgPolygon{
			Points: pointsAttr(m.CityShape.Points), Fill: "none", Stroke: "saddlebrown",
		})
	}
	for _, park := range m.Parks {
		if len(park.Points) == 0 {
			continue
		}
		doc.Polygons = append(doc.Polygons, svgPolygon{
			Points: pointsAttr(park.Points), Fill: "lightgreen", Stroke: "none",
		})
	}
	for _, road := range m.Roads {
		if len(road.Polyline) < 2 {
			continue
		}
		stroke, width := roadStyle(road.Type)
		doc.Polylines = append(doc.Polylines, svgPolyline{
			Points: pointsAttr(road.Polyline), Fill: "none", Stroke: stroke, StrokeWidth: width,
		})
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(doc)
}

func roadStyle(t citygen.RoadType) (stroke, width string) {
	switch t {
	case citygen.Main:
		return "black", "3"
	case citygen.Major:
		return "dimgray", "2"
	case citygen.Minor:
		return "gray", "1.5"
	default:
		return "tan", "1"
	}
}

func fmtViewBox(size float64) string {
	return "0 0 " + formatFloat(size) + " " + formatFloat(size)
}

func pointsAttr(pts []geom.Vector) string {
	s := ""
	for i, p := range pts {
		if i > 0 {
			s += " "
		}
		s += formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	return s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Package geojson renders airports and routes of the flight graph as GeoJSON
// feature collections suitable for any web map viewer.
package geojson

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/airports"
	"github.com/katalvlaran/flightnet/core"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrEmptyRoute is returned by Route for a path without vertices.
var ErrEmptyRoute = errors.New("geojson: empty route")

// Marker colours written to the "marker-color" property.
const (
	ColorAirport = "#1f77b4"
	ColorRoute   = "#d62728"
)

// Airports returns one Point feature per airport in g, in code order. When
// codes is non-nil only those airports are included. Vertices without
// airport metadata are skipped.
func Airports(g *core.Graph, codes []string) (*geojson.FeatureCollection, error) {
	if codes == nil {
		codes = g.Vertices()
	}
	fc := geojson.NewFeatureCollection()
	for _, code := range codes {
		a, err := airports.Lookup(g, code)
		if errors.Is(err, airports.ErrBadAttributes) {
			continue
		}
		if err != nil {
			return nil, err
		}
		fc.Append(point(a, ColorAirport))
	}

	return fc, nil
}

// Route returns the airports along path as Points followed by a single
// LineString joining them in order.
func Route(g *core.Graph, path []string) (*geojson.FeatureCollection, error) {
	if len(path) == 0 {
		return nil, ErrEmptyRoute
	}
	fc := geojson.NewFeatureCollection()
	line := make(orb.LineString, 0, len(path))
	for i, code := range path {
		a, err := airports.Lookup(g, code)
		if err != nil {
			return nil, err
		}
		f := point(a, ColorRoute)
		f.Properties["stop"] = i
		fc.Append(f)
		line = append(line, orb.Point{a.Longitude, a.Latitude})
	}

	if len(line) > 1 {
		leg := geojson.NewFeature(line)
		leg.Properties["from"] = path[0]
		leg.Properties["to"] = path[len(path)-1]
		leg.Properties["stroke"] = ColorRoute
		fc.Append(leg)
	}

	return fc, nil
}

// Write encodes fc to w.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "geojson: marshal")
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return errors.Wrap(err, "geojson: write")
	}

	return nil
}

func point(a airports.Airport, color string) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{a.Longitude, a.Latitude})
	f.ID = a.Code
	f.Properties["code"] = a.Code
	f.Properties["name"] = a.Name
	f.Properties["city"] = a.City
	f.Properties["country"] = a.Country
	f.Properties["marker-color"] = color

	return f
}

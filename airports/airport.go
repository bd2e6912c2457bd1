// Package airports loads the flight-route dataset into a core.Graph and
// carries the airport metadata stored on each vertex.
package airports

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/core"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Attribute keys stored on every airport vertex.
const (
	AttrName      = "name"
	AttrCity      = "city"
	AttrCountry   = "country"
	AttrLatitude  = "latitude"
	AttrLongitude = "longitude"
)

// ErrBadAttributes indicates that a vertex does not carry airport metadata.
var ErrBadAttributes = errors.New("airports: vertex has no airport attributes")

// Airport is the metadata of one airport, keyed by its IATA code.
type Airport struct {
	Code      string
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}

// Attributes returns the vertex payload for a.
func (a Airport) Attributes() map[string]any {
	return map[string]any{
		AttrName:      a.Name,
		AttrCity:      a.City,
		AttrCountry:   a.Country,
		AttrLatitude:  a.Latitude,
		AttrLongitude: a.Longitude,
	}
}

// FromVertex rebuilds an Airport from a vertex created by this package.
func FromVertex(v *core.Vertex) (Airport, error) {
	if v == nil {
		return Airport{}, errors.Wrap(ErrBadAttributes, "nil vertex")
	}
	a := Airport{Code: v.ID}
	var ok [5]bool
	a.Name, ok[0] = v.Attributes[AttrName].(string)
	a.City, ok[1] = v.Attributes[AttrCity].(string)
	a.Country, ok[2] = v.Attributes[AttrCountry].(string)
	a.Latitude, ok[3] = v.Attributes[AttrLatitude].(float64)
	a.Longitude, ok[4] = v.Attributes[AttrLongitude].(float64)
	for _, good := range ok {
		if !good {
			return Airport{}, errors.Wrapf(ErrBadAttributes, "vertex %q", v.ID)
		}
	}

	return a, nil
}

// Lookup returns the airport stored under code in g.
func Lookup(g *core.Graph, code string) (Airport, error) {
	v, err := g.Vertex(code)
	if err != nil {
		return Airport{}, err
	}

	return FromVertex(v)
}

// Haversine returns the great-circle distance in kilometres between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// NormalizeCode trims surrounding space and upper-cases an airport code.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

package geom

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ParseWKT reads a single WKT geometry, including MULTI* types and
// GEOMETRYCOLLECTION.
func ParseWKT(s string) (Data, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Data{}, errors.Wrap(err, "wkt")
	}
	var d Data
	d.addGeometry(g)
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// MarshalWKT writes d as one geometry, or as a GEOMETRYCOLLECTION when it
// holds more than one.
func MarshalWKT(d Data) string {
	c := ToOrb(d)
	if len(c) == 1 {
		return wkt.MarshalString(c[0])
	}
	return wkt.MarshalString(orb.Geometry(c))
}

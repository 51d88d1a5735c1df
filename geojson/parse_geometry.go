package geojson

import (
	"github.com/twpayne/go-geom"
)

// readGeometry reads one geometry object or a literal null. Members may
// arrive in any order: a payload member seen before "type" is recorded
// and replayed at the right nesting depth once the kind is known. A bbox
// member has nowhere to attach on a bare geometry and is discarded, as is
// every unrecognized member.
//
// A missing "type" or missing payload is not an error; it degrades to a
// nil geometry, since many producers omit "coordinates" for null-geometry
// features.
func (d *decoder) readGeometry() (geom.T, error) {
	switch t := d.cur().Type; t {
	case TokenNull:
		return nil, nil
	case TokenObjectStart:
	default:
		return nil, d.errf(ErrMalformedGeometry, "expected object or null, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	var (
		kind     string
		haveKind bool
		coords   []Token
		geoms    []Token
	)
	for d.cur().Type != TokenObjectEnd {
		if t := d.cur().Type; t != TokenName {
			return nil, d.errf(ErrMalformedGeometry, "expected member name, got %s", t)
		}
		name := d.cur().Str
		if err := d.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "type":
			if t := d.cur().Type; t != TokenString {
				return nil, d.errf(ErrMalformedGeometry, "geometry type must be a string, got %s", t)
			}
			kind = d.cur().Str
			haveKind = true
		case "coordinates":
			// A null payload means the same as a missing one.
			if d.cur().Type != TokenNull {
				var err error
				if coords, err = d.capture(); err != nil {
					return nil, err
				}
			}
		case "geometries":
			if d.cur().Type != TokenNull {
				var err error
				if geoms, err = d.capture(); err != nil {
					return nil, err
				}
			}
		default:
			// bbox cannot attach to a bare geometry; unknown members
			// are tolerated for forward compatibility.
			if err := d.skipValue(); err != nil {
				return nil, err
			}
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}

	if !haveKind {
		return nil, nil
	}
	switch kind {
	case "Point":
		if coords == nil {
			return nil, nil
		}
		c, err := d.replay(coords).readCoord()
		if err != nil {
			return nil, err
		}
		return d.s.factory.Point(c)
	case "LineString":
		if coords == nil {
			return nil, nil
		}
		cs, err := d.replay(coords).readCoords1()
		if err != nil {
			return nil, err
		}
		return d.s.factory.LineString(cs)
	case "Polygon":
		if coords == nil {
			return nil, nil
		}
		rings, err := d.replay(coords).readCoords2()
		if err != nil {
			return nil, err
		}
		if len(rings) == 0 {
			return nil, d.errf(ErrMalformedGeometry, "polygon has no rings")
		}
		return d.s.factory.Polygon(rings)
	case "MultiPoint":
		if coords == nil {
			return nil, nil
		}
		cs, err := d.replay(coords).readCoords1()
		if err != nil {
			return nil, err
		}
		return d.s.factory.MultiPoint(cs)
	case "MultiLineString":
		if coords == nil {
			return nil, nil
		}
		cs, err := d.replay(coords).readCoords2()
		if err != nil {
			return nil, err
		}
		return d.s.factory.MultiLineString(cs)
	case "MultiPolygon":
		if coords == nil {
			return nil, nil
		}
		polys, err := d.replay(coords).readCoords3()
		if err != nil {
			return nil, err
		}
		for _, rings := range polys {
			if len(rings) == 0 {
				return nil, d.errf(ErrMalformedGeometry, "multipolygon member has no rings")
			}
		}
		return d.s.factory.MultiPolygon(polys)
	case "GeometryCollection":
		if geoms == nil {
			return nil, nil
		}
		gs, err := d.replay(geoms).readGeometryList()
		if err != nil {
			return nil, err
		}
		return d.s.factory.GeometryCollection(gs)
	default:
		return nil, d.errf(ErrUnknownGeometryKind, "%q", kind)
	}
}

// readGeometryList reads the "geometries" payload of a collection. Nested
// collections are allowed here, unlike in the flat array form.
func (d *decoder) readGeometryList() ([]geom.T, error) {
	if t := d.cur().Type; t != TokenArrayStart {
		return nil, d.errf(ErrMalformedGeometry, "geometries must be an array, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	var gs []geom.T
	for d.cur().Type != TokenArrayEnd {
		g, err := d.readGeometry()
		if err != nil {
			return nil, err
		}
		if g != nil {
			gs = append(gs, g)
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

// readGeometryArray reads a flat heterogeneous array of geometry objects,
// each carrying "type" and "coordinates". A GeometryCollection element is
// not supported in this form.
func (d *decoder) readGeometryArray() ([]geom.T, error) {
	if t := d.cur().Type; t != TokenArrayStart {
		return nil, d.errf(ErrMalformedGeometry, "expected array of geometries, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	var gs []geom.T
	for d.cur().Type != TokenArrayEnd {
		g, err := d.readGeometry()
		if err != nil {
			return nil, err
		}
		if _, ok := g.(*geom.GeometryCollection); ok {
			return nil, d.errf(ErrNotSupported, "GeometryCollection in a flat geometry array")
		}
		if g != nil {
			gs = append(gs, g)
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

package geojson

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// writeGeometry emits {"type": <kind>, "coordinates": <payload>}, or
// {"type":"GeometryCollection","geometries":[...]} for collections, or a
// literal null for a nil geometry. An empty geometry's payload member is
// omitted under OmitNull and written as null under IncludeNull.
//
// The dispatch is a closed switch over the seven go-geom kinds; anything
// else fails.
func (e *encoder) writeGeometry(g geom.T) {
	if g == nil {
		e.w.WriteNull()
		return
	}
	e.w.WriteObjectStart()
	e.w.WriteName("type")
	switch g := g.(type) {
	case *geom.Point:
		e.w.WriteString("Point")
		if len(g.FlatCoords()) > 0 {
			e.w.WriteName("coordinates")
			e.writeCoord(g.Coords())
		} else {
			e.writeEmptyPayload("coordinates")
		}
	case *geom.LineString:
		e.w.WriteString("LineString")
		if len(g.FlatCoords()) > 0 {
			e.w.WriteName("coordinates")
			e.writeCoords1(g.Coords())
		} else {
			e.writeEmptyPayload("coordinates")
		}
	case *geom.Polygon:
		e.w.WriteString("Polygon")
		if len(g.FlatCoords()) > 0 {
			e.w.WriteName("coordinates")
			e.writeCoords2(g.Coords())
		} else {
			e.writeEmptyPayload("coordinates")
		}
	case *geom.MultiPoint:
		e.w.WriteString("MultiPoint")
		if len(g.FlatCoords()) > 0 {
			e.w.WriteName("coordinates")
			e.writeCoords1(g.Coords())
		} else {
			e.writeEmptyPayload("coordinates")
		}
	case *geom.MultiLineString:
		e.w.WriteString("MultiLineString")
		if len(g.FlatCoords()) > 0 {
			e.w.WriteName("coordinates")
			e.writeCoords2(g.Coords())
		} else {
			e.writeEmptyPayload("coordinates")
		}
	case *geom.MultiPolygon:
		e.w.WriteString("MultiPolygon")
		if len(g.FlatCoords()) > 0 {
			e.w.WriteName("coordinates")
			e.writeCoords3(g.Coords())
		} else {
			e.writeEmptyPayload("coordinates")
		}
	case *geom.GeometryCollection:
		e.w.WriteString("GeometryCollection")
		if g.NumGeoms() > 0 {
			e.w.WriteName("geometries")
			e.w.WriteArrayStart()
			for _, child := range g.Geoms() {
				e.writeGeometry(child)
			}
			e.w.WriteArrayEnd()
		} else {
			e.writeEmptyPayload("geometries")
		}
	default:
		e.fail(fmt.Errorf("%w: cannot serialize %T", ErrUnknownGeometryKind, g))
	}
	e.w.WriteObjectEnd()
}

// writeEmptyPayload applies the null-handling policy to a payload member
// with nothing in it.
func (e *encoder) writeEmptyPayload(name string) {
	if e.s.opts.NullHandling == IncludeNull {
		e.w.WriteName(name)
		e.w.WriteNull()
	}
}

// writeGeometryArray emits a flat array of geometry objects, each via the
// geometry codec, with no enclosing member name.
func (e *encoder) writeGeometryArray(gs []geom.T) {
	e.w.WriteArrayStart()
	for _, g := range gs {
		e.writeGeometry(g)
	}
	e.w.WriteArrayEnd()
}

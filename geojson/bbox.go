package geojson

import (
	"github.com/twpayne/go-geom"
)

// readBBox reads a bounding box array of 2*n numbers,
// [minX, minY, (minZ), maxX, maxY, (maxZ)], into a go-geom envelope on
// the configured layout. Dimensions the layout does not carry are
// dropped; ordinates the input does not carry stay zero.
func (d *decoder) readBBox() (*geom.Bounds, error) {
	if t := d.cur().Type; t != TokenArrayStart {
		return nil, d.errf(ErrMalformedGeometry, "bbox must be an array, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	var vals []float64
	for d.cur().Type != TokenArrayEnd {
		if t := d.cur().Type; t != TokenNumber {
			return nil, d.errf(ErrMalformedGeometry, "bbox element must be a number, got %s", t)
		}
		vals = append(vals, d.cur().Num)
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	n := len(vals) / 2
	if len(vals) == 0 || len(vals)%2 != 0 || n < 2 {
		return nil, d.errf(ErrMalformedGeometry, "bbox has %d elements, want 2*n with n >= 2", len(vals))
	}

	layout := d.s.layout
	min := make(geom.Coord, d.s.stride)
	max := make(geom.Coord, d.s.stride)
	min[0], min[1] = vals[0], vals[1]
	max[0], max[1] = vals[n], vals[n+1]
	if zi := layout.ZIndex(); zi >= 0 && n >= 3 {
		min[zi] = vals[2]
		max[zi] = vals[n+2]
	}
	return geom.NewBounds(layout).SetCoords(min, max), nil
}

// writeBBox emits [minX, minY, (minZ), maxX, maxY, (maxZ)] sized to the
// configured spatial dimension. Measures never appear in a bbox. Spatial
// ordinates go through the precision model like coordinates do.
func (e *encoder) writeBBox(b *geom.Bounds) {
	zi := e.s.layout.ZIndex()
	e.w.WriteArrayStart()
	e.w.WriteNumber(e.s.factory.Round(b.Min(0)))
	e.w.WriteNumber(e.s.factory.Round(b.Min(1)))
	if zi >= 0 {
		e.w.WriteNumber(b.Min(zi))
	}
	e.w.WriteNumber(e.s.factory.Round(b.Max(0)))
	e.w.WriteNumber(e.s.factory.Round(b.Max(1)))
	if zi >= 0 {
		e.w.WriteNumber(b.Max(zi))
	}
	e.w.WriteArrayEnd()
}

// extendBounds folds g into b, descending into collections one geometry
// at a time.
func extendBounds(b *geom.Bounds, g geom.T) *geom.Bounds {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			b = extendBounds(b, child)
		}
		return b
	}
	return b.Extend(g)
}

// geometryBounds returns g's envelope, or nil for a nil or empty
// geometry.
func (s *Serializer) geometryBounds(g geom.T) *geom.Bounds {
	if g == nil {
		return nil
	}
	b := extendBounds(geom.NewBounds(s.layout), g)
	if b.IsEmpty() {
		return nil
	}
	return b
}

// collectionBounds unions the envelopes of all member geometries, or nil
// when the collection has none.
func (s *Serializer) collectionBounds(fc *FeatureCollection) *geom.Bounds {
	b := geom.NewBounds(s.layout)
	found := false
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		b = extendBounds(b, f.Geometry)
		found = true
	}
	if !found || b.IsEmpty() {
		return nil
	}
	return b
}

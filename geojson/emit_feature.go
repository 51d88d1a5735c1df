package geojson

import (
	"fmt"
	"sort"

	"github.com/twpayne/go-geom"
)

// writeFeature emits {"type":"Feature", ["id"], ["bbox"], ["geometry"],
// ["properties"]}. The id member derives from the reserved "id" property,
// which is suppressed from the written properties object unless the
// duplicate-id option is set. An explicitly set bbox always wins; with no
// explicit bbox, IncludeNull computes one from the geometry for output
// only — it is never written back onto the feature.
func (e *encoder) writeFeature(f *Feature) {
	e.w.WriteObjectStart()
	e.w.WriteName("type")
	e.w.WriteString("Feature")

	if id, ok := f.ID(); ok && id != nil {
		e.w.WriteName("id")
		e.writeValue(id)
	}

	switch {
	case f.BBox != nil:
		e.w.WriteName("bbox")
		e.writeBBox(f.BBox)
	case e.s.opts.NullHandling == IncludeNull:
		e.w.WriteName("bbox")
		if b := e.s.geometryBounds(f.Geometry); b != nil {
			e.writeBBox(b)
		} else {
			e.w.WriteNull()
		}
	}

	if f.Geometry != nil {
		e.w.WriteName("geometry")
		e.writeGeometry(f.Geometry)
	} else if e.s.opts.NullHandling == IncludeNull {
		e.w.WriteName("geometry")
		e.w.WriteNull()
	}

	visible := 0
	for _, p := range f.Properties.Entries() {
		if p.Key == idKey && !e.s.opts.DuplicateIDInProperties {
			continue
		}
		visible++
	}
	switch {
	case f.Properties != nil && visible > 0:
		e.w.WriteName("properties")
		e.writeProperties(f.Properties, !e.s.opts.DuplicateIDInProperties)
	case e.s.opts.NullHandling == IncludeNull:
		e.w.WriteName("properties")
		if f.Properties != nil {
			e.writeProperties(f.Properties, !e.s.opts.DuplicateIDInProperties)
		} else {
			e.w.WriteNull()
		}
	}

	e.w.WriteObjectEnd()
}

// writeProperties emits a property object in write order. skipID drops
// the reserved "id" key, which travels as the feature's top-level member
// instead.
func (e *encoder) writeProperties(p *Properties, skipID bool) {
	e.w.WriteObjectStart()
	for _, entry := range p.Entries() {
		if skipID && entry.Key == idKey {
			continue
		}
		e.w.WriteName(entry.Key)
		e.writeValue(entry.Value)
	}
	e.w.WriteObjectEnd()
}

// writeFeatureCollection emits {"type":"FeatureCollection", ["bbox"],
// "features":[...]}. The features member is always present, an empty
// array at minimum.
func (e *encoder) writeFeatureCollection(fc *FeatureCollection) {
	e.w.WriteObjectStart()
	e.w.WriteName("type")
	e.w.WriteString("FeatureCollection")

	switch {
	case fc.BBox != nil:
		e.w.WriteName("bbox")
		e.writeBBox(fc.BBox)
	case e.s.opts.NullHandling == IncludeNull:
		e.w.WriteName("bbox")
		if b := e.s.collectionBounds(fc); b != nil {
			e.writeBBox(b)
		} else {
			e.w.WriteNull()
		}
	}

	e.w.WriteName("features")
	e.w.WriteArrayStart()
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		e.writeFeature(f)
	}
	e.w.WriteArrayEnd()
	e.w.WriteObjectEnd()
}

// writeValue serializes an arbitrary value graph: GeoJSON wrapper types,
// go-geom geometries, ordered property lists, plain maps and slices, and
// JSON scalars. Plain map keys are sorted so output is deterministic.
func (e *encoder) writeValue(v any) {
	switch v := v.(type) {
	case nil:
		e.w.WriteNull()
	case *Feature:
		e.writeFeature(v)
	case *FeatureCollection:
		e.writeFeatureCollection(v)
	case *Properties:
		e.writeProperties(v, false)
	case []geom.T:
		e.writeGeometryArray(v)
	case geom.T:
		e.writeGeometry(v)
	case *geom.Bounds:
		e.writeBBox(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.w.WriteObjectStart()
		for _, k := range keys {
			e.w.WriteName(k)
			e.writeValue(v[k])
		}
		e.w.WriteObjectEnd()
	case []any:
		e.w.WriteArrayStart()
		for _, item := range v {
			e.writeValue(item)
		}
		e.w.WriteArrayEnd()
	case []*Feature:
		e.w.WriteArrayStart()
		for _, f := range v {
			e.writeFeature(f)
		}
		e.w.WriteArrayEnd()
	case string:
		e.w.WriteString(v)
	case bool:
		e.w.WriteBool(v)
	case float64:
		e.w.WriteNumber(v)
	case float32:
		e.w.WriteNumber(float64(v))
	case int:
		e.w.WriteNumber(float64(v))
	case int32:
		e.w.WriteNumber(float64(v))
	case int64:
		e.w.WriteNumber(float64(v))
	case uint:
		e.w.WriteNumber(float64(v))
	case uint32:
		e.w.WriteNumber(float64(v))
	case uint64:
		e.w.WriteNumber(float64(v))
	default:
		e.fail(fmt.Errorf("%w: cannot serialize value of type %T", ErrNotSupported, v))
	}
}

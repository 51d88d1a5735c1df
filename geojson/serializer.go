package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-geom"
)

// NullHandling selects how absent geometry, properties and bbox members
// are written.
type NullHandling uint8

const (
	// OmitNull leaves absent members out entirely.
	OmitNull NullHandling = iota
	// IncludeNull writes explicit nulls for absent members, and computes
	// a feature bbox from its geometry for output when none is set.
	IncludeNull
)

// Options configure a Serializer. The zero value is usable and equals
// DefaultOptions.
type Options struct {
	// Factory builds geometries on read and rounds ordinates on write.
	// When nil, a factory with floating precision and SRID 4326 is
	// derived from Dimension and Measures. When set, its layout must
	// agree with Dimension/Measures if those are set explicitly.
	Factory *GeometryFactory

	// Dimension is the ordinate count per coordinate, 2 to 4. Zero means
	// 2 (or the factory's layout when a factory is given).
	Dimension int

	// Measures is the count of measure ordinates, 0 or 1. The spatial
	// dimension (Dimension - Measures) must be 2 or 3.
	Measures int

	// NullHandling selects omission versus explicit nulls for absent
	// members.
	NullHandling NullHandling

	// DuplicateIDInProperties keeps the reserved "id" key inside the
	// written properties object in addition to the top-level "id"
	// member. By default the key is suppressed from properties.
	DuplicateIDInProperties bool

	// ComputeBBoxWhenMissing computes a FeatureCollection bbox as the
	// union of member geometry envelopes when the document carries none.
	// Opt-in: it is an O(n) pass over all features.
	ComputeBBoxWhenMissing bool

	// DistinctNullProperties makes an explicit `"properties": null`
	// parse to an empty, non-nil property list. By default it is
	// indistinguishable from an absent properties member, matching what
	// many producers emit.
	DistinctNullProperties bool
}

// DefaultOptions returns the backward-compatible defaults: two
// dimensions, no measures, omitted nulls, "id" suppressed from written
// properties.
func DefaultOptions() Options {
	return Options{Dimension: 2}
}

// Serializer binds the coordinate, geometry, feature and collection
// codecs to one configuration. It is immutable after construction and
// safe for concurrent use.
type Serializer struct {
	opts    Options
	factory *GeometryFactory
	layout  geom.Layout
	stride  int
}

// NewSerializer validates opts eagerly and returns a serializer. It fails
// with ErrInvalidConfiguration on negative dimension or measure counts,
// more than one measure, or a spatial dimension outside 2-3, before any
// I/O happens.
func NewSerializer(opts Options) (*Serializer, error) {
	if opts.Dimension == 0 && opts.Factory != nil {
		opts.Dimension = opts.Factory.Layout().Stride()
		if opts.Factory.Layout() == geom.XYM || opts.Factory.Layout() == geom.XYZM {
			opts.Measures = 1
		}
	}
	if opts.Dimension == 0 {
		opts.Dimension = 2
	}
	layout, err := layoutFor(opts.Dimension, opts.Measures)
	if err != nil {
		return nil, err
	}
	factory := opts.Factory
	if factory == nil {
		factory = NewGeometryFactory(layout, 4326, nil)
	} else if factory.Layout() != layout {
		return nil, fmt.Errorf("%w: factory layout %v does not match dimension %d with %d measures",
			ErrInvalidConfiguration, factory.Layout(), opts.Dimension, opts.Measures)
	}
	return &Serializer{
		opts:    opts,
		factory: factory,
		layout:  layout,
		stride:  layout.Stride(),
	}, nil
}

// Parse decodes a GeoJSON document, dispatching on its "type" member: the
// seven geometry kinds yield a geom.T, "Feature" a *Feature,
// "FeatureCollection" a *FeatureCollection, and anything else a generic
// value graph (scalars, []any, *Properties).
func (s *Serializer) Parse(data []byte) (any, error) {
	switch sniffType(data) {
	case "Feature":
		return s.ParseFeature(data)
	case "FeatureCollection":
		return s.ParseFeatureCollection(data)
	case "Point", "LineString", "Polygon", "MultiPoint",
		"MultiLineString", "MultiPolygon", "GeometryCollection":
		return s.ParseGeometry(data)
	default:
		d, err := s.decodeBytes(data)
		if err != nil {
			return nil, err
		}
		return d.readValue()
	}
}

// ParseGeometry decodes one GeoJSON geometry. A document missing its
// required members, or a literal null, yields a nil geometry and no
// error.
func (s *Serializer) ParseGeometry(data []byte) (geom.T, error) {
	d, err := s.decodeBytes(data)
	if err != nil {
		return nil, err
	}
	return d.readGeometry()
}

// ParseGeometryArray decodes a flat array of geometry objects. Nested
// GeometryCollections are not supported in this form.
func (s *Serializer) ParseGeometryArray(data []byte) ([]geom.T, error) {
	d, err := s.decodeBytes(data)
	if err != nil {
		return nil, err
	}
	return d.readGeometryArray()
}

// ParseFeature decodes one GeoJSON Feature.
func (s *Serializer) ParseFeature(data []byte) (*Feature, error) {
	d, err := s.decodeBytes(data)
	if err != nil {
		return nil, err
	}
	return d.readFeature()
}

// ParseFeatureCollection decodes one GeoJSON FeatureCollection.
func (s *Serializer) ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	d, err := s.decodeBytes(data)
	if err != nil {
		return nil, err
	}
	return d.readFeatureCollection()
}

// Marshal serializes geometries, features, feature collections, geometry
// slices, and generic value graphs containing any of those.
func (s *Serializer) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	w := NewTokenWriter(&buf)
	if err := s.Encode(w, v); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one value of the given GeoJSON shape from a token stream
// positioned before it. These bind all codecs to a single caller-supplied
// stream instance.
func (s *Serializer) DecodeGeometry(r TokenReader) (geom.T, error) {
	if err := r.Advance(); err != nil {
		return nil, err
	}
	return (&decoder{s: s, r: r}).readGeometry()
}

func (s *Serializer) DecodeFeature(r TokenReader) (*Feature, error) {
	if err := r.Advance(); err != nil {
		return nil, err
	}
	return (&decoder{s: s, r: r}).readFeature()
}

func (s *Serializer) DecodeFeatureCollection(r TokenReader) (*FeatureCollection, error) {
	if err := r.Advance(); err != nil {
		return nil, err
	}
	return (&decoder{s: s, r: r}).readFeatureCollection()
}

// Encode writes v to a token stream. The stream is not flushed.
func (s *Serializer) Encode(w TokenWriter, v any) error {
	e := &encoder{s: s, w: w}
	e.writeValue(v)
	if e.err != nil {
		return e.err
	}
	return w.Err()
}

func (s *Serializer) decodeBytes(data []byte) (*decoder, error) {
	r := NewTokenReader(bytes.NewReader(data))
	if err := r.Advance(); err != nil {
		return nil, err
	}
	return &decoder{s: s, r: r}, nil
}

// sniffType extracts the top-level "type" member, or "" when there is
// none. The input is already buffered, so the extra pass is cheap.
func sniffType(data []byte) string {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	return probe.Type
}

var defaultSerializer = func() *Serializer {
	s, err := NewSerializer(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return s
}()

// Parse decodes a GeoJSON document with default options. See
// Serializer.Parse.
func Parse(data []byte) (any, error) {
	return defaultSerializer.Parse(data)
}

// ParseGeometry decodes one geometry with default options.
func ParseGeometry(data []byte) (geom.T, error) {
	return defaultSerializer.ParseGeometry(data)
}

// ParseFeature decodes one Feature with default options.
func ParseFeature(data []byte) (*Feature, error) {
	return defaultSerializer.ParseFeature(data)
}

// ParseFeatureCollection decodes one FeatureCollection with default
// options.
func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	return defaultSerializer.ParseFeatureCollection(data)
}

// Marshal serializes v with default options.
func Marshal(v any) ([]byte, error) {
	return defaultSerializer.Marshal(v)
}

// Package geojson implements a bidirectional codec between go-geom
// geometries and the GeoJSON text interchange format (RFC 7946-adjacent),
// plus Feature and FeatureCollection wrappers carrying arbitrary key-value
// properties and an optional bounding box.
//
// The codec is designed to be:
//   - Order-tolerant: object members (type, coordinates, bbox, id, ...)
//     are accepted in any order
//   - Lenient: unknown and extension members are read and discarded,
//     including the deprecated legacy "crs" member
//   - Dimension-aware: coordinates carry 2-4 ordinates selected by a
//     configured spatial dimension and measure count (go-geom layouts
//     XY, XYZ, XYM, XYZM)
//   - Precision-aware: a precision model rounds X/Y ordinates on output
//   - Round-trippable: parsing then serializing yields canonical output
//
// # Data Model
//
// Geometries: the seven GeoJSON kinds (Point, LineString, Polygon,
// MultiPoint, MultiLineString, MultiPolygon, GeometryCollection), modeled
// as go-geom types behind the geom.T tagged union. Features pair a
// geometry with an ordered property list; the reserved "id" property is
// mirrored to the top-level "id" member on the wire.
//
// # Null Handling
//
// Many real producers omit "coordinates" for null-geometry features, so a
// geometry object missing its required members degrades to "no geometry"
// (a nil geom.T) rather than failing. A literal JSON null in place of a
// geometry means the same thing, symmetrically on write. The NullHandling
// option selects between omitting absent members and writing explicit
// nulls.
//
// # Token Stream
//
// The codec depends on an abstract pull TokenReader and push TokenWriter
// rather than on concrete JSON text handling. Default implementations
// backed by encoding/json are provided; the input is expected to be fully
// buffered.
//
// # Concurrency
//
// A Serializer is immutable after construction and safe for concurrent
// use. Codecs construct fresh values per call and retain nothing across
// calls.
//
// # Example
//
//	s, _ := geojson.NewSerializer(geojson.DefaultOptions())
//	g, _ := s.ParseGeometry([]byte(`{"type":"Point","coordinates":[1,2]}`))
//	out, _ := s.Marshal(g)
package geojson

package geojson

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every parse failure wraps one of these sentinels so
// callers can classify with errors.Is.
var (
	// ErrMalformedCoordinate reports a coordinate that is not an array of
	// at least two numbers.
	ErrMalformedCoordinate = errors.New("geojson: malformed coordinate")

	// ErrMalformedGeometry reports a structurally broken geometry,
	// feature or collection object.
	ErrMalformedGeometry = errors.New("geojson: malformed geometry")

	// ErrUnknownGeometryKind reports a "type" member naming none of the
	// seven GeoJSON geometry kinds.
	ErrUnknownGeometryKind = errors.New("geojson: unknown geometry type")

	// ErrUnexpectedFeatureType reports a Feature or FeatureCollection
	// object whose "type" member does not match.
	ErrUnexpectedFeatureType = errors.New("geojson: unexpected feature type")

	// ErrInvalidConfiguration reports invalid serializer options,
	// detected at construction before any I/O.
	ErrInvalidConfiguration = errors.New("geojson: invalid configuration")

	// ErrNotSupported reports input that is valid GeoJSON but outside
	// what the codec supports, such as a GeometryCollection inside a
	// flat geometry array.
	ErrNotSupported = errors.New("geojson: not supported")
)

// ParseError is a parse failure with the byte offset of the offending
// token. It wraps one of the taxonomy sentinels.
type ParseError struct {
	Kind    error // taxonomy sentinel
	Message string
	Offset  int64
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d", e.Kind, e.Message, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Kind }

package geojson

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

var roundTripGeometries = []struct {
	name string
	doc  string
}{
	{"point", `{"type":"Point","coordinates":[100,0.5]}`},
	{"linestring", `{"type":"LineString","coordinates":[[100,0],[101,1]]}`},
	{"polygon", `{"type":"Polygon","coordinates":[[[100,0],[101,0],[101,1],[100,0]]]}`},
	{"polygon with hole", `{"type":"Polygon","coordinates":[[[100,0],[101,0],[101,1],[100,1],[100,0]],[[100.2,0.2],[100.8,0.2],[100.8,0.8],[100.2,0.2]]]}`},
	{"multipoint", `{"type":"MultiPoint","coordinates":[[100,0],[101,1]]}`},
	{"multilinestring", `{"type":"MultiLineString","coordinates":[[[100,0],[101,1]],[[102,2],[103,3]]]}`},
	{"multipolygon 3 rings", `{"type":"MultiPolygon","coordinates":[[[[102,2],[103,2],[103,3],[102,2]]],[[[100,0],[101,0],[101,1],[100,0]],[[100.2,0.2],[100.8,0.2],[100.8,0.8],[100.2,0.2]]]]}`},
	{"geometrycollection depth 2", `{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[100,0]},{"type":"GeometryCollection","geometries":[{"type":"LineString","coordinates":[[101,0],[102,1]]}]}]}`},
}

func TestGeometryRoundTrip(t *testing.T) {
	s, err := NewSerializer(DefaultOptions())
	require.NoError(t, err)

	for _, tt := range roundTripGeometries {
		t.Run(tt.name, func(t *testing.T) {
			g, err := s.ParseGeometry([]byte(tt.doc))
			require.NoError(t, err)
			require.NotNil(t, g)

			out, err := s.Marshal(g)
			require.NoError(t, err)
			require.JSONEq(t, tt.doc, string(out))

			// Serializing the same value again is byte-identical.
			again, err := s.Marshal(g)
			require.NoError(t, err)
			require.Equal(t, string(out), string(again))
		})
	}
}

func TestGeometryRoundTrip3D(t *testing.T) {
	s, err := NewSerializer(Options{Dimension: 3})
	require.NoError(t, err)

	doc := `{"type":"LineString","coordinates":[[1,2,3],[4,5,6]]}`
	g, err := s.ParseGeometry([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, g.Layout())

	out, err := s.Marshal(g)
	require.NoError(t, err)
	require.JSONEq(t, doc, string(out))
}

func TestGeometryRoundTripMeasure(t *testing.T) {
	// XYM: the third ordinate is a measure and is copied verbatim.
	s, err := NewSerializer(Options{Dimension: 3, Measures: 1})
	require.NoError(t, err)

	doc := `{"type":"Point","coordinates":[1,2,50.5]}`
	g, err := s.ParseGeometry([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, geom.XYM, g.Layout())

	out, err := s.Marshal(g)
	require.NoError(t, err)
	require.JSONEq(t, doc, string(out))
}

func TestCoordinateDimensionHandling(t *testing.T) {
	t.Run("short coordinate pads with zero", func(t *testing.T) {
		s, err := NewSerializer(Options{Dimension: 3})
		require.NoError(t, err)
		g, err := s.ParseGeometry([]byte(`{"type":"Point","coordinates":[1,2]}`))
		require.NoError(t, err)
		out, err := s.Marshal(g)
		require.NoError(t, err)
		require.JSONEq(t, `{"type":"Point","coordinates":[1,2,0]}`, string(out))
	})

	t.Run("extra ordinates are dropped", func(t *testing.T) {
		s, err := NewSerializer(DefaultOptions())
		require.NoError(t, err)
		g, err := s.ParseGeometry([]byte(`{"type":"Point","coordinates":[1,2,3,4,5]}`))
		require.NoError(t, err)
		out, err := s.Marshal(g)
		require.NoError(t, err)
		require.JSONEq(t, `{"type":"Point","coordinates":[1,2]}`, string(out))
	})
}

func TestGeometryPrecision(t *testing.T) {
	factory := NewGeometryFactory(geom.XY, 4326, NewFixedPrecision(2))
	s, err := NewSerializer(Options{Factory: factory})
	require.NoError(t, err)

	g, err := s.ParseGeometry([]byte(`{"type":"Point","coordinates":[1.23456789,2.0]}`))
	require.NoError(t, err)

	out, err := s.Marshal(g)
	require.NoError(t, err)
	require.Equal(t, `{"type":"Point","coordinates":[1.23,2]}`, string(out))

	// Rounding happens on write; the parsed value keeps full precision.
	require.Equal(t, 1.23456789, g.(*geom.Point).X())
}

func TestGeometryMemberOrder(t *testing.T) {
	// coordinates before type must parse identically.
	s, err := NewSerializer(DefaultOptions())
	require.NoError(t, err)

	a := `{"type":"MultiPolygon","coordinates":[[[[1,1],[2,1],[2,2],[1,1]]]]}`
	b := `{"coordinates":[[[[1,1],[2,1],[2,2],[1,1]]]],"type":"MultiPolygon"}`

	ga, err := s.ParseGeometry([]byte(a))
	require.NoError(t, err)
	gb, err := s.ParseGeometry([]byte(b))
	require.NoError(t, err)

	outA, err := s.Marshal(ga)
	require.NoError(t, err)
	outB, err := s.Marshal(gb)
	require.NoError(t, err)
	require.Equal(t, string(outA), string(outB))
}

func TestGeometryNullAndMissing(t *testing.T) {
	s, err := NewSerializer(DefaultOptions())
	require.NoError(t, err)

	t.Run("literal null", func(t *testing.T) {
		g, err := s.ParseGeometry([]byte(`null`))
		require.NoError(t, err)
		require.Nil(t, g)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		g, err := s.ParseGeometry([]byte(`{"type":"Point"}`))
		require.NoError(t, err)
		require.Nil(t, g)
	})

	t.Run("null coordinates", func(t *testing.T) {
		g, err := s.ParseGeometry([]byte(`{"type":"Point","coordinates":null}`))
		require.NoError(t, err)
		require.Nil(t, g)
	})

	t.Run("missing type", func(t *testing.T) {
		g, err := s.ParseGeometry([]byte(`{"coordinates":[1,2]}`))
		require.NoError(t, err)
		require.Nil(t, g)
	})

	t.Run("nil writes null", func(t *testing.T) {
		out, err := s.Marshal(nil)
		require.NoError(t, err)
		require.Equal(t, "null", string(out))
	})
}

func TestGeometryDiscardedMembers(t *testing.T) {
	s, err := NewSerializer(DefaultOptions())
	require.NoError(t, err)

	// bbox cannot attach to a bare geometry; unknown members are read
	// and dropped.
	doc := `{"type":"Point","bbox":[0,0,2,2],"extra":{"deep":[1,{"x":true}]},"coordinates":[1,1]}`
	g, err := s.ParseGeometry([]byte(doc))
	require.NoError(t, err)

	out, err := s.Marshal(g)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Point","coordinates":[1,1]}`, string(out))
}

func TestGeometryErrors(t *testing.T) {
	s, err := NewSerializer(DefaultOptions())
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", `{"type":"Bogus","coordinates":[1,2]}`, ErrUnknownGeometryKind},
		{"zero-ring polygon", `{"type":"Polygon","coordinates":[]}`, ErrMalformedGeometry},
		{"zero-ring multipolygon member", `{"type":"MultiPolygon","coordinates":[[]]}`, ErrMalformedGeometry},
		{"scalar input", `42`, ErrMalformedGeometry},
		{"one-ordinate coordinate", `{"type":"Point","coordinates":[1]}`, ErrMalformedCoordinate},
		{"non-numeric ordinate", `{"type":"Point","coordinates":[1,"2"]}`, ErrMalformedCoordinate},
		{"object coordinate", `{"type":"Point","coordinates":{"x":1}}`, ErrMalformedCoordinate},
		{"non-string type", `{"type":7,"coordinates":[1,2]}`, ErrMalformedGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ParseGeometry([]byte(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGeometryArrayCodec(t *testing.T) {
	s, err := NewSerializer(DefaultOptions())
	require.NoError(t, err)

	t.Run("flat array round trip", func(t *testing.T) {
		doc := `[{"type":"Point","coordinates":[1,2]},{"type":"LineString","coordinates":[[3,4],[5,6]]}]`
		gs, err := s.ParseGeometryArray([]byte(doc))
		require.NoError(t, err)
		require.Len(t, gs, 2)

		out, err := s.Marshal(gs)
		require.NoError(t, err)
		require.JSONEq(t, doc, string(out))
	})

	t.Run("nested collection unsupported", func(t *testing.T) {
		doc := `[{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]}]}]`
		_, err := s.ParseGeometryArray([]byte(doc))
		require.ErrorIs(t, err, ErrNotSupported)
	})
}

package geojson

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
)

// PrecisionModel rounds ordinate values on output. Rounding applies to
// spatial ordinates only; measures are copied verbatim.
type PrecisionModel interface {
	Round(v float64) float64
}

// FloatingPrecision keeps ordinates exactly as stored.
type FloatingPrecision struct{}

func (FloatingPrecision) Round(v float64) float64 { return v }

// FixedPrecision rounds ordinates to a fixed number of decimal places.
type FixedPrecision struct {
	scale float64
}

// NewFixedPrecision returns a precision model keeping the given number of
// decimal places.
func NewFixedPrecision(decimals int) FixedPrecision {
	return FixedPrecision{scale: math.Pow(10, float64(decimals))}
}

func (p FixedPrecision) Round(v float64) float64 {
	return math.Round(v*p.scale) / p.scale
}

// GeometryFactory builds go-geom geometries with a fixed coordinate
// layout, SRID and precision model. The precision model belongs to the
// factory, not to the geometries it creates.
type GeometryFactory struct {
	layout    geom.Layout
	srid      int
	precision PrecisionModel
}

// NewGeometryFactory returns a factory for the given layout and SRID. A
// nil precision model means floating (exact) precision.
func NewGeometryFactory(layout geom.Layout, srid int, pm PrecisionModel) *GeometryFactory {
	if pm == nil {
		pm = FloatingPrecision{}
	}
	return &GeometryFactory{layout: layout, srid: srid, precision: pm}
}

func (f *GeometryFactory) Layout() geom.Layout { return f.layout }

func (f *GeometryFactory) SRID() int { return f.srid }

// Round applies the factory's precision model to a single ordinate.
func (f *GeometryFactory) Round(v float64) float64 { return f.precision.Round(v) }

func (f *GeometryFactory) Point(c geom.Coord) (*geom.Point, error) {
	p, err := geom.NewPoint(f.layout).SetCoords(c)
	if err != nil {
		return nil, err
	}
	return p.SetSRID(f.srid), nil
}

func (f *GeometryFactory) LineString(coords []geom.Coord) (*geom.LineString, error) {
	ls, err := geom.NewLineString(f.layout).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return ls.SetSRID(f.srid), nil
}

func (f *GeometryFactory) Polygon(rings [][]geom.Coord) (*geom.Polygon, error) {
	p, err := geom.NewPolygon(f.layout).SetCoords(rings)
	if err != nil {
		return nil, err
	}
	return p.SetSRID(f.srid), nil
}

func (f *GeometryFactory) MultiPoint(coords []geom.Coord) (*geom.MultiPoint, error) {
	mp, err := geom.NewMultiPoint(f.layout).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return mp.SetSRID(f.srid), nil
}

func (f *GeometryFactory) MultiLineString(coords [][]geom.Coord) (*geom.MultiLineString, error) {
	mls, err := geom.NewMultiLineString(f.layout).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return mls.SetSRID(f.srid), nil
}

func (f *GeometryFactory) MultiPolygon(coords [][][]geom.Coord) (*geom.MultiPolygon, error) {
	mp, err := geom.NewMultiPolygon(f.layout).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	return mp.SetSRID(f.srid), nil
}

func (f *GeometryFactory) GeometryCollection(geoms []geom.T) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	if err := gc.Push(geoms...); err != nil {
		return nil, err
	}
	return gc.SetSRID(f.srid), nil
}

// layoutFor maps a dimension/measure configuration to a go-geom layout.
// The spatial dimension (dimension minus measures) must be 2 or 3.
func layoutFor(dimension, measures int) (geom.Layout, error) {
	if dimension < 0 || measures < 0 {
		return geom.NoLayout, fmt.Errorf("%w: negative dimension or measures (%d, %d)",
			ErrInvalidConfiguration, dimension, measures)
	}
	if measures > 1 {
		return geom.NoLayout, fmt.Errorf("%w: at most one measure is supported, got %d",
			ErrInvalidConfiguration, measures)
	}
	if spatial := dimension - measures; spatial < 2 || spatial > 3 {
		return geom.NoLayout, fmt.Errorf("%w: spatial dimension must be 2 or 3, got %d",
			ErrInvalidConfiguration, spatial)
	}
	switch {
	case dimension == 2:
		return geom.XY, nil
	case dimension == 3 && measures == 0:
		return geom.XYZ, nil
	case dimension == 3 && measures == 1:
		return geom.XYM, nil
	default:
		return geom.XYZM, nil
	}
}

package geojson

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// decoder drives one read over a token stream. Every read method is
// called with the reader positioned on the first token of the value and
// returns with it positioned on the last (for containers, the closing
// bracket). Decoders hold no state beyond the stream position; fresh
// values are built per call.
type decoder struct {
	s *Serializer
	r TokenReader
}

func (d *decoder) cur() Token { return d.r.Current() }

func (d *decoder) advance() error { return d.r.Advance() }

func (d *decoder) errf(kind error, format string, args ...any) error {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  d.r.Current().Offset,
	}
}

// readCoord reads one coordinate array. The first two elements must be
// numbers; elements up to the configured stride are copied verbatim and
// anything beyond it is consumed and dropped. Short coordinates pad the
// remaining ordinates with zero (JSON cannot carry NaN).
func (d *decoder) readCoord() (geom.Coord, error) {
	if t := d.cur().Type; t != TokenArrayStart {
		return nil, d.errf(ErrMalformedCoordinate, "expected array, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	c := make(geom.Coord, d.s.stride)
	n := 0
	for d.cur().Type != TokenArrayEnd {
		if t := d.cur().Type; t != TokenNumber {
			return nil, d.errf(ErrMalformedCoordinate, "expected number ordinate, got %s", t)
		}
		if n < d.s.stride {
			c[n] = d.cur().Num
		}
		n++
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	if n < 2 {
		return nil, d.errf(ErrMalformedCoordinate, "coordinate has %d ordinates, need at least 2", n)
	}
	return c, nil
}

// The three nesting depths share one shape: read elements one level down
// until the closing bracket. The stream's array-end token terminates the
// sequence; there is no in-band sentinel.

// readCoords1 reads a flat coordinate sequence (LineString, MultiPoint,
// one polygon ring).
func (d *decoder) readCoords1() ([]geom.Coord, error) {
	if t := d.cur().Type; t != TokenArrayStart {
		return nil, d.errf(ErrMalformedGeometry, "expected coordinate array, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	var coords []geom.Coord
	for d.cur().Type != TokenArrayEnd {
		c, err := d.readCoord()
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	return coords, nil
}

// readCoords2 reads one level of nesting (Polygon rings,
// MultiLineString).
func (d *decoder) readCoords2() ([][]geom.Coord, error) {
	if t := d.cur().Type; t != TokenArrayStart {
		return nil, d.errf(ErrMalformedGeometry, "expected coordinate array, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	var coords [][]geom.Coord
	for d.cur().Type != TokenArrayEnd {
		c, err := d.readCoords1()
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	return coords, nil
}

// readCoords3 reads two levels of nesting (MultiPolygon).
func (d *decoder) readCoords3() ([][][]geom.Coord, error) {
	if t := d.cur().Type; t != TokenArrayStart {
		return nil, d.errf(ErrMalformedGeometry, "expected coordinate array, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}
	var coords [][][]geom.Coord
	for d.cur().Type != TokenArrayEnd {
		c, err := d.readCoords2()
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	return coords, nil
}

// capture records the tokens of the current value so it can be replayed
// later, and leaves the reader on the value's last token.
func (d *decoder) capture() ([]Token, error) {
	toks := []Token{d.cur()}
	depth := 0
	switch d.cur().Type {
	case TokenArrayStart, TokenObjectStart:
		depth = 1
	default:
		return toks, nil
	}
	for depth > 0 {
		if err := d.advance(); err != nil {
			return nil, err
		}
		tok := d.cur()
		switch tok.Type {
		case TokenArrayStart, TokenObjectStart:
			depth++
		case TokenArrayEnd, TokenObjectEnd:
			depth--
		case TokenEOF:
			return nil, d.errf(ErrMalformedGeometry, "unexpected end of input")
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// skipValue consumes the current value without building anything, for
// unknown and discarded members.
func (d *decoder) skipValue() error {
	depth := 0
	switch d.cur().Type {
	case TokenArrayStart, TokenObjectStart:
		depth = 1
	default:
		return nil
	}
	for depth > 0 {
		if err := d.advance(); err != nil {
			return err
		}
		switch d.cur().Type {
		case TokenArrayStart, TokenObjectStart:
			depth++
		case TokenArrayEnd, TokenObjectEnd:
			depth--
		case TokenEOF:
			return d.errf(ErrMalformedGeometry, "unexpected end of input")
		}
	}
	return nil
}

// replay returns a decoder over recorded tokens, positioned on the first.
func (d *decoder) replay(toks []Token) *decoder {
	return &decoder{s: d.s, r: &replayReader{toks: toks}}
}

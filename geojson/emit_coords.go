package geojson

import "github.com/twpayne/go-geom"

// encoder drives one write over a token stream. Write failures stick on
// the writer; semantic failures (an unserializable value) stick on the
// encoder and are surfaced once by Encode.
type encoder struct {
	s   *Serializer
	w   TokenWriter
	err error
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// writeCoord emits one coordinate as [round(x), round(y), (z), (m)]: X
// and Y go through the precision model, everything above them is copied
// verbatim, truncated to the configured stride.
func (e *encoder) writeCoord(c geom.Coord) {
	e.w.WriteArrayStart()
	for i := 0; i < e.s.stride && i < len(c); i++ {
		v := c[i]
		if i < 2 {
			v = e.s.factory.Round(v)
		}
		e.w.WriteNumber(v)
	}
	e.w.WriteArrayEnd()
}

// The write side mirrors the depth-indexed readers: each level emits its
// own brackets explicitly, no sentinel involved.

func (e *encoder) writeCoords1(coords []geom.Coord) {
	e.w.WriteArrayStart()
	for _, c := range coords {
		e.writeCoord(c)
	}
	e.w.WriteArrayEnd()
}

func (e *encoder) writeCoords2(coords [][]geom.Coord) {
	e.w.WriteArrayStart()
	for _, c := range coords {
		e.writeCoords1(c)
	}
	e.w.WriteArrayEnd()
}

func (e *encoder) writeCoords3(coords [][][]geom.Coord) {
	e.w.WriteArrayStart()
	for _, c := range coords {
		e.writeCoords2(c)
	}
	e.w.WriteArrayEnd()
}

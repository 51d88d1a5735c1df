package geojson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// jsonTokenReader adapts encoding/json's pull tokenizer to the TokenReader
// shape. It tracks object/array nesting so member names are distinguished
// from string values.
type jsonTokenReader struct {
	dec *json.Decoder
	cur Token

	// stack holds 'a' for arrays and, for objects, 'k' when the next
	// token is a member name or 'v' when it is the member's value.
	stack []byte
}

// NewTokenReader returns a TokenReader over r, backed by encoding/json.
// The returned reader is positioned before the first token.
func NewTokenReader(r io.Reader) TokenReader {
	return &jsonTokenReader{dec: json.NewDecoder(r)}
}

func (r *jsonTokenReader) Current() Token { return r.cur }

func (r *jsonTokenReader) Advance() error {
	off := r.dec.InputOffset()
	tok, err := r.dec.Token()
	if err == io.EOF {
		r.cur = Token{Type: TokenEOF, Offset: off}
		return nil
	}
	if err != nil {
		return fmt.Errorf("geojson: token stream: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			r.cur = Token{Type: TokenObjectStart, Offset: off}
			r.stack = append(r.stack, 'k')
			return nil
		case '}':
			r.cur = Token{Type: TokenObjectEnd, Offset: off}
			r.pop()
		case '[':
			r.cur = Token{Type: TokenArrayStart, Offset: off}
			r.stack = append(r.stack, 'a')
			return nil
		case ']':
			r.cur = Token{Type: TokenArrayEnd, Offset: off}
			r.pop()
		}
	case string:
		if n := len(r.stack); n > 0 && r.stack[n-1] == 'k' {
			r.cur = Token{Type: TokenName, Str: v, Offset: off}
			r.stack[n-1] = 'v'
			return nil
		}
		r.cur = Token{Type: TokenString, Str: v, Offset: off}
	case float64:
		r.cur = Token{Type: TokenNumber, Num: v, Offset: off}
	case bool:
		r.cur = Token{Type: TokenBool, Bool: v, Offset: off}
	case nil:
		r.cur = Token{Type: TokenNull, Offset: off}
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("geojson: token stream: %w", err)
		}
		r.cur = Token{Type: TokenNumber, Num: f, Offset: off}
	default:
		return fmt.Errorf("geojson: token stream: unexpected token %T", tok)
	}

	r.afterValue()
	return nil
}

// afterValue flips an enclosing object back to expecting a member name
// once a value (scalar or closed container) completes.
func (r *jsonTokenReader) afterValue() {
	if n := len(r.stack); n > 0 && r.stack[n-1] == 'v' {
		r.stack[n-1] = 'k'
	}
}

func (r *jsonTokenReader) pop() {
	if n := len(r.stack); n > 0 {
		r.stack = r.stack[:n-1]
	}
}

// jsonTokenWriter emits JSON text for the TokenWriter push interface.
// Separators are inserted automatically; the first error sticks and turns
// every later call into a no-op.
type jsonTokenWriter struct {
	w   *bufio.Writer
	err error

	// comma tracks, per open container, whether an element has been
	// written at that level.
	comma []bool
	// named is set between a member name and its value, suppressing the
	// element separator.
	named bool
}

// NewTokenWriter returns a TokenWriter emitting JSON text to w.
func NewTokenWriter(w io.Writer) TokenWriter {
	return &jsonTokenWriter{w: bufio.NewWriter(w)}
}

func (w *jsonTokenWriter) WriteObjectStart() {
	w.sep()
	w.writeByte('{')
	w.comma = append(w.comma, false)
}

func (w *jsonTokenWriter) WriteObjectEnd() {
	w.writeByte('}')
	w.popLevel()
}

func (w *jsonTokenWriter) WriteArrayStart() {
	w.sep()
	w.writeByte('[')
	w.comma = append(w.comma, false)
}

func (w *jsonTokenWriter) WriteArrayEnd() {
	w.writeByte(']')
	w.popLevel()
}

func (w *jsonTokenWriter) WriteName(name string) {
	w.sep()
	w.writeQuoted(name)
	w.writeByte(':')
	w.named = true
}

func (w *jsonTokenWriter) WriteString(v string) {
	w.sep()
	w.writeQuoted(v)
}

func (w *jsonTokenWriter) WriteNumber(v float64) {
	w.sep()
	if w.err != nil {
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		w.err = fmt.Errorf("geojson: token stream: unsupported number value %v", v)
		return
	}
	// Match encoding/json: fixed notation in the common range, exponent
	// notation outside it.
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	_, err := w.w.WriteString(strconv.FormatFloat(v, format, -1, 64))
	w.setErr(err)
}

func (w *jsonTokenWriter) WriteBool(v bool) {
	w.sep()
	if v {
		w.writeRaw("true")
	} else {
		w.writeRaw("false")
	}
}

func (w *jsonTokenWriter) WriteNull() {
	w.sep()
	w.writeRaw("null")
}

func (w *jsonTokenWriter) Err() error { return w.err }

func (w *jsonTokenWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// sep writes the element separator due before the next element, if any.
func (w *jsonTokenWriter) sep() {
	if w.named {
		w.named = false
		return
	}
	if n := len(w.comma); n > 0 {
		if w.comma[n-1] {
			w.writeByte(',')
		} else {
			w.comma[n-1] = true
		}
	}
}

func (w *jsonTokenWriter) popLevel() {
	if n := len(w.comma); n > 0 {
		w.comma = w.comma[:n-1]
	}
}

func (w *jsonTokenWriter) writeByte(b byte) {
	if w.err != nil {
		return
	}
	w.setErr(w.w.WriteByte(b))
}

func (w *jsonTokenWriter) writeRaw(s string) {
	if w.err != nil {
		return
	}
	_, err := w.w.WriteString(s)
	w.setErr(err)
}

func (w *jsonTokenWriter) writeQuoted(s string) {
	if w.err != nil {
		return
	}
	b, err := json.Marshal(s)
	if err != nil {
		w.setErr(err)
		return
	}
	_, err = w.w.Write(b)
	w.setErr(err)
}

func (w *jsonTokenWriter) setErr(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

package geojson

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestTokenReader_Sequence(t *testing.T) {
	input := `{"a":[1,true,null,"s"],"b":{"c":2.5}}`
	r := NewTokenReader(strings.NewReader(input))

	want := []Token{
		{Type: TokenObjectStart},
		{Type: TokenName, Str: "a"},
		{Type: TokenArrayStart},
		{Type: TokenNumber, Num: 1},
		{Type: TokenBool, Bool: true},
		{Type: TokenNull},
		{Type: TokenString, Str: "s"},
		{Type: TokenArrayEnd},
		{Type: TokenName, Str: "b"},
		{Type: TokenObjectStart},
		{Type: TokenName, Str: "c"},
		{Type: TokenNumber, Num: 2.5},
		{Type: TokenObjectEnd},
		{Type: TokenObjectEnd},
		{Type: TokenEOF},
	}
	for i, w := range want {
		if err := r.Advance(); err != nil {
			t.Fatalf("Advance %d failed: %v", i, err)
		}
		got := r.Current()
		if got.Type != w.Type || got.Str != w.Str || got.Num != w.Num || got.Bool != w.Bool {
			t.Errorf("token %d: got %s, want %s", i, got, w)
		}
	}
}

func TestTokenReader_NameVersusStringValue(t *testing.T) {
	// String values inside objects and arrays must not be mistaken for
	// member names.
	input := `{"k":"v","l":["a","b"]}`
	r := NewTokenReader(strings.NewReader(input))

	var names, values []string
	for {
		if err := r.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		tok := r.Current()
		if tok.Type == TokenEOF {
			break
		}
		switch tok.Type {
		case TokenName:
			names = append(names, tok.Str)
		case TokenString:
			values = append(values, tok.Str)
		}
	}
	if strings.Join(names, ",") != "k,l" {
		t.Errorf("names: got %v", names)
	}
	if strings.Join(values, ",") != "v,a,b" {
		t.Errorf("values: got %v", values)
	}
}

func TestTokenReader_SyntaxError(t *testing.T) {
	r := NewTokenReader(strings.NewReader(`{"a":}`))
	var err error
	for i := 0; i < 4 && err == nil; i++ {
		err = r.Advance()
	}
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestTokenWriter_Nested(t *testing.T) {
	var buf bytes.Buffer
	w := NewTokenWriter(&buf)

	w.WriteObjectStart()
	w.WriteName("type")
	w.WriteString("Point")
	w.WriteName("coordinates")
	w.WriteArrayStart()
	w.WriteNumber(1.5)
	w.WriteNumber(-2)
	w.WriteArrayEnd()
	w.WriteName("ok")
	w.WriteBool(true)
	w.WriteName("none")
	w.WriteNull()
	w.WriteObjectEnd()

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	want := `{"type":"Point","coordinates":[1.5,-2],"ok":true,"none":null}`
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\n  got:  %s\n  want: %s", got, want)
	}
}

func TestTokenWriter_EmptyContainers(t *testing.T) {
	var buf bytes.Buffer
	w := NewTokenWriter(&buf)

	w.WriteArrayStart()
	w.WriteObjectStart()
	w.WriteObjectEnd()
	w.WriteArrayStart()
	w.WriteArrayEnd()
	w.WriteArrayEnd()

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if got, want := buf.String(), `[{},[]]`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestTokenWriter_NumberFormats(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{1.23, "1.23"},
		{-0.5, "-0.5"},
		{1e21, "1e+21"},
		{100.25, "100.25"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := NewTokenWriter(&buf)
		w.WriteNumber(tt.in)
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush failed: %v", err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("WriteNumber(%v): got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTokenWriter_NaNSticks(t *testing.T) {
	var buf bytes.Buffer
	w := NewTokenWriter(&buf)
	w.WriteArrayStart()
	w.WriteNumber(math.NaN())
	w.WriteArrayEnd()
	if w.Err() == nil {
		t.Fatal("expected sticky error for NaN")
	}
	if err := w.Flush(); err == nil {
		t.Fatal("Flush must report the sticky error")
	}
}

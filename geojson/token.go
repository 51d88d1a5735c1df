package geojson

import "fmt"

// TokenType identifies the kind of JSON token a reader is positioned on.
type TokenType uint8

const (
	TokenEOF TokenType = iota

	// Structural
	TokenObjectStart // {
	TokenObjectEnd   // }
	TokenArrayStart  // [
	TokenArrayEnd    // ]

	// Object member name
	TokenName

	// Scalars
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenObjectStart:
		return "{"
	case TokenObjectEnd:
		return "}"
	case TokenArrayStart:
		return "["
	case TokenArrayEnd:
		return "]"
	case TokenName:
		return "NAME"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenBool:
		return "BOOL"
	case TokenNull:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical element of a JSON stream.
type Token struct {
	Type   TokenType
	Str    string  // TokenName, TokenString
	Num    float64 // TokenNumber
	Bool   bool    // TokenBool
	Offset int64   // byte offset in the input, for error reporting
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenName, TokenString:
		return fmt.Sprintf("%s(%q)", t.Type, t.Str)
	case TokenNumber:
		return fmt.Sprintf("%s(%v)", t.Type, t.Num)
	case TokenBool:
		return fmt.Sprintf("%s(%v)", t.Type, t.Bool)
	default:
		return t.Type.String()
	}
}

// TokenReader is the pull side of the token-stream collaborator. A fresh
// reader is positioned before the first token; Current is meaningful only
// after the first Advance. At end of input Current returns a TokenEOF
// token.
type TokenReader interface {
	// Current returns the token the reader is positioned on.
	Current() Token
	// Advance moves to the next token. A syntax error in the underlying
	// stream fails the whole read; there is no recovery.
	Advance() error
}

// TokenWriter is the push side of the token-stream collaborator. Errors
// are sticky: the first failure is retained and every later call is a
// no-op, so codecs write without per-call checks and inspect Err once.
type TokenWriter interface {
	WriteObjectStart()
	WriteObjectEnd()
	WriteArrayStart()
	WriteArrayEnd()
	WriteName(name string)
	WriteString(v string)
	WriteNumber(v float64)
	WriteBool(v bool)
	WriteNull()

	// Err returns the first write failure, if any.
	Err() error
	// Flush writes any buffered output to the underlying sink.
	Flush() error
}

// replayReader replays a recorded token slice. Member order in GeoJSON
// objects is not guaranteed, so a "coordinates" member seen before "type"
// is recorded and replayed once the geometry kind is known.
type replayReader struct {
	toks []Token
	pos  int
}

func (r *replayReader) Current() Token {
	if r.pos >= len(r.toks) {
		return Token{Type: TokenEOF}
	}
	return r.toks[r.pos]
}

func (r *replayReader) Advance() error {
	if r.pos < len(r.toks) {
		r.pos++
	}
	return nil
}

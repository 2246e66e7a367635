package engine

// Frames tracks container nesting for token decoders (encoding/json,
// goccy/go-json) that report object keys as plain strings. Drivers feed it
// each raw token and get back the engine Token with keys told apart from
// string values.
type Frames struct {
	stack []frame
}

type frame struct {
	object       bool
	expectingKey bool
}

// Delim converts one of '{', '}', '[' or ']'.
func (f *Frames) Delim(d rune, off int64) Token {
	switch d {
	case '{':
		f.stack = append(f.stack, frame{object: true, expectingKey: true})
		return Token{Kind: KindBeginObject, Offset: off}
	case '[':
		f.stack = append(f.stack, frame{})
		return Token{Kind: KindBeginArray, Offset: off}
	case '}':
		f.pop()
		return Token{Kind: KindEndObject, Offset: off}
	default:
		f.pop()
		return Token{Kind: KindEndArray, Offset: off}
	}
}

// Str converts a string token, which is a key when the enclosing object is
// waiting for one.
func (f *Frames) Str(s string, off int64) Token {
	if n := len(f.stack); n > 0 && f.stack[n-1].object && f.stack[n-1].expectingKey {
		f.stack[n-1].expectingKey = false
		return Token{Kind: KindKey, String: s, Offset: off}
	}
	f.valueDone()
	return Token{Kind: KindString, String: s, Offset: off}
}

// Scalar records a number, bool or null value.
func (f *Frames) Scalar(t Token) Token {
	f.valueDone()
	return t
}

func (f *Frames) pop() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.valueDone()
}

// valueDone marks the pending member value of the enclosing object as read.
func (f *Frames) valueDone() {
	if n := len(f.stack); n > 0 && f.stack[n-1].object {
		f.stack[n-1].expectingKey = true
	}
}

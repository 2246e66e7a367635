// Package engine is the token layer shared by every input driver: the
// token model, the value-tree builder and the enforcement guard.
package engine

import (
	"encoding/json"
	"io"
)

// Kind classifies a Token.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token is one lexical item. String holds keys and string values, Number
// the literal text of a number. Offset is the approximate input position,
// or -1 when the driver cannot tell.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource produces tokens until io.EOF.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// DecodeAnyFromSource reads one complete value from src. Objects become
// map[string]any, arrays []any and numbers json.Number.
func DecodeAnyFromSource(src TokenSource) (any, error) {
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return DecodeValue(src, tok)
}

// container is an object or array under construction.
type container struct {
	object bool
	obj    map[string]any
	arr    []any
	key    string
}

func (c *container) add(v any) {
	if c.object {
		c.obj[c.key] = v
		return
	}
	c.arr = append(c.arr, v)
}

func (c *container) value() any {
	if c.object {
		return c.obj
	}
	return c.arr
}

// DecodeValue builds the value that starts with tok, reading the rest of
// it from src. Nesting is tracked on an explicit stack.
func DecodeValue(src TokenSource, tok Token) (any, error) {
	var stack []*container
	for {
		var (
			v        any
			complete bool
		)
		switch tok.Kind {
		case KindBeginObject:
			stack = append(stack, &container{object: true, obj: make(map[string]any)})
		case KindBeginArray:
			stack = append(stack, &container{arr: []any{}})
		case KindKey:
			if len(stack) == 0 || !stack[len(stack)-1].object {
				return nil, io.ErrUnexpectedEOF
			}
			stack[len(stack)-1].key = tok.String
		case KindEndObject, KindEndArray:
			n := len(stack)
			if n == 0 || stack[n-1].object != (tok.Kind == KindEndObject) {
				return nil, io.ErrUnexpectedEOF
			}
			v, complete = stack[n-1].value(), true
			stack = stack[:n-1]
		case KindString:
			v, complete = tok.String, true
		case KindNumber:
			v, complete = json.Number(tok.Number), true
		case KindBool:
			v, complete = tok.Bool, true
		case KindNull:
			complete = true
		default:
			return nil, io.ErrUnexpectedEOF
		}

		if complete {
			if len(stack) == 0 {
				return v, nil
			}
			stack[len(stack)-1].add(v)
		}

		var err error
		if tok, err = src.NextToken(); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
	}
}

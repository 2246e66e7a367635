// Package jsonc accepts JSON with comments and trailing commas (JSONC).
package jsonc

import (
	"io"

	"github.com/tidwall/jsonc"

	"github.com/reoring/gojmap"
)

// NewBytes strips comments and trailing commas from b and returns a Source
// backed by the active JSON driver. Byte offsets are preserved.
func NewBytes(b []byte) gojmap.Source { return gojmap.JSONBytes(jsonc.ToJSON(b)) }

// NewReader reads all of r and behaves like NewBytes.
func NewReader(r io.Reader) gojmap.Source {
	b, err := io.ReadAll(r)
	if err != nil {
		return failed{err: err}
	}
	return NewBytes(b)
}

type failed struct{ err error }

func (f failed) NextToken() (gojmap.Token, error) { return gojmap.Token{}, f.err }
func (f failed) Location() int64                  { return -1 }

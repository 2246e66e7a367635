package gojmap

import (
	"bytes"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"

	eng "github.com/reoring/gojmap/internal/engine"
	"github.com/reoring/gojmap/internal/stream"
)

// Parse is the primary entry point. It consumes tokens from the Source under
// the enforcement requested by opts, builds the JSON value tree and converts
// it with c.
func Parse[T any](src Source, c Codec[T], opts ...ParseOpt) (T, error) {
	var zero T
	v, err := ReadValue(src, opts...)
	if err != nil {
		return zero, err
	}
	return c.Decode(v)
}

// Unmarshal parses JSON bytes with c.
func Unmarshal[T any](data []byte, c Codec[T], opts ...ParseOpt) (T, error) {
	return Parse(JSONBytes(data), c, opts...)
}

// StreamParse parses JSON from an io.Reader. When MaxBytes is set it
// enforces the size cap up front.
func StreamParse[T any](r io.Reader, c Codec[T], opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		var zero T
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return zero, &ParseError{Code: CodeParseError, Cause: err}
		}
		if int64(len(data)) > opt.MaxBytes {
			return zero, &ParseError{Code: CodeTruncated, Cause: errors.New("max bytes exceeded")}
		}
		return Parse(JSONBytes(data), c, opts...)
	}
	return Parse(JSONReader(r), c, opts...)
}

// ReadValue reads one JSON value tree from src.
func ReadValue(src Source, opts ...ParseOpt) (any, error) {
	v, err := eng.DecodeAnyFromSource(enforcedTokens(src, lastOpt(opts)))
	if err != nil {
		return nil, SourceError(err)
	}
	return v, nil
}

// ParseArray reads a JSON array from src one element at a time and converts
// each element with decode. The first failing element stops the read, so
// the rest of the input is never consumed; its error is rebased under the
// element index. Input that is not an array is an invalid JSON type for
// typeName.
func ParseArray[T any](src Source, typeName string, decode func(any) (T, error), opts ...ParseOpt) ([]T, error) {
	tokens := enforcedTokens(src, lastOpt(opts))
	tok, err := tokens.NextToken()
	if err != nil {
		return nil, SourceError(err)
	}
	if tok.Kind != eng.KindBeginArray {
		return nil, InvalidJSONType(typeName)
	}
	var out []T
	for i := 0; ; i++ {
		tok, err := tokens.NextToken()
		if err != nil {
			return nil, SourceError(err)
		}
		if tok.Kind == eng.KindEndArray {
			return out, nil
		}
		v, err := eng.DecodeAnyFromSource(stream.NewPreloadedSource(tokens, tok))
		if err != nil {
			return nil, SourceError(err)
		}
		x, err := decode(v)
		if err != nil {
			return nil, RebaseIndex(err, i)
		}
		out = append(out, x)
	}
}

// SourceError converts an error returned while reading tokens into a
// *ParseError (parse_error, duplicate_key or truncated).
func SourceError(err error) error { return fromEngine(err) }

// Encoder is implemented by values that convert themselves to a JSON value
// tree.
type Encoder interface {
	ToJSON() any
}

// Marshal serializes v with goccy/go-json. Values implementing Encoder are
// converted to their value tree first. Object keys are emitted in sorted
// order.
func Marshal(v any) ([]byte, error) {
	if e, ok := v.(Encoder); ok {
		v = e.ToJSON()
	}
	return gojson.Marshal(v)
}

// MarshalIndent is Marshal with indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	if e, ok := v.(Encoder); ok {
		v = e.ToJSON()
	}
	return gojson.MarshalIndent(v, prefix, indent)
}

// MarshalTo writes the serialized form of v followed by a newline.
func MarshalTo(w io.Writer, v any) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.Grow(len(b) + 1)
	buf.Write(b)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

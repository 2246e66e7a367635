// Package gojson is the goccy/go-json token driver.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/gojmap"
	eng "github.com/reoring/gojmap/internal/engine"
)

// Driver returns the go-json driver for gojmap.SetJSONDriver.
func Driver() gojmap.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) gojmap.Source {
	return gojmap.SourceFromEngine(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) gojmap.Source { return gojmap.SourceFromEngine(NewBytes(b)) }
func (driverGoJSON) Name() string                    { return "go-json" }

type source struct {
	dec    *j.Decoder
	frames eng.Frames
}

// NewReader tokenizes the JSON document read from r with goccy/go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		return s.frames.Delim(rune(v), -1), nil
	case string:
		return s.frames.Str(v, -1), nil
	case bool:
		return s.frames.Scalar(eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}), nil
	case j.Number:
		return s.frames.Scalar(eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}), nil
	case float64:
		return s.frames.Scalar(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}), nil
	default:
		return s.frames.Scalar(eng.Token{Kind: eng.KindNull, Offset: -1}), nil
	}
}

// Location is unknown: go-json's decoder does not expose its input offset.
func (s *source) Location() int64 { return -1 }

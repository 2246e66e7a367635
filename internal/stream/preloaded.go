package stream

import (
	"io"

	eng "github.com/reoring/gojmap/internal/engine"
)

// PreloadedSource yields exactly one JSON value: first, followed by the
// rest of that value read from inner. Once the value is closed it returns
// io.EOF and leaves inner positioned on the next sibling, which lets a
// batch decoder hand each array element to a fresh decoder.
type PreloadedSource struct {
	inner   eng.TokenSource
	first   eng.Token
	started bool
	depth   int
	done    bool
}

// NewPreloadedSource returns a source for the value that begins with first,
// a token already taken from inner.
func NewPreloadedSource(inner eng.TokenSource, first eng.Token) *PreloadedSource {
	return &PreloadedSource{inner: inner, first: first}
}

func (p *PreloadedSource) NextToken() (eng.Token, error) {
	if p.done {
		return eng.Token{}, io.EOF
	}
	tok := p.first
	if p.started {
		var err error
		if tok, err = p.inner.NextToken(); err != nil {
			return eng.Token{}, err
		}
	}
	p.started = true
	p.track(tok.Kind)
	return tok, nil
}

// track updates the nesting depth; the value is complete when the depth
// returns to zero, which for a scalar happens on its only token.
func (p *PreloadedSource) track(k eng.Kind) {
	switch k {
	case eng.KindBeginObject, eng.KindBeginArray:
		p.depth++
	case eng.KindEndObject, eng.KindEndArray:
		p.depth--
	}
	if p.depth <= 0 {
		p.done = true
	}
}

func (p *PreloadedSource) Location() int64 { return p.inner.Location() }

package engine

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"
)

// sliceSource replays a fixed token list; Location is the token index.
type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) Location() int64 { return int64(s.pos) }

func TestDecodeAnyFromSource_Nested(t *testing.T) {
	in := map[string]any{
		"a": []any{json.Number("1"), true, nil, map[string]any{"b": "x"}},
		"c": []any{},
	}
	got, err := DecodeAnyFromSource(NewTreeSource(in))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("got %#v", got)
	}
}

func TestDecodeValue_Truncated(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginArray},
		{Kind: KindString, String: "x"},
	}}
	if _, err := DecodeAnyFromSource(src); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("want unexpected EOF, got %v", err)
	}
}

func TestDecodeValue_MismatchedEnd(t *testing.T) {
	src := &sliceSource{toks: []Token{{Kind: KindBeginArray}, {Kind: KindEndObject}}}
	if _, err := DecodeAnyFromSource(src); err == nil {
		t.Fatal("want error for ']' closed by '}'")
	}
}

func drain(src TokenSource) error {
	for {
		if _, err := src.NextToken(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func TestEnforcement_DuplicateKey(t *testing.T) {
	toks := []Token{
		{Kind: KindBeginArray},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a/b"}, {Kind: KindNull},
		{Kind: KindKey, String: "a/b"}, {Kind: KindNull},
		{Kind: KindEndObject},
		{Kind: KindEndArray},
	}

	var seen []SimpleIssue
	err := drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { seen = append(seen, si) },
	}))
	if err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if len(seen) != 1 || seen[0].Code != "duplicate_key" || seen[0].Path != "/0/a~1b" {
		t.Fatalf("unexpected issues %+v", seen)
	}

	err = drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{OnDuplicate: DupError}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Path != "/0/a~1b" {
		t.Fatalf("want duplicate_key at /0/a~1b, got %v", err)
	}
}

func TestEnforcement_SiblingObjectsDoNotShareKeys(t *testing.T) {
	toks := []Token{
		{Kind: KindBeginArray},
		{Kind: KindBeginObject}, {Kind: KindKey, String: "id"}, {Kind: KindString, String: "1"}, {Kind: KindEndObject},
		{Kind: KindBeginObject}, {Kind: KindKey, String: "id"}, {Kind: KindString, String: "2"}, {Kind: KindEndObject},
		{Kind: KindEndArray},
	}
	if err := drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{OnDuplicate: DupError})); err != nil {
		t.Fatal(err)
	}
}

func TestEnforcement_MaxDepthAndBytes(t *testing.T) {
	toks := []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindBeginArray},
		{Kind: KindBeginArray},
	}
	err := drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "parse_error" || ie.Path != "/a/0" {
		t.Fatalf("want depth error at /a/0, got %v", err)
	}

	err = drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxBytes: 2}))
	if !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("want truncated, got %v", err)
	}
}

func TestWrapWithEnforcement_Disabled(t *testing.T) {
	src := &sliceSource{}
	if got := WrapWithEnforcement(src, EnforceOptions{}); got != TokenSource(src) {
		t.Fatal("disabled options must return the source unchanged")
	}
}

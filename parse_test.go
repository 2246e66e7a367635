package gojmap_test

import (
	"bytes"
	"testing"

	"github.com/reoring/gojmap"
)

// raw passes the value tree through unchanged.
type raw struct{}

func (raw) Decode(v any) (any, error) { return v, nil }
func (raw) Encode(v any) any          { return v }

func TestStreamParse_DuplicateKey_Error(t *testing.T) {
	jsb := []byte(`{"a":1,"a":2}`)
	opt := gojmap.ParseOpt{Strictness: gojmap.Strictness{OnDuplicateKey: gojmap.Error}}
	_, err := gojmap.StreamParse(bytes.NewReader(jsb), raw{}, opt)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	pe, ok := gojmap.AsParseError(err)
	if !ok {
		t.Fatalf("expected *ParseError, got: %v", err)
	}
	if pe.Code != gojmap.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got: %v", pe)
	}
	if pe.Path != "/a" {
		t.Fatalf("expected path=/a, got: %s", pe.Path)
	}
}

func TestStreamParse_DuplicateKey_NestedPath(t *testing.T) {
	jsb := []byte(`[{"a":1,"a":2}]`)
	opt := gojmap.ParseOpt{Strictness: gojmap.Strictness{OnDuplicateKey: gojmap.Error}}
	_, err := gojmap.StreamParse(bytes.NewReader(jsb), raw{}, opt)
	pe, ok := gojmap.AsParseError(err)
	if !ok {
		t.Fatalf("expected *ParseError, got: %v", err)
	}
	if pe.Path != "/0/a" {
		t.Fatalf("expected path=/0/a, got: %s", pe.Path)
	}
}

func TestParse_DuplicateKey_Warn(t *testing.T) {
	var warned []*gojmap.ParseError
	opt := gojmap.ParseOpt{
		Strictness: gojmap.Strictness{OnDuplicateKey: gojmap.Warn},
		OnWarning:  func(pe *gojmap.ParseError) { warned = append(warned, pe) },
	}
	v, err := gojmap.Unmarshal([]byte(`{"a":1,"a":2}`), raw{}, opt)
	if err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	if m, ok := v.(map[string]any); !ok || len(m) != 1 {
		t.Fatalf("unexpected value %#v", v)
	}
	if len(warned) != 1 || warned[0].Path != "/a" {
		t.Fatalf("expected one warning at /a, got: %v", warned)
	}
}

func TestStreamParse_MaxDepth_Exceeded(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	jsb := []byte(`{"a":{"b":{"c":1}}}`)
	opt := gojmap.ParseOpt{MaxDepth: 2}
	_, err := gojmap.StreamParse(bytes.NewReader(jsb), raw{}, opt)
	if err == nil {
		t.Fatalf("expected error for max depth exceeded")
	}
	if pe, ok := gojmap.AsParseError(err); !ok || pe.Path != "/a/b" {
		t.Fatalf("expected path=/a/b for max depth, got: %v", err)
	}
}

func TestStreamParse_MaxBytes_Exceeded(t *testing.T) {
	data := append([]byte("{}"), bytes.Repeat([]byte("x"), 1024)...)
	opt := gojmap.ParseOpt{MaxBytes: 2}
	_, err := gojmap.StreamParse(bytes.NewReader(data), raw{}, opt)
	pe, ok := gojmap.AsParseError(err)
	if !ok || pe.Code != gojmap.CodeTruncated {
		t.Fatalf("expected truncated error, got: %v", err)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := gojmap.Unmarshal([]byte(`{"a":`), raw{})
	pe, ok := gojmap.AsParseError(err)
	if !ok || pe.Code != gojmap.CodeParseError {
		t.Fatalf("expected parse_error, got: %v", err)
	}
}

func TestParse_NumbersAreJSONNumber(t *testing.T) {
	n, err := gojmap.Unmarshal([]byte(`18446744073709551615`), gojmap.Uint64())
	if err != nil {
		t.Fatal(err)
	}
	if n != 18446744073709551615 {
		t.Fatalf("lost precision: %d", n)
	}
}

func TestMarshal_SortedKeys(t *testing.T) {
	b, err := gojmap.Marshal(map[string]any{"b": 1, "a": []any{true, nil}})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"a":[true,null],"b":1}` {
		t.Fatalf("unexpected output %s", b)
	}
}

func TestValueSource_RoundTrip(t *testing.T) {
	in := map[string]any{"list": []any{"x", uint64(7)}}
	v, err := gojmap.Parse(gojmap.ValueSource(in), gojmap.Map(gojmap.Slice(raw{})))
	if err != nil {
		t.Fatal(err)
	}
	if len(v["list"]) != 2 {
		t.Fatalf("unexpected %#v", v)
	}
}

func TestParseArray_StopsAtFirstBadElement(t *testing.T) {
	str := gojmap.String()
	got, err := gojmap.ParseArray(gojmap.JSONBytes([]byte(`["a","b"]`)), "names", str.Decode)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected %v", got)
	}

	// the unterminated tail is never read
	_, err = gojmap.ParseArray(gojmap.JSONBytes([]byte(`["a", 1, {`)), "names", str.Decode)
	pe, ok := gojmap.AsParseError(err)
	if !ok {
		t.Fatalf("expected *ParseError, got: %v", err)
	}
	if pe.Code != gojmap.CodeInvalidJSONType || pe.Path != "/1" {
		t.Fatalf("expected invalid_json_type at /1, got: %v", pe)
	}

	_, err = gojmap.ParseArray(gojmap.JSONBytes([]byte(`{}`)), "names", str.Decode)
	pe, ok = gojmap.AsParseError(err)
	if !ok || pe.Code != gojmap.CodeInvalidJSONType || pe.Target != "names" {
		t.Fatalf("expected invalid_json_type for names, got: %v", err)
	}
}

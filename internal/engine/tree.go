package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// NewTreeSource replays an already-decoded value tree as a token stream.
// Object keys are emitted in sorted order. Drivers for formats that decode
// into generic values (YAML) use it to feed the enforcement pipeline.
func NewTreeSource(v any) TokenSource {
	t := &treeSource{}
	if err := t.emit(v); err != nil {
		t.err = err
	}
	return t
}

type treeSource struct {
	toks []Token
	pos  int
	err  error
}

func (t *treeSource) NextToken() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.pos >= len(t.toks) {
		return Token{}, io.EOF
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, nil
}

func (t *treeSource) Location() int64 { return -1 }

func (t *treeSource) push(tok Token) {
	tok.Offset = -1
	t.toks = append(t.toks, tok)
}

func (t *treeSource) emit(v any) error {
	switch x := v.(type) {
	case nil:
		t.push(Token{Kind: KindNull})
	case bool:
		t.push(Token{Kind: KindBool, Bool: x})
	case string:
		t.push(Token{Kind: KindString, String: x})
	case json.Number:
		t.push(Token{Kind: KindNumber, Number: string(x)})
	case int:
		t.push(Token{Kind: KindNumber, Number: strconv.Itoa(x)})
	case int64:
		t.push(Token{Kind: KindNumber, Number: strconv.FormatInt(x, 10)})
	case uint64:
		t.push(Token{Kind: KindNumber, Number: strconv.FormatUint(x, 10)})
	case float64:
		t.push(Token{Kind: KindNumber, Number: strconv.FormatFloat(x, 'g', -1, 64)})
	case []any:
		t.push(Token{Kind: KindBeginArray})
		for _, e := range x {
			if err := t.emit(e); err != nil {
				return err
			}
		}
		t.push(Token{Kind: KindEndArray})
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		t.push(Token{Kind: KindBeginObject})
		for _, k := range keys {
			t.push(Token{Kind: KindKey, String: k})
			if err := t.emit(x[k]); err != nil {
				return err
			}
		}
		t.push(Token{Kind: KindEndObject})
	default:
		return fmt.Errorf("engine: unsupported value %T in tree", v)
	}
	return nil
}

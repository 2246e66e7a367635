// Package yaml reads YAML documents as gojmap Sources so that fixtures and
// hand-written batches can be kept in YAML.
package yaml

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/gojmap"
	eng "github.com/reoring/gojmap/internal/engine"
)

// NewBytes decodes the first YAML document in b. Decode errors surface from
// the first NextToken call.
func NewBytes(b []byte) gojmap.Source { return NewReader(bytes.NewReader(b)) }

// NewReader decodes the first YAML document read from r.
func NewReader(r io.Reader) gojmap.Source {
	var node any
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		return failed{err: err}
	}
	v, err := normalize(node)
	if err != nil {
		return failed{err: err}
	}
	return gojmap.SourceFromEngine(eng.NewTreeSource(v))
}

// normalize converts YAML-decoded values (which may contain map[any]any)
// into the JSON value tree shape.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			n, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: non-string key %v", k)
			}
			n, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			n, err := normalize(t[i])
			if err != nil {
				return nil, err
			}
			arr[i] = n
		}
		return arr, nil
	case time.Time:
		return t.UTC().Format(time.RFC3339), nil
	default:
		return v, nil
	}
}

type failed struct{ err error }

func (f failed) NextToken() (gojmap.Token, error) { return gojmap.Token{}, f.err }
func (f failed) Location() int64                  { return -1 }

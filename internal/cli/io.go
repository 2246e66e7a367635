package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/source/jsonc"
	srcyaml "github.com/reoring/gojmap/source/yaml"
)

var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cli: CBOR encoder initialization failed: " + err.Error())
	}
}

// openInput returns the named file, or stdin for "" and "-".
func (e *env) openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(e.stdio.In), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func (e *env) source(r io.Reader) gojmap.Source {
	switch e.input {
	case "jsonc":
		return jsonc.NewReader(r)
	case "yaml":
		return srcyaml.NewReader(r)
	default:
		return gojmap.JSONReader(r)
	}
}

// readValue reads one JSON value tree from the input file under the
// configured enforcement.
func (e *env) readValue(path string) (any, error) {
	in, err := e.openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return gojmap.ReadValue(e.source(in), e.parse)
}

// write emits v in the configured output format. Encoders are converted
// to their value tree first.
func (e *env) write(v any) error {
	if enc, ok := v.(gojmap.Encoder); ok {
		v = enc.ToJSON()
	}
	switch e.output {
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = e.stdio.Out.Write(b)
		return err
	case "cbor":
		b, err := cborMode.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		_, err = e.stdio.Out.Write(b)
		return err
	default:
		b, err := gojmap.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(e.stdio.Out, "%s\n", b)
		return err
	}
}

// toTree turns a tagged Go struct into a plain value tree so that the
// YAML and CBOR encoders see the JSON member names.
func toTree(v any) (any, error) {
	b, err := gojmap.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := gojson.Unmarshal(b, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

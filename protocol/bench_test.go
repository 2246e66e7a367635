package protocol_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/reoring/gojmap"
	"github.com/reoring/gojmap/protocol"
	drvgojson "github.com/reoring/gojmap/source/gojson"
)

// generateRequestBatch returns a batch of numCalls setContacts calls, each
// creating one contact with extraEmails email entries.
func generateRequestBatch(numCalls, extraEmails int) []byte {
	var buf bytes.Buffer
	buf.Grow(numCalls * (160 + extraEmails*64))
	buf.WriteByte('[')
	for i := 0; i < numCalls; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `["setContacts",{"ifInState":"s%d","create":{"tmp%d":{"name":"n%d","isFlagged":%t,"emails":[`, i, i, i, i%2 == 0)
		for k := 0; k < extraEmails; k++ {
			if k > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, `{"type":"work","value":"u%d_%d@example.com","label":null}`, i, k)
		}
		fmt.Fprintf(&buf, `]}},"destroy":["c%d"]},"call%d"]`, i, i)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func withDrivers(b *testing.B, fn func(b *testing.B)) {
	b.Run("encoding-json", func(b *testing.B) {
		gojmap.UseDefaultJSONDriver()
		fn(b)
	})
	b.Run("go-json", func(b *testing.B) {
		gojmap.SetJSONDriver(drvgojson.Driver())
		defer gojmap.UseDefaultJSONDriver()
		fn(b)
	})
}

func Benchmark_ParseRequestBatch_Small(b *testing.B) {
	data := generateRequestBatch(2, 1)
	withDrivers(b, func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			if _, err := protocol.ParseRequestBatch(gojmap.JSONBytes(data)); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func Benchmark_ParseRequestBatch_Large_Stream(b *testing.B) {
	data := generateRequestBatch(2000, 4)
	withDrivers(b, func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			if _, err := protocol.ParseRequestBatch(gojmap.JSONReader(bytes.NewReader(data))); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func Benchmark_DecodeRequestBatch_Large_Tree(b *testing.B) {
	data := generateRequestBatch(2000, 4)
	reg := protocol.Default()
	withDrivers(b, func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			v, err := gojmap.ReadValue(gojmap.JSONBytes(data))
			if err != nil {
				b.Fatal(err)
			}
			if _, err := reg.DecodeRequestBatch(v); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func TestGenerateRequestBatch_Decodes(t *testing.T) {
	batch, err := protocol.ParseRequestBatch(gojmap.JSONBytes(generateRequestBatch(3, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 3 {
		t.Fatalf("want 3 calls, got %d", len(batch))
	}
	for _, call := range batch {
		if call.IsError() {
			t.Fatalf("unexpected degraded call %+v", call)
		}
	}
}

package method

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/reoring/gojmap"
)

// ErrorName is the wire name of the error call. A response carrying it
// holds a MethodError as its arguments.
const ErrorName = "error"

// Args is the argument object of one call.
type Args interface {
	ToJSON() any
}

// Decoder converts the argument object of a call.
type Decoder func(v any) (Args, error)

// DecoderOf returns the Decoder for a self-describing argument type.
func DecoderOf[T interface {
	Args
	gojmap.SelfCodec[T]
}]() Decoder {
	return func(v any) (Args, error) {
		var zero T
		x, err := zero.FromJSON(v)
		if err != nil {
			return nil, err
		}
		return x, nil
	}
}

// RequestMethod is one call of a request batch.
type RequestMethod struct {
	Name     string
	Args     Args
	ClientID string
}

// ResponseMethod is one reply of a response batch.
type ResponseMethod struct {
	Name     string
	Args     Args
	ClientID string
}

// IsError reports whether m is the error variant.
func (m RequestMethod) IsError() bool { return m.Name == ErrorName }

// IsError reports whether m is the error variant.
func (m ResponseMethod) IsError() bool { return m.Name == ErrorName }

// MethodError returns the error carried by the error variant.
func (m ResponseMethod) MethodError() (MethodError, bool) {
	e, ok := m.Args.(MethodError)
	return e, ok
}

// MethodError returns the error carried by the error variant.
func (m RequestMethod) MethodError() (MethodError, bool) {
	e, ok := m.Args.(MethodError)
	return e, ok
}

func (m RequestMethod) ToJSON() any  { return encodeCall(m.Name, m.Args, m.ClientID) }
func (m ResponseMethod) ToJSON() any { return encodeCall(m.Name, m.Args, m.ClientID) }

func encodeCall(name string, args Args, clientID string) any {
	var a any = map[string]any{}
	if args != nil {
		a = args.ToJSON()
	}
	return []any{name, a, clientID}
}

// Names are the six wire names a record kind uses for its calls.
type Names struct {
	Get                string
	GetUpdates         string
	Set                string
	GetResponse        string
	GetUpdatesResponse string
	SetResponse        string
}

// RecordNames derives the call names of a record kind from its singular
// and plural forms, for example ("Contact", "Contacts") gives getContacts,
// getContactUpdates, setContacts, contacts, contactUpdates and contactsSet.
func RecordNames(singular, plural string) Names {
	return Names{
		Get:                "get" + plural,
		GetUpdates:         "get" + singular + "Updates",
		Set:                "set" + plural,
		GetResponse:        lowerFirst(plural),
		GetUpdatesResponse: lowerFirst(singular) + "Updates",
		SetResponse:        lowerFirst(plural) + "Set",
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Registry maps wire method names to argument decoders, one table for
// requests and one for responses. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	requests  map[string]Decoder
	responses map[string]Decoder
}

// NewRegistry returns a registry that knows only the error call.
func NewRegistry() *Registry {
	r := &Registry{requests: map[string]Decoder{}, responses: map[string]Decoder{}}
	r.requests[ErrorName] = DecoderOf[MethodError]()
	r.responses[ErrorName] = DecoderOf[MethodError]()
	return r
}

// RegisterRequest adds a request name. It panics if name is taken.
func (r *Registry) RegisterRequest(name string, d Decoder) {
	r.register(r.requests, "request", name, d)
}

// RegisterResponse adds a response name. It panics if name is taken.
func (r *Registry) RegisterResponse(name string, d Decoder) {
	r.register(r.responses, "response", name, d)
}

func (r *Registry) register(table map[string]Decoder, kind, name string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d == nil {
		panic("method: nil decoder for " + kind + " " + name)
	}
	if _, dup := table[name]; dup {
		panic(fmt.Sprintf("method: %s %q registered twice", kind, name))
	}
	table[name] = d
}

// RegisterRecord registers the get, getUpdates and set calls of the record
// kind whose partial type is P.
func RegisterRecord[P gojmap.PartialRecord[P]](r *Registry, n Names) {
	r.RegisterRequest(n.Get, DecoderOf[GetRequestArgs]())
	r.RegisterRequest(n.GetUpdates, DecoderOf[GetUpdatesRequestArgs]())
	r.RegisterRequest(n.Set, DecoderOf[SetRequestArgs[P]]())
	r.RegisterResponse(n.GetResponse, DecoderOf[GetResponseArgs[P]]())
	r.RegisterResponse(n.GetUpdatesResponse, DecoderOf[GetUpdatesResponseArgs]())
	r.RegisterResponse(n.SetResponse, DecoderOf[SetResponseArgs[P]]())
}

// RequestNames lists the registered request names.
func (r *Registry) RequestNames() []string { return r.names(r.requests) }

// ResponseNames lists the registered response names.
func (r *Registry) ResponseNames() []string { return r.names(r.responses) }

func (r *Registry) names(table map[string]Decoder) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func (r *Registry) lookup(table map[string]Decoder, name string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := table[name]
	return d, ok
}

// DecodeRequest converts one [name, args, clientId] array. An unregistered
// name yields the error variant with an unknownMethod MethodError naming
// it; the client id is kept.
func (r *Registry) DecodeRequest(v any) (RequestMethod, error) {
	name, args, id, err := r.decodeCall(v, "RequestMethod", r.requests)
	if err != nil {
		return RequestMethod{}, err
	}
	return RequestMethod{Name: name, Args: args, ClientID: id}, nil
}

// DecodeResponse is DecodeRequest for replies.
func (r *Registry) DecodeResponse(v any) (ResponseMethod, error) {
	name, args, id, err := r.decodeCall(v, "ResponseMethod", r.responses)
	if err != nil {
		return ResponseMethod{}, err
	}
	return ResponseMethod{Name: name, Args: args, ClientID: id}, nil
}

func (r *Registry) decodeCall(v any, typeName string, table map[string]Decoder) (string, Args, string, error) {
	arr, ok := v.([]any)
	if !ok {
		return "", nil, "", gojmap.InvalidJSONType(typeName)
	}
	if len(arr) != 3 {
		return "", nil, "", gojmap.InvalidStructure(typeName)
	}
	name, err := gojmap.String().Decode(arr[0])
	if err != nil {
		return "", nil, "", gojmap.RebaseIndex(err, 0)
	}
	id, err := gojmap.String().Decode(arr[2])
	if err != nil {
		return "", nil, "", gojmap.RebaseIndex(err, 2)
	}
	d, ok := r.lookup(table, name)
	if !ok {
		return ErrorName, MethodError{Type: UnknownMethod, Description: gojmap.Present(name)}, id, nil
	}
	args, err := d(arr[1])
	if err != nil {
		return "", nil, "", gojmap.RebaseIndex(err, 1)
	}
	return name, args, id, nil
}

// RequestCodec adapts DecodeRequest to a gojmap.Codec.
func (r *Registry) RequestCodec() gojmap.Codec[RequestMethod] { return requestCodec{r} }

// ResponseCodec adapts DecodeResponse to a gojmap.Codec.
func (r *Registry) ResponseCodec() gojmap.Codec[ResponseMethod] { return responseCodec{r} }

type requestCodec struct{ r *Registry }

func (c requestCodec) Decode(v any) (RequestMethod, error) { return c.r.DecodeRequest(v) }
func (requestCodec) Encode(m RequestMethod) any            { return m.ToJSON() }

type responseCodec struct{ r *Registry }

func (c responseCodec) Decode(v any) (ResponseMethod, error) { return c.r.DecodeResponse(v) }
func (responseCodec) Encode(m ResponseMethod) any            { return m.ToJSON() }

package method

import "github.com/reoring/gojmap"

// RequestBatch is an ordered list of calls. Order and client ids are the
// only correlation between a request and its response.
type RequestBatch []RequestMethod

// ResponseBatch is an ordered list of replies.
type ResponseBatch []ResponseMethod

func (b RequestBatch) ToJSON() any {
	out := make([]any, 0, len(b))
	for _, m := range b {
		out = append(out, m.ToJSON())
	}
	return out
}

func (b ResponseBatch) ToJSON() any {
	out := make([]any, 0, len(b))
	for _, m := range b {
		out = append(out, m.ToJSON())
	}
	return out
}

// ForClient returns the replies carrying clientID, in batch order.
func (b ResponseBatch) ForClient(clientID string) []ResponseMethod {
	var out []ResponseMethod
	for _, m := range b {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out
}

// DecodeRequestBatch converts a JSON array of calls. The first call that
// fails to decode aborts the batch; unknown names do not.
func (r *Registry) DecodeRequestBatch(v any) (RequestBatch, error) {
	calls, err := gojmap.Slice(r.RequestCodec()).Decode(v)
	if err != nil {
		return nil, renameArray(err, "RequestBatch")
	}
	return calls, nil
}

// DecodeResponseBatch is DecodeRequestBatch for replies.
func (r *Registry) DecodeResponseBatch(v any) (ResponseBatch, error) {
	calls, err := gojmap.Slice(r.ResponseCodec()).Decode(v)
	if err != nil {
		return nil, renameArray(err, "ResponseBatch")
	}
	return calls, nil
}

func renameArray(err error, typeName string) error {
	if pe, ok := gojmap.AsParseError(err); ok && pe.Path == "" && pe.Code == gojmap.CodeInvalidJSONType {
		return gojmap.InvalidJSONType(typeName)
	}
	return err
}

// ParseRequestBatch reads a request batch from src one call at a time, so a
// malformed call stops the read without consuming the rest of the input.
func (r *Registry) ParseRequestBatch(src gojmap.Source, opts ...gojmap.ParseOpt) (RequestBatch, error) {
	calls, err := gojmap.ParseArray(src, "RequestBatch", r.DecodeRequest, opts...)
	return RequestBatch(calls), err
}

// ParseResponseBatch is ParseRequestBatch for replies.
func (r *Registry) ParseResponseBatch(src gojmap.Source, opts ...gojmap.ParseOpt) (ResponseBatch, error) {
	calls, err := gojmap.ParseArray(src, "ResponseBatch", r.DecodeResponse, opts...)
	return ResponseBatch(calls), err
}

package method

import (
	"github.com/reoring/gojmap"
	js "github.com/reoring/gojmap/jsonschema"
)

// ErrorType is the closed vocabulary of method-level errors.
type ErrorType string

const (
	UnknownMethod               ErrorType = "unknownMethod"
	InvalidArguments            ErrorType = "invalidArguments"
	InternalError               ErrorType = "internalError"
	AccountNotFound             ErrorType = "accountNotFound"
	AccountNotSupportedByMethod ErrorType = "accountNotSupportedByMethod"
	AccountReadOnly             ErrorType = "accountReadOnly"
	AnchorNotFound              ErrorType = "anchorNotFound"
	CannotCalculateChanges      ErrorType = "cannotCalculateChanges"
	CannotDoFilter              ErrorType = "cannotDoFilter"
	StateMismatch               ErrorType = "stateMismatch"
	TooManyChanges              ErrorType = "tooManyChanges"
	NotFound                    ErrorType = "notFound"
	MaxQuotaReached             ErrorType = "maxQuotaReached"
	FromAccountNotFound         ErrorType = "fromAccountNotFound"
	ToAccountNotFound           ErrorType = "toAccountNotFound"
)

var errorTypes = []ErrorType{
	UnknownMethod, InvalidArguments, InternalError,
	AccountNotFound, AccountNotSupportedByMethod, AccountReadOnly,
	AnchorNotFound, CannotCalculateChanges, CannotDoFilter,
	StateMismatch, TooManyChanges, NotFound, MaxQuotaReached,
	FromAccountNotFound, ToAccountNotFound,
}

// HasDescription reports whether errors of this type carry a description.
func (t ErrorType) HasDescription() bool {
	switch t {
	case UnknownMethod, InvalidArguments, InternalError:
		return true
	}
	return false
}

// MethodError is a well-formed error reply to one method call. It travels as
// the arguments of an "error" call and is never a decode failure.
type MethodError struct {
	Type        ErrorType
	Description gojmap.Presence[string]
}

// NewMethodError returns an error of type t. The description is kept only
// when t carries one.
func NewMethodError(t ErrorType, description string) MethodError {
	e := MethodError{Type: t}
	if t.HasDescription() && description != "" {
		e.Description = gojmap.Present(description)
	}
	return e
}

func (e MethodError) Error() string {
	if d, ok := e.Description.Get(); ok {
		return string(e.Type) + ": " + d
	}
	return string(e.Type)
}

var methodErrorObject = gojmap.Object("MethodError",
	gojmap.Required("type", gojmap.Enum("MethodError", errorTypes...), func(e *MethodError) *ErrorType { return &e.Type }),
	gojmap.Omittable("description", gojmap.String(), func(e *MethodError) *gojmap.Presence[string] { return &e.Description }),
)

func (e MethodError) ToJSON() any {
	if !e.Type.HasDescription() {
		e.Description = gojmap.Absent[string]()
	}
	return methodErrorObject.Encode(e)
}

func (MethodError) FromJSON(v any) (MethodError, error) {
	e, err := methodErrorObject.Decode(v)
	if err != nil {
		return MethodError{}, err
	}
	if !e.Type.HasDescription() {
		e.Description = gojmap.Absent[string]()
	}
	return e, nil
}

func (MethodError) JSONSchema() *js.Schema { return methodErrorObject.JSONSchema() }

// SetError explains why one create, update or destroy in a set call failed.
// Type is open-ended.
type SetError struct {
	Type        string `validate:"required"`
	Description *string
}

var setErrorCodec gojmap.Codec[SetError] = gojmap.Object("SetError",
	gojmap.Required("type", gojmap.String(), func(e *SetError) *string { return &e.Type }),
	gojmap.Optional("description", gojmap.String(), func(e *SetError) **string { return &e.Description }),
)

// SetErrorCodec returns the codec for SetError.
func SetErrorCodec() gojmap.Codec[SetError] { return setErrorCodec }

func (e SetError) ToJSON() any                    { return setErrorCodec.Encode(e) }
func (SetError) FromJSON(v any) (SetError, error) { return setErrorCodec.Decode(v) }

func (e SetError) Error() string {
	if e.Description != nil {
		return e.Type + ": " + *e.Description
	}
	return e.Type
}

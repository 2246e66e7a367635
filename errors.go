package gojmap

import (
	"errors"
	"fmt"

	"github.com/reoring/gojmap/i18n"
	eng "github.com/reoring/gojmap/internal/engine"
)

// Error codes carried by ParseError.
const (
	// CodeInvalidJSONType: the JSON value kind is wrong for the target type.
	CodeInvalidJSONType = "invalid_json_type"
	// CodeInvalidStructure: right kind, but the value is not acceptable
	// (unknown enum token, malformed date, wrong array arity).
	CodeInvalidStructure = "invalid_structure"
	// CodeMissingField: a required object key is absent.
	CodeMissingField = "missing_field"

	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// ParseError reports why a JSON value could not be converted into a typed
// value. Target names the target type for type/structure errors and the
// field name for missing-field errors.
type ParseError struct {
	Code   string
	Target string
	Path   string // JSON Pointer of the offending value; "" is the root.
	Cause  error
}

func (e *ParseError) Error() string {
	msg := i18n.T(e.Code, map[string]string{"target": e.Target})
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is matches on Code and Target so a rebased error still compares equal to
// the error produced by decoding the same element on its own.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Target == t.Target
}

// InvalidJSONType reports a JSON value of the wrong kind for typeName.
func InvalidJSONType(typeName string) *ParseError {
	return &ParseError{Code: CodeInvalidJSONType, Target: typeName}
}

// InvalidStructure reports a well-typed JSON value that typeName rejects.
func InvalidStructure(typeName string) *ParseError {
	return &ParseError{Code: CodeInvalidStructure, Target: typeName}
}

// MissingField reports an absent required key.
func MissingField(name string) *ParseError {
	return &ParseError{Code: CodeMissingField, Target: name}
}

// AsParseError extracts a *ParseError from err using errors.As.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Rebase prefixes the path of a ParseError with one JSON Pointer reference
// token (an object key or array index). Other errors are wrapped as
// parse_error at that location.
func Rebase(err error, token string) error {
	if err == nil {
		return nil
	}
	pe, ok := AsParseError(err)
	if !ok {
		return &ParseError{Code: CodeParseError, Path: eng.JoinPointer("", token), Cause: err}
	}
	out := *pe
	out.Path = eng.JoinPointer("", token) + pe.Path
	return &out
}

// RebaseIndex is Rebase for array positions.
func RebaseIndex(err error, i int) error { return Rebase(err, fmt.Sprint(i)) }

// fromEngine converts errors surfaced by the token engine.
func fromEngine(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsParseError(err); ok {
		return err
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return &ParseError{Code: ie.Code, Path: ie.Path, Cause: errors.New(ie.Message)}
	}
	return &ParseError{Code: CodeParseError, Cause: err}
}

package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls what happens when an object repeats a key.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue describes one enforcement finding. Path is a JSON Pointer,
// "" for the root.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is the error form of a fatal SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// EnforceOptions controls the guard installed by WrapWithEnforcement.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink sees every finding, warnings and fatal ones alike.
	IssueSink func(SimpleIssue)
}

// Disabled reports whether the options enforce nothing at all.
func (o EnforceOptions) Disabled() bool {
	return o.OnDuplicate == DupIgnore && o.MaxDepth == 0 && o.MaxBytes == 0
}

// WrapWithEnforcement checks duplicate keys, nesting depth and consumed
// bytes while tokens stream through. With nothing to enforce it returns
// inner unchanged.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	if opt.Disabled() {
		return inner
	}
	return &guard{inner: inner, opt: opt}
}

// scope is one open container.
type scope struct {
	path  string
	array bool
	next  int                 // next array index
	key   string              // name of the member being read
	keys  map[string]struct{} // names seen; nil when duplicates are ignored
}

type guard struct {
	inner  TokenSource
	opt    EnforceOptions
	scopes []scope
}

func (g *guard) NextToken() (Token, error) {
	tok, err := g.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	switch tok.Kind {
	case KindKey:
		if err := g.member(tok.String); err != nil {
			return Token{}, err
		}
	case KindBeginObject, KindBeginArray:
		path := g.childPath()
		if g.opt.MaxDepth > 0 && len(g.scopes) >= g.opt.MaxDepth {
			return Token{}, g.report("parse_error", path, "max depth exceeded")
		}
		s := scope{path: path, array: tok.Kind == KindBeginArray}
		if !s.array && g.opt.OnDuplicate != DupIgnore {
			s.keys = make(map[string]struct{})
		}
		g.scopes = append(g.scopes, s)
	case KindEndObject, KindEndArray:
		if n := len(g.scopes); n > 0 {
			g.scopes = g.scopes[:n-1]
		}
	default:
		g.childPath()
	}

	if g.opt.MaxBytes > 0 && g.inner.Location() > g.opt.MaxBytes {
		return Token{}, g.report("truncated", g.path(), "max bytes exceeded")
	}
	return tok, nil
}

func (g *guard) Location() int64 { return g.inner.Location() }

// member records an object key and reports a repeat.
func (g *guard) member(name string) error {
	n := len(g.scopes)
	if n == 0 {
		return nil
	}
	top := &g.scopes[n-1]
	top.key = name
	if top.keys == nil {
		return nil
	}
	if _, seen := top.keys[name]; !seen {
		top.keys[name] = struct{}{}
		return nil
	}
	err := g.report("duplicate_key", JoinPointer(top.path, name), "key '"+name+"' duplicated")
	if g.opt.OnDuplicate == DupError {
		return err
	}
	return nil
}

// childPath returns the location of the value starting now, advancing the
// index of an enclosing array.
func (g *guard) childPath() string {
	n := len(g.scopes)
	if n == 0 {
		return ""
	}
	top := &g.scopes[n-1]
	if top.array {
		p := JoinPointer(top.path, strconv.Itoa(top.next))
		top.next++
		return p
	}
	return JoinPointer(top.path, top.key)
}

func (g *guard) path() string {
	if n := len(g.scopes); n > 0 {
		return g.scopes[n-1].path
	}
	return ""
}

func (g *guard) report(code, path, msg string) IssueError {
	si := SimpleIssue{Code: code, Path: path, Message: msg}
	if g.opt.IssueSink != nil {
		g.opt.IssueSink(si)
	}
	return IssueError{si}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// JoinPointer appends one reference token to a JSON Pointer, escaping it.
func JoinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}

package gojmap

import "fmt"

// Presence is the "was this property supplied?" marker used by partial
// records and method arguments. It is distinct from nullability: an Absent
// property is omitted from the wire form, while Present(nil) on a
// Presence[*T] is written as an explicit null.
//
// The zero value is Absent.
type Presence[T any] struct {
	value   T
	present bool
}

// Present wraps v as a supplied value.
func Present[T any](v T) Presence[T] { return Presence[T]{value: v, present: true} }

// Absent returns the unset marker.
func Absent[T any]() Presence[T] { return Presence[T]{} }

// Get returns the value and whether it was supplied.
func (p Presence[T]) Get() (T, bool) { return p.value, p.present }

// IsPresent reports whether the value was supplied.
func (p Presence[T]) IsPresent() bool { return p.present }

// OrElse returns the value when present, def otherwise.
func (p Presence[T]) OrElse(def T) T {
	if p.present {
		return p.value
	}
	return def
}

func (p Presence[T]) String() string {
	if !p.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", p.value)
}

package html2md

import "fmt"

// Key names a typed value rules can attach to a Context for their
// descendants. Keys are equal when their names are equal, so two keys
// sharing a name with different types collide; Value reports that as a
// type mismatch.
type Key[T any] struct {
	name string
}

// NewKey creates a key. The name should be unique to the rule set using it.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the key name.
func (k Key[T]) Name() string { return k.name }

// dataEntry is one link of a persistent chain; newer entries shadow older
// ones with the same name.
type dataEntry struct {
	name  string
	value any
	next  *dataEntry
}

// WithValue returns a copy of c in which key maps to v.
func WithValue[T any](c Context, key Key[T], v T) Context {
	c.data = &dataEntry{name: key.name, value: v, next: c.data}
	return c
}

// Value returns the value stored under key and whether one was found.
// A value stored with a different type under the same name is a
// programming error and panics with an error wrapping ErrValueType;
// use LookupValue to receive it as an error instead.
func Value[T any](c Context, key Key[T]) (T, bool) {
	v, ok, err := LookupValue(c, key)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// LookupValue is Value returning a type mismatch as an error.
func LookupValue[T any](c Context, key Key[T]) (T, bool, error) {
	var zero T
	for e := c.data; e != nil; e = e.next {
		if e.name != key.name {
			continue
		}
		v, ok := e.value.(T)
		if !ok {
			return zero, false, fmt.Errorf("%w: key %q holds %T, want %T", ErrValueType, key.name, e.value, zero)
		}
		return v, true, nil
	}
	return zero, false, nil
}

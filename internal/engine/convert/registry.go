// Package convert turns raw argument strings into typed values.
//
// A Registry maps a Go type to the Parser that reads it from its invariant
// textual form. The parser is selected from the target type alone.
package convert

import (
	"encoding"
	"errors"
	"reflect"
	"slices"
	"sync"

	"go.trai.ch/buildargs/internal/core/domain"
)

// Parser reads a value of type T from its invariant string representation.
type Parser[T any] func(raw string) (T, error)

// Registry holds the parsers known for each target type.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	parsers map[reflect.Type]any
}

// NewEmptyRegistry creates a registry without any parsers.
func NewEmptyRegistry() *Registry {
	return &Registry{parsers: make(map[reflect.Type]any)}
}

// NewRegistry creates a registry with the built-in parsers registered.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	registerBuiltins(r)
	return r
}

var defaultRegistry func() *Registry

// Assigned in init to break the static initialization cycle through
// NewRegistry -> Register -> orDefault -> Default.
func init() {
	defaultRegistry = sync.OnceValue(NewRegistry)
}

// Default returns the process-wide registry. Parsers registered on it are
// visible to every accessor that does not bring its own registry.
func Default() *Registry {
	return defaultRegistry()
}

func orDefault(r *Registry) *Registry {
	if r == nil {
		return Default()
	}
	return r
}

// Register adds the parser for T, replacing any parser previously registered for T.
// A nil registry means Default.
func Register[T any](r *Registry, parse Parser[T]) {
	r = orDefault(r)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[reflect.TypeFor[T]()] = parse
}

// Lookup returns the parser for T.
// An explicitly registered parser wins. Otherwise, if *T implements
// encoding.TextUnmarshaler, a parser backed by UnmarshalText is returned.
// A nil registry means Default.
func Lookup[T any](r *Registry) (Parser[T], bool) {
	r = orDefault(r)
	r.mu.RLock()
	p, ok := r.parsers[reflect.TypeFor[T]()]
	r.mu.RUnlock()
	if ok {
		return p.(Parser[T]), true
	}

	var zero T
	if _, ok := any(&zero).(encoding.TextUnmarshaler); ok {
		return unmarshalText[T], true
	}
	return nil, false
}

// Convert parses raw as a T using the parser registered in r.
// A nil registry means Default. Failures are *domain.ConversionError values
// carrying the raw string and the name of T.
func Convert[T any](r *Registry, raw string) (T, error) {
	var zero T
	parse, ok := Lookup[T](r)
	if !ok {
		return zero, &domain.ConversionError{Raw: raw, Type: TypeName[T](), Err: domain.ErrNoConverter}
	}

	v, err := parse(raw)
	if err != nil {
		return zero, &domain.ConversionError{Raw: raw, Type: TypeName[T](), Err: err}
	}
	return v, nil
}

// TypeName returns the display name used for T in conversion errors.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Types returns the names of all explicitly registered types, sorted.
// A nil registry reports the types of Default.
func (r *Registry) Types() []string {
	r = orDefault(r)
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.parsers))
	for t := range r.parsers {
		names = append(names, t.String())
	}
	slices.Sort(names)
	return names
}

var errNotTextUnmarshaler = errors.New("type does not implement encoding.TextUnmarshaler")

func unmarshalText[T any](raw string) (T, error) {
	var v T
	u, ok := any(&v).(encoding.TextUnmarshaler)
	if !ok {
		return v, errNotTextUnmarshaler
	}
	if err := u.UnmarshalText([]byte(raw)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

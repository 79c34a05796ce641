// Package arguments gives build scripts typed access to the arguments of a build run.
//
// An Accessor wraps an argument store. Values are read with the generic
// functions Argument, ArgumentOr, Arguments and ArgumentsOr, which convert the
// raw string through a convert.Registry.
package arguments

import (
	"errors"

	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/buildargs/internal/core/ports"
	"go.trai.ch/buildargs/internal/engine/convert"
)

// Accessor reads typed arguments from an argument store.
// It holds no state of its own and is safe for concurrent use when the
// store is.
type Accessor struct {
	store    ports.ArgumentStore
	registry *convert.Registry
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithRegistry sets the registry used to convert raw values.
// A nil registry leaves the default in place.
func WithRegistry(r *convert.Registry) Option {
	return func(a *Accessor) {
		if r != nil {
			a.registry = r
		}
	}
}

// New creates an Accessor over store. A nil store yields domain.ErrInvalidInput.
func New(store ports.ArgumentStore, opts ...Option) (*Accessor, error) {
	if store == nil {
		return nil, domain.ErrInvalidInput
	}

	a := &Accessor{
		store:    store,
		registry: convert.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// HasArgument reports whether name was supplied.
// A nil or zero Accessor has no arguments.
func (a *Accessor) HasArgument(name string) bool {
	if a == nil || a.store == nil {
		return false
	}
	return a.store.HasArgument(name)
}

// Store returns the underlying argument store.
func (a *Accessor) Store() ports.ArgumentStore {
	return a.store
}

// Registry returns the registry used for conversion.
func (a *Accessor) Registry() *convert.Registry {
	return a.registry
}

func (a *Accessor) validate() error {
	if a == nil || a.store == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// Argument returns the value of name converted to T.
// It fails with *domain.MissingArgumentError when name is absent and with
// *domain.ConversionError when the raw value is not a valid T.
func Argument[T any](a *Accessor, name string) (T, error) {
	var zero T
	if err := a.validate(); err != nil {
		return zero, err
	}

	raw, ok := a.store.GetArgument(name)
	if !ok {
		return zero, &domain.MissingArgumentError{Name: name}
	}
	return convertArgument[T](a.registry, name, raw)
}

// ArgumentOr returns the value of name converted to T, or defaultValue as is
// when name is absent.
func ArgumentOr[T any](a *Accessor, name string, defaultValue T) (T, error) {
	if err := a.validate(); err != nil {
		var zero T
		return zero, err
	}

	raw, ok := a.store.GetArgument(name)
	if !ok {
		return defaultValue, nil
	}
	return convertArgument[T](a.registry, name, raw)
}

// Arguments returns every value supplied for name, each converted to T, in
// the order they were given.
func Arguments[T any](a *Accessor, name string) ([]T, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	raws := a.store.GetArguments(name)
	if len(raws) == 0 {
		return nil, &domain.MissingArgumentError{Name: name}
	}
	return convertAll[T](a.registry, name, raws)
}

// ArgumentsOr is Arguments with defaultValues returned as is when name is absent.
func ArgumentsOr[T any](a *Accessor, name string, defaultValues []T) ([]T, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	raws := a.store.GetArguments(name)
	if len(raws) == 0 {
		return defaultValues, nil
	}
	return convertAll[T](a.registry, name, raws)
}

func convertAll[T any](r *convert.Registry, name string, raws []string) ([]T, error) {
	values := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := convertArgument[T](r, name, raw)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func convertArgument[T any](r *convert.Registry, name, raw string) (T, error) {
	v, err := convert.Convert[T](r, raw)
	if err != nil {
		var convErr *domain.ConversionError
		if errors.As(err, &convErr) {
			convErr.Name = name
		}
		return v, err
	}
	return v, nil
}

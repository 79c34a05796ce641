// Package argstore implements ports.ArgumentStore over the places build
// arguments come from: the command line, the environment, args files and
// dotenv files.
package argstore

import (
	"maps"
	"slices"

	"go.trai.ch/buildargs/internal/core/domain"
)

// Store is an in-memory argument store. Names are matched case-insensitively.
// A Store is not modified after construction, so concurrent reads are safe.
type Store struct {
	values      map[string][]string
	positionals []string
}

func newStore() *Store {
	return &Store{values: make(map[string][]string)}
}

// FromMap creates a Store holding one value per name.
func FromMap(m map[string]string) *Store {
	s := newStore()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		s.add(name, m[name])
	}
	return s
}

func (s *Store) add(name, value string) {
	key := domain.FoldName(name)
	s.values[key] = append(s.values[key], value)
}

// HasArgument reports whether name was supplied.
func (s *Store) HasArgument(name string) bool {
	_, ok := s.values[domain.FoldName(name)]
	return ok
}

// GetArgument returns the last value supplied for name.
func (s *Store) GetArgument(name string) (string, bool) {
	vals := s.values[domain.FoldName(name)]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// GetArguments returns all values supplied for name.
func (s *Store) GetArguments(name string) []string {
	return slices.Clone(s.values[domain.FoldName(name)])
}

// Names returns the folded argument names, sorted.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Positionals returns the tokens that were not arguments, in order.
func (s *Store) Positionals() []string {
	return slices.Clone(s.positionals)
}

// Len returns the number of distinct arguments.
func (s *Store) Len() int {
	return len(s.values)
}

package argstore

import (
	"slices"

	"go.trai.ch/buildargs/internal/core/ports"
)

// Layered combines stores in precedence order. For any name, the first store
// that has it answers every lookup; lower stores are not merged in.
type Layered struct {
	stores []ports.ArgumentStore
}

// NewLayered creates a Layered store. Nil stores are skipped.
func NewLayered(stores ...ports.ArgumentStore) *Layered {
	l := &Layered{stores: make([]ports.ArgumentStore, 0, len(stores))}
	for _, s := range stores {
		if s != nil {
			l.stores = append(l.stores, s)
		}
	}
	return l
}

func (l *Layered) owner(name string) ports.ArgumentStore {
	for _, s := range l.stores {
		if s.HasArgument(name) {
			return s
		}
	}
	return nil
}

// HasArgument reports whether any layer has name.
func (l *Layered) HasArgument(name string) bool {
	return l.owner(name) != nil
}

// GetArgument returns the value from the highest layer that has name.
func (l *Layered) GetArgument(name string) (string, bool) {
	if s := l.owner(name); s != nil {
		return s.GetArgument(name)
	}
	return "", false
}

// GetArguments returns the values from the highest layer that has name.
func (l *Layered) GetArguments(name string) []string {
	if s := l.owner(name); s != nil {
		return s.GetArguments(name)
	}
	return nil
}

// Names returns the union of all layer names, sorted.
func (l *Layered) Names() []string {
	var names []string
	for _, s := range l.stores {
		names = append(names, s.Names()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

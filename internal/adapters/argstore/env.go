package argstore

import (
	"strings"

	"go.trai.ch/buildargs/internal/core/domain"
)

// FromEnvironment reads arguments from environment entries in KEY=value form.
// Only keys starting with prefix followed by an underscore are read, and the
// argument name is the rest of the key: with prefix "BUILDARGS" the entry
// BUILDARGS_CONFIGURATION=Release becomes configuration=Release.
// An empty prefix reads every entry.
func FromEnvironment(prefix string, environ []string) *Store {
	s := newStore()

	var folded string
	n := len(prefix) + 1
	if prefix != "" {
		folded = domain.FoldName(prefix + "_")
	}

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}

		name := key
		if folded != "" {
			if len(key) <= n || domain.FoldName(key[:n]) != folded {
				continue
			}
			name = key[n:]
		}

		s.add(name, value)
	}

	return s
}

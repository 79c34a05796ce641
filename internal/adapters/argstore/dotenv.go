package argstore

import (
	"errors"
	"maps"
	"slices"

	"github.com/joho/godotenv"
	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/zerr"
)

// LoadDotenv reads arguments from a dotenv file of NAME=value lines.
// Every variable in the file becomes an argument; no prefix is applied.
func LoadDotenv(path string) (*Store, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrArgsFileReadFailed, err), "path", path)
	}

	s := newStore()
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		s.add(name, vars[name])
	}
	return s, nil
}

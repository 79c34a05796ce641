package app

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.trai.ch/buildargs/internal/engine/arguments"
)

type getter func(acc *arguments.Accessor, name string) (string, error)

func typed[T any](format func(T) string) getter {
	return func(acc *arguments.Accessor, name string) (string, error) {
		v, err := arguments.Argument[T](acc, name)
		if err != nil {
			return "", err
		}
		return format(v), nil
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatTime(v time.Time) string {
	return v.Format(time.RFC3339Nano)
}

var typedGetters = map[string]getter{
	"string":   typed(func(v string) string { return v }),
	"bool":     typed(strconv.FormatBool),
	"int":      typed(strconv.Itoa),
	"int64":    typed(func(v int64) string { return strconv.FormatInt(v, 10) }),
	"uint":     typed(func(v uint64) string { return strconv.FormatUint(v, 10) }),
	"float":    typed(formatFloat),
	"float64":  typed(formatFloat),
	"decimal":  typed(decimal.Decimal.String),
	"date":     typed(formatTime),
	"time":     typed(formatTime),
	"duration": typed(time.Duration.String),
	"uuid":     typed(uuid.UUID.String),
}

// Types returns the type names accepted by Get, sorted.
func Types() []string {
	return slices.Sorted(maps.Keys(typedGetters))
}

package domain

import (
	"golang.org/x/text/cases"
)

// DefaultEnvPrefix is the environment variable prefix read by default.
const DefaultEnvPrefix = "BUILDARGS"

// Entry is a single resolved argument and its effective raw value.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FoldName returns the case-insensitive lookup key for an argument name.
// Argument names compare equal under Unicode case folding, so "Target",
// "TARGET" and "target" address the same argument.
func FoldName(name string) string {
	// cases.Caser is stateful and must not be shared across goroutines.
	return cases.Fold().String(name)
}

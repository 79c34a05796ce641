package ports

// ArgumentStore is the read-only lookup of raw argument values supplied to a build run.
// Implementations must be safe for concurrent reads.
//
//go:generate mockgen -source=argument_store.go -destination=mocks/mock_argument_store.go -package=mocks
type ArgumentStore interface {
	// HasArgument reports whether an argument with the given name was supplied.
	HasArgument(name string) bool

	// GetArgument returns the effective raw value for name.
	// When the argument was supplied more than once the last value wins.
	GetArgument(name string) (string, bool)

	// GetArguments returns every raw value supplied for name, in order.
	// Returns nil if the argument is absent.
	GetArguments(name string) []string

	// Names returns the folded names of all supplied arguments, sorted.
	Names() []string
}

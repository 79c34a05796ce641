package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidInput is returned when an accessor is used without an argument store.
	ErrInvalidInput = zerr.New("argument store is required")

	// ErrMissingArgument is returned when a requested argument is not present and no default was given.
	ErrMissingArgument = zerr.New("argument not found")

	// ErrConversion is returned when a raw argument value cannot be converted to the requested type.
	ErrConversion = zerr.New("failed to convert argument value")

	// ErrNoConverter is returned when no parser is registered for the requested type.
	ErrNoConverter = zerr.New("no converter registered for type")

	// ErrInvalidArgumentSyntax is returned when a command line token cannot be read as an argument.
	ErrInvalidArgumentSyntax = zerr.New("invalid argument syntax")

	// ErrArgsFileInvalid is returned when an args file has a shape other than name to scalar or list.
	ErrArgsFileInvalid = zerr.New("invalid args file")

	// ErrArgsFileReadFailed is returned when an args file cannot be read.
	ErrArgsFileReadFailed = zerr.New("failed to read args file")

	// ErrArgsFileParseFailed is returned when an args file cannot be parsed.
	ErrArgsFileParseFailed = zerr.New("failed to parse args file")

	// ErrStoreLoadFailed is returned when the argument store cannot be assembled.
	ErrStoreLoadFailed = zerr.New("failed to load arguments")

	// ErrUnknownType is returned when a type name given on the command line is not supported.
	ErrUnknownType = zerr.New("unknown argument type")

	// ErrArgumentFalse is returned by the has command when the argument is absent.
	// It only drives the exit code and is never logged.
	ErrArgumentFalse = zerr.New("argument is not set")
)

package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

func registerBuiltins(r *Registry) {
	Register[string](r, parseString)
	Register[bool](r, parseBool)

	Register(r, parseSigned[int](strconv.IntSize))
	Register(r, parseSigned[int8](8))
	Register(r, parseSigned[int16](16))
	Register(r, parseSigned[int32](32))
	Register(r, parseSigned[int64](64))

	Register(r, parseUnsigned[uint](strconv.IntSize))
	Register(r, parseUnsigned[uint8](8))
	Register(r, parseUnsigned[uint16](16))
	Register(r, parseUnsigned[uint32](32))
	Register(r, parseUnsigned[uint64](64))

	Register(r, parseFloat[float32](32))
	Register(r, parseFloat[float64](64))

	Register[decimal.Decimal](r, parseDecimal)
	Register[time.Time](r, parseTime)
	Register[time.Duration](r, parseDuration)
	Register[uuid.UUID](r, parseUUID)
}

func parseString(raw string) (string, error) {
	return raw, nil
}

// parseBool accepts 1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False.
func parseBool(raw string) (bool, error) {
	return cast.ToBoolE(strings.TrimSpace(raw))
}

func parseSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bitSize int) Parser[T] {
	return func(raw string) (T, error) {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, bitSize)
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}
}

func parseUnsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bitSize int) Parser[T] {
	return func(raw string) (T, error) {
		v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, bitSize)
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}
}

// parseFloat only understands base-10 notation with '.' as the decimal
// separator and an optional exponent. NaN, Inf and hex floats are rejected.
func parseFloat[T ~float32 | ~float64](bitSize int) Parser[T] {
	return func(raw string) (T, error) {
		s := strings.TrimSpace(raw)
		if s == "" || strings.ContainsFunc(s, notDecimalRune) {
			return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
		}
		v, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}
}

func notDecimalRune(r rune) bool {
	return !strings.ContainsRune("0123456789.eE+-", r)
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// parseTime reads RFC 3339 and the other ISO style layouts known to cast.
// Values without a zone are read as UTC.
func parseTime(raw string) (time.Time, error) {
	return cast.ToTimeInDefaultLocationE(strings.TrimSpace(raw), time.UTC)
}

func parseDuration(raw string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(raw))
}

func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(raw))
}

package convert_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/buildargs/internal/engine/convert"
)

func TestBuiltin_String(t *testing.T) {
	v, err := convert.Convert[string](convert.NewRegistry(), "is specified")
	require.NoError(t, err)
	assert.Equal(t, "is specified", v)

	v, err = convert.Convert[string](convert.NewRegistry(), "  padded  ")
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", v, "strings are returned verbatim")
}

func TestBuiltin_Int(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "5", want: 5},
		{raw: "-12", want: -12},
		{raw: "+3", want: 3},
		{raw: " 42 ", want: 42},
		{raw: "010", want: 10},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "0x10", wantErr: true},
		{raw: "1_000", wantErr: true},
	}

	r := convert.NewRegistry()
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := convert.Convert[int](r, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrConversion)
				convErr, ok := domain.IsConversionError(err)
				require.True(t, ok)
				assert.Equal(t, tt.raw, convErr.Raw)
				assert.Equal(t, "int", convErr.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestBuiltin_IntWidths(t *testing.T) {
	r := convert.NewRegistry()

	v8, err := convert.Convert[int8](r, "127")
	require.NoError(t, err)
	assert.Equal(t, int8(127), v8)

	_, err = convert.Convert[int8](r, "128")
	assert.ErrorIs(t, err, domain.ErrConversion, "out of range for int8")

	v64, err := convert.Convert[int64](r, "9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v64)

	u16, err := convert.Convert[uint16](r, "65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), u16)

	_, err = convert.Convert[uint16](r, "65536")
	assert.ErrorIs(t, err, domain.ErrConversion)

	_, err = convert.Convert[uint](r, "-1")
	assert.ErrorIs(t, err, domain.ErrConversion)
}

func TestBuiltin_Bool(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{raw: "true", want: true},
		{raw: "True", want: true},
		{raw: "TRUE", want: true},
		{raw: "1", want: true},
		{raw: "false", want: false},
		{raw: "0", want: false},
		{raw: " false ", want: false},
		{raw: "maybe", wantErr: true},
		{raw: "", wantErr: true},
	}

	r := convert.NewRegistry()
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := convert.Convert[bool](r, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrConversion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestBuiltin_FloatInvariant(t *testing.T) {
	// Host locale must not change how numbers are read.
	t.Setenv("LANG", "de_DE.UTF-8")
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	t.Setenv("LC_NUMERIC", "de_DE.UTF-8")

	r := convert.NewRegistry()

	f, err := convert.Convert[float64](r, "3.14")
	require.NoError(t, err)
	assert.InDelta(t, 3.14, f, 1e-12)

	f32, err := convert.Convert[float32](r, "3.14")
	require.NoError(t, err)
	assert.Equal(t, float32(3.14), f32)

	_, err = convert.Convert[float64](r, "3,14")
	assert.ErrorIs(t, err, domain.ErrConversion)

	d, err := convert.Convert[decimal.Decimal](r, "3.14")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("3.14")), "got %s", d)
	assert.Equal(t, "3.14", d.String())

	_, err = convert.Convert[decimal.Decimal](r, "3,14")
	assert.ErrorIs(t, err, domain.ErrConversion)
}

func TestBuiltin_FloatDecimalOnly(t *testing.T) {
	r := convert.NewRegistry()

	for _, raw := range []string{"-1.5e3", "+2.5", ".5", " 42 "} {
		_, err := convert.Convert[float64](r, raw)
		assert.NoError(t, err, raw)
	}

	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+inf", "Infinity", "0x1p4", "0x10", "1_000.5", ""} {
		t.Run(raw, func(t *testing.T) {
			_, err := convert.Convert[float64](r, raw)
			require.ErrorIs(t, err, domain.ErrConversion)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
		})
	}
}

func TestBuiltin_Time(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "date only is UTC midnight",
			raw:  "2024-01-15",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "RFC3339 with zone",
			raw:  "2024-01-15T10:30:00+02:00",
			want: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name: "RFC3339 UTC",
			raw:  "2024-01-15T10:30:00Z",
			want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	r := convert.NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := convert.Convert[time.Time](r, tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(v), "want %s, got %s", tt.want, v)
		})
	}

	_, err := convert.Convert[time.Time](r, "yesterday")
	assert.ErrorIs(t, err, domain.ErrConversion)
}

func TestBuiltin_Duration(t *testing.T) {
	r := convert.NewRegistry()

	v, err := convert.Convert[time.Duration](r, "1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, v)

	_, err = convert.Convert[time.Duration](r, "90")
	assert.ErrorIs(t, err, domain.ErrConversion, "a unit is required")
}

func TestBuiltin_UUID(t *testing.T) {
	r := convert.NewRegistry()
	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	v, err := convert.Convert[uuid.UUID](r, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, want, v)

	_, err = convert.Convert[uuid.UUID](r, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrConversion)
}

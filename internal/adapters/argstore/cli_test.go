package argstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildargs/internal/adapters/argstore"
	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        map[string][]string
		positionals []string
	}{
		{
			name: "double dash with equals",
			args: []string{"--target=Build"},
			want: map[string][]string{"target": {"Build"}},
		},
		{
			name: "single dash with equals",
			args: []string{"-configuration=Release"},
			want: map[string][]string{"configuration": {"Release"}},
		},
		{
			name: "separate value",
			args: []string{"--loopCount", "5"},
			want: map[string][]string{"loopcount": {"5"}},
		},
		{
			name: "bare flag",
			args: []string{"--verbose"},
			want: map[string][]string{"verbose": {"true"}},
		},
		{
			name: "flag followed by option",
			args: []string{"--verbose", "--target=Test"},
			want: map[string][]string{"verbose": {"true"}, "target": {"Test"}},
		},
		{
			name: "negative number value",
			args: []string{"--offset", "-5", "--scale", "-0.5"},
			want: map[string][]string{"offset": {"-5"}, "scale": {"-0.5"}},
		},
		{
			name: "value containing equals",
			args: []string{"--define=KEY=VALUE"},
			want: map[string][]string{"define": {"KEY=VALUE"}},
		},
		{
			name: "empty value",
			args: []string{"--suffix="},
			want: map[string][]string{"suffix": {""}},
		},
		{
			name: "repeated arguments keep order",
			args: []string{"--exclude=a", "--Exclude", "b", "-EXCLUDE=c"},
			want: map[string][]string{"exclude": {"a", "b", "c"}},
		},
		{
			name:        "positionals and end of options",
			args:        []string{"build.yaml", "--target=Pack", "--", "--not-an-arg", "x"},
			want:        map[string][]string{"target": {"Pack"}},
			positionals: []string{"build.yaml", "--not-an-arg", "x"},
		},
		{
			name:        "single dash is positional",
			args:        []string{"-"},
			want:        map[string][]string{},
			positionals: []string{"-"},
		},
		{
			name: "flag before end of options",
			args: []string{"--dry-run", "--"},
			want: map[string][]string{"dry-run": {"true"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := argstore.ParseCommandLine(tt.args)
			require.NoError(t, err)

			assert.Len(t, s.Names(), len(tt.want))
			for name, values := range tt.want {
				assert.True(t, s.HasArgument(name), "missing %q", name)
				assert.Equal(t, values, s.GetArguments(name))

				last, ok := s.GetArgument(name)
				require.True(t, ok)
				assert.Equal(t, values[len(values)-1], last)
			}
			assert.Equal(t, tt.positionals, s.Positionals())
		})
	}
}

func TestParseCommandLine_InvalidSyntax(t *testing.T) {
	for _, tok := range []string{"--=value", "-=value", "---name=x"} {
		t.Run(tok, func(t *testing.T) {
			_, err := argstore.ParseCommandLine([]string{"--ok=1", tok})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgumentSyntax)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			meta := zErr.Metadata()
			assert.Equal(t, tok, meta["token"])
			assert.Equal(t, 1, meta["position"])
		})
	}
}

func TestParseCommandLine_CaseInsensitive(t *testing.T) {
	s, err := argstore.ParseCommandLine([]string{"--MyArgument=is specified"})
	require.NoError(t, err)

	assert.True(t, s.HasArgument("myargument"))
	assert.True(t, s.HasArgument("MYARGUMENT"))

	v, ok := s.GetArgument("myArgument")
	require.True(t, ok)
	assert.Equal(t, "is specified", v)
}

func TestStore_Absent(t *testing.T) {
	s := argstore.FromMap(map[string]string{"present": "1"})

	assert.False(t, s.HasArgument("absent"))
	v, ok := s.GetArgument("absent")
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Nil(t, s.GetArguments("absent"))
	assert.Equal(t, 1, s.Len())
}

func TestStore_GetArgumentsIsCopy(t *testing.T) {
	s, err := argstore.ParseCommandLine([]string{"--x=1", "--x=2"})
	require.NoError(t, err)

	vals := s.GetArguments("x")
	vals[0] = "changed"

	assert.Equal(t, []string{"1", "2"}, s.GetArguments("x"))
}

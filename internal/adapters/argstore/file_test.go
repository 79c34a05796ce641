package argstore_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildargs/internal/adapters/argstore"
	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "args.yaml", `
configuration: Release
loopCount: 5
ratio: 3.10
verbose: yes
empty:
exclude:
  - "**/bin"
  - "**/obj"
`)

	s, err := argstore.LoadFile(path)
	require.NoError(t, err)

	tests := map[string]string{
		"configuration": "Release",
		"loopcount":     "5",
		"ratio":         "3.10",
		"verbose":       "yes",
		"empty":         "",
		"exclude":       "**/obj",
	}
	for name, want := range tests {
		got, ok := s.GetArgument(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	assert.Equal(t, []string{"**/bin", "**/obj"}, s.GetArguments("exclude"))
}

func TestLoadFile_Empty(t *testing.T) {
	s, err := argstore.LoadFile(writeFile(t, "args.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, s.Names())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := argstore.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArgsFileReadFailed)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := argstore.LoadFile(writeFile(t, "args.yaml", "key: [unclosed"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArgsFileParseFailed)
	})

	t.Run("top level sequence", func(t *testing.T) {
		_, err := argstore.LoadFile(writeFile(t, "args.yaml", "- a\n- b\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArgsFileInvalid)
	})

	t.Run("nested mapping", func(t *testing.T) {
		_, err := argstore.LoadFile(writeFile(t, "args.yaml", "docker:\n  tag: latest\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArgsFileInvalid)

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		meta := zErr.Metadata()
		assert.Equal(t, "docker", meta["argument"])
		assert.Equal(t, 1, meta["line"])
	})
}

func TestLoadDotenv(t *testing.T) {
	path := writeFile(t, ".env", "CONFIGURATION=Debug\n# comment\nVERSION=\"1.2.3\"\n")

	s, err := argstore.LoadDotenv(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"configuration", "version"}, s.Names())
	v, _ := s.GetArgument("version")
	assert.Equal(t, "1.2.3", v)
}

func TestLoadDotenv_Missing(t *testing.T) {
	_, err := argstore.LoadDotenv(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArgsFileReadFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

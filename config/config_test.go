package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanWlker/dart-json-serializable-helper/generator"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultOptions(), *opts)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `constructor:
  default_values: true
copyWith:
  enabled: false
hashCode:
  use_jenkins: true
useEquatable: true
part: serialization
project:
  name: shop
  flutter: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.True(t, opts.Constructor.Enabled)
	assert.True(t, opts.Constructor.DefaultValues)
	assert.False(t, opts.CopyWith.Enabled)
	assert.True(t, opts.HashCode.UseJenkins)
	assert.True(t, opts.UseEquatable)
	assert.Equal(t, generator.PartSerialization, opts.Part)
	assert.Equal(t, "shop", opts.Project.Name)
	assert.True(t, opts.Project.Flutter)
}

func TestLoadEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DARTDATA_FROMMAP_DEFAULT_VALUES", "true")
	t.Setenv("DARTDATA_TOSTRING_ENABLED", "false")

	opts, err := Load("")
	require.NoError(t, err)
	assert.True(t, opts.FromMap.DefaultValues)
	assert.False(t, opts.ToString.Enabled)
}

func TestLoadUnknownPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("part: everything\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownPart)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, WriteDefault(path, false))
	assert.Error(t, WriteDefault(path, false), "existing file is kept")
	require.NoError(t, WriteDefault(path, true))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultOptions(), *opts)
}

func TestWrite(t *testing.T) {
	opts := generator.DefaultOptions()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &opts))
	assert.Contains(t, buf.String(), "copyWith:\n  enabled: true\n")
	assert.Contains(t, buf.String(), "use_jenkins: false")
}

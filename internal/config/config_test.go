package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultIndent, cfg.Output.Indent)
	assert.True(t, cfg.StripHTML())
	assert.False(t, cfg.Convert.Strict)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultServerMode, cfg.Server.Mode)
	assert.EqualValues(t, DefaultMaxBodyBytes, cfg.Server.MaxBodyBytes)
}

func TestParse_Values(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
log:
  level: debug
output:
  indent: 0
  strip_html: false
convert:
  strict: true
server:
  addr: 127.0.0.1:9000
  mode: test
  max_body_bytes: 1024
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0, cfg.Output.Indent)
	assert.False(t, cfg.StripHTML())
	assert.True(t, cfg.Convert.Strict)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.EqualValues(t, 1024, cfg.Server.MaxBodyBytes)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "log: [unclosed"},
		{"log level", "log:\n  level: loud\n"},
		{"server mode", "server:\n  mode: fast\n"},
		{"indent", "output:\n  indent: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotFound, Code(err))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o644))

	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalid, Code(err))
	assert.Contains(t, err.Error(), "unknown log level")

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("convert:\n  strict: true\n"), 0o644))

	cfg, err := LoadFile(good)
	require.NoError(t, err)
	assert.True(t, cfg.Convert.Strict)
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCode(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Code(assert.AnError))
	assert.Equal(t, ErrCodeInvalid, Code(&Error{Code: ErrCodeInvalid}))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MAPX_LOG_LEVEL", "warn")
	t.Setenv("MAPX_SERVER_ADDR", ":9999")
	t.Setenv("MAPX_SERVER_MODE", "debug")
	t.Setenv("MAPX_STRICT", "true")
	t.Setenv("MAPX_INDENT", "4")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.True(t, cfg.Convert.Strict)
	assert.Equal(t, 4, cfg.Output.Indent)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("MAPX_STRICT", "maybe")

	err := Default().ApplyEnv()
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalid, Code(err))
	assert.Contains(t, err.Error(), "MAPX_STRICT")
}

func TestLoadEnv(t *testing.T) {
	const key = "MAPX_CONFIG_TEST_LOADENV"

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte(key+"=from-file\n"), 0o644))

	require.NoError(t, LoadEnv(file))
	assert.Equal(t, "from-file", os.Getenv(key))

	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}

package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	data := `
Addr = "127.0.0.1:9000"
AllowedOrigins = ["http://localhost:3000"]
MaxExpressionLen = 128
`

	file := filepath.Join(t.TempDir(), "exprc.toml")
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(file, &cfg))

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 128, cfg.MaxExpressionLen)
}

func TestLoadConfigPartial(t *testing.T) {
	file := filepath.Join(t.TempDir(), "exprc.toml")
	require.NoError(t, os.WriteFile(file, []byte(`Addr = ":1234"`), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(file, &cfg))

	assert.Equal(t, ":1234", cfg.Addr)
	assert.Equal(t, DefaultConfig().MaxExpressionLen, cfg.MaxExpressionLen)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), &cfg))
}

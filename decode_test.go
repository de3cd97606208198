package holder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tlsConfig struct {
	Enabled bool `toml:"enabled"`
}

type serverConfig struct {
	Host string    `toml:"host"`
	Port int64     `toml:"port"`
	TLS  tlsConfig `toml:"tls"`
}

type appConfig struct {
	Server serverConfig `toml:"server"`
	Debug  bool         `toml:"debug"`
}

// TestScan tests decoding a tree into structs and maps
func TestScan(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		root := newServerTree(t)

		var cfg appConfig
		require.NoError(t, root.Scan(&cfg))
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, int64(8080), cfg.Server.Port)
		assert.True(t, cfg.Server.TLS.Enabled)
		assert.False(t, cfg.Debug)
	})

	t.Run("Subtree", func(t *testing.T) {
		root := newServerTree(t)

		var server serverConfig
		require.NoError(t, root.MustChild("server").Scan(&server))
		assert.Equal(t, "localhost", server.Host)
	})

	t.Run("Map", func(t *testing.T) {
		root := New()
		root.Set("a", "1")
		root.Set("b", "2")

		target := map[string]string{}
		require.NoError(t, root.Scan(&target))
		assert.Equal(t, map[string]string{"a": "1", "b": "2"}, target)
	})

	t.Run("EmptyTree", func(t *testing.T) {
		var cfg appConfig
		cfg.Server.Host = "preset"
		require.NoError(t, New().Scan(&cfg))
		assert.Equal(t, "preset", cfg.Server.Host)
	})
}

// TestScanErrors tests invalid targets and kind mismatches
func TestScanErrors(t *testing.T) {
	tests := []struct {
		name   string
		target any
	}{
		{"NilPointer", (*appConfig)(nil)},
		{"NonPointer", appConfig{}},
		{"Nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Scan(tt.target)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "non-nil pointer")
		})
	}

	t.Run("Cycle", func(t *testing.T) {
		root := New()
		root.MustChild("server").Set("parent", root)

		var cfg appConfig
		assert.ErrorIs(t, root.Scan(&cfg), ErrCycle)
	})

	t.Run("NoCoercion", func(t *testing.T) {
		root := New()
		require.NoError(t, root.SetPath("server.port", "8080"))

		var cfg appConfig
		err := root.Scan(&cfg)
		assert.Error(t, err)
	})
}

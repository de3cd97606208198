package holder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyArgs tests populating a tree from command-line style arguments
func TestApplyArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]any
	}{
		{
			name: "SpaceSeparated",
			args: []string{"--server.host", "example.com", "--server.port", "9090"},
			want: map[string]any{"server.host": "example.com", "server.port": "9090"},
		},
		{
			name: "EqualsSeparated",
			args: []string{"--server.host=example.com", "--name=a=b"},
			want: map[string]any{"server.host": "example.com", "name": "a=b"},
		},
		{
			name: "BooleanFlags",
			args: []string{"--debug", "--cache.enabled", "--verbose"},
			want: map[string]any{"debug": true, "cache.enabled": true, "verbose": true},
		},
		{
			name: "BooleanLiterals",
			args: []string{"--a", "false", "--b=true"},
			want: map[string]any{"a": false, "b": true},
		},
		{
			name: "QuotedValue",
			args: []string{"--motd", `"hello world"`},
			want: map[string]any{"motd": "hello world"},
		},
		{
			name: "SkipsPositionalAndSeparator",
			args: []string{"run", "--", "--x", "1", "extra"},
			want: map[string]any{"x": "1"},
		},
		{
			name: "LaterWins",
			args: []string{"--x", "1", "--x", "2"},
			want: map[string]any{"x": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New()
			require.NoError(t, root.ApplyArgs(tt.args))
			flat, err := root.Flatten()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, flat); diff != "" {
				t.Errorf("ApplyArgs(%v) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

// TestApplyArgsErrors tests malformed arguments
func TestApplyArgsErrors(t *testing.T) {
	t.Run("InvalidSegment", func(t *testing.T) {
		root := New()
		err := root.ApplyArgs([]string{"--ok", "1", "--bad!key", "2"})
		assert.ErrorIs(t, err, ErrInvalidPath)
		assert.Equal(t, 0, root.Len(), "nothing applied on parse failure")
	})

	t.Run("EmptySegment", func(t *testing.T) {
		err := New().ApplyArgs([]string{"--a..b", "1"})
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("ThroughValue", func(t *testing.T) {
		root := New()
		err := root.ApplyArgs([]string{"--ok", "1", "--port", "80", "--port.tls", "on"})
		assert.ErrorIs(t, err, ErrNotANode)
		assert.Equal(t, 0, root.Len(), "nothing applied when a later path runs through an earlier value")
	})

	t.Run("ThroughExistingValue", func(t *testing.T) {
		root := New()
		root.Set("port", 80)
		err := root.ApplyArgs([]string{"--ok", "1", "--port.tls", "on"})
		assert.ErrorIs(t, err, ErrNotANode)
		assert.False(t, root.Has("ok"))
		assert.Equal(t, 1, root.Len())
	})

	t.Run("BelowEarlierValue", func(t *testing.T) {
		root := New()
		err := root.ApplyArgs([]string{"--a.b", "1", "--a.b.c", "2"})
		assert.ErrorIs(t, err, ErrNotANode)
		assert.Equal(t, 0, root.Len())
	})

	t.Run("ReservedParent", func(t *testing.T) {
		root := New()
		err := root.ApplyArgs([]string{"--ok", "1", "--_meta.x", "2"})
		assert.ErrorIs(t, err, ErrAttributeNotFound)
		assert.Equal(t, 0, root.Len())
	})

	t.Run("ReservedLeafAllowed", func(t *testing.T) {
		root := New()
		require.NoError(t, root.ApplyArgs([]string{"--server._token", "abc"}))
		assert.Equal(t, "abc", root.MustChild("server").internal["_token"])
	})

	t.Run("ExistingSubtreeUpdated", func(t *testing.T) {
		root := New()
		root.MustChild("db").Set("host", "old")
		require.NoError(t, root.ApplyArgs([]string{"--db.host", "new", "--db.port", "5432"}))
		host, err := root.GetPath("db.host")
		require.NoError(t, err)
		assert.Equal(t, "new", host)
	})
}

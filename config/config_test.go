// SPDX-License-Identifier: MIT
// Dev KryperAI

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.RPCAddr)
	require.False(t, cfg.EnableWasm)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("TXMSG_RPC_ADDR", "127.0.0.1:9000")
	t.Setenv("TXMSG_ENABLE_WASM", "true")
	t.Setenv("TXMSG_LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.RPCAddr)
	require.True(t, cfg.EnableWasm)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestParseErrors(t *testing.T) {
	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("TXMSG_ENABLE_WASM", "maybe")
		_, err := Parse()
		require.ErrorContains(t, err, "parse env:")
	})
	t.Run("non-positive body limit", func(t *testing.T) {
		t.Setenv("TXMSG_MAX_BODY_BYTES", "0")
		_, err := Parse()
		require.ErrorContains(t, err, "TXMSG_MAX_BODY_BYTES")
	})
}

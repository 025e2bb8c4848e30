// SPDX-License-Identifier: MIT
// Dev KryperAI

package node

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmos-txmsg/config"
)

func TestNewWiresRegistry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", "json", &buf)

	n, err := New(&config.Config{EnableWasm: true}, logger)
	require.NoError(t, err)
	require.Equal(t, 14, n.Registry.Len())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "registry ready", line["msg"])
	require.Equal(t, float64(14), line["messages"])
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", "text", &buf)

	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown")
	require.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	NewLogger("bogus", "text", &buf).Debug("hidden")
	require.Empty(t, buf.String())
}

// SPDX-License-Identifier: MIT
// Dev KryperAI

package node

import (
	"fmt"
	"io"
	"log/slog"

	"cosmos-txmsg/config"
	"cosmos-txmsg/msgs"
	"cosmos-txmsg/tx"
)

// Node holds the long-lived pieces shared by the RPC handlers.
type Node struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *tx.Registry
}

func New(cfg *config.Config, logger *slog.Logger) (*Node, error) {
	reg, err := msgs.NewRegistry(cfg.EnableWasm)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	logger.Info("registry ready",
		"messages", reg.Len(),
		"wasm", cfg.EnableWasm,
	)

	return &Node{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
	}, nil
}

// NewLogger creates a slog.Logger writing to w. Unknown levels fall back to
// info; any format other than "json" is text.
func NewLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// SPDX-License-Identifier: MIT
// Dev KryperAI

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cosmos-txmsg/config"
	"cosmos-txmsg/node"
	"cosmos-txmsg/rpc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "CONFIG ERROR:", err)
		os.Exit(1)
	}
	cfg.Print()

	logger := node.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	n, err := node.New(cfg, logger)
	if err != nil {
		logger.Error("node init failed", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := rpc.NewServer(n)
	if err := server.Serve(ctx, cfg.RPCAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("rpc server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("bye")
}

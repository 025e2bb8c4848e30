// SPDX-License-Identifier: MIT
// Dev KryperAI

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RPCAddr      string `env:"TXMSG_RPC_ADDR" envDefault:":8000"`
	EnableWasm   bool   `env:"TXMSG_ENABLE_WASM" envDefault:"false"`
	LogLevel     string `env:"TXMSG_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"TXMSG_LOG_FORMAT" envDefault:"text"`
	MaxBodyBytes int64  `env:"TXMSG_MAX_BODY_BYTES" envDefault:"1048576"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("parse env: TXMSG_MAX_BODY_BYTES must be positive")
	}
	return cfg, nil
}

func (c *Config) Print() {
	fmt.Println("=== Configuration ===")
	fmt.Printf("  RPC Address:   %s\n", c.RPCAddr)
	fmt.Printf("  CosmWasm:      %t\n", c.EnableWasm)
	fmt.Printf("  Log:           %s/%s\n", c.LogLevel, c.LogFormat)
	fmt.Println("=====================")
}

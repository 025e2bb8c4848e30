// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// =========================
// Hash type (32 bytes)
// =========================

type Hash [32]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Sha256 hashes arbitrary bytes into a Hash.
func Sha256(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

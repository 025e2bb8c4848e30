// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Wallet represents a local keypair and derived address. It is only used by
// tooling to produce sender addresses; nothing here signs.
type Wallet struct {
	PrivateKey *ecdsa.PrivateKey
	Address    Address
}

// NewWallet generates a new secp256k1 keypair.
func NewWallet() (*Wallet, error) {
	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PrivateKey: priv,
		Address:    AddressFromPubKey(&priv.PublicKey),
	}, nil
}

// WalletFromHex restores a wallet from a hex private key.
func WalletFromHex(hexKey string) (*Wallet, error) {
	priv, err := PrivateKeyFromHex(hexKey)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		PrivateKey: priv,
		Address:    AddressFromPubKey(&priv.PublicKey),
	}, nil
}

// PrivateKeyToHex exports the private key as hex string (without 0x prefix).
func PrivateKeyToHex(priv *ecdsa.PrivateKey) (string, error) {
	if priv == nil {
		return "", errors.New("nil private key")
	}
	bytes := ethcrypto.FromECDSA(priv)
	return hex.EncodeToString(bytes), nil
}

// PrivateKeyFromHex parses a hex-encoded private key. A 0x prefix is accepted.
func PrivateKeyFromHex(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, errors.New("empty key string")
	}
	bytes, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, err
	}
	return ethcrypto.ToECDSA(bytes)
}

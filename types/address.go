// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // cosmos account addresses are defined with ripemd160
)

const AddressLength = 20

// DefaultBech32Prefix is the account prefix of the Cosmos Hub.
const DefaultBech32Prefix = "cosmos"

var ErrInvalidAddress = errors.New("invalid address")

// Address is a fixed 20-byte account identifier.
type Address [AddressLength]byte

// String returns the bech32 form with the given human readable prefix.
func (a Address) String(prefix string) string {
	conv, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		return ""
	}
	s, err := bech32.Encode(prefix, conv)
	if err != nil {
		return ""
	}
	return s
}

// IsZero checks if address is zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// ParseAddress converts a bech32 string into an Address, returning the
// human readable prefix it was encoded with.
func ParseAddress(s string) (Address, string, error) {
	s = strings.TrimSpace(s)
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return Address{}, "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(raw) != AddressLength {
		return Address{}, "", fmt.Errorf("%w: length %d", ErrInvalidAddress, len(raw))
	}
	var addr Address
	copy(addr[:], raw)
	return addr, hrp, nil
}

// ParseAddressWithPrefix parses s and rejects any prefix other than want.
func ParseAddressWithPrefix(s, want string) (Address, error) {
	addr, hrp, err := ParseAddress(s)
	if err != nil {
		return Address{}, err
	}
	if hrp != want {
		return Address{}, fmt.Errorf("%w: prefix %q, want %q", ErrInvalidAddress, hrp, want)
	}
	return addr, nil
}

// AddressFromPubKey derives the account address of a secp256k1 key:
// ripemd160(sha256(compressed pubkey)).
func AddressFromPubKey(pub *ecdsa.PublicKey) Address {
	sha := sha256.Sum256(crypto.CompressPubkey(pub))
	h := ripemd160.New()
	h.Write(sha[:])
	var addr Address
	copy(addr[:], h.Sum(nil))
	return addr
}

// AddressFromPrivateKey derives an address from raw private key bytes.
func AddressFromPrivateKey(privKeyBytes []byte) (Address, error) {
	privKey, err := crypto.ToECDSA(privKeyBytes)
	if err != nil {
		return Address{}, err
	}
	return AddressFromPubKey(&privKey.PublicKey), nil
}

// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"strings"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestAddressBech32RoundTrip(t *testing.T) {
	var addr Address
	for i := range addr {
		addr[i] = byte(i + 1)
	}

	s := addr.String("cosmos")
	require.True(t, strings.HasPrefix(s, "cosmos1"), s)

	got, hrp, err := ParseAddress(s)
	require.NoError(t, err)
	require.Equal(t, "cosmos", hrp)
	require.Equal(t, addr, got)

	_, err = ParseAddressWithPrefix(s, "osmo")
	require.ErrorIs(t, err, ErrInvalidAddress)

	got, err = ParseAddressWithPrefix(addr.String("osmo"), "osmo")
	require.NoError(t, err)
	require.Equal(t, addr, got)
}

func TestParseAddressInvalid(t *testing.T) {
	var addr Address
	valid := addr.String("cosmos")
	corrupted := valid[:len(valid)-1] + "x"
	if corrupted == valid {
		corrupted = valid[:len(valid)-1] + "y"
	}

	for _, s := range []string{"", "cosmos", "0x0102", corrupted} {
		_, _, err := ParseAddress(s)
		require.ErrorIs(t, err, ErrInvalidAddress, s)
	}
}

func TestAddressFromKeys(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)
	require.False(t, w.Address.IsZero())

	hexKey, err := PrivateKeyToHex(w.PrivateKey)
	require.NoError(t, err)

	restored, err := WalletFromHex("0x" + hexKey)
	require.NoError(t, err)
	require.Equal(t, w.Address, restored.Address)

	fromRaw, err := AddressFromPrivateKey(ethcrypto.FromECDSA(w.PrivateKey))
	require.NoError(t, err)
	require.Equal(t, w.Address, fromRaw)
}

func TestPrivateKeyFromHexErrors(t *testing.T) {
	_, err := PrivateKeyFromHex("")
	require.Error(t, err)

	_, err = PrivateKeyFromHex("zz")
	require.Error(t, err)

	_, err = PrivateKeyToHex(nil)
	require.Error(t, err)
}

func TestSha256(t *testing.T) {
	h := Sha256(nil)
	require.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", h.String())
	require.False(t, h.IsZero())
	require.True(t, Hash{}.IsZero())
}

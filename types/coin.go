// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
	"google.golang.org/protobuf/encoding/protowire"
)

// Coin mirrors cosmos.base.v1beta1.Coin. Amount is a decimal string, the
// same form the chain puts on the wire.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func NewCoin(denom, amount string) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) String() string { return c.Amount + c.Denom }

// Marshal encodes the coin as protobuf (denom=1, amount=2).
func (c Coin) Marshal() []byte {
	var b []byte
	b = AppendString(b, 1, c.Denom)
	b = AppendString(b, 2, c.Amount)
	return b
}

// UnmarshalCoin decodes a protobuf-encoded coin.
func UnmarshalCoin(data []byte) (Coin, error) {
	var c Coin
	if err := MergeCoin(&c, data); err != nil {
		return Coin{}, err
	}
	return c, nil
}

// MergeCoin decodes data on top of c. Fields present in data replace those
// in c; absent fields keep their current value.
func MergeCoin(c *Coin, data []byte) error {
	merged := *c
	err := ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		var err error
		switch num {
		case 1:
			merged.Denom, err = ReadString(num, typ, v)
		case 2:
			merged.Amount, err = ReadString(num, typ, v)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("coin: %w", err)
	}
	*c = merged
	return nil
}

// AppendCoins writes every coin as a repeated embedded message field.
func AppendCoins(b []byte, num protowire.Number, coins []Coin) []byte {
	for _, c := range coins {
		b = AppendMessage(b, num, c.Marshal())
	}
	return b
}

/* ------------------------------------------------------- *
   CLI input parsing ("100uatom", "1uatom,2stake")
* ------------------------------------------------------- */

var coinPattern = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]{1,127})$`)

var ErrInvalidCoin = errors.New("invalid coin")

// ParseCoin reads a single "<amount><denom>" token. The amount must fit in
// 256 bits.
func ParseCoin(s string) (Coin, error) {
	s = strings.TrimSpace(s)
	m := coinPattern.FindStringSubmatch(s)
	if m == nil {
		return Coin{}, fmt.Errorf("%w: %q", ErrInvalidCoin, s)
	}
	amount, err := uint256.FromDecimal(m[1])
	if err != nil {
		return Coin{}, fmt.Errorf("%w: amount %q: %v", ErrInvalidCoin, m[1], err)
	}
	return NewCoin(m[2], amount.Dec()), nil
}

// ParseCoins reads a comma separated list of coins. Empty input yields nil.
func ParseCoins(s string) ([]Coin, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	coins := make([]Coin, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCoin(p)
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, nil
}

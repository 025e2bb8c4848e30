// SPDX-License-Identifier: MIT
// Dev KryperAI

package msgs

import (
	"google.golang.org/protobuf/encoding/protowire"

	"cosmos-txmsg/types"
)

func readString(num protowire.Number, typ protowire.Type, v []byte, dst *string) error {
	s, err := types.ReadString(num, typ, v)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func readBytes(num protowire.Number, typ protowire.Type, v []byte, dst *[]byte) error {
	if err := types.ExpectType(num, typ, protowire.BytesType); err != nil {
		return err
	}
	*dst = types.CloneBytes(v)
	return nil
}

func readUint64(num protowire.Number, typ protowire.Type, n uint64, dst *uint64) error {
	if err := types.ExpectType(num, typ, protowire.VarintType); err != nil {
		return err
	}
	*dst = n
	return nil
}

// readCoin appends one element of a repeated Coin field.
func readCoin(num protowire.Number, typ protowire.Type, v []byte, dst *[]types.Coin) error {
	if err := types.ExpectType(num, typ, protowire.BytesType); err != nil {
		return err
	}
	c, err := types.UnmarshalCoin(v)
	if err != nil {
		return err
	}
	*dst = append(*dst, c)
	return nil
}

// readSingleCoin fills a non-repeated Coin field. A repeated occurrence on
// the wire merges into the value already read.
func readSingleCoin(num protowire.Number, typ protowire.Type, v []byte, dst *types.Coin) error {
	if err := types.ExpectType(num, typ, protowire.BytesType); err != nil {
		return err
	}
	return types.MergeCoin(dst, v)
}

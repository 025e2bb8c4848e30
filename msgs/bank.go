// SPDX-License-Identifier: MIT
// Dev KryperAI

package msgs

import (
	"google.golang.org/protobuf/encoding/protowire"

	"cosmos-txmsg/types"
)

const TypeURLMsgSend = "/cosmos.bank.v1beta1.MsgSend"

// MsgSend moves coins from one account to another.
type MsgSend struct {
	FromAddress string       `json:"from_address"`
	ToAddress   string       `json:"to_address"`
	Amount      []types.Coin `json:"amount"`
}

func (MsgSend) TypeURL() string { return TypeURLMsgSend }

func (m MsgSend) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.FromAddress)
	b = types.AppendString(b, 2, m.ToAddress)
	b = types.AppendCoins(b, 3, m.Amount)
	return b, nil
}

func (m *MsgSend) Unmarshal(data []byte) error {
	*m = MsgSend{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.FromAddress)
		case 2:
			return readString(num, typ, v, &m.ToAddress)
		case 3:
			return readCoin(num, typ, v, &m.Amount)
		}
		return nil
	})
}

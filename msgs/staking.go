// SPDX-License-Identifier: MIT
// Dev KryperAI

package msgs

import (
	"google.golang.org/protobuf/encoding/protowire"

	"cosmos-txmsg/types"
)

const (
	TypeURLMsgDelegate        = "/cosmos.staking.v1beta1.MsgDelegate"
	TypeURLMsgUndelegate      = "/cosmos.staking.v1beta1.MsgUndelegate"
	TypeURLMsgBeginRedelegate = "/cosmos.staking.v1beta1.MsgBeginRedelegate"
)

// MsgDelegate bonds Amount from a delegator to a validator.
type MsgDelegate struct {
	DelegatorAddress string     `json:"delegator_address"`
	ValidatorAddress string     `json:"validator_address"`
	Amount           types.Coin `json:"amount"`
}

func (MsgDelegate) TypeURL() string { return TypeURLMsgDelegate }

func (m MsgDelegate) Marshal() ([]byte, error) {
	return marshalDelegation(m.DelegatorAddress, m.ValidatorAddress, m.Amount), nil
}

func (m *MsgDelegate) Unmarshal(data []byte) error {
	*m = MsgDelegate{}
	return unmarshalDelegation(data, &m.DelegatorAddress, &m.ValidatorAddress, &m.Amount)
}

// MsgUndelegate shares the wire layout of MsgDelegate.
type MsgUndelegate struct {
	DelegatorAddress string     `json:"delegator_address"`
	ValidatorAddress string     `json:"validator_address"`
	Amount           types.Coin `json:"amount"`
}

func (MsgUndelegate) TypeURL() string { return TypeURLMsgUndelegate }

func (m MsgUndelegate) Marshal() ([]byte, error) {
	return marshalDelegation(m.DelegatorAddress, m.ValidatorAddress, m.Amount), nil
}

func (m *MsgUndelegate) Unmarshal(data []byte) error {
	*m = MsgUndelegate{}
	return unmarshalDelegation(data, &m.DelegatorAddress, &m.ValidatorAddress, &m.Amount)
}

// MsgBeginRedelegate moves a delegation between two validators.
type MsgBeginRedelegate struct {
	DelegatorAddress    string     `json:"delegator_address"`
	ValidatorSrcAddress string     `json:"validator_src_address"`
	ValidatorDstAddress string     `json:"validator_dst_address"`
	Amount              types.Coin `json:"amount"`
}

func (MsgBeginRedelegate) TypeURL() string { return TypeURLMsgBeginRedelegate }

func (m MsgBeginRedelegate) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.DelegatorAddress)
	b = types.AppendString(b, 2, m.ValidatorSrcAddress)
	b = types.AppendString(b, 3, m.ValidatorDstAddress)
	b = types.AppendMessage(b, 4, m.Amount.Marshal())
	return b, nil
}

func (m *MsgBeginRedelegate) Unmarshal(data []byte) error {
	*m = MsgBeginRedelegate{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.DelegatorAddress)
		case 2:
			return readString(num, typ, v, &m.ValidatorSrcAddress)
		case 3:
			return readString(num, typ, v, &m.ValidatorDstAddress)
		case 4:
			return readSingleCoin(num, typ, v, &m.Amount)
		}
		return nil
	})
}

// delegator_address=1, validator_address=2, amount=3
func marshalDelegation(delegator, validator string, amount types.Coin) []byte {
	var b []byte
	b = types.AppendString(b, 1, delegator)
	b = types.AppendString(b, 2, validator)
	b = types.AppendMessage(b, 3, amount.Marshal())
	return b
}

func unmarshalDelegation(data []byte, delegator, validator *string, amount *types.Coin) error {
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, delegator)
		case 2:
			return readString(num, typ, v, validator)
		case 3:
			return readSingleCoin(num, typ, v, amount)
		}
		return nil
	})
}

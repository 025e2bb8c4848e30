// SPDX-License-Identifier: MIT
// Dev KryperAI

package msgs

import (
	"google.golang.org/protobuf/encoding/protowire"

	"cosmos-txmsg/types"
)

const (
	TypeURLMsgSetWithdrawAddress          = "/cosmos.distribution.v1beta1.MsgSetWithdrawAddress"
	TypeURLMsgWithdrawDelegatorReward     = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	TypeURLMsgWithdrawValidatorCommission = "/cosmos.distribution.v1beta1.MsgWithdrawValidatorCommission"
	TypeURLMsgFundCommunityPool           = "/cosmos.distribution.v1beta1.MsgFundCommunityPool"
)

// -------------------- MsgSetWithdrawAddress --------------------

type MsgSetWithdrawAddress struct {
	DelegatorAddress string `json:"delegator_address"`
	WithdrawAddress  string `json:"withdraw_address"`
}

func (MsgSetWithdrawAddress) TypeURL() string { return TypeURLMsgSetWithdrawAddress }

func (m MsgSetWithdrawAddress) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.DelegatorAddress)
	b = types.AppendString(b, 2, m.WithdrawAddress)
	return b, nil
}

func (m *MsgSetWithdrawAddress) Unmarshal(data []byte) error {
	*m = MsgSetWithdrawAddress{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.DelegatorAddress)
		case 2:
			return readString(num, typ, v, &m.WithdrawAddress)
		}
		return nil
	})
}

// -------------------- MsgWithdrawDelegatorReward --------------------

type MsgWithdrawDelegatorReward struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
}

func (MsgWithdrawDelegatorReward) TypeURL() string { return TypeURLMsgWithdrawDelegatorReward }

func (m MsgWithdrawDelegatorReward) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendString(b, 1, m.DelegatorAddress)
	b = types.AppendString(b, 2, m.ValidatorAddress)
	return b, nil
}

func (m *MsgWithdrawDelegatorReward) Unmarshal(data []byte) error {
	*m = MsgWithdrawDelegatorReward{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readString(num, typ, v, &m.DelegatorAddress)
		case 2:
			return readString(num, typ, v, &m.ValidatorAddress)
		}
		return nil
	})
}

// -------------------- MsgWithdrawValidatorCommission --------------------

type MsgWithdrawValidatorCommission struct {
	ValidatorAddress string `json:"validator_address"`
}

func (MsgWithdrawValidatorCommission) TypeURL() string {
	return TypeURLMsgWithdrawValidatorCommission
}

func (m MsgWithdrawValidatorCommission) Marshal() ([]byte, error) {
	return types.AppendString(nil, 1, m.ValidatorAddress), nil
}

func (m *MsgWithdrawValidatorCommission) Unmarshal(data []byte) error {
	*m = MsgWithdrawValidatorCommission{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		if num == 1 {
			return readString(num, typ, v, &m.ValidatorAddress)
		}
		return nil
	})
}

// -------------------- MsgFundCommunityPool --------------------

type MsgFundCommunityPool struct {
	Amount    []types.Coin `json:"amount"`
	Depositor string       `json:"depositor"`
}

func (MsgFundCommunityPool) TypeURL() string { return TypeURLMsgFundCommunityPool }

func (m MsgFundCommunityPool) Marshal() ([]byte, error) {
	var b []byte
	b = types.AppendCoins(b, 1, m.Amount)
	b = types.AppendString(b, 2, m.Depositor)
	return b, nil
}

func (m *MsgFundCommunityPool) Unmarshal(data []byte) error {
	*m = MsgFundCommunityPool{}
	return types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, _ uint64) error {
		switch num {
		case 1:
			return readCoin(num, typ, v, &m.Amount)
		case 2:
			return readString(num, typ, v, &m.Depositor)
		}
		return nil
	})
}

// SPDX-License-Identifier: MIT
// Dev KryperAI

package msgs

import "cosmos-txmsg/tx"

// Standard lists the bank, distribution and staking messages.
func Standard() []tx.Factory {
	return []tx.Factory{
		func() tx.Decodable { return new(MsgSend) },
		func() tx.Decodable { return new(MsgSetWithdrawAddress) },
		func() tx.Decodable { return new(MsgWithdrawDelegatorReward) },
		func() tx.Decodable { return new(MsgWithdrawValidatorCommission) },
		func() tx.Decodable { return new(MsgFundCommunityPool) },
		func() tx.Decodable { return new(MsgDelegate) },
		func() tx.Decodable { return new(MsgUndelegate) },
		func() tx.Decodable { return new(MsgBeginRedelegate) },
	}
}

// Wasm lists the CosmWasm contract messages.
func Wasm() []tx.Factory {
	return []tx.Factory{
		func() tx.Decodable { return new(MsgStoreCode) },
		func() tx.Decodable { return new(MsgInstantiateContract) },
		func() tx.Decodable { return new(MsgExecuteContract) },
		func() tx.Decodable { return new(MsgMigrateContract) },
		func() tx.Decodable { return new(MsgUpdateAdmin) },
		func() tx.Decodable { return new(MsgClearAdmin) },
	}
}

// NewRegistry builds the registry of standard messages, plus the wasm
// subset when withWasm is set.
func NewRegistry(withWasm bool) (*tx.Registry, error) {
	reg := tx.NewRegistry()
	if err := reg.Register(Standard()...); err != nil {
		return nil, err
	}
	if withWasm {
		if err := reg.Register(Wasm()...); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// SPDX-License-Identifier: MIT
// Dev KryperAI

package msgs

import (
	"fmt"

	"cosmos-txmsg/tx"
)

type parseFunc func(tx.Msg) (tx.MsgProto, error)

func parser[T any, P interface {
	*T
	tx.Decodable
}]() parseFunc {
	return func(m tx.Msg) (tx.MsgProto, error) {
		v, err := tx.FromMsg[T, P](m)
		if err != nil {
			return nil, err
		}
		return P(&v), nil
	}
}

var parsers = map[string]parseFunc{
	TypeURLMsgSend:                        parser[MsgSend](),
	TypeURLMsgSetWithdrawAddress:          parser[MsgSetWithdrawAddress](),
	TypeURLMsgWithdrawDelegatorReward:     parser[MsgWithdrawDelegatorReward](),
	TypeURLMsgWithdrawValidatorCommission: parser[MsgWithdrawValidatorCommission](),
	TypeURLMsgFundCommunityPool:           parser[MsgFundCommunityPool](),
	TypeURLMsgDelegate:                    parser[MsgDelegate](),
	TypeURLMsgUndelegate:                  parser[MsgUndelegate](),
	TypeURLMsgBeginRedelegate:             parser[MsgBeginRedelegate](),
	TypeURLMsgStoreCode:                   parser[MsgStoreCode](),
	TypeURLMsgInstantiateContract:         parser[MsgInstantiateContract](),
	TypeURLMsgExecuteContract:             parser[MsgExecuteContract](),
	TypeURLMsgMigrateContract:             parser[MsgMigrateContract](),
	TypeURLMsgUpdateAdmin:                 parser[MsgUpdateAdmin](),
	TypeURLMsgClearAdmin:                  parser[MsgClearAdmin](),
}

// ParseAs parses m as the message kind named by expected. A type URL that
// differs from expected fails with *tx.MsgTypeError.
func ParseAs(expected string, m tx.Msg) (tx.MsgProto, error) {
	p, ok := parsers[expected]
	if !ok {
		return nil, fmt.Errorf("%w: %s", tx.ErrUnknownTypeURL, expected)
	}
	return p(m)
}

// ParseFirst tries each candidate kind in order and returns the first that
// accepts m. Type mismatches move on to the next candidate; any other error
// stops the search.
func ParseFirst(m tx.Msg, candidates ...string) (tx.MsgProto, error) {
	for _, url := range candidates {
		out, err := ParseAs(url, m)
		if tx.IsMsgType(err) {
			continue
		}
		return out, err
	}
	return nil, fmt.Errorf("%w: %s matches none of %d candidates", tx.ErrMsgType, m.TypeURL(), len(candidates))
}

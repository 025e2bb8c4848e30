// SPDX-License-Identifier: MIT
// Dev KryperAI

package tx

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"cosmos-txmsg/types"
)

/*
   TX BODY
   - cosmos.tx.v1beta1.TxBody: messages=1 (Any), memo=2, timeout_height=3
   - extension options are not carried
   - auth info, fees and signatures live outside this package
*/

type Body struct {
	Messages      []Msg
	Memo          string
	TimeoutHeight uint64
}

var marshalOpts = proto.MarshalOptions{Deterministic: true}

// NewBody encodes each message and collects them into a body.
func NewBody(memo string, timeoutHeight uint64, msgs ...MsgProto) (*Body, error) {
	b := &Body{Memo: memo, TimeoutHeight: timeoutHeight}
	for _, m := range msgs {
		msg, err := ToMsg(m)
		if err != nil {
			return nil, err
		}
		b.Messages = append(b.Messages, msg)
	}
	return b, nil
}

// Marshal encodes the body as protobuf.
func (b *Body) Marshal() ([]byte, error) {
	if b == nil {
		return nil, errors.New("nil body")
	}
	var out []byte
	for i, m := range b.Messages {
		anyBytes, err := marshalOpts.Marshal(m.ToAny())
		if err != nil {
			return nil, fmt.Errorf("body message %d: %w", i, err)
		}
		out = types.AppendMessage(out, 1, anyBytes)
	}
	out = types.AppendString(out, 2, b.Memo)
	out = types.AppendUint64(out, 3, b.TimeoutHeight)
	return out, nil
}

// Hash is the sha256 of the body encoding.
func (b *Body) Hash() (types.Hash, error) {
	data, err := b.Marshal()
	if err != nil {
		return types.Hash{}, err
	}
	return types.Sha256(data), nil
}

// UnmarshalBody decodes a protobuf TxBody.
func UnmarshalBody(data []byte) (*Body, error) {
	b := &Body{}
	err := types.ForEachField(data, func(num protowire.Number, typ protowire.Type, v []byte, n uint64) error {
		switch num {
		case 1:
			if err := types.ExpectType(num, typ, protowire.BytesType); err != nil {
				return err
			}
			var a anypb.Any
			if err := proto.Unmarshal(v, &a); err != nil {
				return fmt.Errorf("body message %d: %w", len(b.Messages), err)
			}
			b.Messages = append(b.Messages, FromAny(&a))
		case 2:
			memo, err := types.ReadString(num, typ, v)
			if err != nil {
				return err
			}
			b.Memo = memo
		case 3:
			if err := types.ExpectType(num, typ, protowire.VarintType); err != nil {
				return err
			}
			b.TimeoutHeight = n
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tx body: %w", err)
	}
	return b, nil
}

// DecodeBody decodes a body and every message in it through reg.
func DecodeBody(reg *Registry, data []byte) (*Body, []Decodable, error) {
	b, err := UnmarshalBody(data)
	if err != nil {
		return nil, nil, err
	}
	out := make([]Decodable, 0, len(b.Messages))
	for i, m := range b.Messages {
		d, err := reg.Decode(m)
		if err != nil {
			return nil, nil, fmt.Errorf("body message %d: %w", i, err)
		}
		out = append(out, d)
	}
	return b, out, nil
}

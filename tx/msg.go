// SPDX-License-Identifier: MIT
// Dev KryperAI

package tx

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"google.golang.org/protobuf/types/known/anypb"
)

// Msg is a transaction message in its wire form: a protobuf Any type URL and
// the encoded message bytes. A Msg never changes after construction.
type Msg struct {
	typeURL string
	value   []byte
}

// NewMsg builds a Msg from raw parts. No validation is done on typeURL.
func NewMsg(typeURL string, value []byte) Msg {
	return Msg{
		typeURL: typeURL,
		value:   bytes.Clone(value),
	}
}

func (m Msg) TypeURL() string { return m.typeURL }

// Value returns a copy of the encoded message.
func (m Msg) Value() []byte { return bytes.Clone(m.value) }

// Equal reports whether both the type URL and the value bytes match.
func (m Msg) Equal(other Msg) bool {
	return m.typeURL == other.typeURL && bytes.Equal(m.value, other.value)
}

func (m Msg) String() string {
	return m.typeURL + "{" + hexutil.Encode(m.value) + "}"
}

// FromAny converts the transport Any into a Msg. A nil Any yields the zero Msg.
func FromAny(a *anypb.Any) Msg {
	if a == nil {
		return Msg{}
	}
	return NewMsg(a.GetTypeUrl(), a.GetValue())
}

// ToAny converts the Msg into the transport Any.
func (m Msg) ToAny() *anypb.Any {
	return &anypb.Any{
		TypeUrl: m.typeURL,
		Value:   bytes.Clone(m.value),
	}
}

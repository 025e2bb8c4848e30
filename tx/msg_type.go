// SPDX-License-Identifier: MIT
// Dev KryperAI

package tx

// MsgProto is implemented by every concrete message. TypeURL must return a
// constant so that the zero value of the type can answer it.
type MsgProto interface {
	TypeURL() string
	Marshal() ([]byte, error)
}

// Decodable is a MsgProto that can be filled from its protobuf encoding.
// Concrete messages implement it on the pointer receiver.
type Decodable interface {
	MsgProto
	Unmarshal(data []byte) error
}

// ptrTo constrains P to *T so FromMsg can allocate a T and decode into it.
type ptrTo[T any] interface {
	*T
	Decodable
}

// FromMsg parses msg as T. The type URL must match exactly; otherwise a
// *MsgTypeError carrying both URLs is returned.
func FromMsg[T any, P ptrTo[T]](msg Msg) (T, error) {
	var out T
	p := P(&out)

	expected := p.TypeURL()
	if msg.typeURL != expected {
		return out, &MsgTypeError{Expected: expected, Found: msg.typeURL}
	}

	if err := p.Unmarshal(msg.value); err != nil {
		var zero T
		return zero, &CodecError{Op: "decode", TypeURL: expected, Err: err}
	}
	return out, nil
}

// ToMsg encodes m and wraps the bytes with its type URL.
func ToMsg(m MsgProto) (Msg, error) {
	value, err := m.Marshal()
	if err != nil {
		return Msg{}, &CodecError{Op: "encode", TypeURL: m.TypeURL(), Err: err}
	}
	return Msg{typeURL: m.TypeURL(), value: value}, nil
}

// MustToMsg is ToMsg for messages built in code, where an encoding failure
// is a programming error.
func MustToMsg(m MsgProto) Msg {
	msg, err := ToMsg(m)
	if err != nil {
		panic(err)
	}
	return msg
}

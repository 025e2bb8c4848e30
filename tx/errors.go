// SPDX-License-Identifier: MIT
// Dev KryperAI

package tx

import (
	"errors"
	"fmt"
)

var (
	ErrMsgType          = errors.New("unexpected message type")
	ErrCodec            = errors.New("message codec failure")
	ErrUnknownTypeURL   = errors.New("unknown message type url")
	ErrDuplicateTypeURL = errors.New("duplicate message type url")
)

// MsgTypeError is returned when a Msg is parsed as a type whose URL does not
// match. Callers dispatching over candidate types treat it as "try the next".
type MsgTypeError struct {
	Expected string
	Found    string
}

func (e *MsgTypeError) Error() string {
	return fmt.Sprintf("%s: expected %q, found %q", ErrMsgType, e.Expected, e.Found)
}

func (e *MsgTypeError) Is(target error) bool { return target == ErrMsgType }

// CodecError wraps a failure of the protobuf encoder or decoder.
type CodecError struct {
	Op      string // "encode" or "decode"
	TypeURL string
	Err     error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.TypeURL, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

func (e *CodecError) Is(target error) bool { return target == ErrCodec }

// IsMsgType reports whether err is a type URL mismatch.
func IsMsgType(err error) bool {
	return errors.Is(err, ErrMsgType)
}

// SPDX-License-Identifier: MIT
// Dev KryperAI

package types

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

/*
   PROTOBUF WIRE HELPERS
   - proto3 rules: zero values are not written
   - fields are appended in field-number order by the callers
   - unknown fields are skipped on decode
   - known fields with the wrong wire type are errors
*/

var (
	ErrWireType    = errors.New("unexpected wire type")
	ErrInvalidUTF8 = errors.New("string field is not valid utf-8")
)

// AppendString writes a length-delimited string field, skipping "".
func AppendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// AppendBytes writes a length-delimited bytes field, skipping empty slices.
func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendUint64 writes a varint field, skipping 0.
func AppendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// AppendMessage writes an embedded message field. Embedded messages are
// always written, even when empty, to match non-nullable gogoproto fields.
func AppendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// FieldFunc receives one decoded field. data holds the payload of
// length-delimited fields and the raw encoded value of fixed32, fixed64 and
// group fields; v holds the value for varint fields.
type FieldFunc func(num protowire.Number, typ protowire.Type, data []byte, v uint64) error

// ForEachField walks every top-level field in b and hands each one to fn,
// whatever its wire type. fn decides which field numbers it knows.
func ForEachField(b []byte, fn FieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("read tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			data, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return fmt.Errorf("read field %d: %w", num, protowire.ParseError(m))
			}
			if err := fn(num, typ, data, 0); err != nil {
				return err
			}
			b = b[m:]
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return fmt.Errorf("read field %d: %w", num, protowire.ParseError(m))
			}
			if err := fn(num, typ, nil, v); err != nil {
				return err
			}
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("read field %d: %w", num, protowire.ParseError(m))
			}
			if err := fn(num, typ, b[:m], 0); err != nil {
				return err
			}
			b = b[m:]
		}
	}
	return nil
}

// ExpectType guards a field against a wire type that does not match the schema.
func ExpectType(num protowire.Number, got, want protowire.Type) error {
	if got != want {
		return fmt.Errorf("field %d: %w %d, want %d", num, ErrWireType, got, want)
	}
	return nil
}

// ReadString decodes a proto3 string field, which must be length-delimited
// and valid UTF-8.
func ReadString(num protowire.Number, typ protowire.Type, v []byte) (string, error) {
	if err := ExpectType(num, typ, protowire.BytesType); err != nil {
		return "", err
	}
	if !utf8.Valid(v) {
		return "", fmt.Errorf("field %d: %w", num, ErrInvalidUTF8)
	}
	return string(v), nil
}

// CloneBytes copies a decoded slice out of the input buffer. Empty input
// decodes to nil: proto3 does not tell an empty bytes or repeated field
// apart from an absent one, so nil and empty are the same value here.
func CloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

package kvcache

import (
	"fmt"
	"strconv"
)

// Kind identifies which scalar a Value carries.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindBytes
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a storable scalar. The zero Value is an empty string.
// Build one with String, Bytes, Int or Float.
type Value struct {
	kind Kind
	s    string
	b    []byte
	i    int64
	f    float64
}

func String(s string) Value { return Value{kind: KindString, s: s} }
func Bytes(b []byte) Value { return Value{kind: KindBytes, b: b} }
func Int(n int64) Value { return Value{kind: KindInt, i: n} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind reports the variant. The zero Value reports KindString.
func (v Value) Kind() Kind {
	if v.kind == 0 {
		return KindString
	}
	return v.kind
}

// Encode returns the bytes written to the provider:
//
//	string -> UTF-8 bytes as-is
//	bytes  -> unchanged (nil => empty)
//	int    -> base-10 ASCII
//	float  -> shortest decimal that round-trips through ParseFloat
func (v Value) Encode() []byte {
	switch v.Kind() {
	case KindBytes:
		if v.b == nil {
			return []byte{}
		}
		return v.b
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10)
	case KindFloat:
		return strconv.AppendFloat(nil, v.f, 'f', -1, 64)
	default:
		return []byte(v.s)
	}
}

func (v Value) String() string {
	switch v.Kind() {
	case KindBytes:
		return fmt.Sprintf("bytes(%d)", len(v.b))
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return strconv.Quote(v.s)
	}
}

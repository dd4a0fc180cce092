// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"fmt"
	"math"

	"github.com/bufbuild/treecmp/internal/hashx"
)

const (
	ValueKindString ValueKind = iota + 1
	ValueKindInt
	ValueKindFloat
	ValueKindBool
)

// ValueKind is the kind of scalar stored in a [Value]; the zero value is
// invalid.
type ValueKind int8

// String implements [fmt.Stringer].
func (k ValueKind) String() string {
	switch k {
	case ValueKindString:
		return "string"
	case ValueKindInt:
		return "int"
	case ValueKindFloat:
		return "float"
	case ValueKindBool:
		return "bool"
	default:
		return fmt.Sprintf("ast.ValueKind(%d)", int(k))
	}
}

// Value is an opaque leaf on a [Tree] node: the text of a name, the payload
// of a literal, a flag. Values are compared and hashed by content, with no
// semantic interpretation.
//
// Value is a closed union over string, int64, float64 and bool; the zero
// value is invalid.
type Value struct {
	kind ValueKind
	bits uint64
	str  string
}

// StringValue wraps a string as a [Value].
func StringValue(s string) Value {
	return Value{kind: ValueKindString, str: s}
}

// IntValue wraps an integer as a [Value].
func IntValue(n int64) Value {
	return Value{kind: ValueKindInt, bits: uint64(n)}
}

// FloatValue wraps a float as a [Value].
//
// Floats are compared by bit pattern, so a NaN payload equals itself; these
// are literal tokens, not arithmetic values.
func FloatValue(n float64) Value {
	return Value{kind: ValueKindFloat, bits: math.Float64bits(n)}
}

// BoolValue wraps a bool as a [Value].
func BoolValue(b bool) Value {
	var bits uint64
	if b {
		bits = 1
	}
	return Value{kind: ValueKindBool, bits: bits}
}

// Kind returns which scalar kind this value holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsString returns the string payload, which is only meaningful for
// [ValueKindString].
func (v Value) AsString() string {
	return v.str
}

// AsInt returns the integer payload, which is only meaningful for
// [ValueKindInt].
func (v Value) AsInt() int64 {
	return int64(v.bits)
}

// AsFloat returns the float payload, which is only meaningful for
// [ValueKindFloat].
func (v Value) AsFloat() float64 {
	return math.Float64frombits(v.bits)
}

// AsBool returns the bool payload, which is only meaningful for
// [ValueKindBool].
func (v Value) AsBool() bool {
	return v.bits != 0
}

// Equal reports whether two values hold the same scalar of the same kind.
func (v Value) Equal(o Value) bool {
	return v == o
}

// Hash returns a hash of this value, consistent with [Value.Equal].
func (v Value) Hash() uint64 {
	h := hashx.Int(v.kind)
	if v.kind == ValueKindString {
		return hashx.Mix(h, hashx.String(v.str))
	}
	return hashx.Mix(h, v.bits)
}

// String implements [fmt.Stringer].
func (v Value) String() string {
	switch v.kind {
	case ValueKindString:
		return fmt.Sprintf("%q", v.str)
	case ValueKindInt:
		return fmt.Sprint(v.AsInt())
	case ValueKindFloat:
		return fmt.Sprint(v.AsFloat())
	case ValueKindBool:
		return fmt.Sprint(v.AsBool())
	default:
		return "<invalid>"
	}
}

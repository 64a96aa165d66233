// Package value defines the tagged-union scalar type stored on graph
// elements and used to describe index ranges and search predicates.
package value

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindBool
	KindString
	KindBytes
	KindUUID
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindUUID:
		return "UUID"
	default:
		return "Unknown"
	}
}

// Value is an immutable scalar stored on a vertex/edge field or carried
// by an index/search descriptor. Exactly one of the typed fields is
// meaningful, selected by Kind.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	by   []byte
	u    uuid.UUID
}

// Int constructs an Int64 Value.
func Int(v int64) Value { return Value{kind: KindInt64, i: v} }

// Float constructs a Float64 Value.
func Float(v float64) Value { return Value{kind: KindFloat64, f: v} }

// Bool constructs a Bool Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String constructs a String Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bytes constructs a Bytes Value. The slice is not copied; callers must
// not mutate it after handing it to Bytes.
func Bytes(v []byte) Value { return Value{kind: KindBytes, by: v} }

// UUID constructs a UUID Value.
func UUID(v uuid.UUID) Value { return Value{kind: KindUUID, u: v} }

// Kind reports which variant is populated.
func (v Value) Kind() Kind { return v.kind }

func (v Value) Int() (int64, bool)      { return v.i, v.kind == KindInt64 }
func (v Value) Float() (float64, bool)  { return v.f, v.kind == KindFloat64 }
func (v Value) Bool() (bool, bool)      { return v.b, v.kind == KindBool }
func (v Value) Str() (string, bool)     { return v.s, v.kind == KindString }
func (v Value) Raw() ([]byte, bool)     { return v.by, v.kind == KindBytes }
func (v Value) UUIDVal() (uuid.UUID, bool) {
	return v.u, v.kind == KindUUID
}

// Equal reports whether v and other carry the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt64:
		return v.i == other.i
	case KindFloat64:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindBytes:
		return bytes.Equal(v.by, other.by)
	case KindUUID:
		return v.u == other.u
	default:
		return false
	}
}

// Compare orders two Values of the same Kind. ok is false when the kinds
// differ or the kind has no total order (Bytes and UUID are ordered
// bytewise; Bool is not ordered at all).
func (v Value) Compare(other Value) (cmp int, ok bool) {
	if v.kind != other.kind {
		return 0, false
	}
	switch v.kind {
	case KindInt64:
		return compareInt64(v.i, other.i), true
	case KindFloat64:
		return compareFloat64(v.f, other.f), true
	case KindString:
		return compareString(v.s, other.s), true
	case KindBytes:
		return bytes.Compare(v.by, other.by), true
	case KindUUID:
		return bytes.Compare(v.u[:], other.u[:]), true
	default:
		return 0, false
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer for debugging and the dbg pipeline stage.
func (v Value) String() string {
	switch v.kind {
	case KindInt64:
		return fmt.Sprintf("Int64(%d)", v.i)
	case KindFloat64:
		return fmt.Sprintf("Float64(%g)", v.f)
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.b)
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindBytes:
		return fmt.Sprintf("Bytes(%x)", v.by)
	case KindUUID:
		return fmt.Sprintf("UUID(%s)", v.u)
	default:
		return "Value(invalid)"
	}
}

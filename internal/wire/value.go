package wire

import "bytes"

// Value is a tagged variant over the wire-type domains of §3. A Token's
// value shape always matches its registry entry's Type; constructors below
// are the only way to produce a non-zero Value. The zero Value (whose Kind
// is not a valid wire type) is what this package returns alongside a decode
// error.
type Value struct {
	kind  Type
	b     byte
	str   string
	bytes []byte
	i32   int32
	u32   uint32
	i64   int64
	f64   float64
	guid  [GuidSize]byte
}

// Kind reports which wire type this value was constructed for.
func (v Value) Kind() Type { return v.kind }

// ByteValue constructs a raw Byte value (0-255): used for both booleans
// (0/1) and small enum ids.
func ByteValue(b byte) Value { return Value{kind: Byte, b: b} }

// BoolValue constructs a Byte value representing a boolean.
func BoolValue(b bool) Value {
	if b {
		return ByteValue(1)
	}
	return ByteValue(0)
}

// SmallStringValue constructs a SmallString value (1-byte length prefix).
func SmallStringValue(s string) Value { return Value{kind: SmallString, str: s} }

// StringValue constructs a String value (2-byte LE length prefix).
func StringValue(s string) Value { return Value{kind: String, str: s} }

// ULongStringValue constructs a ULongString value (4-byte LE length prefix).
func ULongStringValue(s string) Value { return Value{kind: ULongString, str: s} }

// BytesValue constructs an opaque Bytes value.
func BytesValue(b []byte) Value { return Value{kind: Bytes, bytes: b} }

// LongValue constructs a signed 32-bit Long value.
func LongValue(v int32) Value { return Value{kind: Long, i32: v} }

// ULongValue constructs an unsigned 32-bit ULong value.
func ULongValue(v uint32) Value { return Value{kind: ULong, u32: v} }

// LongLongValue constructs a signed 64-bit LongLong value.
func LongLongValue(v int64) Value { return Value{kind: LongLong, i64: v} }

// DoubleValue constructs an IEEE 754 double value.
func DoubleValue(v float64) Value { return Value{kind: Double, f64: v} }

// GuidValue constructs a 16-byte Guid value.
func GuidValue(g [GuidSize]byte) Value { return Value{kind: Guid, guid: g} }

// AsByte returns the raw byte for a Byte value.
func (v Value) AsByte() byte { return v.b }

// AsBool interprets a Byte value as a boolean (nonzero is true).
func (v Value) AsBool() bool { return v.b != 0 }

// AsString returns the text for a SmallString/String/ULongString value.
func (v Value) AsString() string { return v.str }

// AsBytes returns the raw payload for a Bytes value.
func (v Value) AsBytes() []byte { return v.bytes }

// AsLong returns the signed 32-bit payload for a Long value.
func (v Value) AsLong() int32 { return v.i32 }

// AsULong returns the unsigned 32-bit payload for a ULong value.
func (v Value) AsULong() uint32 { return v.u32 }

// AsLongLong returns the signed 64-bit payload for a LongLong value.
func (v Value) AsLongLong() int64 { return v.i64 }

// AsDouble returns the floating-point payload for a Double value.
func (v Value) AsDouble() float64 { return v.f64 }

// AsGuid returns the 16-byte payload for a Guid value.
func (v Value) AsGuid() [GuidSize]byte { return v.guid }

// Equal reports whether v and other carry the same kind and payload. Used by
// the round-trip property tests in headerstream.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Byte:
		return v.b == other.b
	case SmallString, String, ULongString:
		return v.str == other.str
	case Bytes:
		return bytes.Equal(v.bytes, other.bytes)
	case Long:
		return v.i32 == other.i32
	case ULong:
		return v.u32 == other.u32
	case LongLong:
		return v.i64 == other.i64
	case Double:
		return v.f64 == other.f64
	case Guid:
		return v.guid == other.guid
	default:
		return false
	}
}

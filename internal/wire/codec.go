package wire

import (
	"math"

	"github.com/cosmosdb-go/rntbd/internal/buf"
)

// maxSmallStringLen is the length ceiling for SmallString/Bytes payloads:
// a 1-byte length prefix.
const maxSmallStringLen = 0xFF

// maxStringLen is the length ceiling for String payloads: a 2-byte LE
// length prefix.
const maxStringLen = 0xFFFF

// AppendValue appends v's wire payload (not including id or type_byte) to
// dst and returns the extended slice. It returns an error recognized by
// AsValueTooLong when a length-prefixed value exceeds its wire type's length
// ceiling; callers that know the header name wrap this into a *ValueTooLong.
func AppendValue(dst []byte, v Value) ([]byte, error) {
	switch v.kind {
	case Byte:
		return append(dst, v.b), nil

	case SmallString, Bytes:
		data := smallStringBytes(v)
		if len(data) > maxSmallStringLen {
			return nil, errValueTooLong(len(data), maxSmallStringLen)
		}
		dst = append(dst, byte(len(data)))
		return append(dst, data...), nil

	case String:
		data := []byte(v.str)
		if len(data) > maxStringLen {
			return nil, errValueTooLong(len(data), maxStringLen)
		}
		dst = appendU16LE(dst, uint16(len(data)))
		return append(dst, data...), nil

	case ULongString:
		data := []byte(v.str)
		if uint64(len(data)) > math.MaxUint32 {
			return nil, errValueTooLong(len(data), math.MaxUint32)
		}
		dst = appendU32LE(dst, uint32(len(data)))
		return append(dst, data...), nil

	case Long:
		return appendU32LE(dst, uint32(v.i32)), nil

	case ULong:
		return appendU32LE(dst, v.u32), nil

	case LongLong:
		return appendU64LE(dst, uint64(v.i64)), nil

	case Double:
		return appendU64LE(dst, math.Float64bits(v.f64)), nil

	case Guid:
		return append(dst, v.guid[:]...), nil

	default:
		return nil, &UnknownType{Byte: byte(v.kind)}
	}
}

func smallStringBytes(v Value) []byte {
	if v.kind == Bytes {
		return v.bytes
	}
	return []byte(v.str)
}

// DecodeValue reads one value of wire type t from the front of src. It
// returns the decoded value and the number of bytes consumed. Unknown ids
// are decoded the same way and their value discarded by the caller: the
// type byte alone determines payload length, which is what makes
// forward-compatible skipping possible.
func DecodeValue(src []byte, t Type) (v Value, consumed int, err error) {
	switch t {
	case Byte:
		b, ok := buf.Slice(src, 0, 1)
		if !ok {
			return Value{}, 0, &Truncated{Context: "Byte payload"}
		}
		return ByteValue(b[0]), 1, nil

	case SmallString, Bytes:
		lenByte, ok := buf.Slice(src, 0, 1)
		if !ok {
			return Value{}, 0, &Truncated{Context: "SmallString length"}
		}
		n := int(lenByte[0])
		data, ok := buf.Slice(src, 1, n)
		if !ok {
			return Value{}, 0, &Truncated{Context: "SmallString payload"}
		}
		if t == Bytes {
			cp := append([]byte(nil), data...)
			return BytesValue(cp), 1 + n, nil
		}
		return SmallStringValue(string(data)), 1 + n, nil

	case String:
		lenBytes, ok := buf.Slice(src, 0, 2)
		if !ok {
			return Value{}, 0, &Truncated{Context: "String length"}
		}
		n := int(buf.U16LE(lenBytes))
		data, ok := buf.Slice(src, 2, n)
		if !ok {
			return Value{}, 0, &Truncated{Context: "String payload"}
		}
		return StringValue(string(data)), 2 + n, nil

	case ULongString:
		lenBytes, ok := buf.Slice(src, 0, 4)
		if !ok {
			return Value{}, 0, &Truncated{Context: "ULongString length"}
		}
		n := int(buf.U32LE(lenBytes))
		data, ok := buf.Slice(src, 4, n)
		if !ok {
			return Value{}, 0, &Truncated{Context: "ULongString payload"}
		}
		return ULongStringValue(string(data)), 4 + n, nil

	case Long:
		raw, ok := buf.Slice(src, 0, 4)
		if !ok {
			return Value{}, 0, &Truncated{Context: "Long payload"}
		}
		return LongValue(buf.I32LE(raw)), 4, nil

	case ULong:
		raw, ok := buf.Slice(src, 0, 4)
		if !ok {
			return Value{}, 0, &Truncated{Context: "ULong payload"}
		}
		return ULongValue(buf.U32LE(raw)), 4, nil

	case LongLong:
		raw, ok := buf.Slice(src, 0, 8)
		if !ok {
			return Value{}, 0, &Truncated{Context: "LongLong payload"}
		}
		return LongLongValue(buf.I64LE(raw)), 8, nil

	case Double:
		raw, ok := buf.Slice(src, 0, 8)
		if !ok {
			return Value{}, 0, &Truncated{Context: "Double payload"}
		}
		return DoubleValue(math.Float64frombits(buf.U64LE(raw))), 8, nil

	case Guid:
		raw, ok := buf.Slice(src, 0, GuidSize)
		if !ok {
			return Value{}, 0, &Truncated{Context: "Guid payload"}
		}
		var g [GuidSize]byte
		copy(g[:], raw)
		return GuidValue(g), GuidSize, nil

	default:
		return Value{}, 0, &UnknownType{Byte: byte(t)}
	}
}

func appendU16LE(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

func appendU32LE(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendU64LE(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

type valueTooLongErr struct {
	len, max int
}

func (e *valueTooLongErr) Error() string { return "rntbd: value too long" }

func errValueTooLong(length, max int) error {
	return &valueTooLongErr{len: length, max: max}
}

// AsValueTooLong reports whether err was produced by AppendValue's length
// check, returning the offending length and the type's ceiling. Callers
// that know the header name use this to build a *ValueTooLong.
func AsValueTooLong(err error) (length, max int, ok bool) {
	e, ok := err.(*valueTooLongErr)
	if !ok {
		return 0, 0, false
	}
	return e.len, e.max, true
}

// Package wire implements the low-level RNTBD token codec: the wire-type
// enumeration, the header registry, the tagged Value union, and the
// byte-exact encode/decode primitives for each wire type's payload.
//
// Nothing in this package knows about requests, headers maps, or enum
// mapping tables — those live in request and projector. This package only
// knows how to turn a typed value into bytes and back, and how to look a
// field up by its stable wire id.
package wire

import "fmt"

// Type is the closed set of on-the-wire payload encodings a token can carry.
// Values are the stable type_byte wire constants; they are never renumbered.
type Type byte

const (
	Byte         Type = 0x01
	Bytes        Type = 0x02
	SmallString  Type = 0x04
	String       Type = 0x05
	ULongString  Type = 0x06
	Guid         Type = 0x07
	Long         Type = 0x08
	ULong        Type = 0x09
	LongLong     Type = 0x0A
	Double       Type = 0x0C
)

func (t Type) String() string {
	switch t {
	case Byte:
		return "Byte"
	case Bytes:
		return "Bytes"
	case SmallString:
		return "SmallString"
	case String:
		return "String"
	case ULongString:
		return "ULongString"
	case Guid:
		return "Guid"
	case Long:
		return "Long"
	case ULong:
		return "ULong"
	case LongLong:
		return "LongLong"
	case Double:
		return "Double"
	default:
		return fmt.Sprintf("Type(0x%02X)", byte(t))
	}
}

// Valid reports whether t is one of the ten recognized wire types.
func (t Type) Valid() bool {
	switch t {
	case Byte, Bytes, SmallString, String, ULongString, Guid, Long, ULong, LongLong, Double:
		return true
	default:
		return false
	}
}

// GuidSize is the fixed length of a Guid payload.
const GuidSize = 16

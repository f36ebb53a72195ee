// Package headerstream implements the ordered, id-keyed collection of
// tokens that is the unit of RNTBD encode/decode (§4.3).
//
// Grounded on hivekit's hive.List/hive/valuelist.go (an ordered,
// indexable collection with a stable on-disk encode order) and
// internal/format/list.go's read-count-then-loop decode shape.
package headerstream

import (
	"encoding/binary"
	"io"

	"github.com/cosmosdb-go/rntbd/internal/buf"
	"github.com/cosmosdb-go/rntbd/internal/wire"
	"github.com/cosmosdb-go/rntbd/token"
)

// Stream is an ordered collection of tokens keyed by registry id. A Stream
// is constructed empty, populated once (by a projector or by Decode), then
// encoded or read; tokens are not meant to be mutated after encoding (§3).
//
// Streams are not safe for concurrent use; each request owns one (§5).
type Stream struct {
	reg  *wire.Registry
	toks map[uint16]*token.Token
}

// New returns an empty Stream bound to the process-wide default registry.
func New() *Stream {
	return NewWithRegistry(wire.Default)
}

// NewWithRegistry returns an empty Stream bound to reg. Exposed mainly so
// tests can exercise Encode/Decode against a small, purpose-built registry
// instead of the full production table.
func NewWithRegistry(reg *wire.Registry) *Stream {
	return &Stream{reg: reg, toks: make(map[uint16]*token.Token)}
}

func (s *Stream) tokenFor(id uint16) (*token.Token, bool) {
	if t, ok := s.toks[id]; ok {
		return t, true
	}
	entry, ok := s.reg.LookupByID(id)
	if !ok {
		return nil, false
	}
	t := token.New(entry)
	s.toks[id] = &t
	return &t, true
}

// Set assigns v to the token for id, validating that v's kind matches the
// registry's declared wire type for id. Returns an error if id is unknown
// to the stream's registry or v has the wrong kind.
func (s *Stream) Set(id uint16, v wire.Value) error {
	t, ok := s.tokenFor(id)
	if !ok {
		return &unknownIDError{id: id}
	}
	return t.Set(v)
}

// Get returns the value stored for id and whether it is present.
func (s *Stream) Get(id uint16) (wire.Value, bool) {
	t, ok := s.toks[id]
	if !ok || !t.Present() {
		return wire.Value{}, false
	}
	return t.Value(), true
}

// Has reports whether id has a present token.
func (s *Stream) Has(id uint16) bool {
	_, ok := s.Get(id)
	return ok
}

// ForEach calls fn for every present token in ascending id order, the same
// order Encode writes in. Used by diagnostics (e.g. rntbdcat decode) that
// need to enumerate a decoded stream's contents without re-encoding it.
func (s *Stream) ForEach(fn func(entry wire.RegistryEntry, v wire.Value)) {
	for _, entry := range s.reg.Ordered() {
		t, ok := s.toks[entry.ID]
		if !ok || !t.Present() {
			continue
		}
		fn(entry, t.Value())
	}
}

// Encode writes every present token to w in ascending id order, each as
// id(u16 LE) | type_byte | payload (§4.3, §6). Absent tokens are omitted
// entirely. Encode is deterministic and idempotent for a fixed set of
// present tokens and values (§5's ordering guarantee).
func (s *Stream) Encode(w io.Writer) error {
	for _, entry := range s.reg.Ordered() {
		t, ok := s.toks[entry.ID]
		if !ok || !t.Present() {
			continue
		}

		frame, err := encodeToken(entry, t.Value())
		if err != nil {
			return err
		}

		if _, err := w.Write(frame); err != nil {
			return err
		}
	}
	return nil
}

// encodeToken renders one id|type_byte|payload frame.
func encodeToken(entry wire.RegistryEntry, v wire.Value) ([]byte, error) {
	frame := make([]byte, 0, 3+estimatePayloadLen(v))
	frame = binary.LittleEndian.AppendUint16(frame, entry.ID)
	frame = append(frame, byte(entry.Type))

	frame, err := wire.AppendValue(frame, v)
	if err != nil {
		if length, max, ok := wire.AsValueTooLong(err); ok {
			return nil, &wire.ValueTooLong{Name: entry.Name, Len: length, Max: max}
		}
		return nil, err
	}
	return frame, nil
}

func estimatePayloadLen(v wire.Value) int {
	switch v.Kind() {
	case wire.SmallString, wire.String, wire.ULongString:
		return len(v.AsString()) + 4
	case wire.Bytes:
		return len(v.AsBytes()) + 4
	default:
		return 8
	}
}

// Decode reads a concatenation of tokens from data until it is exhausted
// (§4.3, §6: outer framing supplies the length, so there is no count or
// terminator on the wire). Tokens with a known id must match the
// registry's declared type or decoding fails with *wire.TypeMismatch.
// Tokens with an unknown id still have their payload consumed (the type
// byte alone determines its length) and are silently dropped, preserving
// forward compatibility (§4.3, §8 "Forward compatibility"). Decode accepts
// tokens in any order (§4.3 "Ordering guarantees").
//
// On any error the returned Stream is nil: a partially-populated stream
// must never be exposed (§7).
func Decode(data []byte) (*Stream, error) {
	return DecodeWithRegistry(data, wire.Default)
}

// DecodeWithRegistry is Decode against a caller-supplied registry.
func DecodeWithRegistry(data []byte, reg *wire.Registry) (*Stream, error) {
	s := NewWithRegistry(reg)
	off := 0

	for off < len(data) {
		idBytes, ok := buf.Slice(data, off, 2)
		if !ok {
			return nil, &wire.Truncated{Context: "header id"}
		}
		id := buf.U16LE(idBytes)
		off += 2

		typeByte, ok := buf.Slice(data, off, 1)
		if !ok {
			return nil, &wire.Truncated{Context: "type byte"}
		}
		t := wire.Type(typeByte[0])
		off++

		if !t.Valid() {
			return nil, &wire.UnknownType{Byte: typeByte[0]}
		}

		entry, known := reg.LookupByID(id)
		if known && entry.Type != t {
			return nil, &wire.TypeMismatch{ID: id, Expected: entry.Type, Got: t}
		}

		v, consumed, err := wire.DecodeValue(data[off:], t)
		if err != nil {
			return nil, err
		}
		off += consumed

		if !known {
			continue // forward compatibility: consumed, discarded
		}
		if err := s.Set(id, v); err != nil {
			return nil, err
		}
	}

	return s, nil
}

type unknownIDError struct{ id uint16 }

func (e *unknownIDError) Error() string {
	return "headerstream: unknown registry id"
}

package headerstream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdb-go/rntbd/internal/wire"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(idOf(t, "ReplicaPath"), wire.StringValue("/replica/path")))
	require.NoError(t, s.Set(idOf(t, "ConsistencyLevel"), wire.ByteValue(2)))
	require.NoError(t, s.Set(idOf(t, "PageSize"), wire.ULongValue(100)))
	require.NoError(t, s.Set(idOf(t, "BinaryId"), wire.BytesValue([]byte{1, 2, 3, 4})))

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))

	decoded, err := Decode(buf.Bytes())
	require.NoError(t, err)

	assertStreamsEqual(t, s, decoded)
}

func TestEncodeOmitsAbsentTokens(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(idOf(t, "ReplicaPath"), wire.StringValue("/x")))

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))

	decoded, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.False(t, decoded.Has(idOf(t, "ConsistencyLevel")))
	assert.True(t, decoded.Has(idOf(t, "ReplicaPath")))
}

func TestEncodeIsAscendingByID(t *testing.T) {
	s := New()
	// Set in descending order; encode must still emit ascending.
	require.NoError(t, s.Set(idOf(t, "PageSize"), wire.ULongValue(1)))
	require.NoError(t, s.Set(idOf(t, "ConsistencyLevel"), wire.ByteValue(1)))
	require.NoError(t, s.Set(idOf(t, "ReplicaPath"), wire.StringValue("/x")))
	require.NoError(t, s.Set(idOf(t, "PayloadPresent"), wire.BoolValue(true)))

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))

	var ids []uint16
	data := buf.Bytes()
	off := 0
	for off < len(data) {
		id := uint16(data[off]) | uint16(data[off+1])<<8
		ids = append(ids, id)
		typ := wire.Type(data[off+2])
		off += 3
		v, n, err := wire.DecodeValue(data[off:], typ)
		require.NoError(t, err)
		_ = v
		off += n
	}
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i], "encode must emit ascending ids")
	}
}

func TestForEachVisitsOnlyPresentTokensInAscendingOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(idOf(t, "PageSize"), wire.ULongValue(1)))
	require.NoError(t, s.Set(idOf(t, "ReplicaPath"), wire.StringValue("/x")))

	var ids []uint16
	s.ForEach(func(entry wire.RegistryEntry, v wire.Value) {
		ids = append(ids, entry.ID)
	})

	require.Len(t, ids, 2)
	assert.Less(t, ids[0], ids[1])
}

func TestDecodeOrderIndependence(t *testing.T) {
	s1 := New()
	require.NoError(t, s1.Set(idOf(t, "ReplicaPath"), wire.StringValue("/x")))
	require.NoError(t, s1.Set(idOf(t, "ConsistencyLevel"), wire.ByteValue(3)))
	require.NoError(t, s1.Set(idOf(t, "PageSize"), wire.ULongValue(7)))

	frames := splitFrames(t, s1)
	// Permute the frames and splice them back together.
	permuted := append(append([]byte{}, frames[2]...), append(frames[0], frames[1]...)...)

	decodedInOrder, err := Decode(concat(frames))
	require.NoError(t, err)
	decodedPermuted, err := Decode(permuted)
	require.NoError(t, err)

	assertStreamsEqual(t, decodedInOrder, decodedPermuted)
}

func TestForwardCompatibilityUnknownID(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(idOf(t, "ReplicaPath"), wire.StringValue("/x")))
	require.NoError(t, s.Set(idOf(t, "ConsistencyLevel"), wire.ByteValue(2)))

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))

	// Splice in a synthetic token with an unassigned id.
	synthetic, err := wire.AppendValue(nil, wire.StringValue("hi"))
	require.NoError(t, err)
	frame := append([]byte{0xFF, 0xFF, byte(wire.String)}, synthetic...)
	spliced := append(buf.Bytes(), frame...)

	decoded, err := Decode(spliced)
	require.NoError(t, err)

	assertStreamsEqual(t, s, decoded)
	assert.False(t, decoded.Has(0xFFFF))
}

func TestDecodeTypeMismatch(t *testing.T) {
	id := idOf(t, "ConsistencyLevel") // registered as Byte
	frame := []byte{byte(id), byte(id >> 8), byte(wire.String), 0x00, 0x00}

	_, err := Decode(frame)
	require.Error(t, err)
	var mismatch *wire.TypeMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, wire.Byte, mismatch.Expected)
	assert.Equal(t, wire.String, mismatch.Got)
}

func TestDecodeTruncatedMidToken(t *testing.T) {
	id := idOf(t, "PageSize") // ULong, 4-byte payload
	frame := []byte{byte(id), byte(id >> 8), byte(wire.ULong), 0x01, 0x02} // only 2 of 4 bytes

	_, err := Decode(frame)
	require.Error(t, err)
	var trunc *wire.Truncated
	assert.True(t, errors.As(err, &trunc))
}

func TestDecodeUnknownTypeByteFails(t *testing.T) {
	frame := []byte{0x01, 0x00, 0xEE}
	_, err := Decode(frame)
	require.Error(t, err)
	var unk *wire.UnknownType
	assert.True(t, errors.As(err, &unk))
}

// -- helpers --

func idOf(t *testing.T, name string) uint16 {
	t.Helper()
	e, ok := wire.Default.LookupByName(name)
	require.True(t, ok, "registry missing %q", name)
	return e.ID
}

func splitFrames(t *testing.T, s *Stream) [][]byte {
	t.Helper()
	var frames [][]byte
	for _, entry := range wire.Default.Ordered() {
		v, ok := s.Get(entry.ID)
		if !ok {
			continue
		}
		frame, err := encodeToken(entry, v)
		require.NoError(t, err)
		frames = append(frames, frame)
	}
	return frames
}

func concat(frames [][]byte) []byte {
	var out []byte
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

func assertStreamsEqual(t *testing.T, a, b *Stream) {
	t.Helper()
	for _, entry := range wire.Default.Ordered() {
		av, aok := a.Get(entry.ID)
		bv, bok := b.Get(entry.ID)
		if !assert.Equal(t, aok, bok, "presence mismatch for %s", entry.Name) {
			continue
		}
		if aok {
			assert.True(t, av.Equal(bv), "value mismatch for %s: %+v vs %+v", entry.Name, av, bv)
		}
	}
}

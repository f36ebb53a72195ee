package projector

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmosdb-go/rntbd/internal/wire"
	"github.com/cosmosdb-go/rntbd/request"
)

func assertToken(t *testing.T, s interface {
	Get(uint16) (wire.Value, bool)
}, name string, want wire.Value) {
	t.Helper()
	entry, ok := wire.Default.LookupByName(name)
	require.True(t, ok, "no registry entry named %q", name)
	got, present := s.Get(entry.ID)
	require.True(t, present, "token %q should be present", name)
	assert.True(t, want.Equal(got), "token %q = %+v, want %+v", name, got, want)
}

func assertAbsent(t *testing.T, s interface {
	Get(uint16) (wire.Value, bool)
}, name string) {
	t.Helper()
	entry, ok := wire.Default.LookupByName(name)
	require.True(t, ok)
	_, present := s.Get(entry.ID)
	assert.False(t, present, "token %q should be absent", name)
}

func TestNameBasedDocumentRead(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.ResourceAddress = "/dbs/dbA/colls/cA/docs/d1"
	req.IsNameBased = true
	req.ReplicaPath = "/replica/1"
	req.Headers.Set("x-ms-consistency-level", "Session")
	req.Headers.Set("x-ms-max-item-count", "100")
	req.Headers.Set("If-None-Match", `"etag1"`)

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)

	assertToken(t, s, "ReplicaPath", wire.StringValue("/replica/1"))
	assertToken(t, s, "DatabaseName", wire.SmallStringValue("dbA"))
	assertToken(t, s, "CollectionName", wire.SmallStringValue("cA"))
	assertToken(t, s, "DocumentName", wire.SmallStringValue("d1"))
	assertToken(t, s, "ConsistencyLevel", wire.ByteValue(2))
	assertToken(t, s, "PageSize", wire.ULongValue(100))
	assertToken(t, s, "Match", wire.SmallStringValue(`"etag1"`))
	assertToken(t, s, "PayloadPresent", wire.BoolValue(false))
}

func TestInvalidConsistencyLevelFails(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.ResourceAddress = "/dbs/dbA/colls/cA/docs/d1"
	req.IsNameBased = true
	req.Headers.Set("x-ms-consistency-level", "Relaxed")

	_, err := Project(req, DefaultOptions())
	require.Error(t, err)

	var invalid *wire.InvalidHeaderValue
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "x-ms-consistency-level", invalid.Name)
	assert.Equal(t, "Relaxed", invalid.Value)
}

func TestPageSizeNegativeOneMapsToAllOnes(t *testing.T) {
	req := request.New(request.OpReadFeed, request.ResDocument)
	req.Headers.Set("x-ms-max-item-count", "-1")

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)

	assertToken(t, s, "PageSize", wire.ULongValue(0xFFFFFFFF))
}

func TestPageSizeOutOfRangeFails(t *testing.T) {
	req := request.New(request.OpReadFeed, request.ResDocument)
	req.Headers.Set("x-ms-max-item-count", "4294967296")

	_, err := Project(req, DefaultOptions())
	require.Error(t, err)
	var invalid *wire.InvalidHeaderValue
	require.ErrorAs(t, err, &invalid)
}

func TestBase64BinaryIDHeader(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.Headers.Set("x-ms-binary-id", base64.StdEncoding.EncodeToString([]byte{1, 2, 3, 4}))

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)

	assertToken(t, s, "BinaryId", wire.BytesValue([]byte{1, 2, 3, 4}))
}

func TestInvalidBase64Fails(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.Headers.Set("x-ms-binary-id", "not valid base64!!")

	_, err := Project(req, DefaultOptions())
	require.Error(t, err)
	var bad *wire.InvalidBase64
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "x-ms-binary-id", bad.Name)
}

func TestWriteWithPayloadSetsPayloadPresent(t *testing.T) {
	req := request.New(request.OpCreate, request.ResDocument)
	req.Content = []byte("hello")

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)

	assertToken(t, s, "PayloadPresent", wire.BoolValue(true))
}

func TestMatchHeaderSelectionByOperation(t *testing.T) {
	read := request.New(request.OpRead, request.ResDocument)
	read.Headers.Set("If-None-Match", `"a"`)
	read.Headers.Set("If-Match", `"b"`)
	s, err := Project(read, DefaultOptions())
	require.NoError(t, err)
	assertToken(t, s, "Match", wire.SmallStringValue(`"a"`))

	write := request.New(request.OpReplace, request.ResDocument)
	write.Headers.Set("If-None-Match", `"a"`)
	write.Headers.Set("If-Match", `"b"`)
	s2, err := Project(write, DefaultOptions())
	require.NoError(t, err)
	assertToken(t, s2, "Match", wire.SmallStringValue(`"b"`))
}

func TestDatePrefersXDateOverDate(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.Headers.Set("date", "Mon, 01 Jan 2026 00:00:00 GMT")
	req.Headers.Set("x-date", "Tue, 02 Jan 2026 00:00:00 GMT")

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)
	assertToken(t, s, "Date", wire.SmallStringValue("Tue, 02 Jan 2026 00:00:00 GMT"))
}

func TestInvalidResourceAddressFailsOnPairZero(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.ResourceAddress = "/offers/o1"
	req.IsNameBased = true

	_, err := Project(req, DefaultOptions())
	require.Error(t, err)
	var invalid *wire.InvalidResourceAddress
	require.ErrorAs(t, err, &invalid)
}

func TestUnrecognizedSecondPairSegmentIsSkippedNotFatal(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.ResourceAddress = "/dbs/dbA/somethingnew/x1"
	req.IsNameBased = true

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)
	assertToken(t, s, "DatabaseName", wire.SmallStringValue("dbA"))
	assertAbsent(t, s, "CollectionName")
}

func TestContinuationTokenComesFromRequestNotHeaders(t *testing.T) {
	req := request.New(request.OpQuery, request.ResDocument)
	req.Continuation = "cont-123"
	req.Headers.Set("x-ms-continuation", "should-be-ignored")

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)
	assertToken(t, s, "ContinuationToken", wire.StringValue("cont-123"))
}

func TestDirectCoercionOfKnownHeader(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.Headers.Set("x-ms-activity-id", "11111111-2222-3333-4444-555555555555")
	req.Headers.Set("x-ms-offer-throughput", "400")

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)
	assertToken(t, s, "ActivityId", wire.StringValue("11111111-2222-3333-4444-555555555555"))
	assertToken(t, s, "OfferThroughput", wire.ULongValue(400))
}

func TestDirectCoercionRangeViolationFails(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.Headers.Set("x-ms-offer-throughput", "-1")

	_, err := Project(req, DefaultOptions())
	require.Error(t, err)
	var invalid *wire.InvalidHeaderValue
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "x-ms-offer-throughput", invalid.Name)
}

func TestStrictBooleansRejectsMalformedText(t *testing.T) {
	req := request.New(request.OpQuery, request.ResDocument)
	req.Headers.Set("x-ms-profile-request", "yes")

	_, err := Project(req, Options{StrictBooleans: true})
	require.Error(t, err)
	var invalid *wire.InvalidHeaderValue
	require.ErrorAs(t, err, &invalid)
}

func TestLenientBooleansCoerceMalformedTextToFalse(t *testing.T) {
	req := request.New(request.OpQuery, request.ResDocument)
	req.Headers.Set("x-ms-profile-request", "yes")

	s, err := Project(req, DefaultOptions())
	require.NoError(t, err)
	assertToken(t, s, "ProfileRequest", wire.BoolValue(false))
}

func TestUnknownHeadersAreIgnored(t *testing.T) {
	req := request.New(request.OpRead, request.ResDocument)
	req.Headers.Set("x-totally-made-up-header", "whatever")

	_, err := Project(req, DefaultOptions())
	require.NoError(t, err)
}

package projector

import (
	"math"
	"strconv"

	"github.com/cosmosdb-go/rntbd/headerstream"
	"github.com/cosmosdb-go/rntbd/internal/wire"
	"github.com/cosmosdb-go/rntbd/request"
)

// directHeaders maps every remaining known header name to its registry
// token name. None of these need enum mapping, base64 decoding, or
// operation-dependent selection: each coerces straight from text to its
// registry entry's declared wire type (§4.4.3).
var directHeaders = map[string]string{
	"x-ms-activity-id":                             "ActivityId",
	"x-ms-session-token":                            "SessionToken",
	"x-ms-version":                                  "Version",
	"x-ms-resource-quota":                           "ResourceQuota",
	"x-ms-offer-throughput":                         "OfferThroughput",
	"x-ms-documentdb-expiry-seconds":                "TimeToLiveInSeconds",
	"x-ms-remaining-time-in-ms-on-client-request":   "RemainingTimeInMsForQuery",
	"x-ms-transport-request-id":                     "TransportRequestId",
	"x-ms-collection-partition-index":               "CollectionPartitionIndex",
	"x-ms-collection-service-index":                 "CollectionServiceIndex",
	"x-ms-gateway-signature":                        "GatewaySignature",
}

// applyDirectCoercion runs the type-directed coercion of §4.4.3 for every
// header in directHeaders that is actually present on the request.
func applyDirectCoercion(s *headerstream.Stream, req *request.Request) error {
	for headerName, regName := range directHeaders {
		text, ok := req.Headers.Get(headerName)
		if !ok {
			continue
		}

		entry, ok := wire.Default.LookupByName(regName)
		if !ok {
			continue
		}

		v, err := coerce(entry.Type, headerName, text)
		if err != nil {
			return err
		}
		if err := s.Set(entry.ID, v); err != nil {
			return err
		}
	}
	return nil
}

// coerce implements the per-wire-type parse rules of §4.4.3. Any wire type
// on a known header outside this set is a programmer error: the registry
// entry declared a shape this function doesn't know how to parse from
// text, which only happens if a new wire type was added without updating
// this switch.
func coerce(t wire.Type, headerName, text string) (wire.Value, error) {
	switch t {
	case wire.String, wire.SmallString, wire.ULongString:
		return coerceText(t, text), nil

	case wire.Byte:
		return wire.BoolValue(parseLenientBool(text)), nil

	case wire.Double:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return wire.Value{}, &wire.InvalidHeaderValue{Name: headerName, Value: text}
		}
		return wire.DoubleValue(f), nil

	case wire.Long:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
			return wire.Value{}, &wire.InvalidHeaderValue{Name: headerName, Value: text}
		}
		return wire.LongValue(int32(n)), nil

	case wire.ULong:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil || n < 0 || n > math.MaxUint32 {
			return wire.Value{}, &wire.InvalidHeaderValue{Name: headerName, Value: text}
		}
		return wire.ULongValue(uint32(n)), nil

	case wire.LongLong:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return wire.Value{}, &wire.InvalidHeaderValue{Name: headerName, Value: text}
		}
		return wire.LongLongValue(n), nil

	default:
		panic("projector: registry entry " + headerName + " declares an unsupported wire type for direct coercion")
	}
}

func coerceText(t wire.Type, text string) wire.Value {
	switch t {
	case wire.SmallString:
		return wire.SmallStringValue(text)
	case wire.ULongString:
		return wire.ULongStringValue(text)
	default:
		return wire.StringValue(text)
	}
}

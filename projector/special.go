package projector

import (
	"encoding/base64"
	"strconv"

	"github.com/cosmosdb-go/rntbd/headerstream"
	"github.com/cosmosdb-go/rntbd/internal/wire"
	"github.com/cosmosdb-go/rntbd/request"
)

const (
	headerXDate          = "x-date"
	headerDate           = "date"
	headerIfNoneMatch    = "If-None-Match"
	headerIfMatch        = "If-Match"
	headerPageSize       = "x-ms-max-item-count"
	headerContinuationLimit = "x-ms-documentdb-responsecontinuationtokenlimitinkb"
)

const (
	pageSizeNoLimitSentinel = -1
	pageSizeMax             = int64(1<<32) - 1 // 2^32 - 1
	continuationLimitMax    = int64(1<<32) - 1
)

// applySpecialCases runs every §4.4.2 special-case field in turn, stopping
// and returning on the first error, per §7 ("no partial frame is emitted").
func applySpecialCases(s *headerstream.Stream, req *request.Request, opts Options) error {
	if err := applyEnumHeaders(s, req); err != nil {
		return err
	}
	if err := applyBooleanHeaders(s, req, opts); err != nil {
		return err
	}
	if err := applyBase64Headers(s, req); err != nil {
		return err
	}
	if err := applyDateHeader(s, req); err != nil {
		return err
	}
	if err := applyMatchHeader(s, req); err != nil {
		return err
	}
	if err := applyPageSize(s, req); err != nil {
		return err
	}
	if err := applyContinuationLimit(s, req); err != nil {
		return err
	}
	if err := applyContinuationToken(s, req); err != nil {
		return err
	}
	return applyResourceID(s, req)
}

func applyEnumHeaders(s *headerstream.Stream, req *request.Request) error {
	for _, m := range request.EnumMappings {
		text, ok := req.Headers.Get(m.HeaderName)
		if !ok {
			continue
		}
		wireID, ok := m.Encode(text)
		if !ok {
			return &wire.InvalidHeaderValue{Name: m.HeaderName, Value: text}
		}
		entry, ok := wire.Default.LookupByName(m.RegistryName)
		if !ok {
			continue
		}
		if err := s.Set(entry.ID, wire.ByteValue(wireID)); err != nil {
			return err
		}
	}
	return nil
}

func applyBooleanHeaders(s *headerstream.Stream, req *request.Request, opts Options) error {
	for headerName, regName := range booleanHeaders {
		text, ok := req.Headers.Get(headerName)
		if !ok {
			continue
		}

		var b bool
		if opts.StrictBooleans {
			v, ok := parseStrictBool(text)
			if !ok {
				return &wire.InvalidHeaderValue{Name: headerName, Value: text}
			}
			b = v
		} else {
			b = parseLenientBool(text)
		}

		entry, ok := wire.Default.LookupByName(regName)
		if !ok {
			continue
		}
		if err := s.Set(entry.ID, wire.BoolValue(b)); err != nil {
			return err
		}
	}
	return nil
}

func applyBase64Headers(s *headerstream.Stream, req *request.Request) error {
	for headerName, regName := range base64Headers {
		text, ok := req.Headers.Get(headerName)
		if !ok {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return &wire.InvalidBase64{Name: headerName, Err: err}
		}
		entry, ok := wire.Default.LookupByName(regName)
		if !ok {
			continue
		}
		if err := s.Set(entry.ID, wire.BytesValue(decoded)); err != nil {
			return err
		}
	}
	return nil
}

func applyDateHeader(s *headerstream.Stream, req *request.Request) error {
	text, ok := req.Headers.Get(headerXDate)
	if !ok {
		text, ok = req.Headers.Get(headerDate)
	}
	if !ok {
		return nil
	}
	entry, ok := wire.Default.LookupByName("Date")
	if !ok {
		return nil
	}
	return s.Set(entry.ID, wire.SmallStringValue(text))
}

func applyMatchHeader(s *headerstream.Stream, req *request.Request) error {
	headerName := headerIfMatch
	if req.OperationType.IsReadLike() {
		headerName = headerIfNoneMatch
	}
	text, ok := req.Headers.Get(headerName)
	if !ok {
		return nil
	}
	entry, ok := wire.Default.LookupByName("Match")
	if !ok {
		return nil
	}
	return s.Set(entry.ID, wire.SmallStringValue(text))
}

func applyPageSize(s *headerstream.Stream, req *request.Request) error {
	text, ok := req.Headers.Get(headerPageSize)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n < pageSizeNoLimitSentinel || n > pageSizeMax {
		return &wire.InvalidHeaderValue{Name: headerPageSize, Value: text}
	}

	var wireVal uint32
	if n == pageSizeNoLimitSentinel {
		wireVal = 0xFFFFFFFF
	} else {
		wireVal = uint32(n)
	}

	entry, ok := wire.Default.LookupByName("PageSize")
	if !ok {
		return nil
	}
	return s.Set(entry.ID, wire.ULongValue(wireVal))
}

func applyContinuationLimit(s *headerstream.Stream, req *request.Request) error {
	text, ok := req.Headers.Get(headerContinuationLimit)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n < 0 || n > continuationLimitMax {
		return &wire.InvalidHeaderValue{Name: headerContinuationLimit, Value: text}
	}

	entry, ok := wire.Default.LookupByName("ResponseContinuationTokenLimit")
	if !ok {
		return nil
	}
	return s.Set(entry.ID, wire.ULongValue(uint32(n)))
}

func applyContinuationToken(s *headerstream.Stream, req *request.Request) error {
	if req.Continuation == "" {
		return nil
	}
	entry, ok := wire.Default.LookupByName("ContinuationToken")
	if !ok {
		return nil
	}
	return s.Set(entry.ID, wire.StringValue(req.Continuation))
}

// applyResourceID decodes resource_id (when present) and, for name-based
// requests, walks resource_address through the path-pair table (§4.4.2).
func applyResourceID(s *headerstream.Stream, req *request.Request) error {
	if req.ResourceID != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.ResourceID)
		if err != nil {
			return &wire.InvalidBase64{Name: "resource_id", Err: err}
		}
		entry, ok := wire.Default.LookupByName("ResourceId")
		if ok {
			if err := s.Set(entry.ID, wire.BytesValue(decoded)); err != nil {
				return err
			}
		}
	}

	if req.IsNameBased {
		return applyNameBasedPath(s, req.ResourceAddress)
	}
	return nil
}

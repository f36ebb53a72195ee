package projector

import (
	"github.com/cosmosdb-go/rntbd/headerstream"
	"github.com/cosmosdb-go/rntbd/internal/wire"
	"github.com/cosmosdb-go/rntbd/request"
)

// Project populates a fresh headerstream.Stream from req, running the three
// phases of §4.4 in order: framing-derived fields, special-case fields,
// then direct coercion of everything else. The first error encountered is
// returned immediately with a nil stream — §7 requires that no partial
// frame ever reaches a caller.
func Project(req *request.Request, opts Options) (*headerstream.Stream, error) {
	s := headerstream.New()

	if err := applyFraming(s, req); err != nil {
		return nil, err
	}
	if err := applySpecialCases(s, req, opts); err != nil {
		return nil, err
	}
	if err := applyDirectCoercion(s, req); err != nil {
		return nil, err
	}

	return s, nil
}

// applyFraming sets the two fields §4.4.1 says are always set, regardless
// of headers or operation type.
func applyFraming(s *headerstream.Stream, req *request.Request) error {
	payloadPresent, ok := wire.Default.LookupByName("PayloadPresent")
	if ok {
		if err := s.Set(payloadPresent.ID, wire.BoolValue(req.HasPayload())); err != nil {
			return err
		}
	}

	replicaPath, ok := wire.Default.LookupByName("ReplicaPath")
	if ok {
		if err := s.Set(replicaPath.ID, wire.StringValue(req.ReplicaPath)); err != nil {
			return err
		}
	}

	return nil
}

package projector

import (
	"strings"

	"github.com/cosmosdb-go/rntbd/headerstream"
	"github.com/cosmosdb-go/rntbd/internal/wire"
)

// pathPairTarget is one recognized segment keyword within a pair index and
// the registry token its paired name fills.
type pathPairTarget struct {
	segment   string
	tokenName string
}

// pathPairs holds the position-dependent segment table of §4.4.2: index 0
// is the database pair, 1 the second-level container, 2 the third-level
// resource, 3 the attachment pair. Modeled as an index + small lookup
// rather than a flat key-path, per §9's "index + small state machine"
// guidance, grounded on hivekit's splitPath segment walk.
var pathPairs = [][]pathPairTarget{
	{
		{"dbs", "DatabaseName"},
	},
	{
		{"colls", "CollectionName"},
		{"users", "UserName"},
		{"udts", "UserDefinedTypeName"},
	},
	{
		{"docs", "DocumentName"},
		{"sprocs", "StoredProcedureName"},
		{"permissions", "PermissionName"},
		{"udfs", "UserDefinedFunctionName"},
		{"triggers", "TriggerName"},
		{"conflicts", "ConflictName"},
		{"pkranges", "PartitionKeyRangeName"},
		{"schemas", "SchemaName"},
	},
	{
		{"attachments", "AttachmentName"},
	},
}

func lookupPathTarget(pairIndex int, segment string) (string, bool) {
	for _, t := range pathPairs[pairIndex] {
		if t.segment == segment {
			return t.tokenName, true
		}
	}
	return "", false
}

// applyNameBasedPath splits address on one-or-more '/' (dropping empty
// fragments, which subsumes "drop any leading empty fragment"), then walks
// fragments two at a time as (segment, name) pairs against pathPairs.
//
// Pair 0 with an unrecognized segment fails with InvalidResourceAddress.
// Pairs 1-3 with an unrecognized segment are skipped, not fatal (§4.4.2,
// preserved per §9's Open Questions note on forward compatibility). Pairs
// beyond index 3 are ignored entirely.
func applyNameBasedPath(s *headerstream.Stream, address string) error {
	frags := strings.FieldsFunc(address, func(r rune) bool { return r == '/' })

	for i := 0; i+1 < len(frags); i += 2 {
		pairIndex := i / 2
		if pairIndex >= len(pathPairs) {
			break
		}

		segment, name := frags[i], frags[i+1]
		tokenName, ok := lookupPathTarget(pairIndex, segment)
		if !ok {
			if pairIndex == 0 {
				return &wire.InvalidResourceAddress{Address: address}
			}
			continue
		}

		entry, ok := wire.Default.LookupByName(tokenName)
		if !ok {
			continue
		}
		if err := s.Set(entry.ID, wire.SmallStringValue(name)); err != nil {
			return err
		}
	}

	return nil
}

package request

import "strings"

// This file holds the eight enum-mapped headers of §4.4.2. Each gets its own
// public enum type (the stable SDK-surface identifier, matched
// case-insensitively against header text) and its own wire enum type (the
// protocol-stable small integer actually placed on the wire). The two are
// kept distinct with an explicit conversion, per §9's "do not collapse"
// instruction. Every public enum reserves 0 for Unspecified, so its integer
// values equal the wire ids only where the wire ids start at 1
// (EnumerationDirection, FanoutOperationState, RemoteStorageType); for the
// other five mappings they differ by one.

// ConsistencyLevel is the public consistency-level enum.
type ConsistencyLevel int

const (
	ConsistencyLevelUnspecified ConsistencyLevel = iota
	ConsistencyLevelStrong
	ConsistencyLevelBounded
	ConsistencyLevelSession
	ConsistencyLevelEventual
	ConsistencyLevelConsistentPrefix
)

type wireConsistencyLevel byte

const (
	wireConsistencyStrong          wireConsistencyLevel = 0
	wireConsistencyBounded         wireConsistencyLevel = 1
	wireConsistencySession         wireConsistencyLevel = 2
	wireConsistencyEventual        wireConsistencyLevel = 3
	wireConsistencyConsistentPrefix wireConsistencyLevel = 4
)

var consistencyLevelByText = map[string]ConsistencyLevel{
	"strong":           ConsistencyLevelStrong,
	"bounded":          ConsistencyLevelBounded,
	"session":          ConsistencyLevelSession,
	"eventual":         ConsistencyLevelEventual,
	"consistentprefix": ConsistencyLevelConsistentPrefix,
}

func (c ConsistencyLevel) toWire() (wireConsistencyLevel, bool) {
	switch c {
	case ConsistencyLevelStrong:
		return wireConsistencyStrong, true
	case ConsistencyLevelBounded:
		return wireConsistencyBounded, true
	case ConsistencyLevelSession:
		return wireConsistencySession, true
	case ConsistencyLevelEventual:
		return wireConsistencyEventual, true
	case ConsistencyLevelConsistentPrefix:
		return wireConsistencyConsistentPrefix, true
	default:
		return 0, false
	}
}

// ContentSerializationFormat is the public payload-encoding enum.
type ContentSerializationFormat int

const (
	ContentSerializationFormatUnspecified ContentSerializationFormat = iota
	ContentSerializationFormatJSONText
	ContentSerializationFormatCosmosBinary
)

type wireContentSerializationFormat byte

const (
	wireContentSerializationJSONText     wireContentSerializationFormat = 0
	wireContentSerializationCosmosBinary wireContentSerializationFormat = 1
)

var contentSerializationFormatByText = map[string]ContentSerializationFormat{
	"jsontext":     ContentSerializationFormatJSONText,
	"cosmosbinary": ContentSerializationFormatCosmosBinary,
}

func (f ContentSerializationFormat) toWire() (wireContentSerializationFormat, bool) {
	switch f {
	case ContentSerializationFormatJSONText:
		return wireContentSerializationJSONText, true
	case ContentSerializationFormatCosmosBinary:
		return wireContentSerializationCosmosBinary, true
	default:
		return 0, false
	}
}

// EnumerationDirection is the public feed-scan-direction enum.
type EnumerationDirection int

const (
	EnumerationDirectionUnspecified EnumerationDirection = iota
	EnumerationDirectionForward
	EnumerationDirectionReverse
)

type wireEnumerationDirection byte

const (
	wireEnumerationForward wireEnumerationDirection = 1
	wireEnumerationReverse wireEnumerationDirection = 2
)

var enumerationDirectionByText = map[string]EnumerationDirection{
	"forward": EnumerationDirectionForward,
	"reverse": EnumerationDirectionReverse,
}

func (d EnumerationDirection) toWire() (wireEnumerationDirection, bool) {
	switch d {
	case EnumerationDirectionForward:
		return wireEnumerationForward, true
	case EnumerationDirectionReverse:
		return wireEnumerationReverse, true
	default:
		return 0, false
	}
}

// FanoutOperationState is the public cross-partition fanout state enum.
type FanoutOperationState int

const (
	FanoutOperationStateUnspecified FanoutOperationState = iota
	FanoutOperationStateStarted
	FanoutOperationStateCompleted
)

type wireFanoutOperationState byte

const (
	wireFanoutStarted   wireFanoutOperationState = 1
	wireFanoutCompleted wireFanoutOperationState = 2
)

var fanoutOperationStateByText = map[string]FanoutOperationState{
	"started":   FanoutOperationStateStarted,
	"completed": FanoutOperationStateCompleted,
}

func (s FanoutOperationState) toWire() (wireFanoutOperationState, bool) {
	switch s {
	case FanoutOperationStateStarted:
		return wireFanoutStarted, true
	case FanoutOperationStateCompleted:
		return wireFanoutCompleted, true
	default:
		return 0, false
	}
}

// IndexingDirective is the public per-document indexing directive enum.
type IndexingDirective int

const (
	IndexingDirectiveUnspecified IndexingDirective = iota
	IndexingDirectiveDefault
	IndexingDirectiveExclude
	IndexingDirectiveInclude
)

type wireIndexingDirective byte

const (
	wireIndexingDefault wireIndexingDirective = 0
	wireIndexingExclude wireIndexingDirective = 1
	wireIndexingInclude wireIndexingDirective = 2
)

var indexingDirectiveByText = map[string]IndexingDirective{
	"default": IndexingDirectiveDefault,
	"exclude": IndexingDirectiveExclude,
	"include": IndexingDirectiveInclude,
}

func (d IndexingDirective) toWire() (wireIndexingDirective, bool) {
	switch d {
	case IndexingDirectiveDefault:
		return wireIndexingDefault, true
	case IndexingDirectiveExclude:
		return wireIndexingExclude, true
	case IndexingDirectiveInclude:
		return wireIndexingInclude, true
	default:
		return 0, false
	}
}

// MigrateCollectionDirective is the public collection-migration enum.
type MigrateCollectionDirective int

const (
	MigrateCollectionDirectiveUnspecified MigrateCollectionDirective = iota
	MigrateCollectionDirectiveFreeze
	MigrateCollectionDirectiveThaw
)

type wireMigrateCollectionDirective byte

const (
	wireMigrateFreeze wireMigrateCollectionDirective = 0
	wireMigrateThaw   wireMigrateCollectionDirective = 1
)

var migrateCollectionDirectiveByText = map[string]MigrateCollectionDirective{
	"freeze": MigrateCollectionDirectiveFreeze,
	"thaw":   MigrateCollectionDirectiveThaw,
}

func (d MigrateCollectionDirective) toWire() (wireMigrateCollectionDirective, bool) {
	switch d {
	case MigrateCollectionDirectiveFreeze:
		return wireMigrateFreeze, true
	case MigrateCollectionDirectiveThaw:
		return wireMigrateThaw, true
	default:
		return 0, false
	}
}

// RemoteStorageType is the public attachment-storage-tier enum.
type RemoteStorageType int

const (
	RemoteStorageTypeUnspecified RemoteStorageType = iota
	RemoteStorageTypeStandard
	RemoteStorageTypePremium
)

type wireRemoteStorageType byte

const (
	wireRemoteStorageStandard wireRemoteStorageType = 1
	wireRemoteStoragePremium  wireRemoteStorageType = 2
)

var remoteStorageTypeByText = map[string]RemoteStorageType{
	"standard": RemoteStorageTypeStandard,
	"premium":  RemoteStorageTypePremium,
}

func (t RemoteStorageType) toWire() (wireRemoteStorageType, bool) {
	switch t {
	case RemoteStorageTypeStandard:
		return wireRemoteStorageStandard, true
	case RemoteStorageTypePremium:
		return wireRemoteStoragePremium, true
	default:
		return 0, false
	}
}

// ReadFeedKeyType is the public feed-key-kind enum.
type ReadFeedKeyType int

const (
	ReadFeedKeyTypeUnspecified ReadFeedKeyType = iota
	ReadFeedKeyTypeResourceID
	ReadFeedKeyTypeEffectivePartitionKey
)

type wireReadFeedKeyType byte

const (
	wireReadFeedKeyResourceID               wireReadFeedKeyType = 0
	wireReadFeedKeyEffectivePartitionKey wireReadFeedKeyType = 1
)

var readFeedKeyTypeByText = map[string]ReadFeedKeyType{
	"resourceid":              ReadFeedKeyTypeResourceID,
	"effectivepartitionkey":   ReadFeedKeyTypeEffectivePartitionKey,
}

func (k ReadFeedKeyType) toWire() (wireReadFeedKeyType, bool) {
	switch k {
	case ReadFeedKeyTypeResourceID:
		return wireReadFeedKeyResourceID, true
	case ReadFeedKeyTypeEffectivePartitionKey:
		return wireReadFeedKeyEffectivePartitionKey, true
	default:
		return 0, false
	}
}

// EnumMapping binds one recognized header name to its registry token name
// and a function that performs the full text -> public enum -> wire id
// translation in one call, returning ok=false if the text names no known
// public enum variant.
type EnumMapping struct {
	HeaderName   string
	RegistryName string
	Encode       func(text string) (byte, bool)
}

// EnumMappings is the table driving the projector's special-case enum
// handling (§4.4.2): one name-driven dispatch instead of a chain of
// if/else on header name, per §9's "generated table keyed by header
// name -> registry id -> projector function pointer" guidance.
var EnumMappings = []EnumMapping{
	{
		HeaderName:   "x-ms-consistency-level",
		RegistryName: "ConsistencyLevel",
		Encode: func(text string) (byte, bool) {
			v, ok := consistencyLevelByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
	{
		HeaderName:   "x-ms-documentdb-content-serialization-format",
		RegistryName: "ContentSerializationFormat",
		Encode: func(text string) (byte, bool) {
			v, ok := contentSerializationFormatByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
	{
		HeaderName:   "x-ms-enumeration-direction",
		RegistryName: "EnumerationDirection",
		Encode: func(text string) (byte, bool) {
			v, ok := enumerationDirectionByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
	{
		HeaderName:   "x-ms-fanout-operation-state",
		RegistryName: "FanoutOperationState",
		Encode: func(text string) (byte, bool) {
			v, ok := fanoutOperationStateByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
	{
		HeaderName:   "x-ms-indexing-directive",
		RegistryName: "IndexingDirective",
		Encode: func(text string) (byte, bool) {
			v, ok := indexingDirectiveByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
	{
		HeaderName:   "x-ms-migratecollection-directive",
		RegistryName: "MigrateCollectionDirective",
		Encode: func(text string) (byte, bool) {
			v, ok := migrateCollectionDirectiveByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
	{
		HeaderName:   "x-ms-remote-storage-type",
		RegistryName: "RemoteStorageType",
		Encode: func(text string) (byte, bool) {
			v, ok := remoteStorageTypeByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
	{
		HeaderName:   "x-ms-read-feed-key-type",
		RegistryName: "ReadFeedKeyType",
		Encode: func(text string) (byte, bool) {
			v, ok := readFeedKeyTypeByText[strings.ToLower(text)]
			if !ok {
				return 0, false
			}
			w, ok := v.toWire()
			return byte(w), ok
		},
	},
}

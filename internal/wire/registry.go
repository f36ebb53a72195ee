package wire

// RegistryEntry describes one recognized wire field: its stable numeric id,
// diagnostic name, wire type, required-ness, and default value. Entries are
// never renumbered or reused once assigned (§4.1).
type RegistryEntry struct {
	ID       uint16
	Name     string
	Type     Type
	Required bool
	Default  Value
}

// registryTable is the literal, append-only catalog of every recognized
// RNTBD header field. New fields are appended at the end with the next
// unused id; existing ids are never changed or reused.
//
//nolint:gochecknoglobals // process-wide immutable table, read-only after init
var registryTable = []RegistryEntry{
	{ID: 0, Name: "PayloadPresent", Type: Byte, Required: true, Default: BoolValue(false)},
	{ID: 1, Name: "ReplicaPath", Type: String, Required: true, Default: StringValue("")},

	{ID: 2, Name: "ConsistencyLevel", Type: Byte, Default: ByteValue(0)},
	{ID: 3, Name: "ContentSerializationFormat", Type: Byte, Default: ByteValue(0)},
	{ID: 4, Name: "EnumerationDirection", Type: Byte, Default: ByteValue(0)},
	{ID: 5, Name: "FanoutOperationState", Type: Byte, Default: ByteValue(0)},
	{ID: 6, Name: "IndexingDirective", Type: Byte, Default: ByteValue(0)},
	{ID: 7, Name: "MigrateCollectionDirective", Type: Byte, Default: ByteValue(0)},
	{ID: 8, Name: "RemoteStorageType", Type: Byte, Default: ByteValue(0)},
	{ID: 9, Name: "ReadFeedKeyType", Type: Byte, Default: ByteValue(0)},

	{ID: 10, Name: "AllowScanOnQuery", Type: Byte, Default: BoolValue(false)},
	{ID: 11, Name: "CanCharge", Type: Byte, Default: BoolValue(false)},
	{ID: 12, Name: "CanOfferReplaceComplete", Type: Byte, Default: BoolValue(false)},
	{ID: 13, Name: "CanThrottle", Type: Byte, Default: BoolValue(false)},
	{ID: 14, Name: "DisableRUPerMinuteUsage", Type: Byte, Default: BoolValue(false)},
	{ID: 15, Name: "EmitVerboseTracesInQuery", Type: Byte, Default: BoolValue(false)},
	{ID: 16, Name: "EnableLogging", Type: Byte, Default: BoolValue(false)},
	{ID: 17, Name: "EnableLowPrecisionOrderBy", Type: Byte, Default: BoolValue(false)},
	{ID: 18, Name: "ExcludeSystemProperties", Type: Byte, Default: BoolValue(false)},
	{ID: 19, Name: "IsAutoScaleRequest", Type: Byte, Default: BoolValue(false)},
	{ID: 20, Name: "IsFanout", Type: Byte, Default: BoolValue(false)},
	{ID: 21, Name: "IsReadOnlyScript", Type: Byte, Default: BoolValue(false)},
	{ID: 22, Name: "IsUserRequest", Type: Byte, Default: BoolValue(false)},
	{ID: 23, Name: "PopulateCollectionThroughputInfo", Type: Byte, Default: BoolValue(false)},
	{ID: 24, Name: "PopulatePartitionStatistics", Type: Byte, Default: BoolValue(false)},
	{ID: 25, Name: "PopulateQueryMetrics", Type: Byte, Default: BoolValue(false)},
	{ID: 26, Name: "PopulateQuotaInfo", Type: Byte, Default: BoolValue(false)},
	{ID: 27, Name: "ProfileRequest", Type: Byte, Default: BoolValue(false)},
	{ID: 28, Name: "ForceQueryScan", Type: Byte, Default: BoolValue(false)},
	{ID: 29, Name: "ShareThroughput", Type: Byte, Default: BoolValue(false)},
	{ID: 30, Name: "SupportSpatialLegacyCoordinates", Type: Byte, Default: BoolValue(false)},
	{ID: 31, Name: "UsePolygonsSmallerThanAHemisphere", Type: Byte, Default: BoolValue(false)},

	{ID: 32, Name: "BinaryId", Type: Bytes, Default: BytesValue(nil)},
	{ID: 33, Name: "StartId", Type: Bytes, Default: BytesValue(nil)},
	{ID: 34, Name: "EndId", Type: Bytes, Default: BytesValue(nil)},
	{ID: 35, Name: "StartEpk", Type: Bytes, Default: BytesValue(nil)},
	{ID: 36, Name: "EndEpk", Type: Bytes, Default: BytesValue(nil)},
	{ID: 37, Name: "ResourceId", Type: Bytes, Default: BytesValue(nil)},

	{ID: 38, Name: "Date", Type: SmallString, Default: SmallStringValue("")},
	{ID: 39, Name: "Match", Type: SmallString, Default: SmallStringValue("")},

	{ID: 40, Name: "PageSize", Type: ULong, Default: ULongValue(0)},
	{ID: 41, Name: "ResponseContinuationTokenLimit", Type: ULong, Default: ULongValue(0)},
	{ID: 42, Name: "ContinuationToken", Type: String, Default: StringValue("")},

	{ID: 43, Name: "DatabaseName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 44, Name: "CollectionName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 45, Name: "UserName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 46, Name: "UserDefinedTypeName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 47, Name: "DocumentName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 48, Name: "StoredProcedureName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 49, Name: "PermissionName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 50, Name: "UserDefinedFunctionName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 51, Name: "TriggerName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 52, Name: "ConflictName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 53, Name: "PartitionKeyRangeName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 54, Name: "SchemaName", Type: SmallString, Default: SmallStringValue("")},
	{ID: 55, Name: "AttachmentName", Type: SmallString, Default: SmallStringValue("")},

	{ID: 56, Name: "ActivityId", Type: String, Default: StringValue("")},
	{ID: 57, Name: "SessionToken", Type: String, Default: StringValue("")},
	{ID: 58, Name: "Version", Type: SmallString, Default: SmallStringValue("")},
	{ID: 59, Name: "ResourceQuota", Type: String, Default: StringValue("")},
	{ID: 60, Name: "OfferThroughput", Type: ULong, Default: ULongValue(0)},
	{ID: 61, Name: "TimeToLiveInSeconds", Type: Long, Default: LongValue(0)},
	{ID: 62, Name: "RemainingTimeInMsForQuery", Type: Double, Default: DoubleValue(0)},
	{ID: 63, Name: "TransportRequestId", Type: LongLong, Default: LongLongValue(0)},
	{ID: 64, Name: "CollectionPartitionIndex", Type: ULong, Default: ULongValue(0)},
	{ID: 65, Name: "CollectionServiceIndex", Type: ULong, Default: ULongValue(0)},
	{ID: 66, Name: "GatewaySignature", Type: String, Default: StringValue("")},
}

// Registry is the process-wide, immutable header registry, safe for
// unsynchronized concurrent reads once package initialization completes.
type Registry struct {
	byID   []RegistryEntry // dense, directly indexed by ID
	byName map[string]uint16
}

func newRegistry(entries []RegistryEntry) *Registry {
	maxID := uint16(0)
	for _, e := range entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	r := &Registry{
		byID:   make([]RegistryEntry, maxID+1),
		byName: make(map[string]uint16, len(entries)),
	}
	for _, e := range entries {
		r.byID[e.ID] = e
		r.byName[e.Name] = e.ID
	}
	return r
}

// Default is the process-wide registry built from the literal table above.
//
//nolint:gochecknoglobals // initialize-once, read-everywhere per §5
var Default = newRegistry(registryTable)

// LookupByID returns the entry for id, or ok=false if id is unassigned.
func (r *Registry) LookupByID(id uint16) (RegistryEntry, bool) {
	if int(id) >= len(r.byID) {
		return RegistryEntry{}, false
	}
	e := r.byID[id]
	if e.Name == "" {
		return RegistryEntry{}, false
	}
	return e, true
}

// LookupByName returns the entry with the given diagnostic name.
func (r *Registry) LookupByName(name string) (RegistryEntry, bool) {
	id, ok := r.byName[name]
	if !ok {
		return RegistryEntry{}, false
	}
	return r.LookupByID(id)
}

// Ordered returns every assigned entry in ascending id order, the order
// Encode emits tokens in.
func (r *Registry) Ordered() []RegistryEntry {
	out := make([]RegistryEntry, 0, len(r.byID))
	for _, e := range r.byID {
		if e.Name != "" {
			out = append(out, e)
		}
	}
	return out
}

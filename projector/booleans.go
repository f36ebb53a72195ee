package projector

// booleanHeaders maps every recognized Byte-typed boolean header (§4.4.2)
// to its registry token name. Declared as a table, not a chain of
// if-name-equals branches, matching §9's name-driven dispatch guidance.
var booleanHeaders = map[string]string{
	"x-ms-documentdb-query-enablescan":            "AllowScanOnQuery",
	"x-ms-can-charge":                             "CanCharge",
	"x-ms-can-offer-replace-complete":              "CanOfferReplaceComplete",
	"x-ms-can-throttle":                            "CanThrottle",
	"x-ms-disable-ru-per-minute-usage":             "DisableRUPerMinuteUsage",
	"x-ms-documentdb-query-emit-traces":            "EmitVerboseTracesInQuery",
	"x-ms-enable-logging":                          "EnableLogging",
	"x-ms-documentdb-query-enable-low-precision-order-by": "EnableLowPrecisionOrderBy",
	"x-ms-documentdb-exclude-system-properties":    "ExcludeSystemProperties",
	"x-ms-cosmos-is-auto-scale-request":            "IsAutoScaleRequest",
	"x-ms-is-fanout-request":                       "IsFanout",
	"x-ms-is-readonly-script":                      "IsReadOnlyScript",
	"x-ms-is-user-request":                         "IsUserRequest",
	"x-ms-documentdb-populatecollectionthroughputinfo": "PopulateCollectionThroughputInfo",
	"x-ms-documentdb-populatepartitionstatistics":  "PopulatePartitionStatistics",
	"x-ms-documentdb-populatequerymetrics":         "PopulateQueryMetrics",
	"x-ms-documentdb-populatequotainfo":            "PopulateQuotaInfo",
	"x-ms-profile-request":                         "ProfileRequest",
	"x-ms-documentdb-force-query-scan":             "ForceQueryScan",
	"x-ms-share-throughput":                        "ShareThroughput",
	"x-ms-documentdb-supportspatiallegacycoordinates": "SupportSpatialLegacyCoordinates",
	"x-ms-documentdb-usepolygonssmallerthanahemisphere": "UsePolygonsSmallerThanAHemisphere",
}

// parseLenientBool applies §4.4.2's boolean coercion: the lowercased text
// "true" is true, everything else — including malformed input — is false.
// This mirrors lenient server behavior; strict mode is opt-in via Options.
func parseLenientBool(text string) bool {
	return text == "true"
}

// parseStrictBool accepts only the lowercased literals "true"/"false".
func parseStrictBool(text string) (bool, bool) {
	switch text {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

package request

// ResType identifies the kind of resource a Request addresses, for
// diagnostics. The projector does not consult it: resource_id is decoded as
// base64 bytes the same way for every resource type, with no
// resource-type-specific parse.
type ResType int

const (
	ResInvalid ResType = iota
	ResDatabase
	ResDocumentCollection
	ResDocument
	ResUser
	ResPermission
	ResStoredProcedure
	ResUserDefinedFunction
	ResTrigger
	ResConflict
	ResAttachment
	ResSchema
	ResPartitionKeyRange
	ResOffer
	ResUserDefinedType
)

func (t ResType) String() string {
	switch t {
	case ResDatabase:
		return "Database"
	case ResDocumentCollection:
		return "DocumentCollection"
	case ResDocument:
		return "Document"
	case ResUser:
		return "User"
	case ResPermission:
		return "Permission"
	case ResStoredProcedure:
		return "StoredProcedure"
	case ResUserDefinedFunction:
		return "UserDefinedFunction"
	case ResTrigger:
		return "Trigger"
	case ResConflict:
		return "Conflict"
	case ResAttachment:
		return "Attachment"
	case ResSchema:
		return "Schema"
	case ResPartitionKeyRange:
		return "PartitionKeyRange"
	case ResOffer:
		return "Offer"
	case ResUserDefinedType:
		return "UserDefinedType"
	default:
		return "Invalid"
	}
}

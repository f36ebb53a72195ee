package main

import (
	"encoding/base64"

	"github.com/cosmosdb-go/rntbd/request"
)

var opTypeByName = map[string]request.OpType{
	"Read":              request.OpRead,
	"ReadFeed":          request.OpReadFeed,
	"Create":            request.OpCreate,
	"Replace":           request.OpReplace,
	"Delete":            request.OpDelete,
	"Upsert":            request.OpUpsert,
	"Query":             request.OpQuery,
	"SqlQuery":          request.OpSQLQuery,
	"ExecuteJavaScript": request.OpExecuteJavaScript,
}

var resTypeByName = map[string]request.ResType{
	"Database":            request.ResDatabase,
	"DocumentCollection":  request.ResDocumentCollection,
	"Document":            request.ResDocument,
	"User":                request.ResUser,
	"Permission":          request.ResPermission,
	"StoredProcedure":     request.ResStoredProcedure,
	"UserDefinedFunction": request.ResUserDefinedFunction,
	"Trigger":             request.ResTrigger,
	"Conflict":            request.ResConflict,
	"Attachment":          request.ResAttachment,
	"Schema":              request.ResSchema,
	"PartitionKeyRange":   request.ResPartitionKeyRange,
	"Offer":               request.ResOffer,
	"UserDefinedType":     request.ResUserDefinedType,
}

func decodeContentBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

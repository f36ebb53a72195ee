package projector

// base64Headers maps each base64-encoded binary header (§4.4.2) to its
// registry token name; all five decode to raw bytes and share one
// handling path in special.go.
var base64Headers = map[string]string{
	"x-ms-binary-id": "BinaryId",
	"x-ms-start-id":  "StartId",
	"x-ms-end-id":    "EndId",
	"x-ms-start-epk": "StartEpk",
	"x-ms-end-epk":   "EndEpk",
}

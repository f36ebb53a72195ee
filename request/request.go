package request

// Request is the abstract shape the projector consumes (§3): everything
// needed to populate a header stream for one outgoing call, independent of
// how it was assembled upstream (fluent builder, gateway passthrough, …).
type Request struct {
	OperationType   OpType
	ResourceType    ResType
	ResourceID      string // empty means absent
	ResourceAddress string // path form, e.g. "/dbs/dbA/colls/cA/docs/d1"
	IsNameBased     bool
	ReplicaPath     string
	Content         []byte // nil or empty both mean "no payload" (§4.4.1)
	Headers         *Headers
	Continuation    string // empty means absent; always a request field, never a header (§4.4.2)
}

// New returns a Request with an initialized, empty Headers map.
func New(op OpType, res ResType) *Request {
	return &Request{
		OperationType: op,
		ResourceType:  res,
		Headers:       NewHeaders(),
	}
}

// HasPayload reports whether Content carries a non-empty payload (§4.4.1).
func (r *Request) HasPayload() bool {
	return len(r.Content) > 0
}

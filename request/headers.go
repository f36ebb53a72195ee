package request

// Headers is an ordered, case-exact mapping from header name to textual
// value. Insertion order is preserved for diagnostics and for callers that
// want to replay the input map; lookups are exact-string (§6: "Input header
// names. Treated case-exactly").
//
// Grounded on hivekit's hive.ValueList: a small ordered collection backed by
// a slice plus an index map for O(1) lookup, rather than a plain
// map[string]string that would lose insertion order.
type Headers struct {
	order []string
	byKey map[string]string
}

// NewHeaders returns an empty, ready-to-use Headers.
func NewHeaders() *Headers {
	return &Headers{byKey: make(map[string]string)}
}

// Set stores value under name, preserving the position of the first
// insertion if name is set again.
func (h *Headers) Set(name, value string) {
	if h.byKey == nil {
		h.byKey = make(map[string]string)
	}
	if _, exists := h.byKey[name]; !exists {
		h.order = append(h.order, name)
	}
	h.byKey[name] = value
}

// Get returns the value stored under the exact name, if any.
func (h *Headers) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	v, ok := h.byKey[name]
	return v, ok
}

// Len reports how many distinct header names are present.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

// Names returns header names in insertion order.
func (h *Headers) Names() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

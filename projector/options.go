// Package projector implements the Request Projector: the routine that
// populates a headerstream.Stream from a request.Request, applying type
// coercion, enum mapping, path parsing, and numeric-domain validation
// (§4.4). This is the largest component of the codec.
package projector

// Options configures tunable, non-protocol-affecting projector behavior.
//
// Grounded on hivekit's hive/builder.Options/DefaultOptions() shape: a
// small struct of knobs with documented defaults, constructed via
// DefaultOptions() rather than requiring every caller to list every field.
type Options struct {
	// StrictBooleans rejects a boolean-header value other than "true" or
	// "false" with InvalidHeaderValue instead of the lenient, server-mirroring
	// "anything but true is false" coercion that §4.4.2 and §9's Open
	// Questions describe as the specified behavior. Default: false (lenient,
	// matching the source).
	StrictBooleans bool
}

// DefaultOptions returns the lenient-boolean behavior that §4.4.2 specifies
// as binding; StrictBooleans is an opt-in deviation for callers who want to
// catch malformed input earlier, per §9's "callers SHOULD reject malformed
// booleans upstream" note.
func DefaultOptions() Options {
	return Options{StrictBooleans: false}
}
